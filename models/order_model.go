package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderStatus string

const (
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusShipped    OrderStatus = "Shipped"
	OrderStatusDelivered  OrderStatus = "Delivered"
)

// Valid reports whether s is one of the three recognized statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered:
		return true
	}
	return false
}

// ShippingInfo is the delivery address embedded in an order.
type ShippingInfo struct {
	Address string `json:"address" bson:"address" validate:"required"`
	City    string `json:"city" bson:"city" validate:"required"`
	State   string `json:"state" bson:"state" validate:"required"`
	Country string `json:"country" bson:"country" validate:"required"`
	PinCode string `json:"pinCode" bson:"pinCode" validate:"required"`
	PhoneNo string `json:"phoneNo" bson:"phoneNo" validate:"required"`
}

// OrderItem references a product together with the quantity and the
// price snapshot taken at purchase time.
type OrderItem struct {
	Name     string             `json:"name" bson:"name" validate:"required"`
	Price    float64            `json:"price" bson:"price" validate:"required,gte=0"`
	Quantity int                `json:"quantity" bson:"quantity" validate:"required,min=1"`
	Image    string             `json:"image" bson:"image"`
	Product  primitive.ObjectID `json:"product" bson:"product" validate:"required"`
}

// PaymentInfo is an opaque reference to a payment captured upstream.
type PaymentInfo struct {
	ID     string `json:"id" bson:"id" validate:"required"`
	Status string `json:"status" bson:"status" validate:"required"`
}

// Order is the persisted order document.
type Order struct {
	ID            primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	ShippingInfo  ShippingInfo       `json:"shippingInfo" bson:"shippingInfo"`
	OrderItems    []OrderItem        `json:"orderItems" bson:"orderItems"`
	PaymentInfo   PaymentInfo        `json:"paymentInfo" bson:"paymentInfo"`
	ItemsPrice    float64            `json:"itemsPrice" bson:"itemsPrice"`
	TaxPrice      float64            `json:"taxPrice" bson:"taxPrice"`
	ShippingPrice float64            `json:"shippingPrice" bson:"shippingPrice"`
	TotalPrice    float64            `json:"totalPrice" bson:"totalPrice"`
	User          primitive.ObjectID `json:"user" bson:"user"`
	OrderStatus   OrderStatus        `json:"orderStatus" bson:"orderStatus"`
	PaidAt        time.Time          `json:"paidAt" bson:"paidAt"`
	DeliveredAt   *time.Time         `json:"deliveredAt,omitempty" bson:"deliveredAt,omitempty"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
}
