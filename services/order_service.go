package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Yashmaurya7/ecommerce-website/models"
	"github.com/Yashmaurya7/ecommerce-website/repository"
)

var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrProductNotFound = errors.New("product not found")
	// ErrAlreadyDelivered rejects status updates on a delivered order;
	// "Delivered" is terminal.
	ErrAlreadyDelivered = errors.New("order has already been delivered")
	ErrInvalidStatus    = errors.New("invalid order status")
)

// CreateOrderInput carries the fields a customer submits when placing an
// order. Prices are taken as given; consistency between item subtotals and
// totalPrice is the caller's responsibility.
type CreateOrderInput struct {
	ShippingInfo  models.ShippingInfo `json:"shippingInfo" validate:"required"`
	OrderItems    []models.OrderItem  `json:"orderItems" validate:"required,min=1,dive"`
	PaymentInfo   models.PaymentInfo  `json:"paymentInfo" validate:"required"`
	ItemsPrice    float64             `json:"itemsPrice" validate:"gte=0"`
	TaxPrice      float64             `json:"taxPrice" validate:"gte=0"`
	ShippingPrice float64             `json:"shippingPrice" validate:"gte=0"`
	TotalPrice    float64             `json:"totalPrice" validate:"gte=0"`
}

// UserSummary is the resolved owner of an order, as exposed on the single
// order endpoint.
type UserSummary struct {
	ID    primitive.ObjectID `json:"_id"`
	Name  string             `json:"name"`
	Email string             `json:"email"`
}

// OrderDetail is an order with its user reference resolved. The outer User
// field shadows the embedded ObjectID when marshalled.
type OrderDetail struct {
	models.Order
	User UserSummary `json:"user"`
}

// OrderService implements the order operations over injected repositories.
type OrderService struct {
	orders   repository.OrderRepository
	products repository.ProductRepository
	users    repository.UserRepository
	events   EventPublisher
}

// NewOrderService wires an OrderService. events may be nil, in which case
// no order events are published.
func NewOrderService(orders repository.OrderRepository, products repository.ProductRepository, users repository.UserRepository, events EventPublisher) *OrderService {
	return &OrderService{
		orders:   orders,
		products: products,
		users:    users,
		events:   events,
	}
}

// Create persists a new order owned by userID. paidAt is stamped now and
// the status starts at "Processing".
func (s *OrderService) Create(ctx context.Context, input CreateOrderInput, userID primitive.ObjectID) (*models.Order, error) {
	now := time.Now()
	order := &models.Order{
		ShippingInfo:  input.ShippingInfo,
		OrderItems:    input.OrderItems,
		PaymentInfo:   input.PaymentInfo,
		ItemsPrice:    input.ItemsPrice,
		TaxPrice:      input.TaxPrice,
		ShippingPrice: input.ShippingPrice,
		TotalPrice:    input.TotalPrice,
		User:          userID,
		OrderStatus:   models.OrderStatusProcessing,
		PaidAt:        now,
		CreatedAt:     now,
	}

	order, err := s.orders.Insert(ctx, order)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, order, EventOrderCreated)
	return order, nil
}

// Get returns the order with its user reference resolved to name and
// email. A dangling user reference leaves the summary's id set and the
// contact fields empty.
func (s *OrderService) Get(ctx context.Context, orderID primitive.ObjectID) (*OrderDetail, error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	detail := &OrderDetail{Order: *order, User: UserSummary{ID: order.User}}
	user, err := s.users.FindByID(ctx, order.User)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if user != nil {
		detail.User.Name = user.Name
		detail.User.Email = user.Email
	}
	return detail, nil
}

// ListByUser returns the orders owned by userID, in store order.
func (s *OrderService) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Order, error) {
	return s.orders.FindByUser(ctx, userID)
}

// ListAll returns every order together with the sum of their totalPrice
// fields. The sum is a linear scan over the result, 0 for an empty store.
func (s *OrderService) ListAll(ctx context.Context) ([]models.Order, float64, error) {
	orders, err := s.orders.FindAll(ctx)
	if err != nil {
		return nil, 0, err
	}

	var totalAmount float64
	for _, order := range orders {
		totalAmount += order.TotalPrice
	}
	return orders, totalAmount, nil
}

// UpdateStatus moves an order to status. A delivered order is terminal.
// Moving to "Shipped" decrements each item's product stock; moving to
// "Delivered" stamps deliveredAt.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID primitive.ObjectID, status models.OrderStatus) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}

	order, err := s.orders.FindByID(ctx, orderID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrOrderNotFound
	}
	if err != nil {
		return err
	}

	if order.OrderStatus == models.OrderStatusDelivered {
		return ErrAlreadyDelivered
	}

	order.OrderStatus = status

	if status == models.OrderStatusShipped {
		// Sequential, best-effort: a failed decrement is logged and the
		// remaining items and the order save still proceed. There is no
		// transaction tying the decrements to the save.
		for _, item := range order.OrderItems {
			if err := s.decrementStock(ctx, item.Product, item.Quantity); err != nil {
				log.Printf("stock decrement failed for product %s on order %s: %v",
					item.Product.Hex(), order.ID.Hex(), err)
			}
		}
	}

	if status == models.OrderStatusDelivered {
		now := time.Now()
		order.DeliveredAt = &now
	}

	if err := s.orders.Update(ctx, order); err != nil {
		return err
	}

	s.publish(ctx, order, EventOrderStatusUpdated)
	return nil
}

// Delete removes the order. No stock restoration or other cleanup happens.
func (s *OrderService) Delete(ctx context.Context, orderID primitive.ObjectID) error {
	_, err := s.orders.FindByID(ctx, orderID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrOrderNotFound
	}
	if err != nil {
		return err
	}
	return s.orders.Delete(ctx, orderID)
}

// decrementStock subtracts quantity from the product's stock. Stock is not
// floored at zero; an over-shipment drives it negative, matching the
// behavior downstream consumers already expect.
func (s *OrderService) decrementStock(ctx context.Context, productID primitive.ObjectID, quantity int) error {
	product, err := s.products.FindByID(ctx, productID)
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrProductNotFound, productID.Hex())
	}
	if err != nil {
		return err
	}

	product.Stock -= quantity
	return s.products.Update(ctx, product)
}

func (s *OrderService) publish(ctx context.Context, order *models.Order, eventType string) {
	if s.events == nil {
		return
	}
	event := OrderEvent{
		OrderID:  order.ID.Hex(),
		UserID:   order.User.Hex(),
		Type:     eventType,
		Status:   order.OrderStatus,
		Total:    order.TotalPrice,
		Occurred: time.Now(),
	}
	if err := s.events.PublishOrderEvent(ctx, event); err != nil {
		log.Printf("failed to publish %s event for order %s: %v", eventType, event.OrderID, err)
	}
}
