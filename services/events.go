package services

import (
	"context"
	"time"

	"github.com/Yashmaurya7/ecommerce-website/models"
)

const (
	EventOrderCreated       = "order_created"
	EventOrderStatusUpdated = "order_status_updated"
)

// OrderEvent describes an order lifecycle change published to interested
// consumers (fulfilment, notifications).
type OrderEvent struct {
	OrderID  string             `json:"order_id"`
	UserID   string             `json:"user_id"`
	Type     string             `json:"type"`
	Status   models.OrderStatus `json:"status"`
	Total    float64            `json:"total"`
	Occurred time.Time          `json:"occurred"`
}

// EventPublisher forwards order events to a message broker. Publishing is
// best-effort: the order service logs failures and never fails a request
// over them.
type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, event OrderEvent) error
}
