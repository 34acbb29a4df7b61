package service

import (
	"context"
)

// OrderConfirmedEvent is emitted once per paid checkout after the orders are committed.
type OrderConfirmedEvent struct {
	RequestID         string            `json:"request_id,omitempty"`
	CheckoutSessionID string            `json:"checkout_session_id"`
	BuyerID           string            `json:"buyer_id"`
	OrderIDs          []string          `json:"order_ids"`
	AmountTotal       int64             `json:"amount_total"`
	Currency          string            `json:"currency"`
	Items             map[string]int    `json:"items"` // product id -> quantity
	Attributes        map[string]string `json:"-"`
}

// EventPublisher pushes domain events to a message bus.
type EventPublisher interface {
	// PublishOrderConfirmed announces a paid checkout to downstream consumers.
	PublishOrderConfirmed(ctx context.Context, event *OrderConfirmedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
