package service

import (
	"context"
	"time"
)

// CheckoutLineItem is one priced line sent to the payment processor.
type CheckoutLineItem struct {
	Name        string
	Description string // At most 100 characters; empty is omitted.
	UnitAmount  int64  // Minor units (centavos).
	Quantity    int
}

// CheckoutRequest describes a hosted checkout page to create.
type CheckoutRequest struct {
	Currency      string
	LineItems     []CheckoutLineItem
	SuccessURL    string
	CancelURL     string
	CustomerEmail string
	Metadata      map[string]string
}

// CheckoutSession is what the processor returns for a created checkout.
type CheckoutSession struct {
	ID          string
	URL         string // Hosted page the buyer is redirected to.
	AmountTotal int64
	Currency    string
}

// WebhookEvent is a verified processor notification.
type WebhookEvent struct {
	ID        string
	Type      string
	CreatedAt time.Time
	// Populated for checkout.session.* events.
	SessionID     string
	PaymentStatus string
	CustomerEmail string
	AmountTotal   int64
	Currency      string
	Metadata      map[string]string
}

// Webhook event types the application reacts to.
const (
	EventCheckoutSessionCompleted = "checkout.session.completed"
)

// PaymentGateway talks to the card payment processor.
type PaymentGateway interface {
	// CreateCheckoutSession registers a hosted checkout and returns its redirect URL.
	CreateCheckoutSession(ctx context.Context, req *CheckoutRequest) (*CheckoutSession, error)

	// ParseWebhook verifies the signature header against the payload and decodes the event.
	ParseWebhook(payload []byte, signatureHeader string) (*WebhookEvent, error)
}
