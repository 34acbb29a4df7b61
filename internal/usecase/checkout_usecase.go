package usecase

import (
	"context"

	"github.com/google/uuid"
)

// Relative paths the processor redirects to.
const (
	CheckoutSuccessPath = "/sucesso/"
	CheckoutCancelPath  = "/cancelado/"
)

// CreateCheckoutInput identifies the buyer.
type CreateCheckoutInput struct {
	UserID uuid.UUID
	Email  string
}

// CreateCheckoutOutput holds the hosted page to redirect to.
type CreateCheckoutOutput struct {
	SessionID   string
	RedirectURL string
}

// WebhookInput is the raw processor notification.
type WebhookInput struct {
	Payload   []byte
	Signature string
	RequestID string
}

// WebhookOutput summarizes what a notification changed.
type WebhookOutput struct {
	EventType     string `json:"event_type"`
	Processed     bool   `json:"processed"`
	Duplicate     bool   `json:"duplicate"`
	OrdersCreated int    `json:"orders_created"`
}

// CheckoutUsecase turns a cart into a paid order.
type CheckoutUsecase interface {
	CreateCheckout(ctx context.Context, input *CreateCheckoutInput) (*CreateCheckoutOutput, error)
	HandleWebhook(ctx context.Context, input *WebhookInput) (*WebhookOutput, error)
}
