package repository

import (
	"context"
	"errors"
	"time"

	"comerciojusto/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCheckoutSessionNotFound is returned when no local checkout snapshot exists.
var ErrCheckoutSessionNotFound = errors.New("checkout session not found")

// OrderRepository persists orders created from paid checkouts.
type OrderRepository interface {
	// CreateIfAbsent inserts the order and its items unless one already exists for
	// (checkout session, seller profile). Reports whether a row was inserted.
	CreateIfAbsent(ctx context.Context, order *entity.Order) (bool, error)

	// ListBySeller returns orders of a seller profile, newest first, with items and products.
	ListBySeller(ctx context.Context, profileID uuid.UUID) ([]*entity.Order, error)

	// ListByCheckoutSession returns the orders created for one processor session.
	ListByCheckoutSession(ctx context.Context, sessionID string) ([]*entity.Order, error)
}

// CheckoutSessionRepository persists the cart snapshot taken at checkout.
type CheckoutSessionRepository interface {
	// Create stores a new open snapshot.
	Create(ctx context.Context, session *entity.CheckoutSession) error

	// LockByID returns the snapshot locked FOR UPDATE, or ErrCheckoutSessionNotFound.
	LockByID(ctx context.Context, id string) (*entity.CheckoutSession, error)

	// MarkCompleted flags the snapshot as completed.
	MarkCompleted(ctx context.Context, id string, at time.Time) error

	// ExpireOpen marks open snapshots created before the cutoff as expired.
	ExpireOpen(ctx context.Context, before time.Time) (int64, error)
}
