package repository

import (
	"context"
	"errors"
	"time"

	"comerciojusto/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCartNotFound is returned when the owner has no cart.
var ErrCartNotFound = errors.New("cart not found")

// CartRepository persists carts. The Lock* methods take a row lock and must run inside a transaction.
type CartRepository interface {
	// FindByOwner reads a cart without locking.
	FindByOwner(ctx context.Context, owner entity.CartOwner) (*entity.Cart, error)

	// LockOrCreate upserts an empty cart for the owner if none exists and returns it locked FOR UPDATE.
	LockOrCreate(ctx context.Context, owner entity.CartOwner) (*entity.Cart, error)

	// LockByOwner returns the owner's cart locked FOR UPDATE, or ErrCartNotFound.
	LockByOwner(ctx context.Context, owner entity.CartOwner) (*entity.Cart, error)

	// SaveItems overwrites the item map of a cart.
	SaveItems(ctx context.Context, cartID uuid.UUID, items entity.CartItems) error

	// Delete removes a cart row.
	Delete(ctx context.Context, cartID uuid.UUID) error

	// DeleteIdleAnonymous removes session carts untouched since before.
	DeleteIdleAnonymous(ctx context.Context, before time.Time) (int64, error)
}
