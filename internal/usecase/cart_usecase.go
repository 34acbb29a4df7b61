package usecase

import (
	"context"

	"comerciojusto/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AddCartItemInput is the add-to-cart form.
type AddCartItemInput struct {
	Owner     entity.CartOwner
	ProductID uuid.UUID
	Quantity  int
}

// CartView is the cart page model.
type CartView struct {
	Lines []*entity.CartLine
	Total decimal.Decimal
	Count int
}

// CartUsecase manages the per-owner cart.
type CartUsecase interface {
	// AddItem adds quantity units of a product and returns the new distinct item count.
	AddItem(ctx context.Context, input *AddCartItemInput) (int, error)
	// RemoveItem drops a line; absent ids are a no-op.
	RemoveItem(ctx context.Context, owner entity.CartOwner, productID string) (int, error)
	View(ctx context.Context, owner entity.CartOwner) (*CartView, error)
	// MergeAnonymousCart folds the session cart into the user's cart and deletes it.
	MergeAnonymousCart(ctx context.Context, sessionID string, userID uuid.UUID) (int, error)
	Count(ctx context.Context, owner entity.CartOwner) (int, error)
}
