package repository

import (
	"context"
	"errors"

	"comerciojusto/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when no product matches.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository persists the catalog.
type ProductRepository interface {
	// FindByID loads a product with its seller profile.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindByIDs loads several products keyed by id. Missing ids are absent from the map.
	FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*entity.Product, error)

	// List returns products matching the filter, featured first then by sales.
	List(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error)

	// Create inserts a product.
	Create(ctx context.Context, product *entity.Product) error

	// Delete removes a product owned by the given profile.
	Delete(ctx context.Context, id uuid.UUID, profileID uuid.UUID) error

	// AddSales increments the sales counter atomically.
	AddSales(ctx context.Context, id uuid.UUID, units int) error
}
