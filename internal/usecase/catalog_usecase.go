// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"comerciojusto/internal/domain/entity"

	"github.com/google/uuid"
)

// PublicProfileReviewLimit is how many reviews the public profile page shows.
const PublicProfileReviewLimit = 10

// --- Input DTOs ---

// ListProductsInput carries the catalog query string.
type ListProductsInput struct {
	Category string
	Search   string
}

// AddReviewInput is a star rating posted on a product page.
type AddReviewInput struct {
	ProductID uuid.UUID
	UserID    uuid.UUID
	Stars     int
	Comment   string
}

// --- Output DTOs ---

// ListProductsOutput is the catalog page model.
type ListProductsOutput struct {
	Products         []*entity.Product
	Categories       []entity.Category
	SelectedCategory entity.Category
	Search           string
}

// ProductDetailOutput is the product page model.
type ProductDetailOutput struct {
	Product        *entity.Product
	Seller         *entity.Profile
	Reviews        []*entity.Review
	Certifications []*entity.Certification
	Certified      bool
}

// PublicProfileOutput is the public seller page model.
type PublicProfileOutput struct {
	Profile        *entity.Profile
	Products       []*entity.Product
	Certifications []*entity.Certification
	Reviews        []*entity.Review
}

// CatalogUsecase serves the public storefront pages.
type CatalogUsecase interface {
	ListProducts(ctx context.Context, input *ListProductsInput) (*ListProductsOutput, error)
	GetProductDetail(ctx context.Context, productID uuid.UUID) (*ProductDetailOutput, error)
	AddReview(ctx context.Context, input *AddReviewInput) error
	GetPublicProfile(ctx context.Context, profileID uuid.UUID) (*PublicProfileOutput, error)
	ProductQRCode(ctx context.Context, productID uuid.UUID) ([]byte, error)
}
