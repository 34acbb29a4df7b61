package usecase

import (
	"context"
	"io"

	"comerciojusto/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Upload is a file received from a multipart form.
type Upload struct {
	Filename    string
	Size        int64
	ContentType string
	Content     io.Reader
}

// --- Input DTOs ---

// CreateProductInput is the dashboard add-product form.
type CreateProductInput struct {
	User        *entity.User
	Name        string
	Description string
	Category    entity.Category
	Price       decimal.Decimal
	Stock       int
	Image       *Upload
}

// UpdateProfileInput carries the editable profile fields. Nil fields are left unchanged.
type UpdateProfileInput struct {
	User         *entity.User
	Name         *string
	TaxID        *string
	Address      *string
	City         *string
	State        *string
	Bio          *string
	Description  *string
	News         *string
	ExtraContact *string
	Logo         *Upload
}

// --- Output DTOs ---

// DashboardOutput is the seller dashboard page model.
type DashboardOutput struct {
	Profile        *entity.Profile
	Products       []*entity.Product
	Orders         []*entity.Order
	Certifications []*entity.Certification
}

// ProfileUsecase serves the seller's own pages.
type ProfileUsecase interface {
	Dashboard(ctx context.Context, user *entity.User) (*DashboardOutput, error)
	CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, user *entity.User, productID uuid.UUID) error
	UpdateProfile(ctx context.Context, input *UpdateProfileInput) (*entity.Profile, error)
	// OpenFile streams an uploaded file. The caller closes the reader.
	OpenFile(ctx context.Context, key string) (io.ReadCloser, string, error)
}
