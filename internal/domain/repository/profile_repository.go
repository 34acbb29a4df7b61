package repository

import (
	"context"
	"errors"

	"comerciojusto/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrProfileNotFound is returned when no profile matches.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository persists seller profiles and their typed business record.
type ProfileRepository interface {
	// FindByID loads a profile with its producer or company record.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)

	// LockByID loads a profile locked FOR UPDATE.
	LockByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)

	// FindByUserID loads the profile owned by a user.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)

	// Create inserts the profile together with its producer or company record.
	Create(ctx context.Context, profile *entity.Profile) error

	// Update saves the editable business fields.
	Update(ctx context.Context, profile *entity.Profile) error

	// AddSales increments total_sales atomically.
	AddSales(ctx context.Context, id uuid.UUID, units int) error

	// UpdateRating stores a recomputed rating aggregate.
	UpdateRating(ctx context.Context, id uuid.UUID, rating decimal.Decimal, totalReviews int) error
}
