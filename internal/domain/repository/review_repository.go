package repository

import (
	"context"

	"comerciojusto/internal/domain/entity"

	"github.com/google/uuid"
)

// ReviewRepository persists star ratings.
type ReviewRepository interface {
	// Create inserts a review.
	Create(ctx context.Context, review *entity.Review) error

	// ListByProfile returns the latest reviews of a profile, newest first.
	ListByProfile(ctx context.Context, profileID uuid.UUID, limit int) ([]*entity.Review, error)
}
