package postgres

import (
	"context"

	"comerciojusto/internal/domain/entity"
	domainerrors "comerciojusto/internal/domain/errors"
	"comerciojusto/internal/domain/repository"
	"comerciojusto/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

// Create inserts a review.
func (repo *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	reviewM := &model.ReviewModel{
		ProfileID:        review.ProfileID,
		UserID:           review.UserID,
		Stars:            review.Stars,
		Comment:          review.Comment,
		VerifiedPurchase: review.VerifiedPurchase,
	}
	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(reviewM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidReview.WrapMessage("stars out of range")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProfileNotFound.WrapMessage("invalid profile reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}

	review.ID = reviewM.ID
	review.CreatedAt = reviewM.CreatedAt

	return nil
}

// ListByProfile returns the latest reviews of a profile.
func (repo *reviewRepository) ListByProfile(ctx context.Context, profileID uuid.UUID, limit int) ([]*entity.Review, error) {
	query := repo.db.WithContext(ctx).
		Preload("User").
		Where("profile_id = ?", profileID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var rows []model.ReviewModel
	if err := query.Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	reviews := make([]*entity.Review, 0, len(rows))
	for i := range rows {
		review := &entity.Review{
			ID:               rows[i].ID,
			ProfileID:        rows[i].ProfileID,
			UserID:           rows[i].UserID,
			Stars:            rows[i].Stars,
			Comment:          rows[i].Comment,
			VerifiedPurchase: rows[i].VerifiedPurchase,
			CreatedAt:        rows[i].CreatedAt,
		}
		if rows[i].User != nil {
			review.User = toUserDomain(rows[i].User)
		}
		reviews = append(reviews, review)
	}

	return reviews, nil
}
