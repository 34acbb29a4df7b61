package postgres

import (
	"context"
	"time"

	"comerciojusto/internal/domain/entity"
	domainerrors "comerciojusto/internal/domain/errors"
	"comerciojusto/internal/domain/repository"
	"comerciojusto/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type checkoutSessionRepository struct {
	db *gorm.DB
}

// NewCheckoutSessionRepository is the constructor for checkoutSessionRepository.
func NewCheckoutSessionRepository(db *gorm.DB) repository.CheckoutSessionRepository {
	return &checkoutSessionRepository{db: db}
}

// Create stores a new open snapshot.
func (repo *checkoutSessionRepository) Create(ctx context.Context, session *entity.CheckoutSession) error {
	sessionM := &model.CheckoutSessionModel{
		ID:          session.ID,
		UserID:      session.UserID,
		Items:       datatypes.NewJSONType(toCartItemsJSON(session.Items)),
		AmountTotal: session.AmountTotal,
		Currency:    session.Currency,
		Status:      string(entity.CheckoutSessionOpen),
	}
	if err := repo.db.WithContext(ctx).Create(sessionM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("checkout session already recorded")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create checkout session")
	}

	session.Status = entity.CheckoutSessionOpen
	session.CreatedAt = sessionM.CreatedAt

	return nil
}

// LockByID returns the snapshot locked FOR UPDATE.
func (repo *checkoutSessionRepository) LockByID(ctx context.Context, id string) (*entity.CheckoutSession, error) {
	var sessionM model.CheckoutSessionModel
	err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		Take(&sessionM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCheckoutSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to lock checkout session")
	}

	return &entity.CheckoutSession{
		ID:          sessionM.ID,
		UserID:      sessionM.UserID,
		Items:       toCartItems(sessionM.Items.Data()),
		AmountTotal: sessionM.AmountTotal,
		Currency:    sessionM.Currency,
		Status:      entity.CheckoutSessionStatus(sessionM.Status),
		CreatedAt:   sessionM.CreatedAt,
		CompletedAt: sessionM.CompletedAt,
	}, nil
}

// MarkCompleted flags the snapshot as completed.
func (repo *checkoutSessionRepository) MarkCompleted(ctx context.Context, id string, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CheckoutSessionModel{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": string(entity.CheckoutSessionCompleted), "completed_at": at})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to complete checkout session")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCheckoutSessionNotFound
	}

	return nil
}

// ExpireOpen marks stale open snapshots as expired.
func (repo *checkoutSessionRepository) ExpireOpen(ctx context.Context, before time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.CheckoutSessionModel{}).
		Where("status = ? AND created_at < ?", string(entity.CheckoutSessionOpen), before).
		Update("status", string(entity.CheckoutSessionExpired))
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to expire checkout sessions")
	}

	return result.RowsAffected, nil
}
