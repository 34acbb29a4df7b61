package postgres

import (
	"context"
	"time"

	"comerciojusto/internal/domain/entity"
	domainerrors "comerciojusto/internal/domain/errors"
	"comerciojusto/internal/domain/repository"
	"comerciojusto/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{db: db}
}

func ownerScope(owner entity.CartOwner) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if owner.UserID != nil {
			return db.Where("user_id = ?", *owner.UserID)
		}

		return db.Where("session_id = ?", owner.SessionID)
	}
}

// FindByOwner reads a cart without locking. Reads go to the primary so a
// redirect right after a write sees the new state.
func (repo *cartRepository) FindByOwner(ctx context.Context, owner entity.CartOwner) (*entity.Cart, error) {
	if err := owner.Validate(); err != nil {
		return nil, err
	}

	var cartM model.CartModel
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Scopes(ownerScope(owner)).
		Take(&cartM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart")
	}

	return toCartDomain(&cartM), nil
}

// LockOrCreate inserts an empty cart when the owner has none, then locks the row.
// Concurrent callers race on the unique owner index; the loser's insert is a no-op.
func (repo *cartRepository) LockOrCreate(ctx context.Context, owner entity.CartOwner) (*entity.Cart, error) {
	if err := owner.Validate(); err != nil {
		return nil, err
	}

	cartM := fromCartOwner(owner)
	conflict := "session_id"
	if owner.UserID != nil {
		conflict = "user_id"
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: conflict}}, DoNothing: true}).
		Create(cartM).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create cart")
	}

	return repo.LockByOwner(ctx, owner)
}

// LockByOwner returns the owner's cart locked FOR UPDATE.
func (repo *cartRepository) LockByOwner(ctx context.Context, owner entity.CartOwner) (*entity.Cart, error) {
	if err := owner.Validate(); err != nil {
		return nil, err
	}

	var cartM model.CartModel
	err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Scopes(ownerScope(owner)).
		Take(&cartM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartNotFound
		}

		return nil, errors.Wrap(err, "failed to lock cart")
	}

	return toCartDomain(&cartM), nil
}

// SaveItems overwrites the item document of a cart.
func (repo *cartRepository) SaveItems(ctx context.Context, cartID uuid.UUID, items entity.CartItems) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CartModel{}).
		Where("id = ?", cartID).
		Updates(map[string]any{
			"items":      datatypes.NewJSONType(toCartItemsJSON(items)),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to save cart items")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCartNotFound
	}

	return nil
}

// Delete removes a cart row.
func (repo *cartRepository) Delete(ctx context.Context, cartID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).Where("id = ?", cartID).Delete(&model.CartModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete cart")
	}

	return nil
}

// DeleteIdleAnonymous removes session carts untouched since before.
func (repo *cartRepository) DeleteIdleAnonymous(ctx context.Context, before time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("session_id IS NOT NULL AND updated_at < ?", before).
		Delete(&model.CartModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete idle carts")
	}

	return result.RowsAffected, nil
}

func fromCartOwner(owner entity.CartOwner) *model.CartModel {
	cartM := &model.CartModel{
		UserID: owner.UserID,
		Items:  datatypes.NewJSONType(model.CartItemsJSON{}),
	}
	if owner.UserID == nil {
		sessionID := owner.SessionID
		cartM.SessionID = &sessionID
	}

	return cartM
}

func toCartDomain(data *model.CartModel) *entity.Cart {
	owner := entity.CartOwner{UserID: data.UserID}
	if data.SessionID != nil {
		owner.SessionID = *data.SessionID
	}

	return &entity.Cart{
		ID:        data.ID,
		Owner:     owner,
		Items:     toCartItems(data.Items.Data()),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toCartItems(data model.CartItemsJSON) entity.CartItems {
	items := make(entity.CartItems, len(data))
	for id, item := range data {
		items[id] = entity.CartItem{Quantity: item.Quantity, Price: item.Price, Name: item.Name}
	}

	return items
}

func toCartItemsJSON(items entity.CartItems) model.CartItemsJSON {
	data := make(model.CartItemsJSON, len(items))
	for id, item := range items {
		data[id] = model.CartItemJSON{Quantity: item.Quantity, Price: item.Price, Name: item.Name}
	}

	return data
}
