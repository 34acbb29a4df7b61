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

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// CreateIfAbsent inserts the order header and its items unless the
// (checkout session, profile) pair already has an order.
func (repo *orderRepository) CreateIfAbsent(ctx context.Context, order *entity.Order) (bool, error) {
	orderM := fromOrderDomain(order)

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "checkout_session_id"}, {Name: "profile_id"}},
			DoNothing: true,
		}).
		Omit(clause.Associations).
		Create(orderM)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return false, domainerrors.ErrProfileNotFound.WrapMessage("invalid order reference")
		}

		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to create order")
	}
	if result.RowsAffected == 0 {
		return false, nil
	}

	if len(order.Items) > 0 {
		items := make([]model.OrderItemModel, 0, len(order.Items))
		for _, item := range order.Items {
			items = append(items, model.OrderItemModel{
				OrderID:   orderM.ID,
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
			})
		}
		if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(&items).Error; err != nil {
			return false, domainerrors.NewDatabaseExecuteError(err, "failed to create order items")
		}
		for i := range items {
			order.Items[i].ID = items[i].ID
			order.Items[i].OrderID = orderM.ID
		}
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt

	return true, nil
}

// ListBySeller returns the orders of a seller, newest first.
func (repo *orderRepository) ListBySeller(ctx context.Context, profileID uuid.UUID) ([]*entity.Order, error) {
	return repo.list(ctx, "profile_id = ?", profileID)
}

// ListByCheckoutSession returns the orders created for one processor session.
func (repo *orderRepository) ListByCheckoutSession(ctx context.Context, sessionID string) ([]*entity.Order, error) {
	return repo.list(ctx, "checkout_session_id = ?", sessionID)
}

func (repo *orderRepository) list(ctx context.Context, query string, arg any) ([]*entity.Order, error) {
	var rows []model.OrderModel
	err := repo.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.Product").
		Preload("Buyer").
		Where(query, arg).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(rows))
	for i := range rows {
		orders = append(orders, toOrderDomain(&rows[i]))
	}

	return orders, nil
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	return &model.OrderModel{
		ID:                data.ID,
		CheckoutSessionID: data.CheckoutSessionID,
		ProfileID:         data.ProfileID,
		BuyerID:           data.BuyerID,
		Status:            string(data.Status),
	}
}

func toOrderDomain(data *model.OrderModel) *entity.Order {
	order := &entity.Order{
		ID:                data.ID,
		CheckoutSessionID: data.CheckoutSessionID,
		ProfileID:         data.ProfileID,
		BuyerID:           data.BuyerID,
		Status:            entity.OrderStatus(data.Status),
		Items:             make([]*entity.OrderItem, 0, len(data.Items)),
		CreatedAt:         data.CreatedAt,
	}
	if data.Buyer != nil {
		order.Buyer = toUserDomain(data.Buyer)
	}
	for i := range data.Items {
		item := &entity.OrderItem{
			ID:        data.Items[i].ID,
			OrderID:   data.Items[i].OrderID,
			ProductID: data.Items[i].ProductID,
			Quantity:  data.Items[i].Quantity,
		}
		if data.Items[i].Product != nil {
			item.Product = toProductDomain(data.Items[i].Product)
		}
		order.Items = append(order.Items, item)
	}

	return order
}
