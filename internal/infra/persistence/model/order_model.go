package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// OrderModel mirrors the 'orders' table. (checkout_session_id, profile_id) is the idempotency key.
type OrderModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CheckoutSessionID string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_orders_session_profile"`
	ProfileID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_orders_session_profile;index"`
	BuyerID           uuid.UUID `gorm:"type:uuid;not null;index"`
	Status            string    `gorm:"type:varchar(20);not null"`
	CreatedAt         time.Time `gorm:"index"`

	Items []OrderItemModel `gorm:"foreignKey:OrderID"`
	Buyer *UserModel       `gorm:"foreignKey:BuyerID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table.
type OrderItemModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID `gorm:"type:uuid;not null"`
	Quantity  int       `gorm:"not null"`

	Product *ProductModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}

// CheckoutSessionModel mirrors the 'checkout_sessions' table: the cart snapshot sent to the processor.
type CheckoutSessionModel struct {
	ID          string                            `gorm:"type:varchar(255);primary_key"`
	UserID      uuid.UUID                         `gorm:"type:uuid;not null;index"`
	Items       datatypes.JSONType[CartItemsJSON] `gorm:"type:jsonb;not null"`
	AmountTotal int64                             `gorm:"not null"`
	Currency    string                            `gorm:"type:varchar(3);not null"`
	Status      string                            `gorm:"type:varchar(20);not null;index"`
	CreatedAt   time.Time
	CompletedAt *time.Time
}

// TableName explicitly sets the table name for GORM.
func (CheckoutSessionModel) TableName() string {
	return "checkout_sessions"
}
