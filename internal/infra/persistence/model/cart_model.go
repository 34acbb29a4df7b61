package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// CartItemJSON is one entry of the carts.items JSONB column.
type CartItemJSON struct {
	Quantity int             `json:"quantidade"`
	Price    decimal.Decimal `json:"preco"`
	Name     string          `json:"nome"`
}

// CartItemsJSON is the JSONB document keyed by product id.
type CartItemsJSON map[string]CartItemJSON

// CartModel mirrors the 'carts' table. Exactly one of UserID and SessionID is set.
type CartModel struct {
	ID        uuid.UUID                         `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    *uuid.UUID                        `gorm:"type:uuid;uniqueIndex;check:chk_carts_owner,(user_id IS NULL) <> (session_id IS NULL)"`
	SessionID *string                           `gorm:"type:varchar(64);uniqueIndex"`
	Items     datatypes.JSONType[CartItemsJSON] `gorm:"type:jsonb;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (CartModel) TableName() string {
	return "carts"
}
