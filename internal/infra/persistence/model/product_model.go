package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductModel mirrors the 'products' table.
type ProductModel struct {
	ID               uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ProfileID        uuid.UUID        `gorm:"type:uuid;not null;index"`
	LegacyProducerID *uuid.UUID       `gorm:"type:uuid"`
	Name             string           `gorm:"type:varchar(100);not null"`
	Description      string           `gorm:"type:text"`
	Category         string           `gorm:"type:varchar(50);not null;index"`
	Price            decimal.Decimal  `gorm:"type:numeric(10,2);not null"`
	OriginalPrice    *decimal.Decimal `gorm:"type:numeric(10,2)"`
	ImageKey         string           `gorm:"type:varchar(255)"`
	ProductionDate   *time.Time       `gorm:"type:date"`
	LogisticsStatus  string           `gorm:"type:varchar(30)"`
	Stock            int              `gorm:"not null"`
	Sales            int              `gorm:"not null;index"`
	Rating           decimal.Decimal  `gorm:"type:numeric(3,2);not null"`
	Active           bool             `gorm:"not null"`
	Featured         bool             `gorm:"not null"`
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Profile *ProfileModel `gorm:"foreignKey:ProfileID"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// ReviewModel mirrors the 'reviews' table.
type ReviewModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ProfileID        uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID           uuid.UUID `gorm:"type:uuid;not null"`
	Stars            int       `gorm:"not null;check:chk_reviews_stars,stars BETWEEN 1 AND 5"`
	Comment          string    `gorm:"type:text"`
	VerifiedPurchase bool      `gorm:"not null"`
	CreatedAt        time.Time

	User *UserModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}
