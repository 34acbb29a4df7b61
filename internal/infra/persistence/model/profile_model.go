package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProfileModel mirrors the 'profiles' table. UserID is unique: one profile per account.
type ProfileModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	Kind         string          `gorm:"type:varchar(20);not null"`
	TaxID        string          `gorm:"type:varchar(20)"`
	Address      string          `gorm:"type:varchar(255)"`
	City         string          `gorm:"type:varchar(100)"`
	State        string          `gorm:"type:varchar(2)"`
	Bio          string          `gorm:"type:text"`
	Description  string          `gorm:"type:text"`
	News         string          `gorm:"type:text"`
	ExtraContact string          `gorm:"type:varchar(255)"`
	LogoKey      string          `gorm:"type:varchar(255)"`
	Rating       decimal.Decimal `gorm:"type:numeric(3,2);not null"`
	TotalSales   int             `gorm:"not null"`
	TotalReviews int             `gorm:"not null"`
	Verified     bool            `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	User     *UserModel     `gorm:"foreignKey:UserID"`
	Producer *ProducerModel `gorm:"foreignKey:ProfileID"`
	Company  *CompanyModel  `gorm:"foreignKey:ProfileID"`
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}

// ProducerModel mirrors the 'producers' table. Only producer-specific fields live here.
type ProducerModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ProfileID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	FarmName  string    `gorm:"type:varchar(100)"`
	Phone     string    `gorm:"type:varchar(30)"`
}

// TableName explicitly sets the table name for GORM.
func (ProducerModel) TableName() string {
	return "producers"
}

// CompanyModel mirrors the 'companies' table. Only company-specific fields live here.
type CompanyModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ProfileID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	TradeName string    `gorm:"type:varchar(100)"`
	Phone     string    `gorm:"type:varchar(30)"`
}

// TableName explicitly sets the table name for GORM.
func (CompanyModel) TableName() string {
	return "companies"
}
