package model

import (
	"time"

	"github.com/google/uuid"
)

// CertificationModel mirrors the 'certifications' table.
type CertificationModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ProfileID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	ProductID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	ReviewerID *uuid.UUID `gorm:"type:uuid"`
	Status     string     `gorm:"type:varchar(20);not null;index"`
	FileKey    string     `gorm:"type:varchar(255)"`
	Opinion    string     `gorm:"type:text"`
	IssuedAt   *time.Time `gorm:"type:date"`
	ValidUntil *time.Time `gorm:"type:date"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Product *ProductModel `gorm:"foreignKey:ProductID"`
	Profile *ProfileModel `gorm:"foreignKey:ProfileID"`
}

// TableName explicitly sets the table name for GORM.
func (CertificationModel) TableName() string {
	return "certifications"
}
