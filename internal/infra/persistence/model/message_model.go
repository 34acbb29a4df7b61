package model

import (
	"time"

	"github.com/google/uuid"
)

// MessageModel mirrors the 'messages' table.
type MessageModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	SenderID    uuid.UUID `gorm:"type:uuid;not null;index"`
	RecipientID uuid.UUID `gorm:"type:uuid;not null;index:idx_messages_recipient_read"`
	Subject     string    `gorm:"type:varchar(255);not null"`
	Body        string    `gorm:"type:text;not null"`
	Read        bool      `gorm:"not null;index:idx_messages_recipient_read"`
	CreatedAt   time.Time `gorm:"index"`

	Sender    *UserModel `gorm:"foreignKey:SenderID"`
	Recipient *UserModel `gorm:"foreignKey:RecipientID"`
}

// TableName explicitly sets the table name for GORM.
func (MessageModel) TableName() string {
	return "messages"
}
