package repository

import (
	"context"
	"errors"

	"comerciojusto/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrMessageNotFound is returned when no message matches.
var ErrMessageNotFound = errors.New("message not found")

// MessageRepository persists direct messages.
type MessageRepository interface {
	// Create inserts a message.
	Create(ctx context.Context, msg *entity.Message) error

	// FindByID loads a single message.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Message, error)

	// ListForUser returns every message the user sent or received, newest first, with both users loaded.
	ListForUser(ctx context.Context, userID uuid.UUID) ([]*entity.Message, error)

	// ListBetween returns the messages exchanged by two users, oldest first.
	ListBetween(ctx context.Context, userID, otherID uuid.UUID) ([]*entity.Message, error)

	// SetRead updates the read flag of messages received by recipientID. Other ids are ignored.
	SetRead(ctx context.Context, recipientID uuid.UUID, ids []uuid.UUID, read bool) (int64, error)

	// MarkConversationRead flags every message from otherID to recipientID as read.
	MarkConversationRead(ctx context.Context, recipientID, otherID uuid.UUID) (int64, error)

	// DeleteForParticipant removes messages the user sent or received. Other ids are ignored.
	DeleteForParticipant(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (int64, error)

	// CountUnread counts received messages not yet read.
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)
}
