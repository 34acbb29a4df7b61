package usecase

import (
	"context"

	"comerciojusto/internal/domain/entity"

	"github.com/google/uuid"
)

// ReplySubject is the subject of replies sent from a conversation page.
const ReplySubject = "Re: Conversa"

// SendMessageInput is a new direct message.
type SendMessageInput struct {
	SenderID    uuid.UUID
	RecipientID uuid.UUID
	Subject     string
	Body        string
}

// InboxOutput is the inbox page model.
type InboxOutput struct {
	Conversations []*entity.Conversation
	Unread        int64
}

// ConversationOutput is the conversation page model.
type ConversationOutput struct {
	With     *entity.User
	Messages []*entity.Message
}

// MessageUsecase handles direct messaging between users.
type MessageUsecase interface {
	Inbox(ctx context.Context, userID uuid.UUID) (*InboxOutput, error)
	Delete(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (int64, error)
	MarkUnread(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (int64, error)
	// Conversation lists the exchange with another user and marks received messages read.
	Conversation(ctx context.Context, userID, otherID uuid.UUID) (*ConversationOutput, error)
	Send(ctx context.Context, input *SendMessageInput) (*entity.Message, error)
	// MarkRead flags one message read. Only its recipient may do so.
	MarkRead(ctx context.Context, userID, messageID uuid.UUID) error
	UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error)
}
