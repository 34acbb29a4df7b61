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

type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository is the constructor for messageRepository.
func NewMessageRepository(db *gorm.DB) repository.MessageRepository {
	return &messageRepository{db: db}
}

// Create inserts a message.
func (repo *messageRepository) Create(ctx context.Context, msg *entity.Message) error {
	msgM := &model.MessageModel{
		SenderID:    msg.SenderID,
		RecipientID: msg.RecipientID,
		Subject:     msg.Subject,
		Body:        msg.Body,
		Read:        msg.Read,
	}
	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(msgM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid recipient")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create message")
	}

	msg.ID = msgM.ID
	msg.CreatedAt = msgM.CreatedAt

	return nil
}

// FindByID loads a single message with both participants.
func (repo *messageRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Message, error) {
	var msgM model.MessageModel
	if err := repo.withParticipants(ctx).Where("id = ?", id).Take(&msgM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMessageNotFound
		}

		return nil, errors.Wrap(err, "failed to find message")
	}

	return toMessageDomain(&msgM), nil
}

// ListForUser returns the user's inbox and outbox, newest first.
func (repo *messageRepository) ListForUser(ctx context.Context, userID uuid.UUID) ([]*entity.Message, error) {
	return repo.list(repo.withParticipants(ctx).
		Where("sender_id = ? OR recipient_id = ?", userID, userID).
		Order("created_at DESC"))
}

// ListBetween returns the messages two users exchanged, oldest first.
func (repo *messageRepository) ListBetween(ctx context.Context, userID, otherID uuid.UUID) ([]*entity.Message, error) {
	return repo.list(repo.withParticipants(ctx).
		Where("(sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?)", userID, otherID, otherID, userID).
		Order("created_at ASC"))
}

// SetRead updates the read flag of messages received by recipientID.
func (repo *messageRepository) SetRead(ctx context.Context, recipientID uuid.UUID, ids []uuid.UUID, read bool) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.MessageModel{}).
		Where("recipient_id = ? AND id IN ?", recipientID, ids).
		Update("read", read)
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update messages")
	}

	return result.RowsAffected, nil
}

// MarkConversationRead flags everything otherID sent to recipientID as read.
func (repo *messageRepository) MarkConversationRead(ctx context.Context, recipientID, otherID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.MessageModel{}).
		Where("recipient_id = ? AND sender_id = ? AND read = ?", recipientID, otherID, false).
		Update("read", true)
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark conversation read")
	}

	return result.RowsAffected, nil
}

// DeleteForParticipant removes messages the user sent or received.
func (repo *messageRepository) DeleteForParticipant(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	result := repo.db.WithContext(ctx).
		Where("id IN ? AND (sender_id = ? OR recipient_id = ?)", ids, userID, userID).
		Delete(&model.MessageModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete messages")
	}

	return result.RowsAffected, nil
}

// CountUnread counts received messages not yet read.
func (repo *messageRepository) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.MessageModel{}).
		Where("recipient_id = ? AND read = ?", userID, false).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count unread messages")
	}

	return count, nil
}

func (repo *messageRepository) withParticipants(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).Preload("Sender").Preload("Recipient")
}

func (repo *messageRepository) list(query *gorm.DB) ([]*entity.Message, error) {
	var rows []model.MessageModel
	if err := query.Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list messages")
	}

	msgs := make([]*entity.Message, 0, len(rows))
	for i := range rows {
		msgs = append(msgs, toMessageDomain(&rows[i]))
	}

	return msgs, nil
}

func toMessageDomain(data *model.MessageModel) *entity.Message {
	msg := &entity.Message{
		ID:          data.ID,
		SenderID:    data.SenderID,
		RecipientID: data.RecipientID,
		Subject:     data.Subject,
		Body:        data.Body,
		Read:        data.Read,
		CreatedAt:   data.CreatedAt,
	}
	if data.Sender != nil {
		msg.Sender = toUserDomain(data.Sender)
	}
	if data.Recipient != nil {
		msg.Recipient = toUserDomain(data.Recipient)
	}

	return msg
}
