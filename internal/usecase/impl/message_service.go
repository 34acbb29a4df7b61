package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "comerciojusto/internal/delivery/context"
	"comerciojusto/internal/domain/entity"
	domainerrors "comerciojusto/internal/domain/errors"
	"comerciojusto/internal/domain/repository"
	"comerciojusto/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// messageService implements the MessageUsecase interface.
type messageService struct {
	messageRepo repository.MessageRepository
	userRepo    repository.UserRepository
	logger      *slog.Logger
}

// MessageServiceParams holds dependencies for MessageService, injected by Fx.
type MessageServiceParams struct {
	fx.In

	MessageRepo repository.MessageRepository
	UserRepo    repository.UserRepository
	Logger      *slog.Logger
}

// NewMessageService is the constructor for messageService.
func NewMessageService(params MessageServiceParams) usecase.MessageUsecase {
	return &messageService{
		messageRepo: params.MessageRepo,
		userRepo:    params.UserRepo,
		logger:      params.Logger,
	}
}

func (srv *messageService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Inbox groups every message of the user into conversations, newest first.
func (srv *messageService) Inbox(ctx context.Context, userID uuid.UUID) (*usecase.InboxOutput, error) {
	messages, err := srv.messageRepo.ListForUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list messages")
	}

	var unread int64
	for _, m := range messages {
		if m.RecipientID == userID && !m.Read {
			unread++
		}
	}

	return &usecase.InboxOutput{
		Conversations: entity.GroupConversations(userID, messages),
		Unread:        unread,
	}, nil
}

// Delete removes the selected messages the user took part in.
func (srv *messageService) Delete(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	n, err := srv.messageRepo.DeleteForParticipant(ctx, userID, ids)
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete messages")
	}
	srv.log(ctx).Info("Messages deleted", slog.Any("userID", userID), slog.Int64("count", n))

	return n, nil
}

// MarkUnread clears the read flag of selected received messages.
func (srv *messageService) MarkUnread(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	n, err := srv.messageRepo.SetRead(ctx, userID, ids, false)
	if err != nil {
		return 0, errors.Wrap(err, "failed to mark messages unread")
	}

	return n, nil
}

// Conversation returns the exchange with otherID and marks the received side read.
func (srv *messageService) Conversation(ctx context.Context, userID, otherID uuid.UUID) (*usecase.ConversationOutput, error) {
	other, err := srv.userRepo.FindByID(ctx, otherID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("conversation partner not found")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	if _, err := srv.messageRepo.MarkConversationRead(ctx, userID, otherID); err != nil {
		return nil, errors.Wrap(err, "failed to mark conversation read")
	}

	messages, err := srv.messageRepo.ListBetween(ctx, userID, otherID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list conversation")
	}

	return &usecase.ConversationOutput{With: other, Messages: messages}, nil
}

// Send delivers a new message. Subject and body are required.
func (srv *messageService) Send(ctx context.Context, input *usecase.SendMessageInput) (*entity.Message, error) {
	subject := strings.TrimSpace(input.Subject)
	body := strings.TrimSpace(input.Body)
	if subject == "" || body == "" {
		return nil, domainerrors.ErrMessageEmpty.WrapMessage("subject and body are required")
	}
	if input.SenderID == input.RecipientID {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("cannot message yourself")
	}

	if _, err := srv.userRepo.FindByID(ctx, input.RecipientID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("recipient not found")
		}

		return nil, errors.Wrap(err, "failed to find recipient")
	}

	msg := &entity.Message{
		SenderID:    input.SenderID,
		RecipientID: input.RecipientID,
		Subject:     subject,
		Body:        body,
	}
	if err := srv.messageRepo.Create(ctx, msg); err != nil {
		return nil, errors.Wrap(err, "failed to send message")
	}

	srv.log(ctx).Info("Message sent", slog.Any("messageID", msg.ID), slog.Any("recipientID", msg.RecipientID))

	return msg, nil
}

// MarkRead flags a single message read. Messages the user did not receive are reported as not found.
func (srv *messageService) MarkRead(ctx context.Context, userID, messageID uuid.UUID) error {
	msg, err := srv.messageRepo.FindByID(ctx, messageID)
	if err != nil {
		if errors.Is(err, repository.ErrMessageNotFound) {
			return domainerrors.ErrMessageNotFound.WrapMessage("message not found")
		}

		return errors.Wrap(err, "failed to find message")
	}
	if msg.RecipientID != userID {
		return domainerrors.ErrMessageNotFound.WrapMessage("message not addressed to user")
	}

	if _, err := srv.messageRepo.SetRead(ctx, userID, []uuid.UUID{messageID}, true); err != nil {
		return errors.Wrap(err, "failed to mark message read")
	}

	return nil
}

// UnreadCount counts received messages not yet read.
func (srv *messageService) UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	n, err := srv.messageRepo.CountUnread(ctx, userID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count unread messages")
	}

	return n, nil
}
