package impl

import (
	"context"
	"testing"
	"time"

	"comerciojusto/internal/domain/entity"
	domainerrors "comerciojusto/internal/domain/errors"
	"comerciojusto/internal/domain/repository"
	mockRepo "comerciojusto/internal/mocks/repository"
	"comerciojusto/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestMessageService(t *testing.T) (usecase.MessageUsecase, *mockRepo.MockMessageRepository, *mockRepo.MockUserRepository) {
	messageRepo := mockRepo.NewMockMessageRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)

	srv := NewMessageService(MessageServiceParams{
		MessageRepo: messageRepo,
		UserRepo:    userRepo,
		Logger:      newDiscardLogger(),
	})

	return srv, messageRepo, userRepo
}

func TestMessageService_Send(t *testing.T) {
	srv, messageRepo, userRepo := createTestMessageService(t)
	sender, recipient := uuid.New(), uuid.New()

	userRepo.EXPECT().FindByID(mock.Anything, recipient).Return(&entity.User{ID: recipient}, nil)
	messageRepo.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(m *entity.Message) bool {
			return m.SenderID == sender && m.RecipientID == recipient && m.Subject == "Pedido" && m.Body == "Chegou?"
		})).
		Return(nil)

	msg, err := srv.Send(context.Background(), &usecase.SendMessageInput{
		SenderID:    sender,
		RecipientID: recipient,
		Subject:     "  Pedido ",
		Body:        "Chegou?\n",
	})
	require.NoError(t, err)
	assert.False(t, msg.Read)
}

func TestMessageService_Send_Validation(t *testing.T) {
	self := uuid.New()
	tests := []struct {
		name    string
		input   *usecase.SendMessageInput
		wantErr error
	}{
		{
			name:    "blank subject",
			input:   &usecase.SendMessageInput{SenderID: uuid.New(), RecipientID: uuid.New(), Subject: "  ", Body: "oi"},
			wantErr: domainerrors.ErrMessageEmpty,
		},
		{
			name:    "blank body",
			input:   &usecase.SendMessageInput{SenderID: uuid.New(), RecipientID: uuid.New(), Subject: "oi"},
			wantErr: domainerrors.ErrMessageEmpty,
		},
		{
			name:    "to self",
			input:   &usecase.SendMessageInput{SenderID: self, RecipientID: self, Subject: "oi", Body: "oi"},
			wantErr: domainerrors.ErrValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, messageRepo, _ := createTestMessageService(t)

			_, err := srv.Send(context.Background(), tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
			messageRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestMessageService_Send_UnknownRecipient(t *testing.T) {
	srv, _, userRepo := createTestMessageService(t)
	recipient := uuid.New()

	userRepo.EXPECT().FindByID(mock.Anything, recipient).Return(nil, repository.ErrUserNotFound)

	_, err := srv.Send(context.Background(), &usecase.SendMessageInput{
		SenderID: uuid.New(), RecipientID: recipient, Subject: "a", Body: "b",
	})
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestMessageService_MarkRead_OnlyRecipient(t *testing.T) {
	srv, messageRepo, _ := createTestMessageService(t)
	recipient, intruder := uuid.New(), uuid.New()
	msg := &entity.Message{ID: uuid.New(), SenderID: uuid.New(), RecipientID: recipient}

	messageRepo.EXPECT().FindByID(mock.Anything, msg.ID).Return(msg, nil).Twice()
	messageRepo.EXPECT().SetRead(mock.Anything, recipient, []uuid.UUID{msg.ID}, true).Return(1, nil).Once()

	err := srv.MarkRead(context.Background(), intruder, msg.ID)
	assert.ErrorIs(t, err, domainerrors.ErrMessageNotFound)

	err = srv.MarkRead(context.Background(), recipient, msg.ID)
	assert.NoError(t, err)
}

func TestMessageService_Inbox(t *testing.T) {
	srv, messageRepo, _ := createTestMessageService(t)
	me, ana, bruno := uuid.New(), uuid.New(), uuid.New()
	now := time.Now()
	messages := []*entity.Message{
		{ID: uuid.New(), SenderID: ana, RecipientID: me, CreatedAt: now},
		{ID: uuid.New(), SenderID: me, RecipientID: ana, CreatedAt: now.Add(-time.Hour), Read: true},
		{ID: uuid.New(), SenderID: bruno, RecipientID: me, CreatedAt: now.Add(-2 * time.Hour), Read: true},
	}

	messageRepo.EXPECT().ListForUser(mock.Anything, me).Return(messages, nil)

	out, err := srv.Inbox(context.Background(), me)
	require.NoError(t, err)
	assert.Equal(t, int64(1), out.Unread)
	require.Len(t, out.Conversations, 2)
	assert.Equal(t, ana, out.Conversations[0].With)
	assert.Equal(t, 1, out.Conversations[0].UnreadCount)
}

func TestMessageService_Conversation_MarksReceivedRead(t *testing.T) {
	srv, messageRepo, userRepo := createTestMessageService(t)
	me, other := uuid.New(), uuid.New()

	userRepo.EXPECT().FindByID(mock.Anything, other).Return(&entity.User{ID: other, Name: "Ana"}, nil)
	markRead := messageRepo.EXPECT().MarkConversationRead(mock.Anything, me, other).Return(2, nil).Call
	messageRepo.EXPECT().ListBetween(mock.Anything, me, other).Return([]*entity.Message{{ID: uuid.New()}}, nil).NotBefore(markRead)

	out, err := srv.Conversation(context.Background(), me, other)
	require.NoError(t, err)
	assert.Equal(t, "Ana", out.With.Name)
	assert.Len(t, out.Messages, 1)
}

func TestMessageService_BulkActions(t *testing.T) {
	srv, messageRepo, _ := createTestMessageService(t)
	me := uuid.New()
	ids := []uuid.UUID{uuid.New(), uuid.New()}

	n, err := srv.Delete(context.Background(), me, nil)
	require.NoError(t, err)
	assert.Zero(t, n)

	messageRepo.EXPECT().DeleteForParticipant(mock.Anything, me, ids).Return(2, nil)
	n, err = srv.Delete(context.Background(), me, ids)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	messageRepo.EXPECT().SetRead(mock.Anything, me, ids, false).Return(1, nil)
	n, err = srv.MarkUnread(context.Background(), me, ids)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	messageRepo.EXPECT().CountUnread(mock.Anything, me).Return(3, nil)
	n, err = srv.UnreadCount(context.Background(), me)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}
