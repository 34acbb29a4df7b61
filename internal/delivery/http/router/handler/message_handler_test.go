package handler

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	domainerrors "comerciojusto/internal/domain/errors"
	"comerciojusto/internal/domain/entity"
	mocks "comerciojusto/internal/mocks/usecase"
	"comerciojusto/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newMessageHandler(t *testing.T) (*MessageHandler, *mocks.MockMessageUsecase) {
	messageUC := mocks.NewMockMessageUsecase(t)

	return NewMessageHandler(MessageHandlerParams{MessageUC: messageUC, Logger: testLogger}), messageUC
}

func TestMessageHandler_Inbox(t *testing.T) {
	h, messageUC := newMessageHandler(t)
	c, rec := newTestContext(t, http.MethodGet, "/caixa-entrada/", nil)
	user := loginAs(c, &entity.User{ID: uuid.New(), Name: "Ana"})

	other := &entity.User{ID: uuid.New(), Name: "Sítio Boa Terra"}
	msg := &entity.Message{
		ID:          uuid.New(),
		SenderID:    other.ID,
		RecipientID: user.ID,
		Subject:     "Sobre o mel",
		Body:        "Temos mais unidades.",
		CreatedAt:   time.Now(),
	}
	messageUC.EXPECT().Inbox(mock.Anything, user.ID).Return(&usecase.InboxOutput{
		Conversations: []*entity.Conversation{{
			With:        other.ID,
			WithUser:    other,
			Last:        msg,
			UnreadCount: 1,
			Messages:    []*entity.Message{msg},
		}},
		Unread: 1,
	}, nil)

	require.NoError(t, h.Inbox(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Sítio Boa Terra")
	assert.Contains(t, rec.Body.String(), `value="`+msg.ID.String()+`"`)
}

func TestMessageHandler_InboxAction(t *testing.T) {
	selected := uuid.New()

	t.Run("delete selected", func(t *testing.T) {
		h, messageUC := newMessageHandler(t)
		c, rec := newTestContext(t, http.MethodPost, "/caixa-entrada/", url.Values{
			"acao":                   {InboxActionDelete},
			"mensagens_selecionadas": {selected.String(), "lixo"},
		})
		user := loginAs(c, &entity.User{ID: uuid.New()})
		messageUC.EXPECT().Delete(mock.Anything, user.ID, []uuid.UUID{selected}).Return(int64(1), nil)

		require.NoError(t, h.InboxAction(c))
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/caixa-entrada/", rec.Header().Get("Location"))
		assert.True(t, hasFlashCookie(rec))
	})

	t.Run("mark unread", func(t *testing.T) {
		h, messageUC := newMessageHandler(t)
		c, rec := newTestContext(t, http.MethodPost, "/caixa-entrada/", url.Values{
			"acao":                   {InboxActionMarkUnread},
			"mensagens_selecionadas": {selected.String()},
		})
		user := loginAs(c, &entity.User{ID: uuid.New()})
		messageUC.EXPECT().MarkUnread(mock.Anything, user.ID, []uuid.UUID{selected}).Return(int64(1), nil)

		require.NoError(t, h.InboxAction(c))
		assert.Equal(t, http.StatusSeeOther, rec.Code)
	})

	t.Run("nothing selected is a no-op", func(t *testing.T) {
		h, _ := newMessageHandler(t)
		c, rec := newTestContext(t, http.MethodPost, "/caixa-entrada/", url.Values{"acao": {InboxActionDelete}})
		loginAs(c, &entity.User{ID: uuid.New()})

		require.NoError(t, h.InboxAction(c))
		assert.Equal(t, http.StatusSeeOther, rec.Code)
	})

	t.Run("unknown action is ignored", func(t *testing.T) {
		h, _ := newMessageHandler(t)
		c, rec := newTestContext(t, http.MethodPost, "/caixa-entrada/", url.Values{
			"acao":                   {"arquivar"},
			"mensagens_selecionadas": {selected.String()},
		})
		loginAs(c, &entity.User{ID: uuid.New()})

		require.NoError(t, h.InboxAction(c))
		assert.Equal(t, http.StatusSeeOther, rec.Code)
	})
}

func TestMessageHandler_Conversation(t *testing.T) {
	t.Run("renders the exchange", func(t *testing.T) {
		h, messageUC := newMessageHandler(t)
		other := &entity.User{ID: uuid.New(), Name: "Cooperativa Sol"}
		c, rec := newTestContext(t, http.MethodGet, "/conversa/"+other.ID.String()+"/", nil)
		c.SetParamNames("usuario_id")
		c.SetParamValues(other.ID.String())
		user := loginAs(c, &entity.User{ID: uuid.New(), Name: "Ana"})

		messageUC.EXPECT().Conversation(mock.Anything, user.ID, other.ID).Return(&usecase.ConversationOutput{
			With: other,
			Messages: []*entity.Message{{
				ID:          uuid.New(),
				SenderID:    user.ID,
				RecipientID: other.ID,
				Subject:     "Olá",
				Body:        "Vocês entregam em Olinda?",
				CreatedAt:   time.Now(),
			}},
		}, nil)

		require.NoError(t, h.Conversation(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Conversa com Cooperativa Sol")
		assert.Contains(t, rec.Body.String(), "Vocês entregam em Olinda?")
	})

	t.Run("malformed id", func(t *testing.T) {
		h, _ := newMessageHandler(t)
		c, _ := newTestContext(t, http.MethodGet, "/conversa/abc/", nil)
		c.SetParamNames("usuario_id")
		c.SetParamValues("abc")
		loginAs(c, &entity.User{ID: uuid.New()})

		err := h.Conversation(c)
		appErr, ok := userError(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
	})
}

func TestMessageHandler_Reply(t *testing.T) {
	other := uuid.New()

	t.Run("sends with the reply subject", func(t *testing.T) {
		h, messageUC := newMessageHandler(t)
		c, rec := newTestContext(t, http.MethodPost, "/conversa/"+other.String()+"/", url.Values{"corpo": {"  Obrigada!  "}})
		c.SetParamNames("usuario_id")
		c.SetParamValues(other.String())
		user := loginAs(c, &entity.User{ID: uuid.New()})

		messageUC.EXPECT().Send(mock.Anything, &usecase.SendMessageInput{
			SenderID:    user.ID,
			RecipientID: other,
			Subject:     usecase.ReplySubject,
			Body:        "Obrigada!",
		}).Return(&entity.Message{ID: uuid.New()}, nil)

		require.NoError(t, h.Reply(c))
		assert.Equal(t, "/conversa/"+other.String()+"/", rec.Header().Get("Location"))
	})

	t.Run("empty body sends nothing", func(t *testing.T) {
		h, _ := newMessageHandler(t)
		c, rec := newTestContext(t, http.MethodPost, "/conversa/"+other.String()+"/", url.Values{"corpo": {"   "}})
		c.SetParamNames("usuario_id")
		c.SetParamValues(other.String())
		loginAs(c, &entity.User{ID: uuid.New()})

		require.NoError(t, h.Reply(c))
		assert.Equal(t, http.StatusSeeOther, rec.Code)
	})
}

func TestMessageHandler_Send(t *testing.T) {
	recipient := uuid.New()
	product := uuid.New()

	t.Run("back to the product", func(t *testing.T) {
		h, messageUC := newMessageHandler(t)
		c, rec := newTestContext(t, http.MethodPost, "/mensagem/enviar/"+recipient.String()+"/", url.Values{
			"assunto":    {"Entrega"},
			"corpo":      {"Fazem entrega?"},
			"produto_id": {product.String()},
		})
		c.SetParamNames("id")
		c.SetParamValues(recipient.String())
		user := loginAs(c, &entity.User{ID: uuid.New()})

		messageUC.EXPECT().Send(mock.Anything, &usecase.SendMessageInput{
			SenderID:    user.ID,
			RecipientID: recipient,
			Subject:     "Entrega",
			Body:        "Fazem entrega?",
		}).Return(&entity.Message{ID: uuid.New()}, nil)

		require.NoError(t, h.Send(c))
		assert.Equal(t, "/produto/"+product.String()+"/", rec.Header().Get("Location"))
		assert.True(t, hasFlashCookie(rec))
	})

	t.Run("empty message is flashed", func(t *testing.T) {
		h, messageUC := newMessageHandler(t)
		c, rec := newTestContext(t, http.MethodPost, "/mensagem/enviar/"+recipient.String()+"/", url.Values{"corpo": {""}})
		c.SetParamNames("id")
		c.SetParamValues(recipient.String())
		loginAs(c, &entity.User{ID: uuid.New()})

		messageUC.EXPECT().Send(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrMessageEmpty)

		require.NoError(t, h.Send(c))
		assert.Equal(t, "/", rec.Header().Get("Location"))
		assert.True(t, hasFlashCookie(rec))
	})
}

func TestMessageHandler_MarkRead(t *testing.T) {
	messageID := uuid.New()

	t.Run("recipient", func(t *testing.T) {
		h, messageUC := newMessageHandler(t)
		c, rec := newTestContext(t, http.MethodPost, "/mensagem/marcar-lida/"+messageID.String()+"/", url.Values{})
		c.SetParamNames("id")
		c.SetParamValues(messageID.String())
		user := loginAs(c, &entity.User{ID: uuid.New()})
		messageUC.EXPECT().MarkRead(mock.Anything, user.ID, messageID).Return(nil)

		require.NoError(t, h.MarkRead(c))
		assert.Equal(t, "/caixa-entrada/", rec.Header().Get("Location"))
	})

	t.Run("someone else's message", func(t *testing.T) {
		h, messageUC := newMessageHandler(t)
		c, _ := newTestContext(t, http.MethodPost, "/mensagem/marcar-lida/"+messageID.String()+"/", url.Values{})
		c.SetParamNames("id")
		c.SetParamValues(messageID.String())
		user := loginAs(c, &entity.User{ID: uuid.New()})
		messageUC.EXPECT().MarkRead(mock.Anything, user.ID, messageID).Return(domainerrors.ErrForbidden)

		err := h.MarkRead(c)
		assert.True(t, isForbidden(err))
	})
}
