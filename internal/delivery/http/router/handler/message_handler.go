package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"comerciojusto/internal/delivery/http/flash"
	domainerrors "comerciojusto/internal/domain/errors"
	"comerciojusto/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Bulk actions of the inbox form.
const (
	InboxActionDelete     = "excluir"
	InboxActionMarkUnread = "marcar_nao_lida"
)

const inboxPath = "/caixa-entrada/"

// MessageHandlerParams holds dependencies for MessageHandler, injected by Fx.
type MessageHandlerParams struct {
	fx.In

	MessageUC usecase.MessageUsecase
	Logger    *slog.Logger
}

// MessageHandler serves the inbox and the conversations.
type MessageHandler struct {
	messageUC usecase.MessageUsecase
	logger    *slog.Logger
}

// NewMessageHandler is the constructor for MessageHandler
func NewMessageHandler(params MessageHandlerParams) *MessageHandler {
	return &MessageHandler{
		messageUC: params.MessageUC,
		logger:    params.Logger,
	}
}

// Inbox lists the conversations of the current user.
func (h *MessageHandler) Inbox(c echo.Context) error {
	output, err := h.messageUC.Inbox(c.Request().Context(), currentUser(c).ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return render(c, http.StatusOK, "caixa_entrada", "Caixa de entrada", output)
}

// InboxAction applies a bulk action to the selected messages. Ids the user cannot touch are skipped.
func (h *MessageHandler) InboxAction(c echo.Context) error {
	form, err := c.FormParams()
	if err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WrapMessage(err.Error()))
	}

	ids := parseIDs(form["mensagens_selecionadas"])
	if len(ids) == 0 {
		return redirect(c, inboxPath)
	}

	ctx := c.Request().Context()
	userID := currentUser(c).ID

	switch form.Get("acao") {
	case InboxActionDelete:
		n, err := h.messageUC.Delete(ctx, userID, ids)
		if err != nil {
			return errors.WithStack(err)
		}
		if n > 0 {
			flash.Success(c, "Mensagens excluídas.")
		}
	case InboxActionMarkUnread:
		if _, err := h.messageUC.MarkUnread(ctx, userID, ids); err != nil {
			return errors.WithStack(err)
		}
	}

	return redirect(c, inboxPath)
}

// Conversation shows the exchange with another user and marks it read.
func (h *MessageHandler) Conversation(c echo.Context) error {
	otherID, err := pathUUID(c, "usuario_id", domainerrors.ErrUserNotFound)
	if err != nil {
		return errors.WithStack(err)
	}

	output, err := h.messageUC.Conversation(c.Request().Context(), currentUser(c).ID, otherID)
	if err != nil {
		return errors.WithStack(err)
	}

	return render(c, http.StatusOK, "conversa", "Conversa com "+output.With.Name, output)
}

// Reply posts a message into the conversation. An empty body is ignored.
func (h *MessageHandler) Reply(c echo.Context) error {
	otherID, err := pathUUID(c, "usuario_id", domainerrors.ErrUserNotFound)
	if err != nil {
		return errors.WithStack(err)
	}

	body := strings.TrimSpace(c.FormValue("corpo"))
	if body != "" {
		_, err = h.messageUC.Send(c.Request().Context(), &usecase.SendMessageInput{
			SenderID:    currentUser(c).ID,
			RecipientID: otherID,
			Subject:     usecase.ReplySubject,
			Body:        body,
		})
		if err := flashOrFail(c, err); err != nil {
			return errors.WithStack(err)
		}
	}

	return redirect(c, "/conversa/"+otherID.String()+"/")
}

// Send writes a new message from a product or profile page.
func (h *MessageHandler) Send(c echo.Context) error {
	recipientID, err := pathUUID(c, "id", domainerrors.ErrUserNotFound)
	if err != nil {
		return errors.WithStack(err)
	}

	back := "/"
	if productID, err := uuid.Parse(strings.TrimSpace(c.FormValue("produto_id"))); err == nil {
		back = "/produto/" + productID.String() + "/"
	}

	_, err = h.messageUC.Send(c.Request().Context(), &usecase.SendMessageInput{
		SenderID:    currentUser(c).ID,
		RecipientID: recipientID,
		Subject:     strings.TrimSpace(c.FormValue("assunto")),
		Body:        strings.TrimSpace(c.FormValue("corpo")),
	})
	if err != nil {
		if err := flashOrFail(c, err); err != nil {
			return errors.WithStack(err)
		}

		return redirect(c, back)
	}

	flash.Success(c, "Mensagem enviada com sucesso!")

	return redirect(c, back)
}

// MarkRead flags one received message read.
func (h *MessageHandler) MarkRead(c echo.Context) error {
	messageID, err := pathUUID(c, "id", domainerrors.ErrMessageNotFound)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.messageUC.MarkRead(c.Request().Context(), currentUser(c).ID, messageID); err != nil {
		if isForbidden(err) {
			return errors.WithStack(err)
		}
		if err := flashOrFail(c, err); err != nil {
			return errors.WithStack(err)
		}
	}

	return redirect(c, inboxPath)
}

func parseIDs(raw []string) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, value := range raw {
		if id, err := uuid.Parse(strings.TrimSpace(value)); err == nil {
			ids = append(ids, id)
		}
	}

	return ids
}
