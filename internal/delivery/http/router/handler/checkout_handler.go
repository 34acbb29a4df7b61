package handler

import (
	"io"
	"log/slog"
	"net/http"

	deliverycontext "comerciojusto/internal/delivery/context"
	"comerciojusto/internal/delivery/http/flash"
	"comerciojusto/internal/delivery/http/middleware"
	"comerciojusto/internal/delivery/http/response"
	domainerrors "comerciojusto/internal/domain/errors"
	"comerciojusto/internal/infra/metrics"
	"comerciojusto/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// StripeSignatureHeader carries the webhook HMAC.
const StripeSignatureHeader = "Stripe-Signature"

// CheckoutHandlerParams holds dependencies for CheckoutHandler, injected by Fx.
type CheckoutHandlerParams struct {
	fx.In

	CheckoutUC usecase.CheckoutUsecase
	Collectors *metrics.Collectors `optional:"true"`
	Logger     *slog.Logger
}

// CheckoutHandler sends the buyer to the processor and receives its webhook.
type CheckoutHandler struct {
	checkoutUC usecase.CheckoutUsecase
	collectors *metrics.Collectors
	logger     *slog.Logger
}

// NewCheckoutHandler is the constructor for CheckoutHandler
func NewCheckoutHandler(params CheckoutHandlerParams) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutUC: params.CheckoutUC,
		collectors: params.Collectors,
		logger:     params.Logger,
	}
}

// Create builds a hosted checkout from the cart and redirects to it.
// Every failure returns to the cart with a message and leaves no partial state.
func (h *CheckoutHandler) Create(c echo.Context) error {
	user, ok := deliverycontext.GetUser(c)
	if !ok {
		flash.Warning(c, "Faça login para finalizar a compra.")

		return redirect(c, middleware.LoginPath+"?next=/carrinho/")
	}

	output, err := h.checkoutUC.CreateCheckout(c.Request().Context(), &usecase.CreateCheckoutInput{
		UserID: user.ID,
		Email:  user.Email,
	})
	if err != nil {
		switch {
		case errors.Is(err, domainerrors.ErrEmptyCart):
			flash.Warning(c, domainerrors.ErrEmptyCart.Message())
		case errors.Is(err, domainerrors.ErrProductNotFound):
			flash.Error(c, "Um dos produtos do carrinho não está mais disponível.")
		case errors.Is(err, domainerrors.ErrPaymentProcessor):
			h.logger.Error("Checkout creation failed", slog.Any("error", err))
			flash.Error(c, "Não foi possível iniciar o pagamento. Tente novamente em instantes.")
		default:
			return errors.WithStack(err)
		}

		return redirect(c, "/carrinho/")
	}

	return redirect(c, output.RedirectURL)
}

// Success is where the processor returns the buyer after paying.
func (h *CheckoutHandler) Success(c echo.Context) error {
	flash.Success(c, "Pagamento recebido! Você receberá a confirmação do pedido em breve.")

	return render(c, http.StatusOK, "sucesso", "Pagamento concluído", nil)
}

// Cancel is where the processor returns the buyer after giving up.
func (h *CheckoutHandler) Cancel(c echo.Context) error {
	flash.Warning(c, "Pagamento cancelado. Seus itens continuam no carrinho.")

	return render(c, http.StatusOK, "cancelado", "Pagamento cancelado", nil)
}

// Webhook receives processor notifications. 4xx answers are terminal for the processor,
// 5xx answers make it retry; 200 is sent only after the orders are committed.
func (h *CheckoutHandler) Webhook(c echo.Context) error {
	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		h.observe("unknown", "rejected")

		return response.BadRequest(c, domainerrors.ErrInvalidWebhookPayload.ErrorCode(), "unreadable body")
	}

	output, err := h.checkoutUC.HandleWebhook(c.Request().Context(), &usecase.WebhookInput{
		Payload:   payload,
		Signature: c.Request().Header.Get(StripeSignatureHeader),
		RequestID: deliverycontext.GetRequestID(c),
	})
	if err != nil {
		if appErr, ok := userError(err); ok {
			h.observe("unknown", "rejected")

			return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), "")
		}
		h.observe("unknown", "failed")

		return errors.WithStack(err)
	}

	outcome := "ignored"
	switch {
	case output.Duplicate:
		outcome = "duplicate"
	case output.Processed:
		outcome = "processed"
	}
	h.observe(output.EventType, outcome)
	if h.collectors != nil && output.OrdersCreated > 0 {
		h.collectors.OrdersCreated.Add(float64(output.OrdersCreated))
	}

	return response.Success(c, http.StatusOK, output, "received")
}

func (h *CheckoutHandler) observe(eventType, outcome string) {
	if h.collectors != nil {
		h.collectors.WebhookEvents.WithLabelValues(eventType, outcome).Inc()
	}
}
