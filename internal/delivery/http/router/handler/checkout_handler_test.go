package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"comerciojusto/internal/delivery/http/flash"
	"comerciojusto/internal/delivery/http/middleware"
	"comerciojusto/internal/delivery/http/response"
	domainerrors "comerciojusto/internal/domain/errors"
	"comerciojusto/internal/domain/entity"
	"comerciojusto/internal/infra/metrics"
	mocks "comerciojusto/internal/mocks/usecase"
	"comerciojusto/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCheckoutHandler(t *testing.T) (*CheckoutHandler, *mocks.MockCheckoutUsecase, *metrics.Collectors) {
	checkoutUC := mocks.NewMockCheckoutUsecase(t)
	collectors := metrics.New()

	return NewCheckoutHandler(CheckoutHandlerParams{
		CheckoutUC: checkoutUC,
		Collectors: collectors,
		Logger:     testLogger,
	}), checkoutUC, collectors
}

func newWebhookContext(payload, signature string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/webhook/stripe/", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if signature != "" {
		req.Header.Set(StripeSignatureHeader, signature)
	}
	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec), rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()

	var envelope response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))

	return envelope
}

func TestCheckoutHandler_Create(t *testing.T) {
	t.Run("redirects to the processor", func(t *testing.T) {
		h, checkoutUC, _ := newCheckoutHandler(t)
		c, rec := newTestContext(t, http.MethodPost, "/pagamento/", nil)
		user := loginAs(c, &entity.User{ID: uuid.New(), Email: "ana@exemplo.com"})

		checkoutUC.EXPECT().
			CreateCheckout(mock.Anything, &usecase.CreateCheckoutInput{UserID: user.ID, Email: "ana@exemplo.com"}).
			Return(&usecase.CreateCheckoutOutput{RedirectURL: "https://checkout.stripe.com/c/pay/cs_test_1"}, nil)

		require.NoError(t, h.Create(c))
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "https://checkout.stripe.com/c/pay/cs_test_1", rec.Header().Get("Location"))
	})

	t.Run("empty cart goes back with a warning", func(t *testing.T) {
		h, checkoutUC, _ := newCheckoutHandler(t)
		c, rec := newTestContext(t, http.MethodPost, "/pagamento/", nil)
		loginAs(c, &entity.User{ID: uuid.New()})

		checkoutUC.EXPECT().CreateCheckout(mock.Anything, mock.Anything).
			Return(nil, errors.WithStack(domainerrors.ErrEmptyCart))

		require.NoError(t, h.Create(c))
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/carrinho/", rec.Header().Get("Location"))
		assert.True(t, hasFlashCookie(rec))

		msgs := flash.Pop(c)
		require.Len(t, msgs, 1)
		assert.Equal(t, flash.LevelWarning, msgs[0].Level)
		assert.Equal(t, domainerrors.ErrEmptyCart.Message(), msgs[0].Text)
	})

	t.Run("processor failure goes back with an error", func(t *testing.T) {
		h, checkoutUC, _ := newCheckoutHandler(t)
		c, rec := newTestContext(t, http.MethodPost, "/pagamento/", nil)
		loginAs(c, &entity.User{ID: uuid.New()})

		checkoutUC.EXPECT().CreateCheckout(mock.Anything, mock.Anything).
			Return(nil, domainerrors.ErrPaymentProcessor.WrapMessage("timeout"))

		require.NoError(t, h.Create(c))
		assert.Equal(t, "/carrinho/", rec.Header().Get("Location"))

		msgs := flash.Pop(c)
		require.Len(t, msgs, 1)
		assert.Equal(t, flash.LevelError, msgs[0].Level)
	})

	t.Run("anonymous visitor is sent to login", func(t *testing.T) {
		h, _, _ := newCheckoutHandler(t)
		c, rec := newTestContext(t, http.MethodPost, "/pagamento/", nil)

		require.NoError(t, h.Create(c))
		assert.Equal(t, middleware.LoginPath+"?next=/carrinho/", rec.Header().Get("Location"))
	})
}

func TestCheckoutHandler_Webhook(t *testing.T) {
	payload := `{"id":"evt_1","type":"checkout.session.completed"}`

	t.Run("bad signature is a 400", func(t *testing.T) {
		h, checkoutUC, collectors := newCheckoutHandler(t)
		c, rec := newWebhookContext(payload, "t=1,v1=deadbeef")

		checkoutUC.EXPECT().
			HandleWebhook(mock.Anything, mock.MatchedBy(func(in *usecase.WebhookInput) bool {
				return string(in.Payload) == payload && in.Signature == "t=1,v1=deadbeef"
			})).
			Return(nil, domainerrors.ErrInvalidWebhookSignature.WrapMessage("signature mismatch"))

		require.NoError(t, h.Webhook(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		envelope := decodeEnvelope(t, rec)
		assert.False(t, envelope.Success)
		require.NotNil(t, envelope.Error)
		assert.Equal(t, domainerrors.ErrInvalidWebhookSignature.ErrorCode(), envelope.Error.Code)
		assert.InDelta(t, 1, testutil.ToFloat64(collectors.WebhookEvents.WithLabelValues("unknown", "rejected")), 0)
	})

	t.Run("repository failure is a 5xx", func(t *testing.T) {
		h, checkoutUC, collectors := newCheckoutHandler(t)
		c, rec := newWebhookContext(payload, "t=1,v1=ok")

		checkoutUC.EXPECT().HandleWebhook(mock.Anything, mock.Anything).
			Return(nil, errors.Wrap(errors.New("connection reset"), "failed to create orders"))

		err := h.Webhook(c)
		require.Error(t, err)
		_, isUserError := userError(err)
		assert.False(t, isUserError)

		middleware.NewErrorMiddleware(testLogger).HandleHTTPError(err, c)
		assert.GreaterOrEqual(t, rec.Code, http.StatusInternalServerError)
		assert.InDelta(t, 1, testutil.ToFloat64(collectors.WebhookEvents.WithLabelValues("unknown", "failed")), 0)
	})

	t.Run("duplicate delivery is a 200", func(t *testing.T) {
		h, checkoutUC, collectors := newCheckoutHandler(t)
		c, rec := newWebhookContext(payload, "t=1,v1=ok")

		checkoutUC.EXPECT().HandleWebhook(mock.Anything, mock.Anything).Return(&usecase.WebhookOutput{
			EventType: "checkout.session.completed",
			Duplicate: true,
		}, nil)

		require.NoError(t, h.Webhook(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, decodeEnvelope(t, rec).Success)
		assert.InDelta(t, 1, testutil.ToFloat64(collectors.WebhookEvents.WithLabelValues("checkout.session.completed", "duplicate")), 0)
		assert.Zero(t, testutil.ToFloat64(collectors.OrdersCreated))
	})

	t.Run("processed event counts the orders", func(t *testing.T) {
		h, checkoutUC, collectors := newCheckoutHandler(t)
		c, rec := newWebhookContext(payload, "t=1,v1=ok")

		checkoutUC.EXPECT().HandleWebhook(mock.Anything, mock.Anything).Return(&usecase.WebhookOutput{
			EventType:     "checkout.session.completed",
			Processed:     true,
			OrdersCreated: 2,
		}, nil)

		require.NoError(t, h.Webhook(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.InDelta(t, 2, testutil.ToFloat64(collectors.OrdersCreated), 0)
	})
}
