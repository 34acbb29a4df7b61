package handler

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"comerciojusto/config"
	"comerciojusto/internal/domain/entity"
	"comerciojusto/internal/domain/service"
	"comerciojusto/internal/infra/metrics"
	mocks "comerciojusto/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func newPushHandler(t *testing.T, provider string) (*PushHandler, *mocks.MockOrderRepository, *metrics.Collectors) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: provider}}
	cfg.Env.Env = config.EnvDevelop

	orderRepo := mocks.NewMockOrderRepository(t)
	collectors := metrics.New()

	return NewPushHandler(PushHandlerParams{
		Config:     cfg,
		Logger:     testLogger,
		OrderRepo:  orderRepo,
		Collectors: collectors,
	}), orderRepo, collectors
}

func pushBody(t *testing.T, eventType string, event any) string {
	t.Helper()

	raw, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(raw)
	msg.Message.MessageID = "1"
	msg.Message.Attributes = map[string]string{"event_type": eventType, "request_id": "req-1"}
	msg.Subscription = "projects/p/subscriptions/orders"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func doPush(t *testing.T, h *PushHandler, body string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.HandlePush(e.NewContext(req, rec)))

	return rec
}

func outcome(c *metrics.Collectors, name string) float64 {
	return testutil.ToFloat64(c.OrderEvents.WithLabelValues(name))
}

func TestPushHandler_HandlePush(t *testing.T) {
	orderA, orderB := uuid.New(), uuid.New()
	event := service.OrderConfirmedEvent{
		CheckoutSessionID: "cs_test_1",
		BuyerID:           uuid.NewString(),
		OrderIDs:          []string{orderA.String(), orderB.String()},
		AmountTotal:       4590,
		Currency:          "brl",
	}

	t.Run("reconciled", func(t *testing.T) {
		h, orderRepo, collectors := newPushHandler(t, "local")
		orderRepo.EXPECT().ListByCheckoutSession(mock.Anything, "cs_test_1").Return([]*entity.Order{
			{ID: orderA, Items: []*entity.OrderItem{{Quantity: 2}}},
			{ID: orderB, Items: []*entity.OrderItem{{Quantity: 1}}},
		}, nil)

		rec := doPush(t, h, pushBody(t, EventTypeOrderConfirmed, event))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.InDelta(t, 1, outcome(collectors, "processed"), 0)
	})

	t.Run("missing order is dropped", func(t *testing.T) {
		h, orderRepo, collectors := newPushHandler(t, "local")
		orderRepo.EXPECT().ListByCheckoutSession(mock.Anything, "cs_test_1").Return([]*entity.Order{{ID: orderA}}, nil)

		rec := doPush(t, h, pushBody(t, EventTypeOrderConfirmed, event))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.InDelta(t, 1, outcome(collectors, "rejected"), 0)
	})

	t.Run("repository failure is retried", func(t *testing.T) {
		h, orderRepo, collectors := newPushHandler(t, "local")
		orderRepo.EXPECT().ListByCheckoutSession(mock.Anything, "cs_test_1").Return(nil, errors.New("connection refused"))

		rec := doPush(t, h, pushBody(t, EventTypeOrderConfirmed, event))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.InDelta(t, 1, outcome(collectors, "retry"), 0)
	})

	t.Run("other event types are skipped", func(t *testing.T) {
		h, _, collectors := newPushHandler(t, "local")

		rec := doPush(t, h, pushBody(t, "product.updated", event))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.InDelta(t, 1, outcome(collectors, "ignored"), 0)
	})

	t.Run("event without session is rejected", func(t *testing.T) {
		h, _, collectors := newPushHandler(t, "local")

		rec := doPush(t, h, pushBody(t, EventTypeOrderConfirmed, service.OrderConfirmedEvent{}))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.InDelta(t, 1, outcome(collectors, "rejected"), 0)
	})

	t.Run("malformed envelope", func(t *testing.T) {
		h, _, collectors := newPushHandler(t, "local")

		rec := doPush(t, h, `{"message":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.InDelta(t, 1, outcome(collectors, "malformed"), 0)
	})

	t.Run("data is not base64", func(t *testing.T) {
		h, _, collectors := newPushHandler(t, "local")

		rec := doPush(t, h, `{"message":{"data":"%%%","attributes":{"event_type":"order.confirmed"}}}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.InDelta(t, 1, outcome(collectors, "malformed"), 0)
	})
}

func TestPushHandler_VerifiesTokenOnGooglePubSub(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: "google"}}
	cfg.Env.Env = "production"
	collectors := metrics.New()

	h := NewPushHandler(PushHandlerParams{
		Config:     cfg,
		Logger:     testLogger,
		OrderRepo:  mocks.NewMockOrderRepository(t),
		Collectors: collectors,
	})
	require.True(t, h.verifyPushAuth)

	rec := doPush(t, h, `{}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.InDelta(t, 1, outcome(collectors, "unauthorized"), 0)
}

func TestVerifyPubSubToken_RejectsMalformedHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/push", nil)
	assert.EqualError(t, verifyPubSubToken(req), "missing authorization header")

	req.Header.Set("Authorization", "Basic abc")
	assert.EqualError(t, verifyPubSubToken(req), "invalid authorization header format")
}

func TestPushHandler_ExtractRequestID(t *testing.T) {
	h, _, _ := newPushHandler(t, "local")
	ctx := t.Context()

	var msg PubSubMessage
	msg.Message.Attributes = map[string]string{"request_id": "from-attr"}
	assert.Equal(t, "from-attr", h.extractRequestID(ctx, &msg, &service.OrderConfirmedEvent{RequestID: "from-payload"}))

	msg.Message.Attributes = nil
	assert.Equal(t, "from-payload", h.extractRequestID(ctx, &msg, &service.OrderConfirmedEvent{RequestID: "from-payload"}))

	generated := h.extractRequestID(ctx, &msg, &service.OrderConfirmedEvent{})
	_, err := uuid.Parse(generated)
	assert.NoError(t, err)
}
