package stripe

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"comerciojusto/config"
	domainerrors "comerciojusto/internal/domain/errors"
	"comerciojusto/internal/domain/service"
	"comerciojusto/internal/infra/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "whsec_test"

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()

	cfg := &config.Config{Payment: &config.PaymentConfig{
		APIKey:           "sk_test_123",
		WebhookSecret:    testSecret,
		APIBaseURL:       baseURL,
		Timeout:          time.Second,
		WebhookTolerance: 5 * time.Minute,
		Breaker:          config.BreakerConfig{ConsecutiveFailures: 2, Timeout: time.Minute},
	}}
	gw, err := NewClient(cfg, metrics.New(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	return gw.(*Client)
}

func checkoutRequest() *service.CheckoutRequest {
	return &service.CheckoutRequest{
		Currency: "brl",
		LineItems: []service.CheckoutLineItem{
			{Name: "Alface", Description: strings.Repeat("x", 150), UnitAmount: 350, Quantity: 2},
			{Name: "Tomate", UnitAmount: 1299, Quantity: 1},
		},
		SuccessURL:    "http://localhost:8000/sucesso/",
		CancelURL:     "http://localhost:8000/cancelado/",
		CustomerEmail: "buyer@example.com",
		Metadata:      map[string]string{"user_id": "42"},
	}
}

func TestClient_CreateCheckoutSession(t *testing.T) {
	var form url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/checkout/sessions", r.URL.Path)
		assert.Equal(t, "Bearer sk_test_123", r.Header.Get("Authorization"))
		require.NoError(t, r.ParseForm())
		form = r.PostForm
		_, _ = io.WriteString(w, `{"id":"cs_test_1","url":"https://checkout.stripe.com/c/pay/cs_test_1","amount_total":1999,"currency":"brl"}`)
	}))
	defer srv.Close()

	session, err := newTestClient(t, srv.URL).CreateCheckoutSession(context.Background(), checkoutRequest())
	require.NoError(t, err)

	assert.Equal(t, "cs_test_1", session.ID)
	assert.Equal(t, int64(1999), session.AmountTotal)
	assert.Equal(t, "payment", form.Get("mode"))
	assert.Equal(t, "350", form.Get("line_items[0][price_data][unit_amount]"))
	assert.Equal(t, "2", form.Get("line_items[0][quantity]"))
	assert.Len(t, form.Get("line_items[0][price_data][product_data][description]"), 100)
	assert.Empty(t, form.Get("line_items[1][price_data][product_data][description]"))
	assert.Equal(t, "42", form.Get("metadata[user_id]"))
	assert.Equal(t, "buyer@example.com", form.Get("customer_email"))
}

func TestClient_CreateCheckoutSession_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"error":{"type":"invalid_request_error","message":"Invalid currency"}}`)
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	for range 3 {
		_, err := client.CreateCheckoutSession(context.Background(), checkoutRequest())
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrPaymentProcessor)
		assert.Contains(t, err.Error(), "Invalid currency")
	}

	// Client errors do not open the breaker.
	assert.InDelta(t, 3, testutil.ToFloat64(client.metrics.PaymentCalls.WithLabelValues("create_checkout_session", "error")), 0)
}

func TestClient_BreakerOpensOnServerErrors(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	for range 4 {
		_, err := client.CreateCheckoutSession(context.Background(), checkoutRequest())
		require.ErrorIs(t, err, domainerrors.ErrPaymentProcessor)
	}

	assert.Equal(t, 2, calls)
	assert.InDelta(t, 2, testutil.ToFloat64(client.metrics.PaymentCalls.WithLabelValues("create_checkout_session", "breaker_open")), 0)
}

func TestEncodeCheckoutRequest_Truncate(t *testing.T) {
	assert.Equal(t, "ação", truncate("ação", 4))
	assert.Equal(t, "aç", truncate("ação", 2))
}
