// Package stripe is a minimal client for Stripe hosted checkout: session creation
// over the REST API and webhook signature verification.
package stripe

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"comerciojusto/config"
	domainerrors "comerciojusto/internal/domain/errors"
	"comerciojusto/internal/domain/service"
	"comerciojusto/internal/infra/metrics"

	"github.com/pkg/errors"
	"github.com/sony/gobreaker"
)

const (
	defaultAPIBaseURL   = "https://api.stripe.com"
	checkoutSessionPath = "/v1/checkout/sessions"
	maxDescriptionLen   = 100
	maxResponseBytes    = 1 << 20
)

// Client implements service.PaymentGateway against the Stripe API.
type Client struct {
	apiKey        string
	webhookSecret string
	baseURL       string
	tolerance     time.Duration
	httpClient    *http.Client
	breaker       *gobreaker.CircuitBreaker
	metrics       *metrics.Collectors
	logger        *slog.Logger
	now           func() time.Time
}

// NewClient builds the gateway from payment configuration.
func NewClient(cfg *config.Config, collectors *metrics.Collectors, logger *slog.Logger) (service.PaymentGateway, error) {
	pc := cfg.Payment
	if pc == nil {
		return nil, errors.New("payment configuration is required")
	}

	baseURL := strings.TrimSuffix(pc.APIBaseURL, "/")
	if baseURL == "" {
		baseURL = defaultAPIBaseURL
	}

	c := &Client{
		apiKey:        pc.APIKey,
		webhookSecret: pc.WebhookSecret,
		baseURL:       baseURL,
		tolerance:     pc.WebhookTolerance,
		httpClient:    &http.Client{Timeout: pc.Timeout},
		metrics:       collectors,
		logger:        logger,
		now:           time.Now,
	}
	c.breaker = gobreaker.NewCircuitBreaker(breakerSettings(pc.Breaker, logger))

	return c, nil
}

func breakerSettings(bc config.BreakerConfig, logger *slog.Logger) gobreaker.Settings {
	failures := bc.ConsecutiveFailures
	if failures == 0 {
		failures = 5
	}

	return gobreaker.Settings{
		Name:        "stripe",
		MaxRequests: bc.MaxRequests,
		Interval:    bc.Interval,
		Timeout:     bc.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		// Card and validation errors are the caller's fault, not an outage.
		IsSuccessful: func(err error) bool {
			var apiErr *APIError

			return err == nil || (errors.As(err, &apiErr) && apiErr.StatusCode < http.StatusInternalServerError)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("Circuit breaker state changed",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	}
}

// APIError is the error envelope Stripe returns on non-2xx responses.
type APIError struct {
	StatusCode int    `json:"-"`
	Type       string `json:"type"`
	Code       string `json:"code"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	return "stripe: " + strconv.Itoa(e.StatusCode) + " " + e.Type + ": " + e.Message
}

type checkoutSessionResponse struct {
	ID          string `json:"id"`
	URL         string `json:"url"`
	AmountTotal int64  `json:"amount_total"`
	Currency    string `json:"currency"`
}

// CreateCheckoutSession posts a payment-mode checkout session with inline price data.
func (c *Client) CreateCheckoutSession(ctx context.Context, req *service.CheckoutRequest) (*service.CheckoutSession, error) {
	form := encodeCheckoutRequest(req)

	result, err := c.breaker.Execute(func() (any, error) {
		return c.post(ctx, checkoutSessionPath, form)
	})
	if err != nil {
		c.observe("create_checkout_session", err)
		c.logger.ErrorContext(ctx, "Stripe checkout session failed", slog.Any("error", err))

		return nil, domainerrors.ErrPaymentProcessor.WrapMessage(err.Error())
	}
	c.observe("create_checkout_session", nil)

	var resp checkoutSessionResponse
	if err := json.Unmarshal(result.([]byte), &resp); err != nil {
		return nil, domainerrors.ErrPaymentProcessor.WrapMessage("malformed checkout session response")
	}
	if resp.ID == "" || resp.URL == "" {
		return nil, domainerrors.ErrPaymentProcessor.WrapMessage("checkout session response without id or url")
	}

	return &service.CheckoutSession{
		ID:          resp.ID,
		URL:         resp.URL,
		AmountTotal: resp.AmountTotal,
		Currency:    resp.Currency,
	}, nil
}

func (c *Client) post(ctx context.Context, path string, form url.Values) ([]byte, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, errors.Wrap(err, "stripe request")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, errors.Wrap(err, "read stripe response")
	}

	if resp.StatusCode >= http.StatusBadRequest {
		var envelope struct {
			Error APIError `json:"error"`
		}
		_ = json.Unmarshal(body, &envelope)
		envelope.Error.StatusCode = resp.StatusCode

		return nil, &envelope.Error
	}

	return body, nil
}

func (c *Client) observe(operation string, err error) {
	if c.metrics == nil {
		return
	}
	outcome := "ok"
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		outcome = "breaker_open"
	case err != nil:
		outcome = "error"
	}
	c.metrics.PaymentCalls.WithLabelValues(operation, outcome).Inc()
}

// encodeCheckoutRequest flattens the request into Stripe's bracketed form encoding.
func encodeCheckoutRequest(req *service.CheckoutRequest) url.Values {
	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("payment_method_types[0]", "card")
	form.Set("success_url", req.SuccessURL)
	form.Set("cancel_url", req.CancelURL)
	if req.CustomerEmail != "" {
		form.Set("customer_email", req.CustomerEmail)
	}

	for i, item := range req.LineItems {
		prefix := "line_items[" + strconv.Itoa(i) + "]"
		form.Set(prefix+"[quantity]", strconv.Itoa(item.Quantity))
		form.Set(prefix+"[price_data][currency]", req.Currency)
		form.Set(prefix+"[price_data][unit_amount]", strconv.FormatInt(item.UnitAmount, 10))
		form.Set(prefix+"[price_data][product_data][name]", item.Name)
		if desc := truncate(item.Description, maxDescriptionLen); desc != "" {
			form.Set(prefix+"[price_data][product_data][description]", desc)
		}
	}

	for k, v := range req.Metadata {
		form.Set("metadata["+k+"]", v)
	}

	return form
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}

	return string(runes[:n])
}
