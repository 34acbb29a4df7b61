// Package handler contains the worker's Pub/Sub push and cron handlers.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"comerciojusto/config"
	deliverycontext "comerciojusto/internal/delivery/context"
	"comerciojusto/internal/domain/repository"
	"comerciojusto/internal/domain/service"
	"comerciojusto/internal/infra/metrics"
	"comerciojusto/internal/infra/pubsub"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// EventTypeOrderConfirmed is the only event type the worker consumes.
const EventTypeOrderConfirmed = "order.confirmed"

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

func newRetryableError(err error) error {
	return &retryableError{err: err}
}

func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// PushHandler consumes order.confirmed events and reconciles them with the stored orders.
type PushHandler struct {
	verifyPushAuth bool
	logger         *slog.Logger
	orderRepo      repository.OrderRepository
	collectors     *metrics.Collectors
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config     *config.Config
	Logger     *slog.Logger
	OrderRepo  repository.OrderRepository
	Collectors *metrics.Collectors `optional:"true"`
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Only real Pub/Sub pushes carry an OIDC token
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == pubsub.ProviderGoogle &&
		params.Config.Env.Env != config.EnvDevelop

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		logger:         params.Logger,
		orderRepo:      params.OrderRepo,
		collectors:     params.Collectors,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))
			h.observe("unauthorized")

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))
		h.observe("malformed")

		return c.NoContent(http.StatusBadRequest)
	}

	if eventType := pushMsg.Message.Attributes["event_type"]; eventType != "" && eventType != EventTypeOrderConfirmed {
		h.logger.Debug("[Worker] Skipping unknown event type", slog.String("event_type", eventType))
		h.observe("ignored")

		return c.NoContent(http.StatusOK)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))
		h.observe("malformed")

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.OrderConfirmedEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse order event", slog.Any("error", err))
		h.observe("malformed")

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := h.extractRequestID(ctx, &pushMsg, &event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing order event",
		slog.String("checkout_session_id", event.CheckoutSessionID),
		slog.String("buyer_id", event.BuyerID),
		slog.Int("order_count", len(event.OrderIDs)),
	)

	if err := h.reconcile(ctx, reqLogger, &event); err != nil {
		reqLogger.Error("[Worker] Failed to process order event",
			slog.String("checkout_session_id", event.CheckoutSessionID),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		// 503 makes Pub/Sub redeliver; 200 drops a message that can never succeed
		if isRetryableError(err) {
			h.observe("retry")

			return c.NoContent(http.StatusServiceUnavailable)
		}
		h.observe("rejected")

		return c.NoContent(http.StatusOK)
	}

	h.observe("processed")

	return c.NoContent(http.StatusOK)
}

// reconcile checks that every order the event announces was committed.
func (h *PushHandler) reconcile(ctx context.Context, logger *slog.Logger, event *service.OrderConfirmedEvent) error {
	if event.CheckoutSessionID == "" {
		return errors.New("event without checkout session id")
	}

	orders, err := h.orderRepo.ListByCheckoutSession(ctx, event.CheckoutSessionID)
	if err != nil {
		return newRetryableError(errors.WithStack(err))
	}

	stored := make(map[uuid.UUID]bool, len(orders))
	items := 0
	for _, order := range orders {
		stored[order.ID] = true
		for _, item := range order.Items {
			items += item.Quantity
		}
	}

	var missing []string
	for _, raw := range event.OrderIDs {
		id, err := uuid.Parse(raw)
		if err != nil || !stored[id] {
			missing = append(missing, raw)
		}
	}

	if len(missing) > 0 {
		logger.Warn("[Worker] Order event announces orders that are not stored",
			slog.String("checkout_session_id", event.CheckoutSessionID),
			slog.String("missing", strings.Join(missing, ",")),
		)

		return errors.Errorf("%d announced orders not found", len(missing))
	}

	logger.Info("[Worker] Order event reconciled",
		slog.String("checkout_session_id", event.CheckoutSessionID),
		slog.Int("orders", len(orders)),
		slog.Int("units", items),
		slog.Int64("amount_total", event.AmountTotal),
		slog.String("currency", event.Currency),
	)

	return nil
}

// extractRequestID prefers the message attribute, then the payload, then the push request itself.
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.OrderConfirmedEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

func (h *PushHandler) observe(outcome string) {
	if h.collectors != nil {
		h.collectors.OrderEvents.WithLabelValues(outcome).Inc()
	}
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience is the push endpoint URL
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
