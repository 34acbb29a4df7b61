// Package context carries per-request values between the echo pipeline and the use cases:
// the request id, a request-scoped logger and the resolved session principal.
package context

import (
	"context"
	"log/slog"

	"comerciojusto/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	// KeyRequestID is the key for storing request ID in context.
	KeyRequestID ContextKey = "request_id"

	// KeyLogger is the key for storing request-scoped logger in context.
	KeyLogger ContextKey = "logger"

	// KeyUser holds the logged-in *entity.User in echo.Context.
	KeyUser ContextKey = "usuario"

	// KeyCartSession holds the anonymous cart session id in echo.Context.
	KeyCartSession ContextKey = "carrinho_sessao"

	// KeyCounters holds the header badge counters in echo.Context.
	KeyCounters ContextKey = "contadores"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"
)

// Counters are the badges shown in the page header.
type Counters struct {
	CartItems      int
	UnreadMessages int64
}

// GetRequestID extracts the request ID from echo.Context.
// If not found, generates a new UUID.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(KeyRequestID)).(string); ok && id != "" {
		return id
	}

	return uuid.New().String()
}

// SetRequestID sets the request ID in echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestIDFromContext returns the request ID stored in ctx, or an empty string.
func GetRequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(KeyRequestID).(string); ok {
		return id
	}

	return ""
}

// WithRequestID returns a new context with the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetLogger returns the request-scoped logger, or nil outside a request.
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok {
		return logger
	}

	return nil
}

// GetLoggerOrDefault returns the request-scoped logger or the fallback.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// SetUser stores the session principal.
func SetUser(c echo.Context, user *entity.User) {
	c.Set(string(KeyUser), user)
}

// GetUser returns the session principal, if any.
func GetUser(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get(string(KeyUser)).(*entity.User)

	return user, ok && user != nil
}

// SetCartSession stores the anonymous cart session id.
func SetCartSession(c echo.Context, sessionID string) {
	c.Set(string(KeyCartSession), sessionID)
}

// GetCartSession returns the anonymous cart session id, or an empty string.
func GetCartSession(c echo.Context) string {
	id, _ := c.Get(string(KeyCartSession)).(string)

	return id
}

// CartOwner resolves whose cart the request addresses. The zero owner means
// an anonymous visitor that has not added anything yet.
func CartOwner(c echo.Context) entity.CartOwner {
	if user, ok := GetUser(c); ok {
		return entity.UserCartOwner(user.ID)
	}

	return entity.SessionCartOwner(GetCartSession(c))
}

// SetCounters stores the header badges.
func SetCounters(c echo.Context, counters Counters) {
	c.Set(string(KeyCounters), counters)
}

// GetCounters returns the header badges; zero values when unset.
func GetCounters(c echo.Context) Counters {
	counters, _ := c.Get(string(KeyCounters)).(Counters)

	return counters
}
