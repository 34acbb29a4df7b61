package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	deliverycontext "comerciojusto/internal/delivery/context"
	"comerciojusto/internal/delivery/http/response"
	"comerciojusto/internal/delivery/http/view"
	domainerrors "comerciojusto/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorPage is the model of the generic error template.
type ErrorPage struct {
	Code    int
	Message string
}

var httpStatusMessages = map[int]string{
	http.StatusNotFound:              "Página não encontrada",
	http.StatusMethodNotAllowed:      "Método não permitido",
	http.StatusForbidden:             "Sua sessão expirou. Recarregue a página e tente novamente.",
	http.StatusBadRequest:            "Requisição inválida",
	http.StatusRequestEntityTooLarge: "O arquivo enviado é grande demais",
}

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler.
// Pages get a redirect or the error template; the webhook and JSON callers get the JSON envelope.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			logger.Error("Request failed",
				slog.Any("error", err),
				slog.String("path", c.Request().URL.Path),
				slog.String("method", c.Request().Method),
			)
		}
		if !wantsJSON(c) && m.redirectFor(c, err, appErr) {
			return
		}
		m.respond(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message, ok := httpStatusMessages[httpErr.Code]
		if !ok {
			message = http.StatusText(httpErr.Code)
		}
		m.respond(c, httpErr.Code, "HTTP_ERROR", message, "")

		return
	}

	logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	// Internal details never reach the client.
	m.respond(c, http.StatusInternalServerError, "INTERNAL_ERROR", domainerrors.ErrInternalError.Message(), "")
}

// redirectFor turns permission failures into the redirects a browser expects.
func (m *ErrorMiddleware) redirectFor(c echo.Context, err error, appErr domainerrors.AppError) bool {
	var target string
	switch {
	case errors.Is(err, domainerrors.ErrProfileRequired):
		target = CompleteSignupURL
	case appErr.HTTPCode() == http.StatusUnauthorized:
		target = LoginPath
	case appErr.HTTPCode() == http.StatusForbidden:
		target = AccessDeniedPath
	default:
		return false
	}

	if err := c.Redirect(http.StatusSeeOther, target); err != nil {
		m.logger.Error("Failed to redirect", slog.Any("error", err))
	}

	return true
}

func (m *ErrorMiddleware) respond(c echo.Context, code int, errorCode, message, details string) {
	var err error
	switch {
	case c.Request().Method == http.MethodHead:
		err = c.NoContent(code)
	case wantsJSON(c):
		err = response.Error(c, code, errorCode, message, details)
	default:
		if details != "" && code < http.StatusInternalServerError {
			message = details
		}
		err = c.Render(code, "erro", &view.Page{Title: "Erro", Data: ErrorPage{Code: code, Message: message}})
		if err != nil {
			err = c.String(code, message)
		}
	}

	if err != nil {
		m.logger.Error("Failed to write error response", slog.Any("error", err))
	}
}

func wantsJSON(c echo.Context) bool {
	req := c.Request()

	return strings.HasPrefix(req.URL.Path, "/webhook/") ||
		strings.Contains(req.Header.Get(echo.HeaderAccept), echo.MIMEApplicationJSON)
}
