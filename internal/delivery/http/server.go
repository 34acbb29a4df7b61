// Package http serves the storefront over HTTP.
package http

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"

	"comerciojusto/config"
	"comerciojusto/internal/delivery"
	httpmiddleware "comerciojusto/internal/delivery/http/middleware"
	"comerciojusto/internal/delivery/http/router"
	"comerciojusto/internal/delivery/http/validator"
	"comerciojusto/internal/delivery/http/view"
	"comerciojusto/internal/delivery/middleware"
	"comerciojusto/internal/domain/lifecycle"
	"comerciojusto/internal/errors"
	"comerciojusto/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	slogecho "github.com/samber/slog-echo"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

// CSRF form field and header, checked on every unsafe request of the site.
const (
	CSRFFormField  = "csrfmiddlewaretoken"
	CSRFHeader     = "X-CSRF-Token"
	CSRFCookieName = "csrftoken"
)

// csrfExempt are posted by third parties that cannot carry our token.
// The Google button brings its own double-submit cookie; the webhook is signed.
var csrfExempt = []string{"/webhook/", "/login/google/"}

type httpServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	Collectors   *metrics.Collectors `optional:"true"`
	RouterParams router.RouterParams
}

func NewServer(params ServerParams) (delivery.Delivery, error) {
	renderer, err := view.NewRenderer()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load templates")
	}

	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.Server.ReadTimeout = params.Cfg.HTTP.Timeouts.ReadTimeout
	echoServer.Server.ReadHeaderTimeout = params.Cfg.HTTP.Timeouts.ReadHeaderTimeout
	echoServer.Server.WriteTimeout = params.Cfg.HTTP.Timeouts.WriteTimeout
	echoServer.Server.IdleTimeout = params.Cfg.HTTP.Timeouts.IdleTimeout

	// Set up middleware in correct order
	// 1. Recover middleware first (to catch panics early)
	echoServer.Use(echomiddleware.Recover())

	// 2. Request ID middleware (must be before logger to include in logs)
	requestIDMiddleware := middleware.NewRequestIDMiddleware(params.Logger)
	echoServer.Use(requestIDMiddleware.Process)

	// 3. Access log
	echoServer.Use(slogecho.NewWithConfig(params.Logger, slogecho.Config{
		DefaultLevel:     slog.LevelInfo,
		ClientErrorLevel: slog.LevelWarn,
		ServerErrorLevel: slog.LevelError,
		WithRequestID:    true,
		Filters:          []slogecho.Filter{slogecho.IgnorePath("/health", "/metrics")},
	}))

	// 4. Request metrics
	echoServer.Use(middleware.NewMetricsMiddleware(params.Collectors).Handle)

	// 5. CORS middleware
	echoServer.Use(echomiddleware.CORS())

	// 6. Request body size limit
	echoServer.Use(echomiddleware.BodyLimit(params.Cfg.HTTP.MaxRequestBodySize))

	// 7. CSRF for the site forms
	echoServer.Use(echomiddleware.CSRFWithConfig(echomiddleware.CSRFConfig{
		Skipper:        skipCSRF,
		TokenLookup:    "form:" + CSRFFormField + ",header:" + CSRFHeader,
		CookieName:     CSRFCookieName,
		CookiePath:     "/",
		CookieDomain:   params.Cfg.HTTP.Cookie.Domain,
		CookieSecure:   params.Cfg.HTTP.Cookie.Secure,
		CookieHTTPOnly: true,
		CookieSameSite: http.SameSiteLaxMode,
	}))

	// Set up centralized error handler
	errorMiddleware := httpmiddleware.NewErrorMiddleware(params.Logger)
	echoServer.HTTPErrorHandler = errorMiddleware.HandleHTTPError

	echoServer.Renderer = renderer
	echoServer.Validator = validator.New()

	r := router.NewRouter(params.RouterParams)
	r.RegisterRoutes(echoServer)

	srv := &httpServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: echoServer,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

func (s *httpServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting HTTP server", slog.String("host_port", hostPort))
	h2Server := &http2.Server{
		IdleTimeout: s.cfg.HTTP.Timeouts.IdleTimeout,
	}
	if err := s.server.StartH2CServer(hostPort, h2Server); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *httpServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}

// Routes lists the registered routes, for the management command.
func (s *httpServer) Routes() []*echo.Route {
	return s.server.Routes()
}

func skipCSRF(c echo.Context) bool {
	path := c.Request().URL.Path
	for _, prefix := range csrfExempt {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}

	return false
}
