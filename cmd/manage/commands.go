package main

import (
	"context"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"comerciojusto/config"
	"comerciojusto/internal/delivery"
	"comerciojusto/internal/delivery/http"
	"comerciojusto/internal/delivery/http/middleware"
	"comerciojusto/internal/delivery/http/router/handler"
	"comerciojusto/internal/domain/lifecycle"
	"comerciojusto/internal/domain/service"
	"comerciojusto/internal/infra/auth"
	"comerciojusto/internal/infra/auth/google"
	"comerciojusto/internal/infra/cache"
	logs "comerciojusto/internal/infra/log"
	"comerciojusto/internal/infra/metrics"
	"comerciojusto/internal/infra/payment/stripe"
	"comerciojusto/internal/infra/persistence/postgres"
	"comerciojusto/internal/infra/pubsub"
	"comerciojusto/internal/infra/qrcode"
	"comerciojusto/internal/infra/storage"
	"comerciojusto/internal/usecase"
	"comerciojusto/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// routeLister is implemented by the HTTP delivery.
type routeLister interface {
	Routes() []*echo.Route
}

func runInitAdmin(ctx context.Context, email, name, password string) error {
	var authUC usecase.AuthUsecase

	return withApp(ctx, func() error {
		admin, err := authUC.PromoteAdmin(ctx, &usecase.PromoteAdminInput{
			Email:    email,
			Name:     name,
			Password: password,
		})
		if err != nil {
			return errors.Wrap(err, "failed to promote administrator")
		}

		fmt.Printf("Administrator ready: %s (%s)\n", admin.Email, admin.ID)

		return nil
	}, &authUC)
}

func runResetPassword(ctx context.Context, email, password string) error {
	var authUC usecase.AuthUsecase

	return withApp(ctx, func() error {
		if err := authUC.ResetPassword(ctx, email, password); err != nil {
			return errors.Wrap(err, "failed to reset password")
		}

		fmt.Printf("Password updated for %s\n", email)

		return nil
	}, &authUC)
}

func runClearCache(ctx context.Context) error {
	var c service.Cache

	return withApp(ctx, func() error {
		for _, pattern := range impl.CachePatterns() {
			if err := c.DeletePattern(ctx, pattern); err != nil {
				return errors.Wrapf(err, "failed to clear %s", pattern)
			}
			fmt.Printf("Cleared %s\n", pattern)
		}

		return nil
	}, &c)
}

func runListRoutes(ctx context.Context, out io.Writer) error {
	var server delivery.Delivery

	return withApp(ctx, func() error {
		lister, ok := server.(routeLister)
		if !ok {
			return errors.New("HTTP delivery does not expose its routes")
		}

		return printRoutes(out, lister.Routes())
	}, &server)
}

func printRoutes(out io.Writer, routes []*echo.Route) error {
	sort.Slice(routes, func(i, j int) bool {
		if routes[i].Path != routes[j].Path {
			return routes[i].Path < routes[j].Path
		}

		return routes[i].Method < routes[j].Method
	})

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "METHOD\tPATH\tHANDLER")
	for _, route := range routes {
		// Group middleware registers catch-all routes that are not pages
		if route.Method == echo.RouteNotFound {
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", route.Method, route.Path, route.Name)
	}

	return errors.WithStack(w.Flush())
}

// withApp builds the application graph, starts its lifecycle hooks, runs fn and stops it.
func withApp(ctx context.Context, fn func() error, targets ...any) error {
	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			func() context.Context { return ctx },
			postgres.New,
			metrics.New,
		),
		cache.Module,
		storage.Module,
		pubsub.Module,
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewUserRepository,
			postgres.NewAuthRepository,
			postgres.NewProfileRepository,
			postgres.NewProductRepository,
			postgres.NewCartRepository,
			postgres.NewOrderRepository,
			postgres.NewCheckoutSessionRepository,
			postgres.NewCertificationRepository,
			postgres.NewReviewRepository,
			postgres.NewMessageRepository,
		),
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			google.NewAuthService,
			qrcode.NewQRCodeService,
			stripe.NewClient,
		),
		fx.Provide(
			impl.NewAuthService,
			impl.NewCartService,
			impl.NewCatalogService,
			impl.NewCertificationService,
			impl.NewCheckoutService,
			impl.NewMessageService,
			impl.NewProfileService,
		),
		fx.Provide(
			middleware.NewSessionMiddleware,
			handler.NewCatalogHandler,
			handler.NewAuthHandler,
			handler.NewCartHandler,
			handler.NewCheckoutHandler,
			handler.NewDashboardHandler,
			handler.NewProfileHandler,
			handler.NewAdminHandler,
			handler.NewMessageHandler,
			handler.NewHealthHandler,
			http.NewServer,
		),
		fx.Populate(targets...),
	)

	startCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return errors.Wrap(err, "failed to start application")
	}

	runErr := fn()

	stopCtx, stopCancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer stopCancel()
	if err := app.Stop(stopCtx); err != nil && runErr == nil {
		return errors.Wrap(err, "failed to stop application")
	}

	return runErr
}
