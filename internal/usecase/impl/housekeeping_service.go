package impl

import (
	"context"
	"log/slog"
	"time"

	"comerciojusto/config"
	deliverycontext "comerciojusto/internal/delivery/context"
	"comerciojusto/internal/domain/repository"
	"comerciojusto/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultCheckoutSessionTTL = 24 * time.Hour
	defaultAnonymousCartTTL   = 30 * 24 * time.Hour
)

// housekeepingService implements the HousekeepingUsecase interface.
type housekeepingService struct {
	cartRepo           repository.CartRepository
	sessionRepo        repository.CheckoutSessionRepository
	checkoutSessionTTL time.Duration
	anonymousCartTTL   time.Duration
	now                func() time.Time
	logger             *slog.Logger
}

// HousekeepingServiceParams holds dependencies for HousekeepingService, injected by Fx.
type HousekeepingServiceParams struct {
	fx.In

	CartRepo    repository.CartRepository
	SessionRepo repository.CheckoutSessionRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewHousekeepingService is the constructor for housekeepingService.
func NewHousekeepingService(params HousekeepingServiceParams) usecase.HousekeepingUsecase {
	srv := &housekeepingService{
		cartRepo:           params.CartRepo,
		sessionRepo:        params.SessionRepo,
		checkoutSessionTTL: defaultCheckoutSessionTTL,
		anonymousCartTTL:   defaultAnonymousCartTTL,
		now:                time.Now,
		logger:             params.Logger,
	}
	if hk := params.Config.Housekeeping; hk != nil {
		if hk.CheckoutSessionTTL > 0 {
			srv.checkoutSessionTTL = hk.CheckoutSessionTTL
		}
		if hk.AnonymousCartTTL > 0 {
			srv.anonymousCartTTL = hk.AnonymousCartTTL
		}
	}

	return srv
}

// Run expires stale checkout snapshots and purges idle anonymous carts.
func (srv *housekeepingService) Run(ctx context.Context) (*usecase.HousekeepingOutput, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
	now := srv.now()

	expired, err := srv.sessionRepo.ExpireOpen(ctx, now.Add(-srv.checkoutSessionTTL))
	if err != nil {
		return nil, errors.Wrap(err, "failed to expire checkout sessions")
	}

	purged, err := srv.cartRepo.DeleteIdleAnonymous(ctx, now.Add(-srv.anonymousCartTTL))
	if err != nil {
		return nil, errors.Wrap(err, "failed to purge anonymous carts")
	}

	logger.Info("Housekeeping finished", slog.Int64("expiredCheckoutSessions", expired), slog.Int64("purgedCarts", purged))

	return &usecase.HousekeepingOutput{ExpiredCheckoutSessions: expired, PurgedCarts: purged}, nil
}
