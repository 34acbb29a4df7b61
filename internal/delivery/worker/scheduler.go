package worker

import (
	"context"
	"log/slog"

	"comerciojusto/config"
	"comerciojusto/internal/delivery"
	"comerciojusto/internal/delivery/worker/handler"
	"comerciojusto/internal/domain/lifecycle"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

const defaultHousekeepingSchedule = "@every 15m"

type scheduler struct {
	cfg    *config.HousekeepingConfig
	logger *slog.Logger
	cron   *cron.Cron
}

// SchedulerParams holds dependencies for the cron scheduler
type SchedulerParams struct {
	fx.In

	Lc              fx.Lifecycle
	Cfg             *config.Config
	Logger          *slog.Logger
	HousekeepingJob *handler.HousekeepingJob
}

// NewScheduler registers the periodic jobs. A disabled housekeeping config yields an idle scheduler.
func NewScheduler(params SchedulerParams) (delivery.Delivery, error) {
	cfg := params.Cfg.Housekeeping
	if cfg == nil {
		cfg = &config.HousekeepingConfig{}
	}

	cronLog := &cronLogger{logger: params.Logger}
	c := cron.New(cron.WithLogger(cronLog), cron.WithChain(
		cron.Recover(cronLog),
		cron.SkipIfStillRunning(cronLog),
	))

	if cfg.Enabled {
		spec := cfg.Schedule
		if spec == "" {
			spec = defaultHousekeepingSchedule
		}
		if _, err := c.AddJob(spec, params.HousekeepingJob); err != nil {
			return nil, errors.Wrapf(err, "invalid housekeeping schedule %q", spec)
		}
	}

	s := &scheduler{
		cfg:    cfg,
		logger: params.Logger,
		cron:   c,
	}

	params.Lc.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s, nil
}

// Serve starts the scheduler; jobs run on their own goroutines.
func (s *scheduler) Serve(ctx context.Context) error {
	if !s.cfg.Enabled {
		s.logger.Info("Housekeeping disabled, scheduler idle")

		return nil
	}

	s.logger.Info("Starting scheduler", slog.Int("jobs", len(s.cron.Entries())))
	s.cron.Start()

	return nil
}

// stop waits for running jobs up to the lifecycle timeout.
func (s *scheduler) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Stopping scheduler")

	select {
	case <-s.cron.Stop().Done():
		return nil
	case <-shutdownCtx.Done():
		return errors.Wrap(shutdownCtx.Err(), "scheduler jobs still running")
	}
}

// cronLogger adapts slog to cron.Logger.
type cronLogger struct {
	logger *slog.Logger
}

func (l *cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug("[Cron] "+msg, keysAndValues...)
}

func (l *cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error("[Cron] "+msg, append(keysAndValues, slog.Any("error", err))...)
}
