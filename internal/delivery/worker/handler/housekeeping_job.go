package handler

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "comerciojusto/internal/delivery/context"
	"comerciojusto/internal/infra/metrics"
	"comerciojusto/internal/usecase"
	"comerciojusto/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// housekeepingTimeout bounds one cleanup pass so a stuck query cannot pile up runs.
const housekeepingTimeout = 5 * time.Minute

// HousekeepingJob runs the periodic cleanup. It satisfies cron.Job.
type HousekeepingJob struct {
	housekeepingUC usecase.HousekeepingUsecase
	collectors     *metrics.Collectors
	logger         *slog.Logger
}

// HousekeepingJobParams holds dependencies for the HousekeepingJob
type HousekeepingJobParams struct {
	fx.In

	HousekeepingUC usecase.HousekeepingUsecase
	Collectors     *metrics.Collectors `optional:"true"`
	Logger         *slog.Logger
}

// NewHousekeepingJob creates the cleanup job
func NewHousekeepingJob(params HousekeepingJobParams) *HousekeepingJob {
	return &HousekeepingJob{
		housekeepingUC: params.HousekeepingUC,
		collectors:     params.Collectors,
		logger:         params.Logger,
	}
}

// Run is called by the scheduler.
func (j *HousekeepingJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), housekeepingTimeout)
	defer cancel()

	if _, err := j.RunOnce(ctx); err != nil {
		j.logger.Error("[Worker] Housekeeping failed", slog.Any("error", err))
	}
}

// RunOnce performs a single pass with a fresh request id and records the rows touched.
func (j *HousekeepingJob) RunOnce(ctx context.Context) (*usecase.HousekeepingOutput, error) {
	runID := uuid.New().String()
	logger := j.logger.With(slog.String("request_id", runID))
	ctx = deliverycontext.WithRequestID(ctx, runID)
	ctx = deliverycontext.WithLogger(ctx, logger)

	started := time.Now()
	output, err := j.housekeepingUC.Run(ctx)
	if err != nil {
		return nil, err
	}
	logger.Info("[Worker] Housekeeping finished",
		slog.Int64("checkout_sessions", output.ExpiredCheckoutSessions),
		slog.Int64("anonymous_carts", output.PurgedCarts),
		slog.String("took", util.FormatDuration(time.Since(started))),
	)

	if j.collectors != nil {
		j.collectors.HousekeepingRun.WithLabelValues("checkout_sessions").Add(float64(output.ExpiredCheckoutSessions))
		j.collectors.HousekeepingRun.WithLabelValues("anonymous_carts").Add(float64(output.PurgedCarts))
	}

	return output, nil
}
