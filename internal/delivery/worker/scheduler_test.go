package worker

import (
	"io"
	"log/slog"
	"testing"

	"comerciojusto/config"
	"comerciojusto/internal/delivery/worker/handler"
	mocks "comerciojusto/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newTestScheduler(t *testing.T, housekeeping *config.HousekeepingConfig) (*scheduler, error) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	job := handler.NewHousekeepingJob(handler.HousekeepingJobParams{
		HousekeepingUC: mocks.NewMockHousekeepingUsecase(t),
		Logger:         logger,
	})

	d, err := NewScheduler(SchedulerParams{
		Lc:              fxtest.NewLifecycle(t),
		Cfg:             &config.Config{Housekeeping: housekeeping},
		Logger:          logger,
		HousekeepingJob: job,
	})
	if err != nil {
		return nil, err
	}

	return d.(*scheduler), nil
}

func TestNewScheduler(t *testing.T) {
	t.Run("default schedule", func(t *testing.T) {
		s, err := newTestScheduler(t, &config.HousekeepingConfig{Enabled: true})
		require.NoError(t, err)
		assert.Len(t, s.cron.Entries(), 1)
	})

	t.Run("custom schedule", func(t *testing.T) {
		s, err := newTestScheduler(t, &config.HousekeepingConfig{Enabled: true, Schedule: "*/5 * * * *"})
		require.NoError(t, err)
		assert.Len(t, s.cron.Entries(), 1)
	})

	t.Run("invalid schedule", func(t *testing.T) {
		_, err := newTestScheduler(t, &config.HousekeepingConfig{Enabled: true, Schedule: "sometimes"})
		assert.ErrorContains(t, err, "invalid housekeeping schedule")
	})

	t.Run("disabled", func(t *testing.T) {
		s, err := newTestScheduler(t, nil)
		require.NoError(t, err)
		assert.Empty(t, s.cron.Entries())
		assert.NoError(t, s.Serve(t.Context()))
	})
}

func TestScheduler_StartStop(t *testing.T) {
	s, err := newTestScheduler(t, &config.HousekeepingConfig{Enabled: true, Schedule: "@every 1h"})
	require.NoError(t, err)

	require.NoError(t, s.Serve(t.Context()))
	assert.NoError(t, s.stop(t.Context()))
}
