package impl

import (
	"context"
	"testing"
	"time"

	mockRepo "comerciojusto/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestHousekeepingService_Run(t *testing.T) {
	cartRepo := mockRepo.NewMockCartRepository(t)
	sessionRepo := mockRepo.NewMockCheckoutSessionRepository(t)
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	srv := NewHousekeepingService(HousekeepingServiceParams{
		CartRepo:    cartRepo,
		SessionRepo: sessionRepo,
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	}).(*housekeepingService)
	srv.now = func() time.Time { return now }

	sessionRepo.EXPECT().ExpireOpen(context.Background(), now.Add(-24*time.Hour)).Return(3, nil)
	cartRepo.EXPECT().DeleteIdleAnonymous(context.Background(), now.Add(-72*time.Hour)).Return(5, nil)

	out, err := srv.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), out.ExpiredCheckoutSessions)
	assert.Equal(t, int64(5), out.PurgedCarts)
}

func TestHousekeepingService_Run_DefaultsAndErrors(t *testing.T) {
	cartRepo := mockRepo.NewMockCartRepository(t)
	sessionRepo := mockRepo.NewMockCheckoutSessionRepository(t)
	cfg := newTestConfig()
	cfg.Housekeeping = nil

	srv := NewHousekeepingService(HousekeepingServiceParams{
		CartRepo:    cartRepo,
		SessionRepo: sessionRepo,
		Config:      cfg,
		Logger:      newDiscardLogger(),
	}).(*housekeepingService)
	assert.Equal(t, defaultCheckoutSessionTTL, srv.checkoutSessionTTL)
	assert.Equal(t, defaultAnonymousCartTTL, srv.anonymousCartTTL)

	sessionRepo.EXPECT().ExpireOpen(mock.Anything, mock.AnythingOfType("time.Time")).Return(0, errors.New("db down"))

	_, err := srv.Run(context.Background())
	assert.Error(t, err)
	cartRepo.AssertNotCalled(t, "DeleteIdleAnonymous", mock.Anything, mock.Anything)
}
