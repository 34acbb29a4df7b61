package usecase

import "context"

// HousekeepingOutput reports what one cleanup pass removed.
type HousekeepingOutput struct {
	ExpiredCheckoutSessions int64
	PurgedCarts             int64
}

// HousekeepingUsecase runs periodic cleanup.
type HousekeepingUsecase interface {
	Run(ctx context.Context) (*HousekeepingOutput, error)
}
