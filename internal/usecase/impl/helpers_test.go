package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"comerciojusto/config"
	"comerciojusto/internal/domain/entity"
	"comerciojusto/internal/domain/repository"
	mockRepo "comerciojusto/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

const testBaseURL = "https://loja.example.com"

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Auth:         &config.AuthConfig{BcryptCost: 4, MinPasswordLength: 6},
		Cache:        &config.CacheConfig{UserTTL: 300 * time.Second, ProfileTTL: 600 * time.Second, CartCountTTL: 300 * time.Second},
		Payment:      &config.PaymentConfig{Currency: "brl"},
		Storage:      &config.StorageConfig{MaxUploadBytes: 5 * 1024 * 1024},
		Housekeeping: &config.HousekeepingConfig{CheckoutSessionTTL: 24 * time.Hour, AnonymousCartTTL: 72 * time.Hour},
	}
	cfg.HTTP.BaseURL = testBaseURL

	return cfg
}

// expectTx runs the transaction body against factory and returns its error.
func expectTx(txManager *mockRepo.MockTransactionManager, factory *mockRepo.MockRepositoryFactory) *mockRepo.MockTransactionManager_Execute_Call {
	return txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func newTestProduct(name, price string) *entity.Product {
	return &entity.Product{
		ID:        uuid.New(),
		ProfileID: uuid.New(),
		Name:      name,
		Price:     decimal.RequireFromString(price),
		Active:    true,
	}
}

// newTestSeller returns a producer account with its profile.
func newTestSeller() (*entity.User, *entity.Profile) {
	user := &entity.User{ID: uuid.New(), Email: "sitio@example.com", Name: "Sítio Boa Terra"}
	profile := &entity.Profile{ID: uuid.New(), UserID: user.ID, Kind: entity.ProfileKindProducer}
	user.Profile = profile

	return user, profile
}

func newTestAdmin() *entity.User {
	return &entity.User{ID: uuid.New(), Email: "admin@example.com", IsSuperuser: true}
}
