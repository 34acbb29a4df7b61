package repository

import (
	"context"
	"errors"

	"comerciojusto/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAuthNotFound is returned when an authentication method is not found.
var ErrAuthNotFound = errors.New("authentication method not found")

// AuthRepository persists the login credentials of a user.
type AuthRepository interface {
	// CreateAuthentication persists a new authentication method (email/password or social login).
	CreateAuthentication(ctx context.Context, auth *entity.Authentication) error

	// FindAuthentication retrieves an authentication method by its provider and provider-specific ID.
	FindAuthentication(ctx context.Context, provider entity.ProviderType, providerUserID string) (*entity.Authentication, error)

	// FindByUserAndProvider returns the credential of one provider for a user.
	FindByUserAndProvider(ctx context.Context, userID uuid.UUID, provider entity.ProviderType) (*entity.Authentication, error)

	// ListByUser returns every credential linked to the user.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Authentication, error)

	// UpdatePasswordHash replaces the hash of the email credential.
	UpdatePasswordHash(ctx context.Context, authID uuid.UUID, hash string) error

	// Delete removes a credential.
	Delete(ctx context.Context, authID uuid.UUID) error
}
