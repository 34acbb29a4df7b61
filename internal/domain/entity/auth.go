package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProviderType names where a credential comes from.
type ProviderType string

const (
	ProviderTypeEmail  ProviderType = "email"
	ProviderTypeGoogle ProviderType = "google"
)

// Authentication is one way of logging in to a User.
// An e-mail/password pair is one record, a linked Google account is another.
type Authentication struct {
	ID             uuid.UUID    // Identifier of the credential record.
	UserID         uuid.UUID    // Owner account.
	Provider       ProviderType // email or google.
	ProviderUserID string       // E-mail for local credentials, Google 'sub' claim otherwise.
	PasswordHash   string       // bcrypt hash, only set for the email provider.
	CreatedAt      time.Time    // When the credential was linked.
}
