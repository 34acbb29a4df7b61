package usecase

import (
	"context"

	"comerciojusto/internal/domain/entity"

	"github.com/google/uuid"
)

// Post-login destinations.
const (
	DestinationDashboard      = "/dashboard/"
	DestinationCompleteSignup = "/completar-cadastro-social/"
	DestinationCertAdmin      = "/admin/certificacoes/"
)

// --- Input DTOs ---

// RegisterInput defines the data required to open a seller account.
// SessionID is the anonymous cart session to merge, if any.
type RegisterInput struct {
	Name      string
	Email     string
	Password  string
	Kind      entity.ProfileKind
	TaxID     string
	SessionID string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email     string
	Password  string
	SessionID string
}

// GoogleLoginInput carries the ID token posted by the sign-in button.
type GoogleLoginInput struct {
	IDToken   string
	SessionID string
}

// CompleteSocialSignupInput is the form shown to Google users without a profile.
type CompleteSocialSignupInput struct {
	UserID               uuid.UUID
	Kind                 string
	TaxID                string
	Name                 string
	Password             string
	PasswordConfirmation string
}

// PromoteAdminInput creates or promotes a superuser from the management CLI.
type PromoteAdminInput struct {
	Email    string
	Name     string
	Password string
}

// --- Output DTOs ---

// AuthOutput is returned by every successful sign-in.
type AuthOutput struct {
	User      *entity.User
	Token     string
	CartCount int
	// CartMerged is false when the anonymous cart could not be folded in and
	// its session must be kept for a later attempt.
	CartMerged bool
	// NewAccount is set when a Google login created the account.
	NewAccount bool
}

// AuthUsecase covers accounts, credentials and sessions.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	GoogleLogin(ctx context.Context, input *GoogleLoginInput) (*AuthOutput, error)
	CompleteSocialSignup(ctx context.Context, input *CompleteSocialSignupInput) (*entity.User, error)
	PostLoginDestination(ctx context.Context, userID uuid.UUID) (string, error)
	// CurrentUser resolves the session principal, served from cache when possible.
	CurrentUser(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	HasGoogleLink(ctx context.Context, userID uuid.UUID) (bool, error)
	DisconnectGoogle(ctx context.Context, userID uuid.UUID) error
	ResetPassword(ctx context.Context, email, password string) error
	PromoteAdmin(ctx context.Context, input *PromoteAdminInput) (*entity.User, error)
}
