// Package google verifies Google Sign-In ID tokens.
package google

import (
	"context"
	"log/slog"
	"time"

	"comerciojusto/config"
	"comerciojusto/internal/domain/entity"
	"comerciojusto/internal/domain/service"

	"github.com/pkg/errors"
	"google.golang.org/api/idtoken"
)

// GoogleIDTokenClaims represents the claims in a Google ID token
type GoogleIDTokenClaims struct {
	Iss           string // Issuer
	Sub           string // Subject (user ID)
	Aud           string // Audience (client ID)
	Exp           int64  // Expiration time
	Email         string // User's email
	EmailVerified bool   // Email verification status
	Name          string // User's full name
	Picture       string // User's profile picture
}

// validateFunc checks the token signature against Google's public keys.
type validateFunc func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)

// AuthServiceImpl implements service.OAuthAuthService for Google
type AuthServiceImpl struct {
	clientID string
	logger   *slog.Logger
	validate validateFunc
	now      func() time.Time
}

// NewAuthService creates a new Google AuthService
func NewAuthService(cfg *config.Config, logger *slog.Logger) service.OAuthAuthService {
	return &AuthServiceImpl{
		clientID: cfg.GoogleOAuth.ClientID,
		logger:   logger,
		validate: idtoken.Validate,
		now:      time.Now,
	}
}

// VerifyIDToken implements service.OAuthAuthService interface
func (s *AuthServiceImpl) VerifyIDToken(ctx context.Context, idToken string) (*service.OAuthUser, error) {
	if s.clientID == "" {
		return nil, errors.New("google sign-in is not configured")
	}

	payload, err := s.validate(ctx, idToken, s.clientID)
	if err != nil {
		s.logger.Warn("Failed to validate ID token", slog.Any("error", err))

		return nil, errors.Wrap(err, "invalid ID token")
	}

	claims := claimsFromPayload(payload)
	if err := s.verifyTokenClaims(claims); err != nil {
		s.logger.Warn("Token verification failed", slog.Any("error", err))

		return nil, errors.Wrap(err, "token verification failed")
	}

	oauthUser := &service.OAuthUser{
		ID:            claims.Sub,
		Email:         claims.Email,
		Name:          claims.Name,
		Provider:      entity.ProviderTypeGoogle,
		AvatarURL:     claims.Picture,
		EmailVerified: claims.EmailVerified,
	}

	s.logger.Debug("Google ID token verified",
		slog.String("userID", oauthUser.ID),
		slog.String("email", oauthUser.Email))

	return oauthUser, nil
}

// GetProvider returns the OAuth provider type
func (s *AuthServiceImpl) GetProvider() entity.ProviderType {
	return entity.ProviderTypeGoogle
}

func claimsFromPayload(p *idtoken.Payload) *GoogleIDTokenClaims {
	claims := &GoogleIDTokenClaims{
		Iss: p.Issuer,
		Sub: p.Subject,
		Aud: p.Audience,
		Exp: p.Expires,
	}
	claims.Email, _ = p.Claims["email"].(string)
	claims.EmailVerified, _ = p.Claims["email_verified"].(bool)
	claims.Name, _ = p.Claims["name"].(string)
	claims.Picture, _ = p.Claims["picture"].(string)

	return claims
}

// verifyTokenClaims verifies the token claims
func (s *AuthServiceImpl) verifyTokenClaims(claims *GoogleIDTokenClaims) error {
	if claims.Iss != "https://accounts.google.com" && claims.Iss != "accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", claims.Iss)
	}

	if claims.Aud != s.clientID {
		return errors.Errorf("invalid audience: expected %s, got %s", s.clientID, claims.Aud)
	}

	now := s.now().Unix()
	if claims.Exp < now {
		return errors.Errorf("token expired: expired at %d, current time %d", claims.Exp, now)
	}

	if claims.Email == "" {
		return errors.New("token has no email claim")
	}
	if !claims.EmailVerified {
		return errors.New("email not verified by provider")
	}

	return nil
}
