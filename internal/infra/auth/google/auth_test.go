package google

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"comerciojusto/config"
	"comerciojusto/internal/domain/entity"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestAuthService(validate validateFunc) *AuthServiceImpl {
	cfg := &config.Config{GoogleOAuth: &config.GoogleOAuthConfig{ClientID: "test_client_id"}}
	svc := NewAuthService(cfg, slog.New(slog.NewTextHandler(io.Discard, nil))).(*AuthServiceImpl)
	svc.validate = validate

	return svc
}

func validPayload() *idtoken.Payload {
	return &idtoken.Payload{
		Issuer:   "https://accounts.google.com",
		Audience: "test_client_id",
		Subject:  "test_user_123",
		Expires:  time.Now().Add(time.Hour).Unix(),
		Claims: map[string]any{
			"email":          "test@example.com",
			"email_verified": true,
			"name":           "Test User",
		},
	}
}

func TestAuthService_VerifyIDToken(t *testing.T) {
	svc := newTestAuthService(func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
		assert.Equal(t, "token", token)
		assert.Equal(t, "test_client_id", audience)

		return validPayload(), nil
	})

	user, err := svc.VerifyIDToken(context.Background(), "token")
	require.NoError(t, err)
	assert.Equal(t, "test_user_123", user.ID)
	assert.Equal(t, "test@example.com", user.Email)
	assert.Equal(t, "Test User", user.Name)
	assert.Equal(t, entity.ProviderTypeGoogle, user.Provider)
}

func TestAuthService_SignatureFailure(t *testing.T) {
	svc := newTestAuthService(func(context.Context, string, string) (*idtoken.Payload, error) {
		return nil, errors.New("idtoken: invalid token signature")
	})

	user, err := svc.VerifyIDToken(context.Background(), "token")
	assert.Error(t, err)
	assert.Nil(t, user)
	assert.Contains(t, err.Error(), "invalid ID token")
}

func TestAuthService_ClaimChecks(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *idtoken.Payload)
	}{
		{name: "wrong issuer", mutate: func(p *idtoken.Payload) { p.Issuer = "https://evil.example.com" }},
		{name: "wrong audience", mutate: func(p *idtoken.Payload) { p.Audience = "other" }},
		{name: "expired", mutate: func(p *idtoken.Payload) { p.Expires = time.Now().Add(-time.Minute).Unix() }},
		{name: "unverified email", mutate: func(p *idtoken.Payload) { p.Claims["email_verified"] = false }},
		{name: "missing email", mutate: func(p *idtoken.Payload) { delete(p.Claims, "email") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestAuthService(func(context.Context, string, string) (*idtoken.Payload, error) {
				p := validPayload()
				tt.mutate(p)

				return p, nil
			})

			_, err := svc.VerifyIDToken(context.Background(), "token")
			require.Error(t, err)
			assert.Contains(t, err.Error(), "token verification failed")
		})
	}
}

func TestAuthService_NotConfigured(t *testing.T) {
	svc := newTestAuthService(nil)
	svc.clientID = ""

	_, err := svc.VerifyIDToken(context.Background(), "token")
	assert.Error(t, err)
}

func TestAuthService_GetProvider(t *testing.T) {
	assert.Equal(t, entity.ProviderTypeGoogle, newTestAuthService(nil).GetProvider())
}
