package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims carried by the session token.
type Claims struct {
	UserID uuid.UUID `json:"uid"`
	Roles  []string  `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// TokenService issues and validates the signed session token kept in the session cookie.
type TokenService interface {
	// GenerateSessionToken signs a session token for the user.
	GenerateSessionToken(userID uuid.UUID, roles []string) (string, error)

	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*Claims, error)

	// SessionDuration returns how long an issued token stays valid.
	SessionDuration() time.Duration
}
