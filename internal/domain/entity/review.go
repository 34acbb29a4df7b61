package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	MinReviewStars = 1
	MaxReviewStars = 5
)

// Review is a star rating left by a user on a seller profile.
type Review struct {
	ID               uuid.UUID
	ProfileID        uuid.UUID
	UserID           uuid.UUID
	Stars            int
	Comment          string
	VerifiedPurchase bool
	CreatedAt        time.Time
	User             *User
}

// ValidStars reports whether stars is within the accepted range.
func ValidStars(stars int) bool {
	return stars >= MinReviewStars && stars <= MaxReviewStars
}
