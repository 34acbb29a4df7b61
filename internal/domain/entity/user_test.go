package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCanAccessProfile(t *testing.T) {
	t.Parallel()

	producer := &User{Profile: &Profile{Kind: ProfileKindProducer}}
	company := &User{Profile: &Profile{Kind: ProfileKindCompany}}
	superuser := &User{IsSuperuser: true}
	bare := &User{}

	assert.True(t, CanAccessProfile(producer, ProfileKindProducer))
	assert.False(t, CanAccessProfile(producer, ProfileKindCompany))
	assert.True(t, CanAccessProfile(company, ProfileKindCompany))
	assert.True(t, CanAccessProfile(superuser, ProfileKindCompany))
	assert.False(t, CanAccessProfile(bare, ProfileKindProducer))
	assert.False(t, CanAccessProfile(nil, ProfileKindProducer))
}

func TestUser_Roles(t *testing.T) {
	t.Parallel()

	u := &User{IsSuperuser: true, Profile: &Profile{Kind: ProfileKindCompany}}
	assert.Equal(t, Roles{RoleCompany, RoleAdmin}, u.Roles())
	assert.True(t, u.IsAdmin())
	assert.True(t, u.HasProfile())

	staff := &User{IsStaff: true, Profile: &Profile{Kind: ProfileKindCompany}}
	assert.Equal(t, Roles{RoleCompany}, staff.Roles())
	assert.False(t, staff.IsAdmin())
}

func TestUser_CanReviewCertifications(t *testing.T) {
	t.Parallel()

	assert.True(t, (&User{IsSuperuser: true}).CanReviewCertifications())
	assert.False(t, (&User{IsStaff: true}).CanReviewCertifications())
	assert.False(t, (&User{}).CanReviewCertifications())
	assert.False(t, (*User)(nil).CanReviewCertifications())
}

func TestProfile_ApplyReview(t *testing.T) {
	t.Parallel()

	p := &Profile{Rating: DefaultRating}
	p.ApplyReview(3)
	assert.Equal(t, 1, p.TotalReviews)
	assert.True(t, decimal.NewFromInt(3).Equal(p.Rating))

	p.ApplyReview(4)
	assert.Equal(t, "3.50", p.Rating.StringFixed(2))
}
