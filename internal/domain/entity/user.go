// Package entity contains the core business objects of the marketplace,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the account behind every login. Business data lives on the optional Profile.
type User struct {
	ID          uuid.UUID // Global unique identifier of the account.
	Email       string    // Unique login e-mail.
	Name        string    // Display name.
	IsStaff     bool      // Staff flag; it grants no review rights on its own.
	IsSuperuser bool      // Superusers bypass every profile capability check.
	Profile     *Profile  // Nil until the user completes signup as producer or company.
	CreatedAt   time.Time // Account creation time.
	UpdatedAt   time.Time // Last modification time.
}

// HasProfile reports whether the user already completed signup.
func (u *User) HasProfile() bool {
	return u != nil && u.Profile != nil
}

// IsAdmin reports whether the user holds administrator privilege. The staff flag alone does not grant it.
func (u *User) IsAdmin() bool {
	return u != nil && u.IsSuperuser
}

// CanReviewCertifications gates the certification review queue.
func (u *User) CanReviewCertifications() bool {
	return u.IsAdmin()
}

// Roles derives the role set from the profile kind and admin flags.
func (u *User) Roles() Roles {
	if u == nil {
		return nil
	}

	roles := make(Roles, 0, 2)
	if u.Profile != nil {
		roles = append(roles, u.Profile.Kind.Role())
	}
	if u.IsAdmin() {
		roles = append(roles, RoleAdmin)
	}

	return roles
}

// CanAccessProfile is the capability check for profile-scoped pages.
// Superusers always pass; everyone else needs the role that matches the profile kind.
func CanAccessProfile(u *User, kind ProfileKind) bool {
	if u == nil {
		return false
	}
	if u.IsSuperuser {
		return true
	}
	if !kind.IsValid() {
		return false
	}

	return u.Roles().Contains(kind.Role())
}
