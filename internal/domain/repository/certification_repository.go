package repository

import (
	"context"
	"errors"

	"comerciojusto/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCertificationNotFound is returned when no certification matches.
var ErrCertificationNotFound = errors.New("certification not found")

// CertificationRepository persists certification requests.
type CertificationRepository interface {
	// Create inserts a certification.
	Create(ctx context.Context, cert *entity.Certification) error

	// LockByID returns the certification locked FOR UPDATE.
	LockByID(ctx context.Context, id uuid.UUID) (*entity.Certification, error)

	// Update saves status, reviewer, opinion and dates.
	Update(ctx context.Context, cert *entity.Certification) error

	// ListByProfile returns every certification of a seller, newest first.
	ListByProfile(ctx context.Context, profileID uuid.UUID) ([]*entity.Certification, error)

	// ListByStatus returns certifications in the given status with product and profile loaded.
	ListByStatus(ctx context.Context, status entity.CertificationStatus) ([]*entity.Certification, error)

	// ListApproved returns approved certifications for a profile, optionally narrowed to one product.
	ListApproved(ctx context.Context, profileID uuid.UUID, productID *uuid.UUID) ([]*entity.Certification, error)
}
