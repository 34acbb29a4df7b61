package usecase

import (
	"context"
	"time"

	"comerciojusto/internal/domain/entity"

	"github.com/google/uuid"
)

// Review actions posted by the admin page.
const (
	CertificationActionApprove = "aprovar"
	CertificationActionReject  = "reprovar"
)

// SubmitCertificationInput is the dashboard certification form.
type SubmitCertificationInput struct {
	User       *entity.User
	ProductID  uuid.UUID
	ValidUntil *time.Time
	File       *Upload
}

// ReviewCertificationInput is one decision on the admin page.
type ReviewCertificationInput struct {
	Reviewer        *entity.User
	CertificationID uuid.UUID
	Action          string
	Opinion         string
	ValidUntil      *time.Time
}

// CertificationUsecase runs the certification workflow.
type CertificationUsecase interface {
	Submit(ctx context.Context, input *SubmitCertificationInput) (*entity.Certification, error)
	Review(ctx context.Context, input *ReviewCertificationInput) (*entity.Certification, error)
	ListPending(ctx context.Context, reviewer *entity.User) ([]*entity.Certification, error)
}
