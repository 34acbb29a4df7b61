package entity

import (
	"errors"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// CertificationStatus is the state of a certification request.
type CertificationStatus string

const (
	CertificationUnavailable CertificationStatus = "nao_disponivel"
	CertificationSubmitted   CertificationStatus = "enviado_analise"
	CertificationApproved    CertificationStatus = "aprovada"
	CertificationRejected    CertificationStatus = "reprovada"
)

// MaxCertificateSize is the upload limit for certificate files.
const MaxCertificateSize = 5 * 1024 * 1024

var (
	allowedCertificateExts = []string{"pdf", "jpg", "jpeg", "png"}
	deniedCertificateExts  = []string{"exe", "bat"}
)

var (
	ErrCertificateTooLarge     = errors.New("certificate file exceeds 5MB")
	ErrCertificateExtension    = errors.New("certificate file extension not allowed")
	ErrCertificationTransition = errors.New("certification status transition not allowed")
)

// Label returns the display text of the status.
func (s CertificationStatus) Label() string {
	switch s {
	case CertificationUnavailable:
		return "Não Disponível"
	case CertificationSubmitted:
		return "Enviado para Análise"
	case CertificationApproved:
		return "Aprovada"
	case CertificationRejected:
		return "Reprovada"
	default:
		return string(s)
	}
}

// IsTerminal reports whether no further transition is possible.
func (s CertificationStatus) IsTerminal() bool {
	return s == CertificationApproved || s == CertificationRejected
}

// Certification is a seller's request to have a product certified.
type Certification struct {
	ID         uuid.UUID           // Certification identifier.
	ProfileID  uuid.UUID           // Requesting seller.
	ProductID  uuid.UUID           // Certified product.
	ReviewerID *uuid.UUID          // Administrator who decided, nil while pending.
	Status     CertificationStatus // Current state.
	FileKey    string              // Blob key of the uploaded certificate.
	Opinion    string              // Reviewer opinion (parecer).
	IssuedAt   *time.Time          // Set on approval.
	ValidUntil *time.Time          // Expiry chosen by the reviewer.
	Product    *Product            // Filled on listing reads.
	Profile    *Profile            // Filled on listing reads.
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Review moves a submitted certification to approved or rejected.
// The reviewer and opinion are recorded; terminal states never change again.
func (c *Certification) Review(reviewer uuid.UUID, to CertificationStatus, opinion string, validUntil *time.Time, now time.Time) error {
	if c.Status != CertificationSubmitted || !to.IsTerminal() {
		return ErrCertificationTransition
	}

	c.Status = to
	c.ReviewerID = &reviewer
	c.Opinion = opinion
	if to == CertificationApproved {
		issued := now
		c.IssuedAt = &issued
		c.ValidUntil = validUntil
	}
	c.UpdatedAt = now

	return nil
}

// ValidateCertificateFile checks the upload size and extension.
// The allow-list is applied first, then the denylist.
func ValidateCertificateFile(filename string, size int64) error {
	if size > MaxCertificateSize {
		return ErrCertificateTooLarge
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if !slices.Contains(allowedCertificateExts, ext) || slices.Contains(deniedCertificateExts, ext) {
		return ErrCertificateExtension
	}

	return nil
}
