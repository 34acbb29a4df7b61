package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCertification_Review(t *testing.T) {
	t.Parallel()

	admin := uuid.New()
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	cert := &Certification{Status: CertificationSubmitted}
	require.NoError(t, cert.Review(admin, CertificationApproved, "ok", nil, now))
	assert.Equal(t, CertificationApproved, cert.Status)
	require.NotNil(t, cert.ReviewerID)
	assert.Equal(t, admin, *cert.ReviewerID)
	assert.Equal(t, "ok", cert.Opinion)
	require.NotNil(t, cert.IssuedAt)

	// terminal
	assert.ErrorIs(t, cert.Review(admin, CertificationRejected, "", nil, now), ErrCertificationTransition)
}

func TestCertification_ReviewRejectedIsTerminal(t *testing.T) {
	t.Parallel()

	cert := &Certification{Status: CertificationSubmitted}
	require.NoError(t, cert.Review(uuid.New(), CertificationRejected, "documento ilegível", nil, time.Now()))
	assert.Nil(t, cert.IssuedAt)

	assert.ErrorIs(t, cert.Review(uuid.New(), CertificationApproved, "", nil, time.Now()), ErrCertificationTransition)
}

func TestCertification_ReviewRejectsNonTerminalTarget(t *testing.T) {
	t.Parallel()

	cert := &Certification{Status: CertificationSubmitted}
	assert.ErrorIs(t, cert.Review(uuid.New(), CertificationSubmitted, "", nil, time.Now()), ErrCertificationTransition)
	assert.Equal(t, CertificationSubmitted, cert.Status)
}

func TestValidateCertificateFile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		filename string
		size     int64
		wantErr  error
	}{
		{name: "pdf", filename: "selo.pdf", size: 1024},
		{name: "upper case jpeg", filename: "SELO.JPEG", size: 1024},
		{name: "png at limit", filename: "selo.png", size: MaxCertificateSize},
		{name: "too large", filename: "selo.pdf", size: MaxCertificateSize + 1, wantErr: ErrCertificateTooLarge},
		{name: "executable", filename: "selo.exe", size: 10, wantErr: ErrCertificateExtension},
		{name: "batch", filename: "selo.bat", size: 10, wantErr: ErrCertificateExtension},
		{name: "no extension", filename: "selo", size: 10, wantErr: ErrCertificateExtension},
		{name: "double extension", filename: "selo.pdf.exe", size: 10, wantErr: ErrCertificateExtension},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateCertificateFile(tt.filename, tt.size)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
