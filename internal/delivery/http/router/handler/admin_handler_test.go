package handler

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	domainerrors "comerciojusto/internal/domain/errors"
	"comerciojusto/internal/domain/entity"
	mocks "comerciojusto/internal/mocks/usecase"
	"comerciojusto/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAdminHandler(t *testing.T) (*AdminHandler, *mocks.MockCertificationUsecase) {
	certUC := mocks.NewMockCertificationUsecase(t)

	return NewAdminHandler(AdminHandlerParams{CertificationUC: certUC, Logger: testLogger}), certUC
}

func TestAdminHandler_Certifications(t *testing.T) {
	h, certUC := newAdminHandler(t)
	c, rec := newTestContext(t, http.MethodGet, "/admin/certificacoes/", nil)
	admin := loginAs(c, &entity.User{ID: uuid.New(), Name: "Revisora", IsSuperuser: true})

	cert := &entity.Certification{
		ID:        uuid.New(),
		Status:    entity.CertificationSubmitted,
		FileKey:   "certificados/selo.pdf",
		CreatedAt: time.Now(),
		Product:   &entity.Product{ID: uuid.New(), Name: "Café especial"},
	}
	certUC.EXPECT().ListPending(mock.Anything, admin).Return([]*entity.Certification{cert}, nil)

	require.NoError(t, h.Certifications(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Café especial")
	assert.Contains(t, body, `name="cert_id" value="`+cert.ID.String()+`"`)
	assert.Contains(t, body, "/media/certificados/selo.pdf")
}

func TestAdminHandler_ReviewCertification(t *testing.T) {
	certID := uuid.New()

	t.Run("approve with expiry", func(t *testing.T) {
		h, certUC := newAdminHandler(t)
		c, rec := newTestContext(t, http.MethodPost, "/admin/certificacoes/", url.Values{
			"cert_id":  {certID.String()},
			"acao":     {usecase.CertificationActionApprove},
			"parecer":  {"  Documentação completa  "},
			"validade": {"2026-06-30"},
		})
		admin := loginAs(c, &entity.User{ID: uuid.New(), IsSuperuser: true})

		certUC.EXPECT().Review(mock.Anything, mock.MatchedBy(func(in *usecase.ReviewCertificationInput) bool {
			return in.Reviewer == admin &&
				in.CertificationID == certID &&
				in.Action == usecase.CertificationActionApprove &&
				in.Opinion == "Documentação completa" &&
				in.ValidUntil != nil && in.ValidUntil.Format(time.DateOnly) == "2026-06-30"
		})).Return(&entity.Certification{ID: certID, Status: entity.CertificationApproved}, nil)

		require.NoError(t, h.ReviewCertification(c))
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, usecase.DestinationCertAdmin, rec.Header().Get("Location"))
		assert.True(t, hasFlashCookie(rec))
	})

	t.Run("malformed id is flashed", func(t *testing.T) {
		h, _ := newAdminHandler(t)
		c, rec := newTestContext(t, http.MethodPost, "/admin/certificacoes/", url.Values{"cert_id": {"x"}, "acao": {"aprovar"}})
		loginAs(c, &entity.User{ID: uuid.New(), IsSuperuser: true})

		require.NoError(t, h.ReviewCertification(c))
		assert.Equal(t, usecase.DestinationCertAdmin, rec.Header().Get("Location"))
		assert.True(t, hasFlashCookie(rec))
	})

	t.Run("bad date is flashed", func(t *testing.T) {
		h, _ := newAdminHandler(t)
		c, rec := newTestContext(t, http.MethodPost, "/admin/certificacoes/", url.Values{
			"cert_id":  {certID.String()},
			"acao":     {"aprovar"},
			"validade": {"30/06/2026"},
		})
		loginAs(c, &entity.User{ID: uuid.New(), IsSuperuser: true})

		require.NoError(t, h.ReviewCertification(c))
		assert.True(t, hasFlashCookie(rec))
	})

	t.Run("invalid transition is flashed", func(t *testing.T) {
		h, certUC := newAdminHandler(t)
		c, rec := newTestContext(t, http.MethodPost, "/admin/certificacoes/", url.Values{
			"cert_id": {certID.String()},
			"acao":    {usecase.CertificationActionReject},
		})
		loginAs(c, &entity.User{ID: uuid.New(), IsSuperuser: true})
		certUC.EXPECT().Review(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrCertificationTransition)

		require.NoError(t, h.ReviewCertification(c))
		assert.Equal(t, usecase.DestinationCertAdmin, rec.Header().Get("Location"))
		assert.True(t, hasFlashCookie(rec))
	})

	t.Run("non admin is refused", func(t *testing.T) {
		h, certUC := newAdminHandler(t)
		c, _ := newTestContext(t, http.MethodPost, "/admin/certificacoes/", url.Values{
			"cert_id": {certID.String()},
			"acao":    {usecase.CertificationActionApprove},
		})
		loginAs(c, &entity.User{ID: uuid.New()})
		certUC.EXPECT().Review(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrForbidden)

		assert.True(t, isForbidden(h.ReviewCertification(c)))
	})
}
