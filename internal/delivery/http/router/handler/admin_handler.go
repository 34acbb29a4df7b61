package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"comerciojusto/internal/delivery/http/flash"
	domainerrors "comerciojusto/internal/domain/errors"
	"comerciojusto/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	CertificationUC usecase.CertificationUsecase
	Logger          *slog.Logger
}

// AdminHandler serves the certification review queue.
type AdminHandler struct {
	certUC usecase.CertificationUsecase
	logger *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		certUC: params.CertificationUC,
		logger: params.Logger,
	}
}

// Certifications lists the certifications waiting for a decision.
func (h *AdminHandler) Certifications(c echo.Context) error {
	pending, err := h.certUC.ListPending(c.Request().Context(), currentUser(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return render(c, http.StatusOK, "certificacoes", "Certificações pendentes", pending)
}

// ReviewCertification approves or rejects one certification.
func (h *AdminHandler) ReviewCertification(c echo.Context) error {
	certID, err := uuid.Parse(strings.TrimSpace(c.FormValue("cert_id")))
	if err != nil {
		flash.Error(c, domainerrors.ErrCertificationNotFound.Message())

		return redirect(c, usecase.DestinationCertAdmin)
	}

	validUntil, err := parseDate(c.FormValue("validade"))
	if err != nil {
		if err := flashOrFail(c, err); err != nil {
			return errors.WithStack(err)
		}

		return redirect(c, usecase.DestinationCertAdmin)
	}

	cert, err := h.certUC.Review(c.Request().Context(), &usecase.ReviewCertificationInput{
		Reviewer:        currentUser(c),
		CertificationID: certID,
		Action:          c.FormValue("acao"),
		Opinion:         strings.TrimSpace(c.FormValue("parecer")),
		ValidUntil:      validUntil,
	})
	if err != nil {
		if isForbidden(err) {
			return errors.WithStack(err)
		}
		if err := flashOrFail(c, err); err != nil {
			return errors.WithStack(err)
		}

		return redirect(c, usecase.DestinationCertAdmin)
	}

	h.logger.Info("Certification reviewed",
		slog.String("certification_id", cert.ID.String()),
		slog.String("status", string(cert.Status)))
	flash.Success(c, "Certificação atualizada com sucesso.")

	return redirect(c, usecase.DestinationCertAdmin)
}
