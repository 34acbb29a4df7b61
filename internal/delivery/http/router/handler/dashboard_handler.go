package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"comerciojusto/internal/delivery/http/flash"
	domainerrors "comerciojusto/internal/domain/errors"
	"comerciojusto/internal/domain/entity"
	"comerciojusto/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// DashboardHandlerParams holds dependencies for DashboardHandler, injected by Fx.
type DashboardHandlerParams struct {
	fx.In

	ProfileUC       usecase.ProfileUsecase
	CertificationUC usecase.CertificationUsecase
	Logger          *slog.Logger
}

// DashboardHandler serves the seller dashboard and its form actions.
type DashboardHandler struct {
	profileUC usecase.ProfileUsecase
	certUC    usecase.CertificationUsecase
	logger    *slog.Logger
}

// NewDashboardHandler is the constructor for DashboardHandler
func NewDashboardHandler(params DashboardHandlerParams) *DashboardHandler {
	return &DashboardHandler{
		profileUC: params.ProfileUC,
		certUC:    params.CertificationUC,
		logger:    params.Logger,
	}
}

// Show renders the dashboard.
func (h *DashboardHandler) Show(c echo.Context) error {
	output, err := h.profileUC.Dashboard(c.Request().Context(), currentUser(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return render(c, http.StatusOK, "dashboard", "Meu painel", output)
}

// Submit dispatches on which form was posted, the way the dashboard page builds them:
// product deletion, new product, certification upload, or the short profile form.
func (h *DashboardHandler) Submit(c echo.Context) error {
	var (
		message string
		err     error
	)

	switch {
	case c.FormValue("excluir_produto_id") != "":
		message, err = h.deleteProduct(c)
	case c.FormValue("nome_produto") != "":
		message, err = h.createProduct(c)
	case c.FormValue("produto_certificacao") != "":
		message, err = h.submitCertification(c)
	default:
		message, err = h.updateProfile(c)
	}

	if err != nil {
		if isForbidden(err) {
			return errors.WithStack(err)
		}
		if err := flashOrFail(c, err); err != nil {
			return errors.WithStack(err)
		}
	} else {
		flash.Success(c, message)
	}

	return redirect(c, "/dashboard/")
}

func (h *DashboardHandler) deleteProduct(c echo.Context) (string, error) {
	productID, err := uuid.Parse(c.FormValue("excluir_produto_id"))
	if err != nil {
		return "", domainerrors.ErrProductNotFound
	}

	if err := h.profileUC.DeleteProduct(c.Request().Context(), currentUser(c), productID); err != nil {
		return "", err
	}

	return "Produto excluído.", nil
}

func (h *DashboardHandler) createProduct(c echo.Context) (string, error) {
	price, err := decimal.NewFromString(strings.Replace(strings.TrimSpace(c.FormValue("preco_produto")), ",", ".", 1))
	if err != nil {
		return "", domainerrors.ErrValidationFailed.WithDetails("Informe um preço válido")
	}

	var stock int
	if raw := strings.TrimSpace(c.FormValue("estoque_produto")); raw != "" {
		if stock, err = strconv.Atoi(raw); err != nil {
			return "", domainerrors.ErrValidationFailed.WithDetails("Informe um estoque válido")
		}
	}

	image, closeImage, err := formUpload(c, "imagem_produto")
	if err != nil {
		return "", err
	}
	defer closeImage()

	category := entity.Category(c.FormValue("categoria_produto"))
	if category == "" {
		category = entity.CategoryAll
	}

	_, err = h.profileUC.CreateProduct(c.Request().Context(), &usecase.CreateProductInput{
		User:        currentUser(c),
		Name:        c.FormValue("nome_produto"),
		Description: c.FormValue("descricao_produto"),
		Category:    category,
		Price:       price,
		Stock:       stock,
		Image:       image,
	})
	if err != nil {
		return "", err
	}

	return "Produto cadastrado.", nil
}

func (h *DashboardHandler) submitCertification(c echo.Context) (string, error) {
	productID, err := uuid.Parse(strings.TrimSpace(c.FormValue("produto_certificacao")))
	if err != nil {
		return "", domainerrors.ErrProductNotFound
	}

	validUntil, err := parseDate(c.FormValue("validade_certificacao"))
	if err != nil {
		return "", err
	}

	file, closeFile, err := formUpload(c, "arquivo_certificado")
	if err != nil {
		return "", err
	}
	defer closeFile()

	_, err = h.certUC.Submit(c.Request().Context(), &usecase.SubmitCertificationInput{
		User:       currentUser(c),
		ProductID:  productID,
		ValidUntil: validUntil,
		File:       file,
	})
	if err != nil {
		return "", err
	}

	return "Certificado enviado para análise.", nil
}

func (h *DashboardHandler) updateProfile(c echo.Context) (string, error) {
	logo, closeLogo, err := formUpload(c, "logo")
	if err != nil {
		return "", err
	}
	defer closeLogo()

	_, err = h.profileUC.UpdateProfile(c.Request().Context(), &usecase.UpdateProfileInput{
		User:        currentUser(c),
		Bio:         optionalString(c, "bio"),
		Description: optionalString(c, "descricao"),
		Logo:        logo,
	})
	if err != nil {
		return "", err
	}

	return "Perfil atualizado.", nil
}

// parseDate reads an optional yyyy-mm-dd field.
func parseDate(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	t, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("Data inválida, use o formato AAAA-MM-DD")
	}

	return &t, nil
}
