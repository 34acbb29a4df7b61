package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"comerciojusto/internal/delivery/http/flash"
	domainerrors "comerciojusto/internal/domain/errors"
	"comerciojusto/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler serves the public storefront pages.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// ReviewRequest is the star rating form of the product page.
type ReviewRequest struct {
	Stars   string `form:"estrelas"`
	Comment string `form:"comentario"`
}

// Index lists the catalog filtered by ?categoria= and ?pesquisa=.
func (h *CatalogHandler) Index(c echo.Context) error {
	output, err := h.catalogUC.ListProducts(c.Request().Context(), &usecase.ListProductsInput{
		Category: c.QueryParam("categoria"),
		Search:   c.QueryParam("pesquisa"),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return render(c, http.StatusOK, "index", "Comércio Justo", output)
}

// ProductDetail shows one product with its seller, reviews and certifications.
func (h *CatalogHandler) ProductDetail(c echo.Context) error {
	productID, err := pathUUID(c, "id", domainerrors.ErrProductNotFound)
	if err != nil {
		return err
	}

	output, err := h.catalogUC.GetProductDetail(c.Request().Context(), productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return render(c, http.StatusOK, "produto", output.Product.Name, output)
}

// AddReview records a rating for the product's seller. Anonymous visitors are sent to login.
func (h *CatalogHandler) AddReview(c echo.Context) error {
	productID, err := pathUUID(c, "id", domainerrors.ErrProductNotFound)
	if err != nil {
		return err
	}

	user := currentUser(c)
	if user == nil {
		flash.Warning(c, "Faça login para avaliar.")

		return redirect(c, "/login/?next=/produto/"+productID.String()+"/")
	}

	var req ReviewRequest
	if err := c.Bind(&req); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WrapMessage(err.Error()))
	}

	stars, convErr := strconv.Atoi(strings.TrimSpace(req.Stars))
	if convErr != nil {
		stars = 0
	}

	err = h.catalogUC.AddReview(c.Request().Context(), &usecase.AddReviewInput{
		ProductID: productID,
		UserID:    user.ID,
		Stars:     stars,
		Comment:   strings.TrimSpace(req.Comment),
	})
	if err != nil {
		if err := flashOrFail(c, err); err != nil {
			return errors.WithStack(err)
		}
	} else {
		flash.Success(c, "Avaliação registrada. Obrigado!")
	}

	return redirect(c, "/produto/"+productID.String()+"/")
}

// PublicProfile shows a seller's public page.
func (h *CatalogHandler) PublicProfile(c echo.Context) error {
	profileID, err := pathUUID(c, "id", domainerrors.ErrProfileNotFound)
	if err != nil {
		return err
	}

	output, err := h.catalogUC.GetPublicProfile(c.Request().Context(), profileID)
	if err != nil {
		return errors.WithStack(err)
	}

	return render(c, http.StatusOK, "perfil", output.Profile.DisplayName(), output)
}

// ProductQRCode returns a PNG linking to the product page.
func (h *CatalogHandler) ProductQRCode(c echo.Context) error {
	productID, err := pathUUID(c, "id", domainerrors.ErrProductNotFound)
	if err != nil {
		return err
	}

	png, err := h.catalogUC.ProductQRCode(c.Request().Context(), productID)
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "public, max-age=86400")

	return c.Blob(http.StatusOK, "image/png", png)
}
