package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	deliverycontext "comerciojusto/internal/delivery/context"
	"comerciojusto/internal/delivery/http/flash"
	"comerciojusto/internal/delivery/http/middleware"
	"comerciojusto/internal/delivery/http/response"
	"comerciojusto/internal/domain/entity"
	domainerrors "comerciojusto/internal/domain/errors"
	"comerciojusto/internal/infra/metrics"
	"comerciojusto/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC     usecase.CartUsecase
	Session    *middleware.SessionMiddleware
	Collectors *metrics.Collectors `optional:"true"`
	Logger     *slog.Logger
}

// CartHandler serves the cart pages.
type CartHandler struct {
	cartUC     usecase.CartUsecase
	session    *middleware.SessionMiddleware
	collectors *metrics.Collectors
	logger     *slog.Logger
}

// NewCartHandler is the constructor for CartHandler
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC:     params.CartUC,
		session:    params.Session,
		collectors: params.Collectors,
		logger:     params.Logger,
	}
}

// AddItemRequest is the add-to-cart form.
type AddItemRequest struct {
	ProductID string `form:"produto_id" validate:"required,uuid"`
	Quantity  string `form:"quantidade"`
}

// Add puts a product in the visitor's cart. Anonymous visitors get a cart session on first add.
func (h *CartHandler) Add(c echo.Context) error {
	var req AddItemRequest
	if err := c.Bind(&req); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WrapMessage(err.Error()))
	}
	if err := c.Validate(&req); err != nil {
		return h.addFailed(c, err)
	}

	quantity := 1
	if raw := strings.TrimSpace(req.Quantity); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > entity.MaxLineQuantity {
			return h.addFailed(c, domainerrors.ErrInvalidQuantity)
		}
		quantity = n
	}

	owner := deliverycontext.CartOwner(c)
	if owner.UserID == nil {
		owner.SessionID = h.session.EnsureCartSession(c)
	}

	count, err := h.cartUC.AddItem(c.Request().Context(), &usecase.AddCartItemInput{
		Owner:     owner,
		ProductID: uuid.MustParse(req.ProductID),
		Quantity:  quantity,
	})
	if err != nil {
		return h.addFailed(c, err)
	}
	h.observe("add")

	if wantsJSON(c) {
		return response.Success(c, http.StatusOK, map[string]int{"quantidade_itens": count}, "Produto adicionado ao carrinho")
	}

	flash.Success(c, "Produto adicionado ao carrinho.")

	return redirect(c, "/carrinho/")
}

// View renders the cart.
func (h *CartHandler) View(c echo.Context) error {
	cart := &usecase.CartView{}

	if owner := deliverycontext.CartOwner(c); owner.Validate() == nil {
		var err error
		cart, err = h.cartUC.View(c.Request().Context(), owner)
		if err != nil {
			return errors.WithStack(err)
		}
	}

	return render(c, http.StatusOK, "carrinho", "Carrinho", cart)
}

// Remove drops one line. Removing an absent product is a no-op.
func (h *CartHandler) Remove(c echo.Context) error {
	productID := strings.TrimSpace(c.FormValue("remover_produto_id"))

	if owner := deliverycontext.CartOwner(c); owner.Validate() == nil && productID != "" {
		if _, err := h.cartUC.RemoveItem(c.Request().Context(), owner, productID); err != nil {
			return errors.WithStack(err)
		}
		h.observe("remove")
	}

	return redirect(c, "/carrinho/")
}

func (h *CartHandler) addFailed(c echo.Context, err error) error {
	appErr, ok := userError(err)
	if !ok {
		return errors.WithStack(err)
	}
	if wantsJSON(c) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	flash.Error(c, errorText(appErr))

	return redirect(c, "/carrinho/")
}

func (h *CartHandler) observe(operation string) {
	if h.collectors != nil {
		h.collectors.CartMutations.WithLabelValues(operation).Inc()
	}
}

func wantsJSON(c echo.Context) bool {
	return strings.Contains(c.Request().Header.Get(echo.HeaderAccept), echo.MIMEApplicationJSON)
}
