package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"

	"comerciojusto/config"
	deliverycontext "comerciojusto/internal/delivery/context"
	"comerciojusto/internal/delivery/http/flash"
	"comerciojusto/internal/delivery/http/middleware"
	"comerciojusto/internal/delivery/http/validator"
	domainerrors "comerciojusto/internal/domain/errors"
	"comerciojusto/internal/domain/entity"
	"comerciojusto/internal/infra/metrics"
	mockSvc "comerciojusto/internal/mocks/service"
	mocks "comerciojusto/internal/mocks/usecase"
	"comerciojusto/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCartHandler(t *testing.T) (*CartHandler, *mocks.MockCartUsecase, *metrics.Collectors) {
	cartUC := mocks.NewMockCartUsecase(t)
	collectors := metrics.New()
	session := middleware.NewSessionMiddleware(middleware.SessionMiddlewareParams{
		AuthUC:       mocks.NewMockAuthUsecase(t),
		CartUC:       cartUC,
		MessageUC:    mocks.NewMockMessageUsecase(t),
		TokenService: mockSvc.NewMockTokenService(t),
		Config:       &config.Config{},
		Logger:       testLogger,
	})

	return NewCartHandler(CartHandlerParams{
		CartUC:     cartUC,
		Session:    session,
		Collectors: collectors,
		Logger:     testLogger,
	}), cartUC, collectors
}

func newCartContext(t *testing.T, form url.Values) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	c, rec := newTestContext(t, http.MethodPost, "/carrinho/adicionar/", form)
	c.Echo().Validator = validator.New()

	return c, rec
}

func TestCartHandler_Add(t *testing.T) {
	productID := uuid.New()

	t.Run("logged in user", func(t *testing.T) {
		h, cartUC, collectors := newCartHandler(t)
		c, rec := newCartContext(t, url.Values{"produto_id": {productID.String()}, "quantidade": {"3"}})
		user := loginAs(c, &entity.User{ID: uuid.New()})

		cartUC.EXPECT().AddItem(mock.Anything, &usecase.AddCartItemInput{
			Owner:     entity.UserCartOwner(user.ID),
			ProductID: productID,
			Quantity:  3,
		}).Return(1, nil)

		require.NoError(t, h.Add(c))
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/carrinho/", rec.Header().Get("Location"))
		assert.True(t, hasFlashCookie(rec))
		assert.InDelta(t, 1, testutil.ToFloat64(collectors.CartMutations.WithLabelValues("add")), 0)
	})

	t.Run("anonymous visitor gets a cart session", func(t *testing.T) {
		h, cartUC, _ := newCartHandler(t)
		c, rec := newCartContext(t, url.Values{"produto_id": {productID.String()}})

		cartUC.EXPECT().AddItem(mock.Anything, mock.MatchedBy(func(in *usecase.AddCartItemInput) bool {
			return in.Owner.IsAnonymous() && in.Owner.SessionID != "" && in.Quantity == 1
		})).Return(1, nil)

		require.NoError(t, h.Add(c))
		assert.NotEmpty(t, deliverycontext.GetCartSession(c))

		var cartCookie *http.Cookie
		for _, cookie := range rec.Result().Cookies() {
			if cookie.Name == middleware.CartSessionCookieName {
				cartCookie = cookie
			}
		}
		require.NotNil(t, cartCookie)
		assert.Equal(t, deliverycontext.GetCartSession(c), cartCookie.Value)
	})

	t.Run("json callers get the item count", func(t *testing.T) {
		h, cartUC, _ := newCartHandler(t)
		c, rec := newCartContext(t, url.Values{"produto_id": {productID.String()}})
		c.Request().Header.Set(echo.HeaderAccept, echo.MIMEApplicationJSON)
		loginAs(c, &entity.User{ID: uuid.New()})

		cartUC.EXPECT().AddItem(mock.Anything, mock.Anything).Return(4, nil)

		require.NoError(t, h.Add(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"quantidade_itens":4`)
	})

	for _, quantity := range []string{"0", "-2", "abc", strconv.Itoa(entity.MaxLineQuantity + 1), "9223372036854775807"} {
		t.Run("rejects quantity "+quantity, func(t *testing.T) {
			h, _, _ := newCartHandler(t)
			c, rec := newCartContext(t, url.Values{"produto_id": {productID.String()}, "quantidade": {quantity}})
			loginAs(c, &entity.User{ID: uuid.New()})

			require.NoError(t, h.Add(c))
			assert.Equal(t, "/carrinho/", rec.Header().Get("Location"))

			msgs := flash.Pop(c)
			require.Len(t, msgs, 1)
			assert.Equal(t, flash.LevelError, msgs[0].Level)
			assert.Equal(t, domainerrors.ErrInvalidQuantity.Message(), msgs[0].Text)
		})
	}

	t.Run("malformed product id", func(t *testing.T) {
		h, _, _ := newCartHandler(t)
		c, rec := newCartContext(t, url.Values{"produto_id": {"nope"}})
		loginAs(c, &entity.User{ID: uuid.New()})

		require.NoError(t, h.Add(c))
		assert.Equal(t, "/carrinho/", rec.Header().Get("Location"))
		assert.True(t, hasFlashCookie(rec))
	})

	t.Run("unavailable product is flashed", func(t *testing.T) {
		h, cartUC, _ := newCartHandler(t)
		c, rec := newCartContext(t, url.Values{"produto_id": {productID.String()}})
		loginAs(c, &entity.User{ID: uuid.New()})

		cartUC.EXPECT().AddItem(mock.Anything, mock.Anything).
			Return(0, domainerrors.ErrProductNotFound.WrapMessage("product is not available"))

		require.NoError(t, h.Add(c))
		assert.Equal(t, "/carrinho/", rec.Header().Get("Location"))
		assert.True(t, hasFlashCookie(rec))
	})
}

func TestCartHandler_View(t *testing.T) {
	t.Run("renders the lines", func(t *testing.T) {
		h, cartUC, _ := newCartHandler(t)
		c, rec := newTestContext(t, http.MethodGet, "/carrinho/", nil)
		user := loginAs(c, &entity.User{ID: uuid.New(), Name: "Ana"})
		productID := uuid.New()

		cartUC.EXPECT().View(mock.Anything, entity.UserCartOwner(user.ID)).Return(&usecase.CartView{
			Lines: []*entity.CartLine{{
				ProductID: productID,
				Product:   &entity.Product{ID: productID, Name: "Farinha de mandioca"},
				Quantity:  2,
				Price:     decimal.RequireFromString("8"),
				Name:      "Farinha de mandioca",
				Subtotal:  decimal.RequireFromString("16"),
			}},
			Total: decimal.RequireFromString("16"),
			Count: 1,
		}, nil)

		require.NoError(t, h.View(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Farinha de mandioca")
		assert.Contains(t, rec.Body.String(), "R$ 16,00")
	})

	t.Run("visitor without a cart sees it empty", func(t *testing.T) {
		h, _, _ := newCartHandler(t)
		c, rec := newTestContext(t, http.MethodGet, "/carrinho/", nil)

		require.NoError(t, h.View(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestCartHandler_Remove(t *testing.T) {
	t.Run("removes the line", func(t *testing.T) {
		h, cartUC, collectors := newCartHandler(t)
		productID := uuid.New().String()
		c, rec := newTestContext(t, http.MethodPost, "/carrinho/", url.Values{"remover_produto_id": {productID}})
		deliverycontext.SetCartSession(c, "anon")

		cartUC.EXPECT().RemoveItem(mock.Anything, entity.SessionCartOwner("anon"), productID).Return(0, nil)

		require.NoError(t, h.Remove(c))
		assert.Equal(t, "/carrinho/", rec.Header().Get("Location"))
		assert.InDelta(t, 1, testutil.ToFloat64(collectors.CartMutations.WithLabelValues("remove")), 0)
	})

	t.Run("nothing to remove without a cart", func(t *testing.T) {
		h, _, _ := newCartHandler(t)
		c, rec := newTestContext(t, http.MethodPost, "/carrinho/", url.Values{"remover_produto_id": {uuid.NewString()}})

		require.NoError(t, h.Remove(c))
		assert.Equal(t, http.StatusSeeOther, rec.Code)
	})
}
