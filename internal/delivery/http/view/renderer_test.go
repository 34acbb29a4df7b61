package view

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	deliverycontext "comerciojusto/internal/delivery/context"
	"comerciojusto/internal/delivery/http/flash"
	"comerciojusto/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(path string) echo.Context {
	e := echo.New()

	return e.NewContext(httptest.NewRequest(http.MethodGet, path, nil), httptest.NewRecorder())
}

func TestNewRenderer_ParsesEveryPage(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	for _, page := range []string{
		"index", "produto", "perfil", "login", "cadastro", "completar_cadastro",
		"dashboard", "meu_perfil", "carrinho", "certificacoes", "caixa_entrada",
		"conversa", "sucesso", "cancelado", "acesso_negado", "erro",
	} {
		assert.True(t, r.Has(page), page)
	}
	assert.False(t, r.Has("base"))
}

func TestRenderer_Render(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	t.Run("unknown template", func(t *testing.T) {
		var buf bytes.Buffer
		err := r.Render(&buf, "nao_existe", nil, newContext("/"))
		assert.Error(t, err)
		assert.Zero(t, buf.Len())
	})

	t.Run("anonymous layout", func(t *testing.T) {
		var buf bytes.Buffer
		err := r.Render(&buf, "acesso_negado", &Page{Title: "Acesso negado"}, newContext("/dashboard/"))
		require.NoError(t, err)

		html := buf.String()
		assert.Contains(t, html, "<title>Acesso negado | Comércio Justo</title>")
		assert.Contains(t, html, `href="/login/?next=`)
		assert.NotContains(t, html, "/logout/")
	})

	t.Run("user, counters and flashes", func(t *testing.T) {
		c := newContext("/carrinho/")
		deliverycontext.SetUser(c, &entity.User{ID: uuid.New(), Name: "Ana"})
		deliverycontext.SetCounters(c, deliverycontext.Counters{CartItems: 2, UnreadMessages: 3})
		flash.Success(c, "Produto adicionado ao carrinho.")

		productID := uuid.New()
		cart := struct {
			Lines []*entity.CartLine
			Total decimal.Decimal
			Count int
		}{
			Lines: []*entity.CartLine{{
				ProductID: productID,
				Product:   &entity.Product{ID: productID, Name: "Mel orgânico"},
				Quantity:  2,
				Price:     decimal.RequireFromString("12.5"),
				Name:      "Mel orgânico",
				Subtotal:  decimal.RequireFromString("25"),
			}},
			Total: decimal.RequireFromString("25"),
			Count: 1,
		}

		var buf bytes.Buffer
		require.NoError(t, r.Render(&buf, "carrinho", &Page{Title: "Carrinho", Data: cart}, c))

		html := buf.String()
		assert.Contains(t, html, "Olá, Ana")
		assert.Contains(t, html, `<span class="badge">2</span>`)
		assert.Contains(t, html, `<span class="badge">3</span>`)
		assert.Contains(t, html, `class="flash flash-success">Produto adicionado ao carrinho.`)
		assert.Contains(t, html, "R$ 25,00")
		assert.Contains(t, html, `name="remover_produto_id" value="`+productID.String()+`"`)
	})

	t.Run("plain data is wrapped in a page", func(t *testing.T) {
		var buf bytes.Buffer
		data := struct {
			Code    int
			Message string
		}{Code: 404, Message: "Página não encontrada"}

		require.NoError(t, r.Render(&buf, "erro", data, newContext("/x/")))
		assert.Contains(t, buf.String(), "Erro 404")
		assert.Contains(t, buf.String(), "Página não encontrada")
	})
}

func TestFuncs(t *testing.T) {
	assert.Equal(t, "R$ 1234,50", Money(decimal.RequireFromString("1234.5")))
	assert.Equal(t, "R$ 0,00", Money(decimal.Zero))

	assert.Equal(t, "/media/logos/a.png", MediaURL("logos/a.png"))
	assert.Empty(t, MediaURL(""))

	day := time.Date(2024, time.March, 9, 14, 5, 0, 0, time.UTC)
	assert.Equal(t, "09/03/2024", formatDate(day))
	assert.Equal(t, "09/03/2024", formatDate(&day))
	assert.Empty(t, formatDate((*time.Time)(nil)))
	assert.Equal(t, "2024-03-09", formatDateISO(&day))
	assert.Empty(t, formatDateISO(nil))
	assert.Equal(t, "09/03/2024 14:05", formatDateTime(day))

	price := decimal.RequireFromString("9.9")
	assert.True(t, price.Equal(deref(&price)))
	assert.True(t, decimal.Zero.Equal(deref(nil)))

	assert.Equal(t, []int{1, 2, 3, 4, 5}, seq(5))
	assert.Empty(t, seq(0))
}
