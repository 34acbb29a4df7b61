package flash

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlash_SurvivesRedirect(t *testing.T) {
	e := echo.New()

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/carrinho/adicionar/", nil), rec)
	Success(c, "Produto adicionado ao carrinho.")
	Warning(c, "Estoque baixo")

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	last := cookies[len(cookies)-1]
	assert.Equal(t, cookieName, last.Name)

	req := httptest.NewRequest(http.MethodGet, "/carrinho/", nil)
	req.AddCookie(last)
	rec = httptest.NewRecorder()
	c = e.NewContext(req, rec)

	msgs := Pop(c)
	require.Len(t, msgs, 2)
	assert.Equal(t, LevelSuccess, msgs[0].Level)
	assert.Equal(t, "Produto adicionado ao carrinho.", msgs[0].Text)
	assert.Equal(t, LevelWarning, msgs[1].Level)

	cleared := rec.Result().Cookies()
	require.Len(t, cleared, 1)
	assert.Equal(t, -1, cleared[0].MaxAge)
}

func TestFlash_SameRequest(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	Error(c, "falhou")
	msgs := Pop(c)
	require.Len(t, msgs, 1)
	assert.Equal(t, LevelError, msgs[0].Level)
	assert.Empty(t, Pop(c))
}

func TestFlash_IgnoresGarbageCookie(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: cookieName, Value: "%%%"})
	c := e.NewContext(req, httptest.NewRecorder())

	assert.Empty(t, Pop(c))
}
