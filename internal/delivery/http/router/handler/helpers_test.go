package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	deliverycontext "comerciojusto/internal/delivery/context"
	"comerciojusto/internal/delivery/http/view"
	domainerrors "comerciojusto/internal/domain/errors"
	"comerciojusto/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// newTestContext builds a context for a form post (or a GET when form is nil) with the renderer wired.
func newTestContext(t *testing.T, method, target string, form url.Values) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	renderer, err := view.NewRenderer()
	require.NoError(t, err)
	e.Renderer = renderer

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func loginAs(c echo.Context, user *entity.User) *entity.User {
	deliverycontext.SetUser(c, user)

	return user
}

func hasFlashCookie(rec *httptest.ResponseRecorder) bool {
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == "mensagens" && cookie.Value != "" {
			return true
		}
	}

	return false
}

func TestSafeNext(t *testing.T) {
	tests := []struct {
		next string
		want string
	}{
		{"/dashboard/", "/dashboard/"},
		{"/produto/1/?x=1", "/produto/1/?x=1"},
		{"", ""},
		{"https://evil.example/", ""},
		{"//evil.example/", ""},
		{"/\\evil.example", ""},
		{"dashboard", ""},
	}

	for _, tt := range tests {
		t.Run(tt.next, func(t *testing.T) {
			assert.Equal(t, tt.want, safeNext(tt.next))
		})
	}
}

func TestParseDate(t *testing.T) {
	got, err := parseDate(" 2025-12-31 ")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "2025-12-31", got.Format("2006-01-02"))

	got, err = parseDate("")
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = parseDate("31/12/2025")
	appErr, ok := userError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.NotEmpty(t, appErr.Details())
}

func TestParseIDs(t *testing.T) {
	a, b := uuid.New(), uuid.New()

	ids := parseIDs([]string{a.String(), "nope", " " + b.String() + " ", ""})
	assert.Equal(t, []uuid.UUID{a, b}, ids)
}

func TestOptionalString(t *testing.T) {
	c, _ := newTestContext(t, http.MethodPost, "/meu-perfil/", url.Values{"bio": {""}, "cidade": {"Recife"}})

	bio := optionalString(c, "bio")
	require.NotNil(t, bio)
	assert.Empty(t, *bio)

	city := optionalString(c, "cidade")
	require.NotNil(t, city)
	assert.Equal(t, "Recife", *city)

	assert.Nil(t, optionalString(c, "estado"))
}

func TestFlashOrFail(t *testing.T) {
	t.Run("business error becomes a flash", func(t *testing.T) {
		c, rec := newTestContext(t, http.MethodPost, "/", url.Values{})
		err := flashOrFail(c, domainerrors.ErrMessageEmpty)
		assert.NoError(t, err)
		assert.True(t, hasFlashCookie(rec))
	})

	t.Run("server error propagates", func(t *testing.T) {
		c, rec := newTestContext(t, http.MethodPost, "/", url.Values{})
		err := flashOrFail(c, domainerrors.ErrInternalError)
		assert.Error(t, err)
		assert.False(t, hasFlashCookie(rec))
	})

	t.Run("nil is nil", func(t *testing.T) {
		c, _ := newTestContext(t, http.MethodPost, "/", url.Values{})
		assert.NoError(t, flashOrFail(c, nil))
	})
}

func TestIsForbidden(t *testing.T) {
	assert.True(t, isForbidden(errors.WithStack(domainerrors.ErrForbidden)))
	assert.True(t, isForbidden(domainerrors.ErrUnauthorized))
	assert.False(t, isForbidden(domainerrors.ErrProductNotFound))
	assert.False(t, isForbidden(errors.New("boom")))
}
