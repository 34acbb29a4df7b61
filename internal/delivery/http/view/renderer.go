// Package view renders the server-side HTML pages.
package view

import (
	"bytes"
	"embed"
	"html/template"
	"io"
	"io/fs"
	"strings"
	"time"

	deliverycontext "comerciojusto/internal/delivery/context"
	"comerciojusto/internal/delivery/http/flash"
	"comerciojusto/internal/domain/entity"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

//go:embed templates/*.html
var templateFS embed.FS

const layout = "templates/base.html"

// Page is the model every template receives. Handler data sits in Data.
type Page struct {
	Title     string
	User      *entity.User
	Counters  deliverycontext.Counters
	Flashes   []flash.Message
	CSRFToken string
	Path      string
	Data      any
}

// Renderer implements echo.Renderer over the embedded templates.
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parses every page together with the shared layout.
func NewRenderer() (*Renderer, error) {
	files, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, errors.WithStack(err)
	}

	pages := make(map[string]*template.Template, len(files))
	for _, file := range files {
		if file == layout {
			continue
		}

		name := strings.TrimSuffix(strings.TrimPrefix(file, "templates/"), ".html")
		tmpl, err := template.New("base.html").Funcs(Funcs()).ParseFS(templateFS, layout, file)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse template %s", name)
		}
		pages[name] = tmpl
	}

	return &Renderer{pages: pages}, nil
}

// Render executes a page into a buffer first so a template error never leaves a half-written response.
func (r *Renderer) Render(w io.Writer, name string, data any, c echo.Context) error {
	tmpl, ok := r.pages[name]
	if !ok {
		return errors.Errorf("template %q not found", name)
	}

	page, ok := data.(*Page)
	if !ok {
		page = &Page{Data: data}
	}
	r.fill(page, c)

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "base.html", page); err != nil {
		return errors.Wrapf(err, "failed to render template %s", name)
	}

	_, err := buf.WriteTo(w)

	return errors.WithStack(err)
}

// Has reports whether a page exists.
func (r *Renderer) Has(name string) bool {
	_, ok := r.pages[name]

	return ok
}

func (r *Renderer) fill(page *Page, c echo.Context) {
	if c == nil {
		return
	}
	if user, ok := deliverycontext.GetUser(c); ok {
		page.User = user
	}
	page.Counters = deliverycontext.GetCounters(c)
	page.Flashes = flash.Pop(c)
	if token, ok := c.Get(echomiddleware.DefaultCSRFConfig.ContextKey).(string); ok {
		page.CSRFToken = token
	}
	page.Path = c.Request().URL.Path
}

// Funcs are the helpers available to every template.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"money":      Money,
		"date":       formatDate,
		"dateISO":    formatDateISO,
		"datetime":   formatDateTime,
		"media":      MediaURL,
		"stars":      func(d decimal.Decimal) string { return d.StringFixed(1) },
		"categories": entity.Categories,
		"deref":      deref,
		"seq":        seq,
	}
}

func deref(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}

	return *d
}

// seq returns 1..n, for star pickers.
func seq(n int) []int {
	out := make([]int, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, i)
	}

	return out
}

// Money formats a price the Brazilian way: R$ 1234,50.
func Money(d decimal.Decimal) string {
	return "R$ " + strings.Replace(d.StringFixed(2), ".", ",", 1)
}

// MediaURL maps a blob key to the route that streams it.
func MediaURL(key string) string {
	if key == "" {
		return ""
	}

	return "/media/" + key
}

func formatDate(v any) string {
	switch t := v.(type) {
	case time.Time:
		return t.Format("02/01/2006")
	case *time.Time:
		if t == nil {
			return ""
		}

		return t.Format("02/01/2006")
	default:
		return ""
	}
}

func formatDateISO(t *time.Time) string {
	if t == nil {
		return ""
	}

	return t.Format(time.DateOnly)
}

func formatDateTime(t time.Time) string {
	return t.Format("02/01/2006 15:04")
}
