// Package view renders the server-side HTML pages.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"log/slog"
	"path"
	"strings"

	deliverycontext "kampina/internal/delivery/context"
	"kampina/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	layoutFile  = "templates/layout.html"
	templateDir = "templates"
	staticDir   = "static"
)

//go:embed templates static
var files embed.FS

// Page is the value every template is executed with.
type Page struct {
	CurrentUser *entity.User
	UserID      uuid.UUID // uuid.Nil for anonymous visitors.
	Success     []string
	Errors      []string
	Data        any
}

// Renderer implements echo.Renderer with one template set per page.
type Renderer struct {
	templates map[string]*template.Template
	logger    *slog.Logger
}

// NewRenderer parses the layout together with every page under templates/.
// Pages are keyed by their path without extension, e.g. "campgrounds/show".
func NewRenderer(logger *slog.Logger) (*Renderer, error) {
	templates := map[string]*template.Template{}

	err := fs.WalkDir(files, templateDir, func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || name == layoutFile || path.Ext(name) != ".html" {
			return nil
		}

		t, err := template.New(path.Base(layoutFile)).Funcs(funcs).ParseFS(files, layoutFile, name)
		if err != nil {
			return errors.Wrapf(err, "parse %s", name)
		}
		key := strings.TrimSuffix(strings.TrimPrefix(name, templateDir+"/"), ".html")
		templates[key] = t

		return nil
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &Renderer{templates: templates, logger: logger}, nil
}

// Render executes the named page. Queued flashes are drained into the page exactly once.
func (r *Renderer) Render(w io.Writer, name string, data any, c echo.Context) error {
	t, ok := r.templates[name]
	if !ok {
		return errors.Errorf("template %q not found", name)
	}

	page := Page{Data: data}
	if session := deliverycontext.GetSession(c); session != nil {
		page.Success = session.DrainFlashes(entity.FlashSuccess)
		page.Errors = session.DrainFlashes(entity.FlashError)
	}
	if user := deliverycontext.GetCurrentUser(c); user != nil {
		page.CurrentUser = user
		page.UserID = user.ID
	}

	if err := t.ExecuteTemplate(w, "layout", page); err != nil {
		return errors.Wrapf(err, "render %s", name)
	}

	return nil
}

// Has reports whether a page with the given name was parsed.
func (r *Renderer) Has(name string) bool {
	_, ok := r.templates[name]

	return ok
}

// StaticFS exposes the embedded assets served under /static.
func StaticFS() fs.FS {
	sub, err := fs.Sub(files, staticDir)
	if err != nil {
		panic(err)
	}

	return sub
}

//nolint:gochecknoglobals
var funcs = template.FuncMap{
	"price": func(p float64) string {
		return fmt.Sprintf("$%.2f", p)
	},
	"ratings": func() []int {
		r := make([]int, 0, entity.MaxRating)
		for i := entity.MinRating; i <= entity.MaxRating; i++ {
			r = append(r, i)
		}

		return r
	},
	"stars": func(rating int) string {
		if rating < 0 {
			rating = 0
		}
		if rating > entity.MaxRating {
			rating = entity.MaxRating
		}

		return strings.Repeat("★", rating) + strings.Repeat("☆", entity.MaxRating-rating)
	},
}
