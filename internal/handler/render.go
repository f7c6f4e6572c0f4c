package handler

import (
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/cinetrack-web/internal/catalog"
	"github.com/iliyamo/cinetrack-web/internal/middleware"
	"github.com/iliyamo/cinetrack-web/internal/model"
)

// pages are the templates rendered inside layout.html.
var pages = []string{"signup", "login", "main", "movie", "bookings", "cancel", "error"}

// Renderer renders the embedded page templates for echo.
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parses every page together with the shared layout.
func NewRenderer(fsys fs.FS) (*Renderer, error) {
	funcs := template.FuncMap{
		"showTime": model.FormatShowTime,
		"rating":   func(v float64) string { return fmt.Sprintf("%.1f", v) },
		"ratingOption": func(v string) string {
			switch v {
			case catalog.All:
				return "All Ratings"
			case "0":
				return "All (0+)"
			}
			return v + "+"
		},
	}
	r := &Renderer{pages: make(map[string]*template.Template, len(pages))}
	for _, name := range pages {
		t, err := template.New(name).Funcs(funcs).ParseFS(fsys, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// Render implements echo.Renderer.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}
	return t.ExecuteTemplate(w, "layout", data)
}

// render fills in what every page shows (user, flash, CSRF token) and
// renders the named page.
func (h *Handler) render(c echo.Context, status int, name string, data echo.Map) error {
	if data == nil {
		data = echo.Map{}
	}
	if u, ok := middleware.CurrentUser(c); ok {
		data["User"] = &u
	}
	if _, ok := data["Flash"]; !ok {
		if msg := h.Sessions.PopFlash(c); msg != "" {
			data["Flash"] = msg
		}
	}
	if tok, ok := c.Get("csrf").(string); ok {
		data["CSRF"] = tok
	}
	return c.Render(status, name, data)
}

// renderError shows the error page with a user-facing message.
func (h *Handler) renderError(c echo.Context, status int, msg string) error {
	return h.render(c, status, "error", echo.Map{
		"Status":  fmt.Sprintf("%d %s", status, http.StatusText(status)),
		"Message": msg,
	})
}
