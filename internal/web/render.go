// Package web assembles the HTTP surface of the front end: routing,
// rendering, and the central error handler.
package web

import (
	"embed"
	"html/template"
	"io"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer satisfies echo.Renderer with the embedded HTML templates.
type Renderer struct {
	templates *template.Template
}

var funcMap = template.FuncMap{
	// date accepts both time.Time and *time.Time; templates hold the
	// optional publication timestamp as a pointer.
	"date": func(v any) string {
		var t time.Time
		switch x := v.(type) {
		case time.Time:
			t = x
		case *time.Time:
			if x == nil {
				return ""
			}
			t = *x
		default:
			return ""
		}
		if t.IsZero() {
			return ""
		}
		return t.Format("Jan 2, 2006")
	},
	"join": func(parts []string) string {
		return strings.Join(parts, ", ")
	},
}

// NewRenderer parses all embedded templates once at startup.
func NewRenderer() (*Renderer, error) {
	t, err := template.New("").Funcs(funcMap).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{templates: t}, nil
}

// Render implements echo.Renderer.
func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
