package view

import (
	"html/template"
	"io"
	"io/fs"

	"github.com/labstack/echo/v4"
)

// Renderer adapts one parsed html/template set to echo's Renderer interface.
// Template names are the {{define}} names, e.g. "cars/list".
type Renderer struct {
	templates *template.Template
}

// NewRenderer parses every page template from fsys (rooted at "templates").
func NewRenderer(fsys fs.FS) (*Renderer, error) {
	templates, err := template.New("pages").Funcs(FuncMap()).ParseFS(fsys,
		"templates/*.html",
		"templates/*/*.html",
	)
	if err != nil {
		return nil, err
	}
	return &Renderer{templates: templates}, nil
}

func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
