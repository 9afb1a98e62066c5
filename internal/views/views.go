// Package views renders the server-side HTML pages. The markup is kept
// minimal; the pages exist to surface the cafes list, the logged-in flag,
// and one-shot status messages.
package views

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/cafedirectory/backend/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// HomeData is the data consumed by the home page
type HomeData struct {
	Cafes    []models.Cafe
	LoggedIn bool
	Flash    string
}

// FormData is the data consumed by the register and login pages
type FormData struct {
	Flash string
}

// Renderer renders named HTML templates
type Renderer struct {
	templates *template.Template
}

// New parses the embedded templates and creates a renderer
func New() (*Renderer, error) {
	templates, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	return &Renderer{templates: templates}, nil
}

// Render writes the named template to the response with the given status
func (rd *Renderer) Render(w http.ResponseWriter, status int, name string, data any) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)

	if err := rd.templates.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}

	return nil
}
