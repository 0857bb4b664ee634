package http

import (
	"embed"
	"html/template"
	"net/http"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = template.Must(template.ParseFS(templateFS, "templates/*.html"))

type resultData struct {
	Filename string
	Text     string
}

type errorData struct {
	Message string
}

type testData struct {
	Status        string
	Message       string
	SamplePayload string
}

func (h *Handler) renderPage(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pages.ExecuteTemplate(w, name, data); err != nil {
		h.logger.Error("template render failed", "template", name, "err", err)
	}
}

func (h *Handler) renderError(w http.ResponseWriter, message string) {
	h.renderPage(w, "error.html", errorData{Message: message})
}
