package http

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter wires the HTTP routes for both entry points.
func NewRouter(h *Handler, logger *slog.Logger) http.Handler {
	r := mux.NewRouter()
	r.Use(requestLogger(logger))
	r.HandleFunc("/", h.Index).Methods(http.MethodGet)
	r.HandleFunc("/upload", h.Upload).Methods(http.MethodPost)
	r.HandleFunc("/webhook", h.Webhook).Methods(http.MethodPost)
	r.HandleFunc("/test", h.Test).Methods(http.MethodGet)
	return r
}
