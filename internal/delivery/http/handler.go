package http

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/bytedance/sonic"

	"github.com/textlens/line_ocr_bot/internal/domain"
	"github.com/textlens/line_ocr_bot/internal/useCases"
)

const maxUploadSize = 32 << 20 // multipart memory limit

// Handler owns the HTTP-facing side of both entry points.
type Handler struct {
	upload  *useCases.UploadService
	webhook *useCases.WebhookService
	logger  *slog.Logger
}

func NewHandler(upload *useCases.UploadService, webhook *useCases.WebhookService, logger *slog.Logger) *Handler {
	return &Handler{upload: upload, webhook: webhook, logger: logger}
}

// Index serves the upload form.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, "index.html", nil)
}

// Upload accepts a multipart file field named "file" and renders the
// extraction result. Classification failures get their own pages; anything
// unexpected falls through to the generic error page so a single request can
// never take the process down.
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		h.renderError(w, "No file uploaded. Please select a file and try again.")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		h.renderError(w, "No file uploaded. Please select a file and try again.")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.logger.Error("upload read failed", "err", err)
		h.renderError(w, fmt.Sprintf("An error occurred while processing the file: %v", err))
		return
	}

	text, err := h.upload.Process(r.Context(), header.Filename, data)
	switch {
	case err == nil:
		h.renderPage(w, "result.html", resultData{Filename: header.Filename, Text: text})
	case errors.Is(err, domain.ErrNoFile):
		h.renderError(w, "No file uploaded. Please select a file and try again.")
	default:
		var unsupported *domain.UnsupportedFormatError
		if errors.As(err, &unsupported) {
			h.renderError(w, fmt.Sprintf("Unsupported file format: %s. Please upload JPG, PNG, or PDF files.", unsupported.Ext))
			return
		}
		h.logger.Error("upload processing failed", "file", header.Filename, "err", err)
		h.renderError(w, fmt.Sprintf("An error occurred while processing the file: %v", err))
	}
}

// Webhook accepts the platform's event batch and answers with a JSON status
// body: 400 on unparsable JSON, 500 on anything else, 200 otherwise.
func (h *Handler) Webhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.writeJSON(w, http.StatusInternalServerError, statusBody{Status: "error", Message: fmt.Sprintf("Error processing webhook: %v", err)})
		return
	}

	err = h.webhook.Process(r.Context(), body)
	switch {
	case err == nil:
		h.writeJSON(w, http.StatusOK, statusBody{Status: "success", Message: "Webhook processed successfully"})
	case errors.Is(err, domain.ErrInvalidJSON):
		h.writeJSON(w, http.StatusBadRequest, statusBody{Status: "error", Message: "Invalid JSON data"})
	default:
		h.writeJSON(w, http.StatusInternalServerError, statusBody{Status: "error", Message: fmt.Sprintf("Error processing webhook: %v", err)})
	}
}

// Test fires the canned reply against the configured default token and shows
// the outcome, plus a sample image payload for manual webhook testing.
func (h *Handler) Test(w http.ResponseWriter, r *http.Request) {
	status, message := "success", "Reply sent successfully"
	if err := h.webhook.SendTestReply(r.Context()); err != nil {
		status, message = "error", err.Error()
	}
	h.renderPage(w, "test.html", testData{
		Status:        status,
		Message:       message,
		SamplePayload: sampleImagePayload,
	})
}

type statusBody struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, body statusBody) {
	data, err := sonic.Marshal(body)
	if err != nil {
		http.Error(w, "Encoding error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(data)
}

const sampleImagePayload = `{
  "events": [{
    "type": "message",
    "replyToken": "test_reply_token",
    "message": {
      "type": "image",
      "id": "test_image_id"
    }
  }]
}`
