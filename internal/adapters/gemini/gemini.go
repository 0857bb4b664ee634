package gemini

import (
	"context"
	"fmt"
	"log/slog"

	"google.golang.org/genai"

	"github.com/textlens/line_ocr_bot/internal/config"
)

const ocrPrompt = "Extract all text from this image. Return only the extracted text, no additional formatting or explanations."

// noTextSentinel is returned on a successful call that yielded no text, so
// callers never see an empty extraction.
const noTextSentinel = "No text could be extracted from the image."

// modelCaller is the slice of the genai client used here; tests inject a stub
// without hitting the API.
type modelCaller interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Reader extracts text from images through the Gemini API.
type Reader struct {
	caller modelCaller
	model  string
	logger *slog.Logger
}

func NewReader(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Reader, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &Reader{caller: client.Models, model: cfg.GeminiModel, logger: logger}, nil
}

// ReadText issues one generation call with the OCR prompt and the image as an
// inline part. Every invocation is a fresh upstream request.
func (r *Reader) ReadText(ctx context.Context, image []byte, mimeType string) (string, error) {
	contents := []*genai.Content{
		{
			Parts: []*genai.Part{
				{Text: ocrPrompt},
				genai.NewPartFromBytes(image, mimeType),
			},
		},
	}

	r.logger.Info("sending image to gemini", "mime_type", mimeType, "size", len(image))
	resp, err := r.caller.GenerateContent(ctx, r.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	var text string
	if len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil {
		for _, part := range resp.Candidates[0].Content.Parts {
			if part.Text != "" {
				text += part.Text
			}
		}
	}
	if text == "" {
		r.logger.Warn("no text extracted from image")
		return noTextSentinel, nil
	}
	return text, nil
}
