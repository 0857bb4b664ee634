package ocrspace

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"

	ocr "github.com/ranghetto/go_ocr_space"

	"github.com/textlens/line_ocr_bot/internal/config"
)

const noTextSentinel = "No text could be extracted from the image."

// Reader extracts text from images through the OCR.space API. Alternative
// TextReader provider, selected with OCR_PROVIDER=ocrspace.
type Reader struct {
	config ocr.Config
	logger *slog.Logger
}

func NewReader(cfg *config.Config, logger *slog.Logger) *Reader {
	return &Reader{
		config: ocr.InitConfig(cfg.OCRSpaceAPIKey, "eng", ocr.OCREngine2),
		logger: logger,
	}
}

func (r *Reader) ReadText(ctx context.Context, image []byte, mimeType string) (string, error) {
	encoded := fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(image))
	result, err := r.config.ParseFromBase64(encoded)
	if err != nil {
		return "", fmt.Errorf("ocr read: %w", err)
	}

	text := result.JustText()
	if text == "" {
		return noTextSentinel, nil
	}
	r.logger.Info("ocrspace extraction done", "chars", len(text))
	return text, nil
}
