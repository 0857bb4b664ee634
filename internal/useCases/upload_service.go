package useCases

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/textlens/line_ocr_bot/internal/domain"
	"github.com/textlens/line_ocr_bot/internal/ports"
)

var imageMIMETypes = map[string]string{
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"png":  "image/png",
}

// UploadService classifies uploaded files by extension and dispatches them to
// the matching extraction path.
type UploadService struct {
	reader    ports.TextReader
	extractor ports.DocumentExtractor
	logger    *slog.Logger
}

func NewUploadService(reader ports.TextReader, extractor ports.DocumentExtractor, logger *slog.Logger) *UploadService {
	return &UploadService{reader: reader, extractor: extractor, logger: logger}
}

// Process returns the extracted text for a supported upload. Classification
// failures are typed (domain.ErrNoFile, *domain.UnsupportedFormatError) so
// delivery can render distinct pages. Upstream extraction failures are
// recovered here and rendered inline as the extracted text.
func (s *UploadService) Process(ctx context.Context, filename string, data []byte) (string, error) {
	if filename == "" || len(data) == 0 {
		return "", domain.ErrNoFile
	}

	ext := ""
	if i := strings.LastIndex(filename, "."); i >= 0 {
		ext = strings.ToLower(filename[i+1:])
	}

	if mimeType, ok := imageMIMETypes[ext]; ok {
		s.logger.Info("processing image upload", "file", filename, "mime_type", mimeType)
		text, err := s.reader.ReadText(ctx, data, mimeType)
		if err != nil {
			s.logger.Error("image ocr failed", "file", filename, "err", err)
			return fmt.Sprintf("Error processing image: %v", err), nil
		}
		return text, nil
	}

	if ext == "pdf" {
		s.logger.Info("processing pdf upload", "file", filename)
		text, err := s.extractor.ExtractText(ctx, data)
		if err != nil {
			s.logger.Error("pdf extraction failed", "file", filename, "err", err)
			return fmt.Sprintf("Error processing PDF: %v", err), nil
		}
		return text, nil
	}

	return "", &domain.UnsupportedFormatError{Ext: ext}
}
