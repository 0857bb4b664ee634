package pdf

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"strings"

	"github.com/gen2brain/go-fitz"

	"github.com/textlens/line_ocr_bot/internal/ports"
)

// document is the slice of *fitz.Document used by the extractor; tests supply
// fakes with synthetic pages.
type document interface {
	NumPage() int
	Text(page int) (string, error)
	Image(page int) (*image.RGBA, error)
	Close() error
}

var openDocument = func(data []byte) (document, error) {
	return fitz.NewFromMemory(data)
}

// Extractor produces a page-ordered text report from a PDF, falling back to
// OCR for pages without embedded text.
type Extractor struct {
	reader ports.TextReader
	logger *slog.Logger
}

func NewExtractor(reader ports.TextReader, logger *slog.Logger) *Extractor {
	return &Extractor{reader: reader, logger: logger}
}

// ExtractText walks pages in index order, strictly sequentially. A page with
// trimmed-empty embedded text is rasterized to PNG and run through the
// reader; its section is marked (OCR). Any document-level failure aborts the
// whole extraction and discards accumulated sections.
func (e *Extractor) ExtractText(ctx context.Context, pdfData []byte) (string, error) {
	doc, err := openDocument(pdfData)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer doc.Close()

	var report strings.Builder
	for page := 0; page < doc.NumPage(); page++ {
		pageText, err := doc.Text(page)
		if err != nil {
			return "", fmt.Errorf("read page %d: %w", page+1, err)
		}
		if strings.TrimSpace(pageText) != "" {
			fmt.Fprintf(&report, "\n--- Page %d ---\n%s\n", page+1, pageText)
			continue
		}

		img, err := doc.Image(page)
		if err != nil {
			return "", fmt.Errorf("render page %d: %w", page+1, err)
		}
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return "", fmt.Errorf("encode page %d: %w", page+1, err)
		}

		ocrText, err := e.reader.ReadText(ctx, buf.Bytes(), "image/png")
		if err != nil {
			// A failed OCR call still yields exactly one section for the
			// page, with the error reported inline as the page's text.
			e.logger.Error("page ocr failed", "page", page+1, "err", err)
			ocrText = fmt.Sprintf("Error processing image: %v", err)
		}
		fmt.Fprintf(&report, "\n--- Page %d (OCR) ---\n%s\n", page+1, ocrText)
	}
	return report.String(), nil
}
