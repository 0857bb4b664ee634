package ports

import "context"

// TextReader extracts text from raw image bytes. Implementations issue one
// fresh upstream call per invocation; there is no caching. An empty but
// successful extraction is reported as a sentinel string, not an error.
type TextReader interface {
	ReadText(ctx context.Context, image []byte, mimeType string) (string, error)
}
