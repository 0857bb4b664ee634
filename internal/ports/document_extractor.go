package ports

import "context"

// DocumentExtractor turns a whole PDF into a page-ordered text report.
type DocumentExtractor interface {
	ExtractText(ctx context.Context, pdf []byte) (string, error)
}
