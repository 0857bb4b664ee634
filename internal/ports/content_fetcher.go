package ports

import "context"

// ContentFetcher downloads a message attachment from the messaging platform
// by message id, returning the raw bytes and their content type.
type ContentFetcher interface {
	FetchContent(ctx context.Context, messageID string) ([]byte, string, error)
}
