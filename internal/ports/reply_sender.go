package ports

import (
	"context"

	"github.com/textlens/line_ocr_bot/internal/domain"
)

// ReplySender posts one reply, in message order, against a reply token.
type ReplySender interface {
	SendReply(ctx context.Context, replyToken string, messages []domain.ReplyMessage) error
}
