package useCases

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bytedance/sonic"

	"github.com/textlens/line_ocr_bot/internal/domain"
	"github.com/textlens/line_ocr_bot/internal/ports"
)

// WebhookService relays inbound platform events to the OCR reader and posts
// replies back through the reply sender.
type WebhookService struct {
	reader            ports.TextReader
	fetcher           ports.ContentFetcher
	sender            ports.ReplySender
	defaultReplyToken string
	logger            *slog.Logger
}

func NewWebhookService(
	reader ports.TextReader,
	fetcher ports.ContentFetcher,
	sender ports.ReplySender,
	defaultReplyToken string,
	logger *slog.Logger,
) *WebhookService {
	return &WebhookService{
		reader:            reader,
		fetcher:           fetcher,
		sender:            sender,
		defaultReplyToken: defaultReplyToken,
		logger:            logger,
	}
}

// Process handles one webhook delivery. The only error it returns wraps
// domain.ErrInvalidJSON; per-event reply failures are logged and do not
// abort the batch or change the outcome.
func (s *WebhookService) Process(ctx context.Context, body []byte) error {
	var payload domain.WebhookPayload
	if err := sonic.Unmarshal(body, &payload); err != nil {
		s.logger.Error("webhook decode failed", "err", err)
		return fmt.Errorf("%w: %v", domain.ErrInvalidJSON, err)
	}

	// The first event's token is reused for every reply in the batch,
	// falling back to the configured default. Real reply tokens are
	// single-use; see DESIGN.md before changing this.
	replyToken := s.defaultReplyToken
	if len(payload.Events) > 0 && payload.Events[0].ReplyToken != "" {
		replyToken = payload.Events[0].ReplyToken
	}

	for _, event := range payload.Events {
		if event.Type != domain.EventTypeMessage {
			s.logger.Info("skipping event", "type", event.Type)
			continue
		}
		messages := s.buildReply(ctx, event.Message)
		if err := s.sender.SendReply(ctx, replyToken, messages); err != nil {
			s.logger.Error("reply failed", "err", err)
		}
	}
	return nil
}

func (s *WebhookService) buildReply(ctx context.Context, msg domain.Message) []domain.ReplyMessage {
	switch msg.Type {
	case domain.MessageTypeImage:
		data, contentType, err := s.fetcher.FetchContent(ctx, msg.ID)
		if err != nil {
			s.logger.Error("content fetch failed", "message_id", msg.ID, "err", err)
			return []domain.ReplyMessage{
				domain.NewTextMessage(fmt.Sprintf("❌ Sorry, I couldn't process the image. Error: %v", err)),
			}
		}
		text, err := s.reader.ReadText(ctx, data, contentType)
		if err != nil {
			s.logger.Error("image ocr failed", "message_id", msg.ID, "err", err)
			text = fmt.Sprintf("Error processing image: %v", err)
		}
		return []domain.ReplyMessage{
			domain.NewTextMessage("📷 Image received! Here's the extracted text:"),
			domain.NewTextMessage(text),
		}
	case domain.MessageTypeText:
		return cannedTextReply()
	default:
		return []domain.ReplyMessage{
			domain.NewTextMessage(fmt.Sprintf("Received %s message. Please send an image for OCR processing or text for general chat.", msg.Type)),
		}
	}
}

// SendTestReply posts the canned text reply with the default token. Backs the
// /test endpoint.
func (s *WebhookService) SendTestReply(ctx context.Context) error {
	return s.sender.SendReply(ctx, s.defaultReplyToken, cannedTextReply())
}

func cannedTextReply() []domain.ReplyMessage {
	return []domain.ReplyMessage{
		domain.NewTextMessage("Hello, user"),
		domain.NewTextMessage("May I help you?"),
	}
}
