package line

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/bytedance/sonic"

	"github.com/textlens/line_ocr_bot/internal/config"
	"github.com/textlens/line_ocr_bot/internal/domain"
)

// Client talks to the platform's reply and content APIs with a static bearer
// token. It implements both ports.ReplySender and ports.ContentFetcher.
type Client struct {
	client     *http.Client
	logger     *slog.Logger
	token      string
	replyURL   string
	contentURL string // base URL; message id and /content are appended
}

func NewClient(cfg *config.Config, logger *slog.Logger) *Client {
	return &Client{
		client:     &http.Client{},
		logger:     logger,
		token:      cfg.ChannelAccessToken,
		replyURL:   cfg.ReplyAPIURL,
		contentURL: cfg.ContentAPIURL,
	}
}

// SendReply issues one POST against the reply endpoint. Only HTTP 200 counts
// as success; anything else is reported with the status code. No retries.
func (c *Client) SendReply(ctx context.Context, replyToken string, messages []domain.ReplyMessage) error {
	body, err := sonic.Marshal(domain.ReplyRequest{ReplyToken: replyToken, Messages: messages})
	if err != nil {
		return fmt.Errorf("marshal reply: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.replyURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	c.logger.Info("sending reply", "url", c.replyURL, "messages", len(messages))
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("send reply: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("failed to send reply: %d: %s", resp.StatusCode, string(data))
	}
	return nil
}

// FetchContent downloads a message attachment. The returned content type
// defaults to image/jpeg when the platform omits the header.
func (c *Client) FetchContent(ctx context.Context, messageID string) ([]byte, string, error) {
	url := fmt.Sprintf("%s/%s/content", c.contentURL, messageID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("fetch content: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("failed to fetch image: %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("read content: %w", err)
	}
	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}
	c.logger.Info("fetched message content", "message_id", messageID, "size", len(data))
	return data, contentType, nil
}
