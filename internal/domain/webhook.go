package domain

import "errors"

// ErrInvalidJSON marks a webhook body that could not be decoded.
// Delivery maps it to a client error status.
var ErrInvalidJSON = errors.New("invalid JSON data")

const (
	EventTypeMessage = "message"

	MessageTypeText  = "text"
	MessageTypeImage = "image"
)

// WebhookPayload is the body the messaging platform delivers on each webhook call.
type WebhookPayload struct {
	Destination string  `json:"destination,omitempty"`
	Events      []Event `json:"events"`
}

type Event struct {
	Type       string  `json:"type"`
	ReplyToken string  `json:"replyToken,omitempty"`
	Source     Source  `json:"source,omitempty"`
	Message    Message `json:"message,omitempty"`
	Timestamp  int64   `json:"timestamp,omitempty"`
}

type Source struct {
	UserID string `json:"userId,omitempty"`
}

type Message struct {
	Type string `json:"type"`
	ID   string `json:"id,omitempty"`
	Text string `json:"text,omitempty"`
}
