package domain

// ReplyMessage is one outbound message in a reply. Only text messages are
// produced by this bot.
type ReplyMessage struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// ReplyRequest is the body posted to the platform's reply endpoint.
// A reply token is single-use; the platform caps Messages at five.
type ReplyRequest struct {
	ReplyToken string         `json:"replyToken"`
	Messages   []ReplyMessage `json:"messages"`
}

func NewTextMessage(text string) ReplyMessage {
	return ReplyMessage{Type: MessageTypeText, Text: text}
}
