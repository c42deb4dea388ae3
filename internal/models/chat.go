package models

const (
	SenderMe    = "me"
	SenderOther = "other"
)

type Contact struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Avatar      string `json:"avatar"`
	LastMessage string `json:"lastMessage"`
	Timestamp   string `json:"timestamp"`
	Online      bool   `json:"online"`
}

// Message is stored at chats/{userId}/{contactId}/{messageId}.
type Message struct {
	ID        string `json:"id"`
	Sender    string `json:"sender" validate:"required,oneof=me other"`
	Text      string `json:"text" validate:"required"`
	Timestamp int64  `json:"timestamp"`
}
