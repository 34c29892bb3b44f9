package messages

import "context"

type Message struct {
	ID        string `json:"id"`
	Sender    string `json:"sender"`
	Receiver  string `json:"receiver"`
	Content   string `json:"content"`
	Read      bool   `json:"read"`
	CreatedAt string `json:"createdAt,omitempty"`
}

type SendInput struct {
	Receiver string `json:"receiver" validate:"required"`
	Content  string `json:"content" validate:"required,max=5000"`
}

// Conversation resume el último mensaje con otro usuario.
type Conversation struct {
	User        string  `json:"user"`
	Name        string  `json:"name,omitempty"`
	LastMessage Message `json:"lastMessage"`
	UnreadCount int     `json:"unreadCount"`
}

type MarkReadInput struct {
	Sender string `json:"sender" validate:"required"`
}

type Gateway interface {
	SendMessage(ctx context.Context, token string, in SendInput) (Message, error)
	ListMessages(ctx context.Context, token, withUser string) ([]Message, error)
	ListConversations(ctx context.Context, token string) ([]Conversation, error)
	MarkMessagesRead(ctx context.Context, token, sender string) error
}
