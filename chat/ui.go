package chat

import "context"

// Authors used on outgoing messages.
const (
	AssistantAuthor = "Career Mentor"
	SystemAuthor    = "System"
)

// Message is one chat bubble rendered by a UI.
type Message struct {
	ID      string
	Author  string
	Content string
}

// UI is the rendering side of a conversation.
type UI interface {
	// Send displays a new message and returns its id for later updates.
	Send(ctx context.Context, msg Message) (string, error)
	// Update replaces the content of a previously sent message.
	Update(ctx context.Context, id, content string) error
}
