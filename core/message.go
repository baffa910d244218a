package core

// Conversation roles understood by the runtime and the model adapters.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
	RoleTool      = "tool"
)

// Message is a single role-tagged turn of the user-visible conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// UserMessage builds a user turn.
func UserMessage(text string) Message { return Message{Role: RoleUser, Content: text} }

// AssistantMessage builds an assistant turn.
func AssistantMessage(text string) Message { return Message{Role: RoleAssistant, Content: text} }

// Transcript is the ordered conversation history of one session. It only ever
// grows by append.
type Transcript []Message

// Append returns a new transcript with msgs appended. The receiver is never
// modified, so a caller can discard the result to abandon a failed turn.
func (t Transcript) Append(msgs ...Message) Transcript {
	out := make(Transcript, 0, len(t)+len(msgs))
	out = append(out, t...)
	return append(out, msgs...)
}

// Contents converts the transcript into model contents, preserving order.
func (t Transcript) Contents() []Content {
	contents := make([]Content, 0, len(t))
	for _, m := range t {
		contents = append(contents, NewTextContent(m.Role, m.Content))
	}
	return contents
}
