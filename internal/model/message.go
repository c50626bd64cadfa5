package model

import "time"

// AssistantName is the display name of the built-in assistant persona.
const AssistantName = "Rima"

// SenderKind discriminates between human members and the assistant.
type SenderKind string

const (
	SenderUser      SenderKind = "user"
	SenderAssistant SenderKind = "assistant"
)

// Sender is a tagged union: either a reference to a known user or the
// assistant persona. User is nil iff Kind == SenderAssistant.
type Sender struct {
	Kind SenderKind `json:"kind"`
	User *User      `json:"user,omitempty"`
}

// UserSender wraps a user as a message sender.
func UserSender(u User) Sender {
	return Sender{Kind: SenderUser, User: &u}
}

// AssistantSender is the sender tag for assistant messages.
func AssistantSender() Sender {
	return Sender{Kind: SenderAssistant}
}

// Name returns the display name of the sender.
func (s Sender) Name() string {
	if s.Kind == SenderAssistant || s.User == nil {
		return AssistantName
	}
	return s.User.Name
}

// IsAssistant reports whether the sender is the assistant persona.
func (s Sender) IsAssistant() bool {
	return s.Kind == SenderAssistant
}

// Message is a single chat message. Immutable once created; appended to
// a workspace's or room's message list.
type Message struct {
	ID          string    `json:"id"`
	WorkspaceID string    `json:"workspace_id"`
	RoomID      string    `json:"room_id,omitempty"` // empty for workspace-level messages
	Sender      Sender    `json:"sender"`
	Content     string    `json:"content"`
	Timestamp   time.Time `json:"timestamp"`
}
