package domain

import "context"

// Role represents the sender of a conversation turn
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn represents a single message in a conversation
type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// DefaultMaxTurns bounds conversation growth; oldest turns are dropped first.
const DefaultMaxTurns = 20

// ConversationKey identifies a conversation session
type ConversationKey struct {
	UserID         string
	ConversationID string
}

// NewConversationKey builds a key, filling in the defaults used for
// anonymous dashboard sessions.
func NewConversationKey(userID, conversationID string) ConversationKey {
	if userID == "" {
		userID = "anonymous"
	}
	if conversationID == "" {
		conversationID = "default"
	}
	return ConversationKey{UserID: userID, ConversationID: conversationID}
}

func (k ConversationKey) String() string {
	return k.UserID + "_" + k.ConversationID
}

// ConversationStore defines the interface for conversation history storage.
// History returns turns oldest-first. Trim keeps the most recent n turns.
type ConversationStore interface {
	History(ctx context.Context, key ConversationKey) ([]Turn, error)
	Append(ctx context.Context, key ConversationKey, turns ...Turn) error
	Trim(ctx context.Context, key ConversationKey, n int) error
	Clear(ctx context.Context, key ConversationKey) error
}
