package memory

import (
	"context"
	"sync"

	"github.com/jschwar2552/expedia-dashboard-redesign/internal/domain"
)

// ConversationStore is an in-memory implementation of
// domain.ConversationStore for single-node runs and tests. Operations are
// individually safe for concurrent use; callers needing ordered appends on
// one key must serialize their own sends.
type ConversationStore struct {
	mu            sync.RWMutex
	conversations map[string][]domain.Turn
}

// NewConversationStore creates a new in-memory conversation store
func NewConversationStore() *ConversationStore {
	return &ConversationStore{
		conversations: make(map[string][]domain.Turn),
	}
}

// History returns the stored turns for a key, oldest-first
func (s *ConversationStore) History(ctx context.Context, key domain.ConversationKey) ([]domain.Turn, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	turns := s.conversations[key.String()]
	out := make([]domain.Turn, len(turns))
	copy(out, turns)
	return out, nil
}

// Append adds turns to the end of a conversation
func (s *ConversationStore) Append(ctx context.Context, key domain.ConversationKey, turns ...domain.Turn) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := key.String()
	s.conversations[k] = append(s.conversations[k], turns...)
	return nil
}

// Trim keeps only the most recent n turns, dropping the oldest first
func (s *ConversationStore) Trim(ctx context.Context, key domain.ConversationKey, n int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := key.String()
	turns := s.conversations[k]
	if len(turns) > n {
		s.conversations[k] = append([]domain.Turn(nil), turns[len(turns)-n:]...)
	}
	return nil
}

// Clear removes a conversation entirely
func (s *ConversationStore) Clear(ctx context.Context, key domain.ConversationKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.conversations, key.String())
	return nil
}
