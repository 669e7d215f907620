package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jschwar2552/expedia-dashboard-redesign/internal/domain"
)

const (
	conversationPrefix = "conversation:"
	conversationTTL    = 24 * time.Hour
)

// ConversationStore is a Redis-backed implementation of
// domain.ConversationStore. Each conversation is a list of JSON-encoded
// turns, oldest-first.
type ConversationStore struct {
	client *Client
}

// NewConversationStore creates a new Redis conversation store
func NewConversationStore(client *Client) *ConversationStore {
	return &ConversationStore{client: client}
}

func conversationKey(key domain.ConversationKey) string {
	return conversationPrefix + key.String()
}

// History returns the stored turns for a key, oldest-first
func (s *ConversationStore) History(ctx context.Context, key domain.ConversationKey) ([]domain.Turn, error) {
	items, err := s.client.rdb.LRange(ctx, conversationKey(key), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read conversation: %w", err)
	}

	turns := make([]domain.Turn, 0, len(items))
	for _, item := range items {
		var turn domain.Turn
		if err := json.Unmarshal([]byte(item), &turn); err != nil {
			return nil, fmt.Errorf("failed to unmarshal turn: %w", err)
		}
		turns = append(turns, turn)
	}
	return turns, nil
}

// Append adds turns to the end of a conversation and refreshes its TTL
func (s *ConversationStore) Append(ctx context.Context, key domain.ConversationKey, turns ...domain.Turn) error {
	if len(turns) == 0 {
		return nil
	}

	values := make([]any, 0, len(turns))
	for _, turn := range turns {
		data, err := json.Marshal(turn)
		if err != nil {
			return fmt.Errorf("failed to marshal turn: %w", err)
		}
		values = append(values, data)
	}

	k := conversationKey(key)
	pipe := s.client.rdb.Pipeline()
	pipe.RPush(ctx, k, values...)
	pipe.Expire(ctx, k, conversationTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to append turns: %w", err)
	}
	return nil
}

// Trim keeps only the most recent n turns
func (s *ConversationStore) Trim(ctx context.Context, key domain.ConversationKey, n int) error {
	if err := s.client.rdb.LTrim(ctx, conversationKey(key), int64(-n), -1).Err(); err != nil {
		return fmt.Errorf("failed to trim conversation: %w", err)
	}
	return nil
}

// Clear removes a conversation entirely
func (s *ConversationStore) Clear(ctx context.Context, key domain.ConversationKey) error {
	if err := s.client.rdb.Del(ctx, conversationKey(key)).Err(); err != nil {
		return fmt.Errorf("failed to clear conversation: %w", err)
	}
	return nil
}
