package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jschwar2552/expedia-dashboard-redesign/internal/domain"
)

// ConversationStore is a Postgres-backed implementation of
// domain.ConversationStore using the conversation_turns table.
type ConversationStore struct {
	pool *pgxpool.Pool
}

// NewConversationStore creates a new Postgres conversation store
func NewConversationStore(db *DB) *ConversationStore {
	return &ConversationStore{pool: db.Pool}
}

// History returns the stored turns for a key, oldest-first
func (s *ConversationStore) History(ctx context.Context, key domain.ConversationKey) ([]domain.Turn, error) {
	query := `
		SELECT role, content
		FROM conversation_turns
		WHERE user_id = $1 AND conversation_id = $2
		ORDER BY id ASC
	`

	rows, err := s.pool.Query(ctx, query, key.UserID, key.ConversationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list turns: %w", err)
	}
	defer rows.Close()

	var turns []domain.Turn
	for rows.Next() {
		var roleStr string
		var turn domain.Turn
		if err := rows.Scan(&roleStr, &turn.Content); err != nil {
			return nil, fmt.Errorf("failed to scan turn: %w", err)
		}
		turn.Role = domain.Role(roleStr)
		turns = append(turns, turn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read turns: %w", err)
	}

	return turns, nil
}

// Append inserts turns at the end of a conversation
func (s *ConversationStore) Append(ctx context.Context, key domain.ConversationKey, turns ...domain.Turn) error {
	query := `
		INSERT INTO conversation_turns (user_id, conversation_id, role, content, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	now := time.Now().UTC()
	for _, turn := range turns {
		if _, err := s.pool.Exec(ctx, query,
			key.UserID,
			key.ConversationID,
			string(turn.Role),
			turn.Content,
			now,
		); err != nil {
			return fmt.Errorf("failed to insert turn: %w", err)
		}
	}
	return nil
}

// Trim deletes all but the most recent n turns of a conversation
func (s *ConversationStore) Trim(ctx context.Context, key domain.ConversationKey, n int) error {
	query := `
		DELETE FROM conversation_turns
		WHERE user_id = $1 AND conversation_id = $2 AND id NOT IN (
			SELECT id FROM conversation_turns
			WHERE user_id = $1 AND conversation_id = $2
			ORDER BY id DESC
			LIMIT $3
		)
	`

	if _, err := s.pool.Exec(ctx, query, key.UserID, key.ConversationID, n); err != nil {
		return fmt.Errorf("failed to trim conversation: %w", err)
	}
	return nil
}

// Clear deletes a conversation entirely
func (s *ConversationStore) Clear(ctx context.Context, key domain.ConversationKey) error {
	query := `DELETE FROM conversation_turns WHERE user_id = $1 AND conversation_id = $2`

	if _, err := s.pool.Exec(ctx, query, key.UserID, key.ConversationID); err != nil {
		return fmt.Errorf("failed to clear conversation: %w", err)
	}
	return nil
}
