package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/voyago/voyago-backend/internal/repository"
)

// MessageRepository implements repository.MessageRepository using PostgreSQL
type MessageRepository struct {
	db *sqlx.DB
}

// NewMessageRepository creates a new PostgreSQL message repository
func NewMessageRepository(db *sqlx.DB) repository.MessageRepository {
	return &MessageRepository{db: db}
}

// Create appends a message to a session
func (r *MessageRepository) Create(ctx context.Context, message repository.Message) (int64, error) {
	var id int64
	query := `
		INSERT INTO chat_messages (session_id, sender, message_text)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.GetContext(ctx, &id, query, message.SessionID, message.Sender, message.MessageText)
	if err != nil {
		return 0, err
	}

	return id, nil
}

// ListBySession retrieves messages for a session in timestamp order
func (r *MessageRepository) ListBySession(ctx context.Context, sessionID int64) ([]repository.Message, error) {
	var messages []repository.Message
	query := `
		SELECT id, session_id, sender, message_text, timestamp
		FROM chat_messages
		WHERE session_id = $1
		ORDER BY timestamp ASC
	`

	err := r.db.SelectContext(ctx, &messages, query, sessionID)
	if err != nil {
		return nil, err
	}

	return messages, nil
}
