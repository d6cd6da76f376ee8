package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/voyago/voyago-backend/internal/repository"
)

// SessionRepository implements repository.SessionRepository using PostgreSQL
type SessionRepository struct {
	db *sqlx.DB
}

// NewSessionRepository creates a new PostgreSQL session repository
func NewSessionRepository(db *sqlx.DB) repository.SessionRepository {
	return &SessionRepository{db: db}
}

// Create creates a new session with an empty parameter map
func (r *SessionRepository) Create(ctx context.Context, userID *int64) (*repository.Session, error) {
	var session repository.Session
	query := `
		INSERT INTO chat_sessions (user_id, active_search_params)
		VALUES ($1, '{}')
		RETURNING id, user_id, created_at, updated_at, active_search_params
	`

	err := r.db.GetContext(ctx, &session, query, nullInt64(userID))
	if err != nil {
		return nil, err
	}

	return &session, nil
}

// Get retrieves a session by ID
func (r *SessionRepository) Get(ctx context.Context, id int64) (*repository.Session, error) {
	var session repository.Session
	query := `
		SELECT id, user_id, created_at, updated_at, active_search_params
		FROM chat_sessions
		WHERE id = $1
	`

	err := r.db.GetContext(ctx, &session, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return &session, nil
}

// GetOrCreateActive returns the most recently updated session for the
// user, creating one if none exists. Two concurrent calls for the same
// user can each create a session; callers are expected to send one
// message at a time per user.
func (r *SessionRepository) GetOrCreateActive(ctx context.Context, userID *int64) (*repository.Session, error) {
	var session repository.Session
	query := `
		SELECT id, user_id, created_at, updated_at, active_search_params
		FROM chat_sessions
		WHERE user_id IS NOT DISTINCT FROM $1
		ORDER BY updated_at DESC
		LIMIT 1
	`

	err := r.db.GetContext(ctx, &session, query, nullInt64(userID))
	if err != nil {
		if err == sql.ErrNoRows {
			return r.Create(ctx, userID)
		}
		return nil, err
	}

	return &session, nil
}

// UpdateSearchParams replaces the session's parameter map and bumps updated_at
func (r *SessionRepository) UpdateSearchParams(ctx context.Context, id int64, params []byte) error {
	if len(params) == 0 {
		params = []byte("{}")
	}

	query := `
		UPDATE chat_sessions
		SET active_search_params = $1, updated_at = $2
		WHERE id = $3
	`

	_, err := r.db.ExecContext(ctx, query, params, time.Now(), id)
	return err
}

// Delete deletes a session and, via cascade, its messages
func (r *SessionRepository) Delete(ctx context.Context, id int64) error {
	query := "DELETE FROM chat_sessions WHERE id = $1"
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func nullInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}
