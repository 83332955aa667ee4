package postgres

import (
	"database/sql"
	"fmt"
	"time"

	"linguatrack/internal/domain"
)

// SessionRepo implements repository.SessionRepository
type SessionRepo struct {
	db *sql.DB
}

// NewSessionRepo creates a new session repository
func NewSessionRepo(db *sql.DB) *SessionRepo {
	return &SessionRepo{db: db}
}

// Create stores a new login session.
func (r *SessionRepo) Create(s *domain.Session) error {
	query := `
		INSERT INTO sessions (token, user_id, expires_at)
		VALUES ($1, $2, $3)
	`
	if _, err := r.db.Exec(query, s.Token, s.UserID, s.ExpiresAt); err != nil {
		return fmt.Errorf("%w: create session: %v", domain.ErrStorage, err)
	}
	return nil
}

// Get returns the session for a token. Expiry is checked by the caller.
func (r *SessionRepo) Get(token string) (*domain.Session, error) {
	query := `SELECT token, user_id, expires_at FROM sessions WHERE token = $1`
	var s domain.Session
	err := r.db.QueryRow(query, token).Scan(&s.Token, &s.UserID, &s.ExpiresAt)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get session: %v", domain.ErrStorage, err)
	}
	return &s, nil
}

// Delete revokes a session. Deleting an unknown token is not an error.
func (r *SessionRepo) Delete(token string) error {
	query := `DELETE FROM sessions WHERE token = $1`
	if _, err := r.db.Exec(query, token); err != nil {
		return fmt.Errorf("%w: delete session: %v", domain.ErrStorage, err)
	}
	return nil
}

// DeleteExpired purges sessions past their expiry.
func (r *SessionRepo) DeleteExpired(now time.Time) error {
	query := `DELETE FROM sessions WHERE expires_at <= $1`
	if _, err := r.db.Exec(query, now); err != nil {
		return fmt.Errorf("%w: delete expired sessions: %v", domain.ErrStorage, err)
	}
	return nil
}
