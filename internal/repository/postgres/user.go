package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"linguatrack/internal/domain"

	"github.com/lib/pq"
)

// UserRepo implements repository.UserRepository
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// Create inserts a new account and returns its id.
func (r *UserRepo) Create(u *domain.User) (int64, error) {
	query := `
		INSERT INTO users (username, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	var id int64
	err := r.db.QueryRow(query, u.Username, u.Email, u.PasswordHash, u.CreatedAt).Scan(&id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return 0, domain.ErrDuplicate
		}
		return 0, fmt.Errorf("%w: create user: %v", domain.ErrStorage, err)
	}
	return id, nil
}

// GetByUsername returns the account with the given username.
func (r *UserRepo) GetByUsername(username string) (*domain.User, error) {
	query := `
		SELECT id, username, email, password_hash, created_at
		FROM users
		WHERE username = $1
	`
	var u domain.User
	err := r.db.QueryRow(query, username).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get user: %v", domain.ErrStorage, err)
	}
	return &u, nil
}

// DeleteCascade removes the user and every dependent row in a single
// transaction. Any failure rolls the whole deletion back, leaving the
// prior state intact.
func (r *UserRepo) DeleteCascade(userID int64) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("%w: begin delete cascade: %v", domain.ErrStorage, err)
	}
	defer tx.Rollback()

	statements := []string{
		`DELETE FROM sessions WHERE user_id = $1`,
		`DELETE FROM conversations WHERE user_id = $1`,
		`DELETE FROM vocabulary_entries WHERE user_id = $1`,
		`DELETE FROM users WHERE id = $1`,
	}
	for _, stmt := range statements {
		if _, err := tx.Exec(stmt, userID); err != nil {
			return fmt.Errorf("%w: delete cascade: %v", domain.ErrStorage, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit delete cascade: %v", domain.ErrStorage, err)
	}
	return nil
}
