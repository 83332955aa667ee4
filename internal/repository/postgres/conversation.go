package postgres

import (
	"database/sql"
	"fmt"
	"time"

	"linguatrack/internal/domain"
)

// ConversationRepo implements repository.ConversationRepository
type ConversationRepo struct {
	db *sql.DB
}

// NewConversationRepo creates a new conversation repository
func NewConversationRepo(db *sql.DB) *ConversationRepo {
	return &ConversationRepo{db: db}
}

// Create records the start of a practice conversation and returns its id.
func (r *ConversationRepo) Create(c *domain.ConversationRecord) (int64, error) {
	query := `
		INSERT INTO conversations (user_id, language, mode, started_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	var id int64
	err := r.db.QueryRow(query, c.UserID, c.Language, c.Mode, c.StartedAt).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("%w: create conversation: %v", domain.ErrStorage, err)
	}
	return id, nil
}

// PracticeDates returns the distinct calendar dates on which the user
// practiced, most recent first. Streak computation happens in the
// service layer, not in SQL.
func (r *ConversationRepo) PracticeDates(userID int64) ([]time.Time, error) {
	query := `
		SELECT DISTINCT DATE(started_at) AS practice_date
		FROM conversations
		WHERE user_id = $1
		ORDER BY practice_date DESC
	`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: practice dates: %v", domain.ErrStorage, err)
	}
	defer rows.Close()

	var dates []time.Time
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("%w: scan practice date: %v", domain.ErrStorage, err)
		}
		dates = append(dates, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: practice dates: %v", domain.ErrStorage, err)
	}
	return dates, nil
}

// CountByLanguage returns how many conversations the user has had in
// one language.
func (r *ConversationRepo) CountByLanguage(userID int64, language domain.Language) (int, error) {
	query := `SELECT COUNT(*) FROM conversations WHERE user_id = $1 AND language = $2`
	var count int
	if err := r.db.QueryRow(query, userID, language).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: count conversations: %v", domain.ErrStorage, err)
	}
	return count, nil
}
