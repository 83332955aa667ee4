package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"linguatrack/internal/domain"

	"github.com/lib/pq"
)

// uniqueViolation is the Postgres error code for a unique constraint breach.
const uniqueViolation = "23505"

// VocabularyRepo implements repository.VocabularyRepository
type VocabularyRepo struct {
	db *sql.DB
}

// NewVocabularyRepo creates a new vocabulary repository
func NewVocabularyRepo(db *sql.DB) *VocabularyRepo {
	return &VocabularyRepo{db: db}
}

// Create inserts a new vocabulary entry and returns its id.
// The (user_id, word, language) unique index makes duplicates a
// case-sensitive match: "Haus" and "haus" are distinct entries.
func (r *VocabularyRepo) Create(e *domain.VocabularyEntry) (int64, error) {
	query := `
		INSERT INTO vocabulary_entries
			(user_id, language, word, translation, category, notes, difficulty_level, mastery_level, added_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	var id int64
	err := r.db.QueryRow(query,
		e.UserID, e.Language, e.Word, e.Translation, e.Category, e.Notes,
		e.Difficulty, e.Mastery, e.AddedAt,
	).Scan(&id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return 0, domain.ErrDuplicate
		}
		return 0, fmt.Errorf("%w: create entry: %v", domain.ErrStorage, err)
	}
	return id, nil
}

// GetByID returns the entry with the given id if it belongs to the user.
// A missing id and a foreign id are indistinguishable to the caller.
func (r *VocabularyRepo) GetByID(entryID, userID int64) (*domain.VocabularyEntry, error) {
	query := `
		SELECT id, user_id, language, word, translation, category, notes,
			difficulty_level, mastery_level, added_at, last_practiced
		FROM vocabulary_entries
		WHERE id = $1 AND user_id = $2
	`
	e, err := scanEntry(r.db.QueryRow(query, entryID, userID))
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get entry: %v", domain.ErrStorage, err)
	}
	return e, nil
}

// ListByLanguage returns all of the user's entries in one language,
// oldest first.
func (r *VocabularyRepo) ListByLanguage(userID int64, language domain.Language) ([]domain.VocabularyEntry, error) {
	query := `
		SELECT id, user_id, language, word, translation, category, notes,
			difficulty_level, mastery_level, added_at, last_practiced
		FROM vocabulary_entries
		WHERE user_id = $1 AND language = $2
		ORDER BY added_at ASC, id ASC
	`
	rows, err := r.db.Query(query, userID, language)
	if err != nil {
		return nil, fmt.Errorf("%w: list entries: %v", domain.ErrStorage, err)
	}
	defer rows.Close()

	var entries []domain.VocabularyEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scan entry: %v", domain.ErrStorage, err)
		}
		entries = append(entries, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: list entries: %v", domain.ErrStorage, err)
	}
	return entries, nil
}

// Update persists edits to translation, category, notes and difficulty.
func (r *VocabularyRepo) Update(e *domain.VocabularyEntry) error {
	query := `
		UPDATE vocabulary_entries
		SET translation = $1, category = $2, notes = $3, difficulty_level = $4
		WHERE id = $5 AND user_id = $6
	`
	res, err := r.db.Exec(query, e.Translation, e.Category, e.Notes, e.Difficulty, e.ID, e.UserID)
	if err != nil {
		return fmt.Errorf("%w: update entry: %v", domain.ErrStorage, err)
	}
	return checkOwnedRow(res)
}

// UpdateMastery records a review outcome: new mastery level and practice
// time. Last write wins on concurrent updates.
func (r *VocabularyRepo) UpdateMastery(entryID, userID int64, mastery int, practicedAt time.Time) error {
	query := `
		UPDATE vocabulary_entries
		SET mastery_level = $1, last_practiced = $2
		WHERE id = $3 AND user_id = $4
	`
	res, err := r.db.Exec(query, mastery, practicedAt, entryID, userID)
	if err != nil {
		return fmt.Errorf("%w: update mastery: %v", domain.ErrStorage, err)
	}
	return checkOwnedRow(res)
}

// Delete removes an owned entry immediately and unconditionally.
func (r *VocabularyRepo) Delete(entryID, userID int64) error {
	query := `DELETE FROM vocabulary_entries WHERE id = $1 AND user_id = $2`
	res, err := r.db.Exec(query, entryID, userID)
	if err != nil {
		return fmt.Errorf("%w: delete entry: %v", domain.ErrStorage, err)
	}
	return checkOwnedRow(res)
}

// MasteryStats returns the word count and mastery sum for one language,
// the two inputs of the proficiency score.
func (r *VocabularyRepo) MasteryStats(userID int64, language domain.Language) (int, int, error) {
	query := `
		SELECT COUNT(*), COALESCE(SUM(mastery_level), 0)
		FROM vocabulary_entries
		WHERE user_id = $1 AND language = $2
	`
	var total, sum int
	if err := r.db.QueryRow(query, userID, language).Scan(&total, &sum); err != nil {
		return 0, 0, fmt.Errorf("%w: mastery stats: %v", domain.ErrStorage, err)
	}
	return total, sum, nil
}

// CountMastered returns how many entries have reached the top mastery level.
func (r *VocabularyRepo) CountMastered(userID int64, language domain.Language) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM vocabulary_entries
		WHERE user_id = $1 AND language = $2 AND mastery_level = $3
	`
	var count int
	if err := r.db.QueryRow(query, userID, language, domain.MaxLevel).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: count mastered: %v", domain.ErrStorage, err)
	}
	return count, nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (*domain.VocabularyEntry, error) {
	var e domain.VocabularyEntry
	var category, notes sql.NullString
	var lastPracticed sql.NullTime
	err := row.Scan(
		&e.ID, &e.UserID, &e.Language, &e.Word, &e.Translation,
		&category, &notes, &e.Difficulty, &e.Mastery, &e.AddedAt, &lastPracticed,
	)
	if err != nil {
		return nil, err
	}
	e.Category = category.String
	e.Notes = notes.String
	if lastPracticed.Valid {
		e.LastPracticed = &lastPracticed.Time
	}
	return &e, nil
}

// checkOwnedRow turns "no row matched id+user" into ErrNotFound so a
// foreign entry looks exactly like a nonexistent one.
func checkOwnedRow(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: rows affected: %v", domain.ErrStorage, err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
