package postgres

import (
	"database/sql"
	"testing"
	"time"

	"linguatrack/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func entryColumns() []string {
	return []string{
		"id", "user_id", "language", "word", "translation",
		"category", "notes", "difficulty_level", "mastery_level",
		"added_at", "last_practiced",
	}
}

func TestVocabularyRepo_Create(t *testing.T) {
	added := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)

	entry := &domain.VocabularyEntry{
		UserID:      123,
		Language:    domain.LanguageGerman,
		Word:        "Haus",
		Translation: "house",
		Difficulty:  3,
		Mastery:     1,
		AddedAt:     added,
	}

	t.Run("success", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewVocabularyRepo(db)

		mock.ExpectQuery(`INSERT INTO vocabulary_entries`).
			WithArgs(int64(123), "German", "Haus", "house", "", "", 3, 1, added).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(42)))

		id, err := repo.Create(entry)

		assert.NoError(t, err)
		assert.Equal(t, int64(42), id)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unique violation becomes ErrDuplicate", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewVocabularyRepo(db)

		mock.ExpectQuery(`INSERT INTO vocabulary_entries`).
			WillReturnError(&pq.Error{Code: "23505"})

		_, err := repo.Create(entry)

		assert.ErrorIs(t, err, domain.ErrDuplicate)
	})

	t.Run("other failure becomes ErrStorage", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewVocabularyRepo(db)

		mock.ExpectQuery(`INSERT INTO vocabulary_entries`).
			WillReturnError(sql.ErrConnDone)

		_, err := repo.Create(entry)

		assert.ErrorIs(t, err, domain.ErrStorage)
	})
}

func TestVocabularyRepo_GetByID(t *testing.T) {
	added := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)

	t.Run("found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewVocabularyRepo(db)

		rows := sqlmock.NewRows(entryColumns()).
			AddRow(int64(7), int64(123), "German", "Haus", "house", nil, nil, 3, 2, added, nil)
		mock.ExpectQuery(`SELECT (.+) FROM vocabulary_entries`).
			WithArgs(int64(7), int64(123)).
			WillReturnRows(rows)

		entry, err := repo.GetByID(7, 123)

		assert.NoError(t, err)
		assert.Equal(t, "Haus", entry.Word)
		assert.Equal(t, 2, entry.Mastery)
		assert.Empty(t, entry.Category)
		assert.Nil(t, entry.LastPracticed)
	})

	t.Run("foreign entry is not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewVocabularyRepo(db)

		mock.ExpectQuery(`SELECT (.+) FROM vocabulary_entries`).
			WithArgs(int64(7), int64(999)).
			WillReturnError(sql.ErrNoRows)

		entry, err := repo.GetByID(7, 999)

		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Nil(t, entry)
	})
}

func TestVocabularyRepo_ListByLanguage(t *testing.T) {
	added := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)
	practiced := added.Add(48 * time.Hour)

	db, mock := newMockDB(t)
	repo := NewVocabularyRepo(db)

	rows := sqlmock.NewRows(entryColumns()).
		AddRow(int64(1), int64(123), "German", "Haus", "house", "nouns", nil, 3, 1, added, nil).
		AddRow(int64(2), int64(123), "German", "Katze", "cat", nil, "pet", 2, 4, added, practiced)
	mock.ExpectQuery(`SELECT (.+) FROM vocabulary_entries`).
		WithArgs(int64(123), "German").
		WillReturnRows(rows)

	entries, err := repo.ListByLanguage(123, domain.LanguageGerman)

	assert.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, "nouns", entries[0].Category)
	assert.Nil(t, entries[0].LastPracticed)
	assert.Equal(t, practiced, *entries[1].LastPracticed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVocabularyRepo_UpdateMastery(t *testing.T) {
	practiced := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewVocabularyRepo(db)

		mock.ExpectExec(`UPDATE vocabulary_entries`).
			WithArgs(4, practiced, int64(7), int64(123)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.UpdateMastery(7, 123, 4, practiced))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no matching row is not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewVocabularyRepo(db)

		mock.ExpectExec(`UPDATE vocabulary_entries`).
			WithArgs(4, practiced, int64(7), int64(999)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.UpdateMastery(7, 999, 4, practiced), domain.ErrNotFound)
	})
}

func TestVocabularyRepo_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewVocabularyRepo(db)

		mock.ExpectExec(`DELETE FROM vocabulary_entries`).
			WithArgs(int64(7), int64(123)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(7, 123))
	})

	t.Run("missing entry is not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewVocabularyRepo(db)

		mock.ExpectExec(`DELETE FROM vocabulary_entries`).
			WithArgs(int64(7), int64(123)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(7, 123), domain.ErrNotFound)
	})
}

func TestVocabularyRepo_MasteryStats(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewVocabularyRepo(db)

	mock.ExpectQuery(`SELECT COUNT\(\*\), COALESCE\(SUM\(mastery_level\), 0\)`).
		WithArgs(int64(123), "German").
		WillReturnRows(sqlmock.NewRows([]string{"count", "coalesce"}).AddRow(12, 37))

	total, sum, err := repo.MasteryStats(123, domain.LanguageGerman)

	assert.NoError(t, err)
	assert.Equal(t, 12, total)
	assert.Equal(t, 37, sum)
}

func TestVocabularyRepo_CountMastered(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewVocabularyRepo(db)

	mock.ExpectQuery(`SELECT COUNT\(\*\)`).
		WithArgs(int64(123), "German", domain.MaxLevel).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.CountMastered(123, domain.LanguageGerman)

	assert.NoError(t, err)
	assert.Equal(t, 3, count)
}
