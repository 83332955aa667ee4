package service

import (
	"testing"
	"time"

	"linguatrack/internal/domain"
	"linguatrack/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestVocabularyService_AddEntry(t *testing.T) {
	now := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)

	t.Run("creates entry at mastery 1", func(t *testing.T) {
		mockRepo := new(testutil.MockVocabularyRepository)
		mockRepo.On("Create", mock.AnythingOfType("*domain.VocabularyEntry")).Return(int64(42), nil)

		service := NewVocabularyService(mockRepo)
		service.now = func() time.Time { return now }

		entry, err := service.AddEntry(123, domain.LanguageGerman, "  Haus  ", "house", 2, "nouns", "")

		assert.NoError(t, err)
		assert.Equal(t, int64(42), entry.ID)
		assert.Equal(t, "Haus", entry.Word)
		assert.Equal(t, "house", entry.Translation)
		assert.Equal(t, 2, entry.Difficulty)
		assert.Equal(t, 1, entry.Mastery)
		assert.Equal(t, now, entry.AddedAt)
		assert.Nil(t, entry.LastPracticed)
		mockRepo.AssertExpectations(t)
	})

	t.Run("difficulty defaults when unspecified", func(t *testing.T) {
		mockRepo := new(testutil.MockVocabularyRepository)
		mockRepo.On("Create", mock.AnythingOfType("*domain.VocabularyEntry")).Return(int64(1), nil)

		service := NewVocabularyService(mockRepo)

		entry, err := service.AddEntry(123, domain.LanguageGerman, "Katze", "cat", 0, "", "")

		assert.NoError(t, err)
		assert.Equal(t, domain.DefaultDifficulty, entry.Difficulty)
	})

	t.Run("rejects blank word", func(t *testing.T) {
		mockRepo := new(testutil.MockVocabularyRepository)

		service := NewVocabularyService(mockRepo)

		entry, err := service.AddEntry(123, domain.LanguageGerman, "   ", "house", 0, "", "")

		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.Nil(t, entry)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything)
	})

	t.Run("rejects unsupported language", func(t *testing.T) {
		service := NewVocabularyService(new(testutil.MockVocabularyRepository))

		_, err := service.AddEntry(123, "Klingon", "Haus", "house", 0, "", "")

		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("rejects out of range difficulty", func(t *testing.T) {
		service := NewVocabularyService(new(testutil.MockVocabularyRepository))

		_, err := service.AddEntry(123, domain.LanguageGerman, "Haus", "house", 6, "", "")

		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("duplicate word surfaces as ErrDuplicate", func(t *testing.T) {
		mockRepo := new(testutil.MockVocabularyRepository)
		mockRepo.On("Create", mock.AnythingOfType("*domain.VocabularyEntry")).Return(int64(0), domain.ErrDuplicate)

		service := NewVocabularyService(mockRepo)

		entry, err := service.AddEntry(123, domain.LanguageGerman, "Haus", "house", 0, "", "")

		assert.ErrorIs(t, err, domain.ErrDuplicate)
		assert.Nil(t, entry)
	})

	t.Run("word case is preserved for the uniqueness check", func(t *testing.T) {
		// Uniqueness is case-sensitive: "haus" must reach the store
		// exactly as typed so it does not collide with "Haus".
		mockRepo := new(testutil.MockVocabularyRepository)
		mockRepo.On("Create", mock.MatchedBy(func(e *domain.VocabularyEntry) bool {
			return e.Word == "haus"
		})).Return(int64(43), nil)

		service := NewVocabularyService(mockRepo)

		entry, err := service.AddEntry(123, domain.LanguageGerman, "haus", "house", 0, "", "")

		assert.NoError(t, err)
		assert.Equal(t, "haus", entry.Word)
		mockRepo.AssertExpectations(t)
	})
}

func TestVocabularyService_ListEntries(t *testing.T) {
	t.Run("returns entries for valid language", func(t *testing.T) {
		mockRepo := new(testutil.MockVocabularyRepository)
		added := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
		expected := []domain.VocabularyEntry{
			testutil.NewTestEntry(1, 123, "Haus", "house", 1, added),
			testutil.NewTestEntry(2, 123, "Katze", "cat", 3, added),
		}
		mockRepo.On("ListByLanguage", int64(123), domain.LanguageGerman).Return(expected, nil)

		service := NewVocabularyService(mockRepo)

		entries, err := service.ListEntries(123, domain.LanguageGerman)

		assert.NoError(t, err)
		assert.Equal(t, expected, entries)
		mockRepo.AssertExpectations(t)
	})

	t.Run("rejects unsupported language", func(t *testing.T) {
		mockRepo := new(testutil.MockVocabularyRepository)

		service := NewVocabularyService(mockRepo)

		entries, err := service.ListEntries(123, "Esperanto")

		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.Nil(t, entries)
		mockRepo.AssertNotCalled(t, "ListByLanguage", mock.Anything, mock.Anything)
	})
}

func TestVocabularyService_UpdateEntry(t *testing.T) {
	added := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	stored := func() *domain.VocabularyEntry {
		e := testutil.NewTestEntry(7, 123, "Haus", "house", 2, added)
		return &e
	}

	t.Run("applies partial update", func(t *testing.T) {
		mockRepo := new(testutil.MockVocabularyRepository)
		mockRepo.On("GetByID", int64(7), int64(123)).Return(stored(), nil)
		mockRepo.On("Update", mock.AnythingOfType("*domain.VocabularyEntry")).Return(nil)

		service := NewVocabularyService(mockRepo)

		translation := "building"
		difficulty := 4
		entry, err := service.UpdateEntry(123, 7, EntryUpdate{
			Translation: &translation,
			Difficulty:  &difficulty,
		})

		assert.NoError(t, err)
		assert.Equal(t, "building", entry.Translation)
		assert.Equal(t, 4, entry.Difficulty)
		// Untouched fields survive the edit.
		assert.Equal(t, "Haus", entry.Word)
		assert.Equal(t, 2, entry.Mastery)
		mockRepo.AssertExpectations(t)
	})

	t.Run("rejects empty translation", func(t *testing.T) {
		mockRepo := new(testutil.MockVocabularyRepository)
		mockRepo.On("GetByID", int64(7), int64(123)).Return(stored(), nil)

		service := NewVocabularyService(mockRepo)

		empty := ""
		entry, err := service.UpdateEntry(123, 7, EntryUpdate{Translation: &empty})

		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.Nil(t, entry)
		mockRepo.AssertNotCalled(t, "Update", mock.Anything)
	})

	t.Run("rejects out of range difficulty", func(t *testing.T) {
		mockRepo := new(testutil.MockVocabularyRepository)
		mockRepo.On("GetByID", int64(7), int64(123)).Return(stored(), nil)

		service := NewVocabularyService(mockRepo)

		difficulty := 0
		entry, err := service.UpdateEntry(123, 7, EntryUpdate{Difficulty: &difficulty})

		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.Nil(t, entry)
	})

	t.Run("entry owned by someone else is not found", func(t *testing.T) {
		mockRepo := new(testutil.MockVocabularyRepository)
		mockRepo.On("GetByID", int64(7), int64(999)).Return(nil, domain.ErrNotFound)

		service := NewVocabularyService(mockRepo)

		translation := "building"
		entry, err := service.UpdateEntry(999, 7, EntryUpdate{Translation: &translation})

		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Nil(t, entry)
	})
}

func TestVocabularyService_DeleteEntry(t *testing.T) {
	t.Run("deletes owned entry", func(t *testing.T) {
		mockRepo := new(testutil.MockVocabularyRepository)
		mockRepo.On("Delete", int64(7), int64(123)).Return(nil)

		service := NewVocabularyService(mockRepo)

		assert.NoError(t, service.DeleteEntry(123, 7))
		mockRepo.AssertExpectations(t)
	})

	t.Run("missing entry is not found", func(t *testing.T) {
		mockRepo := new(testutil.MockVocabularyRepository)
		mockRepo.On("Delete", int64(7), int64(123)).Return(domain.ErrNotFound)

		service := NewVocabularyService(mockRepo)

		assert.ErrorIs(t, service.DeleteEntry(123, 7), domain.ErrNotFound)
	})
}
