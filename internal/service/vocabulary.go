package service

import (
	"fmt"
	"time"

	"linguatrack/internal/domain"
	"linguatrack/internal/repository"
)

// VocabularyService handles vocabulary entry business logic.
type VocabularyService struct {
	vocabRepo repository.VocabularyRepository
	now       func() time.Time
}

// NewVocabularyService creates a new vocabulary service
func NewVocabularyService(vocabRepo repository.VocabularyRepository) *VocabularyService {
	return &VocabularyService{
		vocabRepo: vocabRepo,
		now:       time.Now,
	}
}

// AddEntry creates a new entry at mastery 1 with no practice history.
// Difficulty 0 means "not specified" and falls back to the default.
func (s *VocabularyService) AddEntry(userID int64, language domain.Language, word, translation string, difficulty int, category, notes string) (*domain.VocabularyEntry, error) {
	entry, err := domain.NewVocabularyEntry(userID, language, word, translation, difficulty, category, notes, s.now())
	if err != nil {
		return nil, err
	}

	id, err := s.vocabRepo.Create(entry)
	if err != nil {
		return nil, fmt.Errorf("add entry: %w", err)
	}
	entry.ID = id

	return entry, nil
}

// GetEntry returns one owned entry.
func (s *VocabularyService) GetEntry(userID, entryID int64) (*domain.VocabularyEntry, error) {
	entry, err := s.vocabRepo.GetByID(entryID, userID)
	if err != nil {
		return nil, fmt.Errorf("get entry: %w", err)
	}
	return entry, nil
}

// ListEntries returns all of the user's entries in a language.
func (s *VocabularyService) ListEntries(userID int64, language domain.Language) ([]domain.VocabularyEntry, error) {
	if !language.Valid() {
		return nil, fmt.Errorf("%w: unsupported language %q", domain.ErrValidation, language)
	}
	entries, err := s.vocabRepo.ListByLanguage(userID, language)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	return entries, nil
}

// EntryUpdate carries the editable fields of an entry. Nil means
// "leave unchanged".
type EntryUpdate struct {
	Translation *string
	Category    *string
	Notes       *string
	Difficulty  *int
}

// UpdateEntry applies an edit to an owned entry. Mastery and practice
// timestamps are only ever changed through review outcomes.
func (s *VocabularyService) UpdateEntry(userID, entryID int64, update EntryUpdate) (*domain.VocabularyEntry, error) {
	entry, err := s.vocabRepo.GetByID(entryID, userID)
	if err != nil {
		return nil, fmt.Errorf("update entry: %w", err)
	}

	if update.Translation != nil {
		if *update.Translation == "" {
			return nil, fmt.Errorf("%w: translation cannot be empty", domain.ErrValidation)
		}
		entry.Translation = *update.Translation
	}
	if update.Category != nil {
		entry.Category = *update.Category
	}
	if update.Notes != nil {
		entry.Notes = *update.Notes
	}
	if update.Difficulty != nil {
		if !domain.ValidLevel(*update.Difficulty) {
			return nil, fmt.Errorf("%w: difficulty %d out of range", domain.ErrValidation, *update.Difficulty)
		}
		entry.Difficulty = *update.Difficulty
	}

	if err := s.vocabRepo.Update(entry); err != nil {
		return nil, fmt.Errorf("update entry: %w", err)
	}
	return entry, nil
}

// DeleteEntry removes an owned entry.
func (s *VocabularyService) DeleteEntry(userID, entryID int64) error {
	if err := s.vocabRepo.Delete(entryID, userID); err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	return nil
}
