package domain

import (
	"fmt"
	"strings"
	"time"
)

// Mastery and difficulty levels are constrained to [1,5].
const (
	MinLevel = 1
	MaxLevel = 5

	// DefaultDifficulty is assigned when the user does not pick one.
	DefaultDifficulty = 3
)

// VocabularyEntry is a word a user is learning in one language.
// LastPracticed is nil until the first review.
type VocabularyEntry struct {
	ID            int64
	UserID        int64
	Language      Language
	Word          string
	Translation   string
	Category      string
	Notes         string
	Difficulty    int
	Mastery       int
	AddedAt       time.Time
	LastPracticed *time.Time
}

// NewVocabularyEntry builds a fresh entry with mastery 1 and no practice
// history. It rejects invalid input so an out-of-range entry can never
// be constructed.
func NewVocabularyEntry(userID int64, language Language, word, translation string, difficulty int, category, notes string, now time.Time) (*VocabularyEntry, error) {
	word = strings.TrimSpace(word)
	translation = strings.TrimSpace(translation)

	if word == "" || translation == "" {
		return nil, fmt.Errorf("%w: word and translation are required", ErrValidation)
	}
	if !language.Valid() {
		return nil, fmt.Errorf("%w: unsupported language %q", ErrValidation, language)
	}
	if difficulty == 0 {
		difficulty = DefaultDifficulty
	}
	if !ValidLevel(difficulty) {
		return nil, fmt.Errorf("%w: difficulty %d out of range", ErrValidation, difficulty)
	}

	return &VocabularyEntry{
		UserID:      userID,
		Language:    language,
		Word:        word,
		Translation: translation,
		Category:    category,
		Notes:       notes,
		Difficulty:  difficulty,
		Mastery:     MinLevel,
		AddedAt:     now,
	}, nil
}

// ValidLevel reports whether a mastery or difficulty level is in [1,5].
func ValidLevel(level int) bool {
	return level >= MinLevel && level <= MaxLevel
}

// ReferenceTime is the timestamp due-ness is measured from: the last
// practice if the entry has been reviewed, otherwise the creation time.
func (e *VocabularyEntry) ReferenceTime() time.Time {
	if e.LastPracticed != nil {
		return *e.LastPracticed
	}
	return e.AddedAt
}
