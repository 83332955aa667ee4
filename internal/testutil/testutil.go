package testutil

import (
	"time"

	"linguatrack/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestEntry creates a vocabulary entry with the given mastery level,
// added at the given time and never practiced.
func NewTestEntry(id, userID int64, word, translation string, mastery int, addedAt time.Time) domain.VocabularyEntry {
	return domain.VocabularyEntry{
		ID:          id,
		UserID:      userID,
		Language:    domain.LanguageGerman,
		Word:        word,
		Translation: translation,
		Difficulty:  domain.DefaultDifficulty,
		Mastery:     mastery,
		AddedAt:     addedAt,
	}
}

// PracticedAt returns a copy of the entry with last_practiced set.
func PracticedAt(e domain.VocabularyEntry, t time.Time) domain.VocabularyEntry {
	e.LastPracticed = &t
	return e
}

// NewTestUser creates a test user
func NewTestUser(id int64, username string) *domain.User {
	return &domain.User{
		ID:        id,
		Username:  username,
		Email:     username + "@example.com",
		CreatedAt: time.Now(),
	}
}

// NewTestSession creates a session expiring at the given time
func NewTestSession(token string, userID int64, expiresAt time.Time) *domain.Session {
	return &domain.Session{
		Token:     token,
		UserID:    userID,
		ExpiresAt: expiresAt,
	}
}
