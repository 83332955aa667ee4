package repository

import (
	"time"

	"linguatrack/internal/domain"
)

// VocabularyRepository defines vocabulary entry data operations.
// Implementations return domain error kinds (ErrDuplicate, ErrNotFound)
// so callers never inspect driver errors.
type VocabularyRepository interface {
	Create(entry *domain.VocabularyEntry) (int64, error)
	GetByID(entryID, userID int64) (*domain.VocabularyEntry, error)
	ListByLanguage(userID int64, language domain.Language) ([]domain.VocabularyEntry, error)
	Update(entry *domain.VocabularyEntry) error
	UpdateMastery(entryID, userID int64, mastery int, practicedAt time.Time) error
	Delete(entryID, userID int64) error
	MasteryStats(userID int64, language domain.Language) (totalWords, masterySum int, err error)
	CountMastered(userID int64, language domain.Language) (int, error)
}

// ConversationRepository defines practice conversation data operations.
type ConversationRepository interface {
	Create(record *domain.ConversationRecord) (int64, error)
	PracticeDates(userID int64) ([]time.Time, error)
	CountByLanguage(userID int64, language domain.Language) (int, error)
}

// UserRepository defines account data operations. DeleteCascade must be
// atomic: it removes the user and every dependent row in one transaction.
type UserRepository interface {
	Create(user *domain.User) (int64, error)
	GetByUsername(username string) (*domain.User, error)
	DeleteCascade(userID int64) error
}

// SessionRepository defines login session data operations.
type SessionRepository interface {
	Create(session *domain.Session) error
	Get(token string) (*domain.Session, error)
	Delete(token string) error
	DeleteExpired(now time.Time) error
}
