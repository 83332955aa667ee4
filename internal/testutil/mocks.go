package testutil

import (
	"time"

	"linguatrack/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockVocabularyRepository is a mock for VocabularyRepository
type MockVocabularyRepository struct {
	mock.Mock
}

func (m *MockVocabularyRepository) Create(entry *domain.VocabularyEntry) (int64, error) {
	args := m.Called(entry)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockVocabularyRepository) GetByID(entryID, userID int64) (*domain.VocabularyEntry, error) {
	args := m.Called(entryID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VocabularyEntry), args.Error(1)
}

func (m *MockVocabularyRepository) ListByLanguage(userID int64, language domain.Language) ([]domain.VocabularyEntry, error) {
	args := m.Called(userID, language)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VocabularyEntry), args.Error(1)
}

func (m *MockVocabularyRepository) Update(entry *domain.VocabularyEntry) error {
	args := m.Called(entry)
	return args.Error(0)
}

func (m *MockVocabularyRepository) UpdateMastery(entryID, userID int64, mastery int, practicedAt time.Time) error {
	args := m.Called(entryID, userID, mastery, practicedAt)
	return args.Error(0)
}

func (m *MockVocabularyRepository) Delete(entryID, userID int64) error {
	args := m.Called(entryID, userID)
	return args.Error(0)
}

func (m *MockVocabularyRepository) MasteryStats(userID int64, language domain.Language) (int, int, error) {
	args := m.Called(userID, language)
	return args.Int(0), args.Int(1), args.Error(2)
}

func (m *MockVocabularyRepository) CountMastered(userID int64, language domain.Language) (int, error) {
	args := m.Called(userID, language)
	return args.Int(0), args.Error(1)
}

// MockConversationRepository is a mock for ConversationRepository
type MockConversationRepository struct {
	mock.Mock
}

func (m *MockConversationRepository) Create(record *domain.ConversationRecord) (int64, error) {
	args := m.Called(record)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockConversationRepository) PracticeDates(userID int64) ([]time.Time, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]time.Time), args.Error(1)
}

func (m *MockConversationRepository) CountByLanguage(userID int64, language domain.Language) (int, error) {
	args := m.Called(userID, language)
	return args.Int(0), args.Error(1)
}

// MockUserRepository is a mock for UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *domain.User) (int64, error) {
	args := m.Called(user)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(username string) (*domain.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) DeleteCascade(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}

// MockSessionRepository is a mock for SessionRepository
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Create(session *domain.Session) error {
	args := m.Called(session)
	return args.Error(0)
}

func (m *MockSessionRepository) Get(token string) (*domain.Session, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *MockSessionRepository) Delete(token string) error {
	args := m.Called(token)
	return args.Error(0)
}

func (m *MockSessionRepository) DeleteExpired(now time.Time) error {
	args := m.Called(now)
	return args.Error(0)
}
