package service

import (
	"fmt"
	"time"

	"linguatrack/internal/domain"
	"linguatrack/internal/repository"
)

// ConversationService records practice conversations. Chat content and
// grammar feedback live outside the core; only the fact that practice
// happened matters here, because streaks are derived from it.
type ConversationService struct {
	convRepo repository.ConversationRepository
	now      func() time.Time
}

// NewConversationService creates a new conversation service
func NewConversationService(convRepo repository.ConversationRepository) *ConversationService {
	return &ConversationService{
		convRepo: convRepo,
		now:      time.Now,
	}
}

// Start records a new practice conversation for the user.
func (s *ConversationService) Start(userID int64, language domain.Language, mode string) (*domain.ConversationRecord, error) {
	if !language.Valid() {
		return nil, fmt.Errorf("%w: unsupported language %q", domain.ErrValidation, language)
	}
	switch mode {
	case domain.ModeCasual, domain.ModeFormal, domain.ModeLesson:
	default:
		return nil, fmt.Errorf("%w: unsupported mode %q", domain.ErrValidation, mode)
	}

	record := &domain.ConversationRecord{
		UserID:    userID,
		Language:  language,
		Mode:      mode,
		StartedAt: s.now(),
	}

	id, err := s.convRepo.Create(record)
	if err != nil {
		return nil, fmt.Errorf("start conversation: %w", err)
	}
	record.ID = id

	return record, nil
}
