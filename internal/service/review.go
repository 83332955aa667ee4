package service

import (
	"fmt"
	"sort"
	"time"

	"linguatrack/internal/domain"
	"linguatrack/internal/repository"
)

// Review intervals in days, keyed by current mastery level. Anything
// outside [1,4] falls into the 30-day bucket.
const (
	intervalLevel1 = 1
	intervalLevel2 = 3
	intervalLevel3 = 7
	intervalLevel4 = 14
	intervalOther  = 30
)

// RequiredInterval returns how many days must pass after the last
// practice (or creation) before an entry at the given mastery level is
// due again.
func RequiredInterval(mastery int) int {
	switch mastery {
	case 1:
		return intervalLevel1
	case 2:
		return intervalLevel2
	case 3:
		return intervalLevel3
	case 4:
		return intervalLevel4
	default:
		return intervalOther
	}
}

// ReviewService schedules vocabulary reviews and records their outcomes.
type ReviewService struct {
	vocabRepo repository.VocabularyRepository
	now       func() time.Time
}

// NewReviewService creates a new review service
func NewReviewService(vocabRepo repository.VocabularyRepository) *ReviewService {
	return &ReviewService{
		vocabRepo: vocabRepo,
		now:       time.Now,
	}
}

// GetDueEntries returns at most limit entries due for review, most
// overdue first; ties go to the less mastered entry. It reads the
// user's entries and filters in memory, so it has no side effects.
func (s *ReviewService) GetDueEntries(userID int64, language domain.Language, limit int) ([]domain.VocabularyEntry, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("%w: limit must be positive", domain.ErrValidation)
	}
	if !language.Valid() {
		return nil, fmt.Errorf("%w: unsupported language %q", domain.ErrValidation, language)
	}

	entries, err := s.vocabRepo.ListByLanguage(userID, language)
	if err != nil {
		return nil, fmt.Errorf("get due entries: %w", err)
	}

	return DueEntries(entries, s.now(), limit), nil
}

// DueEntries filters and orders entries by due-ness at the given time.
// An entry is due once floor(days since reference time) reaches the
// interval required by its mastery level.
func DueEntries(entries []domain.VocabularyEntry, now time.Time, limit int) []domain.VocabularyEntry {
	type dueEntry struct {
		entry     domain.VocabularyEntry
		daysSince int
	}

	var due []dueEntry
	for _, e := range entries {
		days := domain.DaysSince(e.ReferenceTime(), now)
		if days >= RequiredInterval(e.Mastery) {
			due = append(due, dueEntry{entry: e, daysSince: days})
		}
	}

	sort.SliceStable(due, func(i, j int) bool {
		if due[i].daysSince != due[j].daysSince {
			return due[i].daysSince > due[j].daysSince
		}
		return due[i].entry.Mastery < due[j].entry.Mastery
	})

	if len(due) > limit {
		due = due[:limit]
	}

	result := make([]domain.VocabularyEntry, 0, len(due))
	for _, d := range due {
		result = append(result, d.entry)
	}
	return result
}

// RecordOutcome applies a review result: the learner picks the new
// mastery level directly, including downgrades and skipped levels.
// The entry's last_practiced moves to now; last write wins.
func (s *ReviewService) RecordOutcome(userID, entryID int64, reportedLevel int) error {
	if !domain.ValidLevel(reportedLevel) {
		return fmt.Errorf("%w: mastery level %d out of range", domain.ErrValidation, reportedLevel)
	}

	if err := s.vocabRepo.UpdateMastery(entryID, userID, reportedLevel, s.now()); err != nil {
		return fmt.Errorf("record outcome: %w", err)
	}
	return nil
}
