package service

import (
	"fmt"
	"math"
	"sort"
	"time"

	"linguatrack/internal/domain"
	"linguatrack/internal/repository"

	"go.uber.org/zap"
)

// Proficiency level boundaries. Each band is inclusive on its lower
// bound: a score of exactly 20 is Elementary.
const (
	levelElementary   = 20
	levelIntermediate = 40
	levelAdvanced     = 60
	levelProficient   = 80

	// sizeFactorCeiling is the vocabulary size at which breadth stops
	// suppressing the proficiency score.
	sizeFactorCeiling = 1000
)

// CurrentStreak counts consecutive practice days ending today. The rule
// is strict: position i in the date list (most recent first) must be
// exactly i days before today, so a user who practiced yesterday but
// not yet today has a streak of 0.
func CurrentStreak(practiceDates []time.Time, today time.Time) int {
	dates := distinctDatesDesc(practiceDates)

	streak := 0
	for i, d := range dates {
		if domain.CalendarDaysBetween(d, today) != i {
			break
		}
		streak++
	}
	return streak
}

// LongestStreak returns the length of the longest run of consecutive
// practice days, or 0 for an empty history.
func LongestStreak(practiceDates []time.Time) int {
	dates := distinctDatesDesc(practiceDates)
	if len(dates) == 0 {
		return 0
	}

	// dates is descending; extend a run while adjacent dates are
	// exactly one day apart.
	longest, run := 1, 1
	for i := 1; i < len(dates); i++ {
		if domain.CalendarDaysBetween(dates[i], dates[i-1]) == 1 {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}

// ProficiencyScore combines average mastery with vocabulary breadth into
// a 0-100 score. The size factor deliberately suppresses small
// vocabularies: ten perfectly mastered words score 1, not 100.
func ProficiencyScore(totalWords, totalMasterySum int) int {
	if totalWords == 0 {
		return 0
	}

	masteryScore := float64(totalMasterySum) / float64(totalWords*domain.MaxLevel) * 100
	sizeFactor := math.Min(1, float64(totalWords)/sizeFactorCeiling)
	return int(math.Round(masteryScore * sizeFactor))
}

// ProficiencyLevel maps a 0-100 score to its display label.
func ProficiencyLevel(score int) string {
	switch {
	case score < levelElementary:
		return "Beginner"
	case score < levelIntermediate:
		return "Elementary"
	case score < levelAdvanced:
		return "Intermediate"
	case score < levelProficient:
		return "Advanced"
	default:
		return "Proficient"
	}
}

// distinctDatesDesc truncates timestamps to calendar dates, removes
// duplicates and sorts most recent first.
func distinctDatesDesc(dates []time.Time) []time.Time {
	seen := make(map[time.Time]struct{}, len(dates))
	out := make([]time.Time, 0, len(dates))
	for _, d := range dates {
		day := domain.DateOf(d)
		if _, ok := seen[day]; ok {
			continue
		}
		seen[day] = struct{}{}
		out = append(out, day)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].After(out[j]) })
	return out
}

// DashboardSummary is the plain-data payload the stats page renders.
type DashboardSummary struct {
	Language         domain.Language
	TotalWords       int
	MasteredWords    int
	DueWords         int
	Conversations    int
	CurrentStreak    int
	LongestStreak    int
	ProficiencyScore int
	ProficiencyLevel string
}

// StatsService assembles dashboard numbers from vocabulary and
// conversation history.
type StatsService struct {
	vocabRepo repository.VocabularyRepository
	convRepo  repository.ConversationRepository
	logger    *zap.Logger
	now       func() time.Time
}

// NewStatsService creates a new stats service
func NewStatsService(vocabRepo repository.VocabularyRepository, convRepo repository.ConversationRepository, logger *zap.Logger) *StatsService {
	return &StatsService{
		vocabRepo: vocabRepo,
		convRepo:  convRepo,
		logger:    logger,
		now:       time.Now,
	}
}

// Summary computes the dashboard numbers for one language. Empty
// history is a legitimate zero result, never an error.
func (s *StatsService) Summary(userID int64, language domain.Language) (*DashboardSummary, error) {
	if !language.Valid() {
		return nil, fmt.Errorf("%w: unsupported language %q", domain.ErrValidation, language)
	}

	totalWords, masterySum, err := s.vocabRepo.MasteryStats(userID, language)
	if err != nil {
		return nil, fmt.Errorf("summary: %w", err)
	}

	mastered, err := s.vocabRepo.CountMastered(userID, language)
	if err != nil {
		return nil, fmt.Errorf("summary: %w", err)
	}

	entries, err := s.vocabRepo.ListByLanguage(userID, language)
	if err != nil {
		return nil, fmt.Errorf("summary: %w", err)
	}

	conversations, err := s.convRepo.CountByLanguage(userID, language)
	if err != nil {
		return nil, fmt.Errorf("summary: %w", err)
	}

	practiceDates, err := s.convRepo.PracticeDates(userID)
	if err != nil {
		return nil, fmt.Errorf("summary: %w", err)
	}

	now := s.now()
	score := ProficiencyScore(totalWords, masterySum)

	summary := &DashboardSummary{
		Language:         language,
		TotalWords:       totalWords,
		MasteredWords:    mastered,
		DueWords:         len(DueEntries(entries, now, len(entries)+1)),
		Conversations:    conversations,
		CurrentStreak:    CurrentStreak(practiceDates, now),
		LongestStreak:    LongestStreak(practiceDates),
		ProficiencyScore: score,
		ProficiencyLevel: ProficiencyLevel(score),
	}

	s.logger.Debug("Dashboard summary computed",
		zap.Int64("user_id", userID),
		zap.String("language", string(language)),
		zap.Int("total_words", summary.TotalWords),
		zap.Int("due_words", summary.DueWords),
	)

	return summary, nil
}
