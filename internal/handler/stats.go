package handler

import (
	"net/http"
	"time"

	"linguatrack/internal/domain"
	"linguatrack/internal/middleware"
	"linguatrack/internal/service"
)

type summaryResponse struct {
	Language         string `json:"language"`
	TotalWords       int    `json:"total_words"`
	MasteredWords    int    `json:"mastered_words"`
	DueWords         int    `json:"due_words"`
	Conversations    int    `json:"conversations"`
	CurrentStreak    int    `json:"current_streak"`
	LongestStreak    int    `json:"longest_streak"`
	ProficiencyScore int    `json:"proficiency_score"`
	ProficiencyLevel string `json:"proficiency_level"`
}

func toSummaryResponse(s *service.DashboardSummary) summaryResponse {
	return summaryResponse{
		Language:         string(s.Language),
		TotalWords:       s.TotalWords,
		MasteredWords:    s.MasteredWords,
		DueWords:         s.DueWords,
		Conversations:    s.Conversations,
		CurrentStreak:    s.CurrentStreak,
		LongestStreak:    s.LongestStreak,
		ProficiencyScore: s.ProficiencyScore,
		ProficiencyLevel: s.ProficiencyLevel,
	}
}

func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "authentication required"})
		return
	}

	summary, err := h.statsService.Summary(userID, domain.Language(r.URL.Query().Get("language")))
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toSummaryResponse(summary))
}

type startConversationRequest struct {
	Language string `json:"language"`
	Mode     string `json:"mode"`
}

type conversationResponse struct {
	ID        int64     `json:"id"`
	Language  string    `json:"language"`
	Mode      string    `json:"mode"`
	StartedAt time.Time `json:"started_at"`
}

func (h *Handler) handleStartConversation(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "authentication required"})
		return
	}

	var req startConversationRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	record, err := h.convService.Start(userID, domain.Language(req.Language), req.Mode)
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, conversationResponse{
		ID:        record.ID,
		Language:  string(record.Language),
		Mode:      record.Mode,
		StartedAt: record.StartedAt,
	})
}
