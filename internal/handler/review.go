package handler

import (
	"net/http"
	"strconv"

	"linguatrack/internal/domain"
	"linguatrack/internal/middleware"
)

// defaultDueLimit caps the review queue when the client does not ask
// for a specific size.
const defaultDueLimit = 10

type recordOutcomeRequest struct {
	MasteryLevel int `json:"mastery_level"`
}

func (h *Handler) handleDueEntries(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "authentication required"})
		return
	}

	limit := defaultDueLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid limit"})
			return
		}
		limit = parsed
	}

	entries, err := h.reviewService.GetDueEntries(userID, domain.Language(r.URL.Query().Get("language")), limit)
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toEntryResponses(entries))
}

func (h *Handler) handleRecordOutcome(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "authentication required"})
		return
	}

	entryID, err := pathID(r, "entryID")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid entry id"})
		return
	}

	var req recordOutcomeRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	if err := h.reviewService.RecordOutcome(userID, entryID, req.MasteryLevel); err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "recorded"})
}
