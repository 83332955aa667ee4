package handler

import (
	"net/http"
	"strconv"
	"time"

	"linguatrack/internal/domain"
	"linguatrack/internal/middleware"
	"linguatrack/internal/service"
)

type entryResponse struct {
	ID            int64      `json:"id"`
	Language      string     `json:"language"`
	Word          string     `json:"word"`
	Translation   string     `json:"translation"`
	Category      string     `json:"category,omitempty"`
	Notes         string     `json:"notes,omitempty"`
	Difficulty    int        `json:"difficulty_level"`
	Mastery       int        `json:"mastery_level"`
	AddedAt       time.Time  `json:"added_date"`
	LastPracticed *time.Time `json:"last_practiced,omitempty"`
}

func toEntryResponse(e domain.VocabularyEntry) entryResponse {
	return entryResponse{
		ID:            e.ID,
		Language:      string(e.Language),
		Word:          e.Word,
		Translation:   e.Translation,
		Category:      e.Category,
		Notes:         e.Notes,
		Difficulty:    e.Difficulty,
		Mastery:       e.Mastery,
		AddedAt:       e.AddedAt,
		LastPracticed: e.LastPracticed,
	}
}

func toEntryResponses(entries []domain.VocabularyEntry) []entryResponse {
	out := make([]entryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, toEntryResponse(e))
	}
	return out
}

type addEntryRequest struct {
	Language    string `json:"language"`
	Word        string `json:"word"`
	Translation string `json:"translation"`
	Category    string `json:"category"`
	Notes       string `json:"notes"`
	Difficulty  int    `json:"difficulty_level"`
}

type updateEntryRequest struct {
	Translation *string `json:"translation"`
	Category    *string `json:"category"`
	Notes       *string `json:"notes"`
	Difficulty  *int    `json:"difficulty_level"`
}

func (h *Handler) handleListEntries(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "authentication required"})
		return
	}

	entries, err := h.vocabService.ListEntries(userID, domain.Language(r.URL.Query().Get("language")))
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toEntryResponses(entries))
}

func (h *Handler) handleAddEntry(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "authentication required"})
		return
	}

	var req addEntryRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	entry, err := h.vocabService.AddEntry(userID, domain.Language(req.Language), req.Word, req.Translation, req.Difficulty, req.Category, req.Notes)
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toEntryResponse(*entry))
}

func (h *Handler) handleUpdateEntry(w http.ResponseWriter, r *http.Request) {
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

	var req updateEntryRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	entry, err := h.vocabService.UpdateEntry(userID, entryID, service.EntryUpdate{
		Translation: req.Translation,
		Category:    req.Category,
		Notes:       req.Notes,
		Difficulty:  req.Difficulty,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toEntryResponse(*entry))
}

func (h *Handler) handleDeleteEntry(w http.ResponseWriter, r *http.Request) {
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

	if err := h.vocabService.DeleteEntry(userID, entryID); err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// pathID parses a positive int64 path parameter.
func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(r.PathValue(name), 10, 64)
}
