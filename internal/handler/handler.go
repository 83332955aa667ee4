package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"linguatrack/internal/domain"
	"linguatrack/internal/middleware"
	"linguatrack/internal/service"

	"go.uber.org/zap"
)

// Handler wires the core services to the HTTP surface. Responses are
// plain JSON data; rendering is the client's job.
type Handler struct {
	authService   *service.AuthService
	vocabService  *service.VocabularyService
	reviewService *service.ReviewService
	statsService  *service.StatsService
	convService   *service.ConversationService
	logger        *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(
	authService *service.AuthService,
	vocabService *service.VocabularyService,
	reviewService *service.ReviewService,
	statsService *service.StatsService,
	convService *service.ConversationService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		authService:   authService,
		vocabService:  vocabService,
		reviewService: reviewService,
		statsService:  statsService,
		convService:   convService,
		logger:        logger,
	}
}

// Routes registers all handlers and returns the root mux.
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	session := middleware.Session(h.authService, h.logger)

	mux.HandleFunc("POST /api/register", h.handleRegister)
	mux.HandleFunc("POST /api/login", h.handleLogin)
	mux.HandleFunc("POST /api/logout", h.handleLogout)
	mux.Handle("DELETE /api/account", session(http.HandlerFunc(h.handleDeleteAccount)))

	mux.Handle("GET /api/vocabulary", session(http.HandlerFunc(h.handleListEntries)))
	mux.Handle("POST /api/vocabulary", session(http.HandlerFunc(h.handleAddEntry)))
	mux.Handle("PUT /api/vocabulary/{entryID}", session(http.HandlerFunc(h.handleUpdateEntry)))
	mux.Handle("DELETE /api/vocabulary/{entryID}", session(http.HandlerFunc(h.handleDeleteEntry)))

	mux.Handle("GET /api/review/due", session(http.HandlerFunc(h.handleDueEntries)))
	mux.Handle("POST /api/review/{entryID}", session(http.HandlerFunc(h.handleRecordOutcome)))

	mux.Handle("POST /api/conversations", session(http.HandlerFunc(h.handleStartConversation)))
	mux.Handle("GET /api/stats", session(http.HandlerFunc(h.handleStats)))

	return mux
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeError maps domain error kinds to HTTP status codes. Unknown
// errors surface as a generic 500 so internals never leak.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrDuplicate):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "not found"})
	case errors.Is(err, service.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: service.ErrInvalidCredentials.Error()})
	default:
		h.logger.Error("Request failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

// decodeBody decodes a JSON request body into dst.
func decodeBody(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
