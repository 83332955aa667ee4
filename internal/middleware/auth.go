package middleware

import (
	"context"
	"net/http"

	"linguatrack/internal/service"

	"go.uber.org/zap"
)

// SessionCookie is the name of the cookie carrying the session token.
const SessionCookie = "linguatrack_session"

type contextKey struct{ name string }

var userIDKey = contextKey{"user_id"}

// Session creates middleware that resolves the session cookie to a
// user id and injects it into the request context. Requests without a
// valid session are rejected before reaching the handler.
func Session(authService *service.AuthService, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookie)
			if err != nil {
				http.Error(w, `{"error":"authentication required"}`, http.StatusUnauthorized)
				return
			}

			userID, err := authService.ResolveSession(cookie.Value)
			if err != nil {
				logger.Debug("Session resolution failed", zap.Error(err))
				http.Error(w, `{"error":"authentication required"}`, http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserID returns the authenticated user id set by Session. The second
// return is false for requests that did not pass the middleware.
func UserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}
