package domain

import "time"

// User is a registered account. PasswordHash is a bcrypt hash and never
// leaves the persistence and auth layers.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Session is a server-side login session. The token is an opaque value
// handed to the client as a cookie.
type Session struct {
	Token     string
	UserID    int64
	ExpiresAt time.Time
}

// Expired reports whether the session is past its expiry at the given time.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
