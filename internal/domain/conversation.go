package domain

import "time"

// Conversation modes as stored with each practice session.
const (
	ModeCasual = "casual"
	ModeFormal = "formal"
	ModeLesson = "lesson"
)

// ConversationRecord is one practice conversation. The aggregator only
// reads StartedAt dates; the chat content itself lives outside the core.
type ConversationRecord struct {
	ID        int64
	UserID    int64
	Language  Language
	Mode      string
	StartedAt time.Time
}
