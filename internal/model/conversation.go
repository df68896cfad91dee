package model

import (
	"time"

	"github.com/google/uuid"
)

// ConversationIntent classifies what the user asked for in a chat turn.
type ConversationIntent string

const (
	IntentChat     ConversationIntent = "chat"
	IntentSchedule ConversationIntent = "schedule"
	IntentPlan     ConversationIntent = "plan"
	IntentReview   ConversationIntent = "review"
)

// Conversation is a single recorded user/assistant exchange.
type Conversation struct {
	ID          uuid.UUID
	SessionID   uuid.UUID
	UserID      string
	UserMessage string
	AIResponse  string
	Intent      ConversationIntent
	Model       string
	LatencyMS   int64
	CreatedAt   time.Time
}
