package ai

import (
	"time"

	"schedule-partner/internal/model"
)

// Output truncation caps, applied by the extractor before validation.
const (
	MaxChatLength        = 500
	MaxFeedbackLength    = 300
	MaxTitleLength       = 255
	MaxDescriptionLength = 1000
)

// ParseScheduleInput is the input for natural-language schedule parsing.
type ParseScheduleInput struct {
	Text          string    // Raw user text, e.g. "내일 오후 3시에 회의"
	ReferenceTime time.Time // "Now" from the caller's point of view; zero means time.Now
}

// ParsedSchedule is the structured result of parsing one schedule.
type ParsedSchedule struct {
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	StartTime   time.Time  `json:"start_time"`
	EndTime     *time.Time `json:"end_time,omitempty"`
	AllDay      bool       `json:"all_day"`
	Priority    int        `json:"priority"`
	Tags        []string   `json:"tags,omitempty"`
	Confidence  float64    `json:"confidence"`
}

// ParseScheduleOutput is the result of ParseScheduleText.
type ParseScheduleOutput struct {
	Schedule ParsedSchedule
	Model    string // provider model that produced the result
}

// ChatInput is the input for a character chat turn.
type ChatInput struct {
	Message        string
	Personality    model.Personality
	TimeOfDay      string // 아침 / 오후 / 저녁 / 밤, empty means 일반
	CompletedCount int    // today's completed items
	TotalCount     int    // today's total items
}

// ChatOutput is the result of GenerateCharacterResponse.
type ChatOutput struct {
	Message string
	Model   string
}

// PlanTask is one pending task handed to the daily planner.
type PlanTask struct {
	Title            string `json:"title"`
	Priority         int    `json:"priority"`
	EstimatedMinutes int    `json:"estimated_minutes,omitempty"`
}

// PlanPreferences shapes the working window of a generated plan.
type PlanPreferences struct {
	WorkStart    string // "HH:MM", default 09:00
	WorkEnd      string // "HH:MM", default 18:00
	BreakMinutes int    // default 10
}

// PlanInput is the input for daily plan generation.
type PlanInput struct {
	Date        time.Time
	Tasks       []PlanTask
	Preferences PlanPreferences
}

// PlanEntry is one ordered entry of a generated daily plan.
// Times are wall-clock "HH:MM" within the plan's date.
type PlanEntry struct {
	Title     string `json:"title"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time,omitempty"`
	Reason    string `json:"reason,omitempty"`
}

// PlanOutput is the result of GenerateDailyPlan.
type PlanOutput struct {
	Entries []PlanEntry
	Model   string
}

// FeedbackInput is the input for daily review feedback.
type FeedbackInput struct {
	Rating         int     // 1-5, defaults to 3 when unset
	CompletionRate float64 // 0-1 fraction
	FocusMinutes   int
	MoodKeyword    string // defaults to 보통 when empty
	Average        model.HistoricalAverage
}

// FeedbackOutput is the result of GenerateReviewFeedback.
// Fallback is true when the canned message was used instead of the provider's.
type FeedbackOutput struct {
	Message  string
	Fallback bool
	Model    string
}
