package review

import (
	"time"

	"schedule-partner/internal/model"
)

// CreateInput is the input for upserting a daily review. Day statistics are
// supplied by the caller; this service does not own schedule storage.
type CreateInput struct {
	ReviewDate  time.Time
	Rating      int // 1-5, 0 when unset
	MoodKeyword string
	Reflection  string
	Stats       model.ReviewStats
}

// CreateOutput is the result of CreateOrUpdate.
type CreateOutput struct {
	Review         model.DailyReview
	CompletionRate float64
	Feedback       string
	FeedbackFell   bool // true when the canned fallback message was used
}

// ListInput filters the review list.
type ListInput struct {
	StartDate time.Time // zero means unbounded
	EndDate   time.Time // zero means unbounded
	Limit     int       // default 30, max 100
	Offset    int
}

// TrendPoint is one day's completion rate in an analytics window.
type TrendPoint struct {
	Date string  `json:"date"`
	Rate float64 `json:"rate"`
}

// AnalyticsOutput aggregates reviews over a period.
type AnalyticsOutput struct {
	Period          string         `json:"period"`
	StartDate       string         `json:"start_date"`
	EndDate         string         `json:"end_date"`
	AverageRating   float64        `json:"average_rating"`
	TotalFocusHours float64        `json:"total_focus_hours"`
	CompletionTrend []TrendPoint   `json:"completion_trend"`
	MoodFrequency   map[string]int `json:"mood_frequency"`
	DaysReviewed    int            `json:"days_reviewed"`
}
