package model

import "time"

// ReviewStats summarizes one day of schedule and todo activity.
type ReviewStats struct {
	Date               time.Time
	TotalSchedules     int
	CompletedSchedules int
	TotalTodos         int
	CompletedTodos     int
	TotalFocusMinutes  int
}

// CompletionRate is (completed schedules + todos) / (total schedules + todos)
// as a 0-1 fraction. Days with no items count as 0.
func (s ReviewStats) CompletionRate() float64 {
	total := s.TotalSchedules + s.TotalTodos
	if total == 0 {
		return 0
	}
	return float64(s.CompletedSchedules+s.CompletedTodos) / float64(total)
}

// HistoricalAverage is the trailing 30-day average used to contextualize
// a day's review.
type HistoricalAverage struct {
	CompletionRate float64 // 0-1 fraction
	FocusMinutes   float64
}

// DailyReview is a persisted review record for one user and one day.
type DailyReview struct {
	ID          string
	UserID      string
	ReviewDate  time.Time
	Rating      int // 1-5, 0 when unset
	MoodKeyword string
	Reflection  string
	Stats       ReviewStats
	Feedback    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
