package model

import "time"

const (
	PriorityMin     = 1
	PriorityMax     = 5
	PriorityDefault = 3
)

// Schedule is a confirmed calendar entry owned by a user.
type Schedule struct {
	ID          string
	UserID      string
	Title       string
	Description string
	StartTime   time.Time
	EndTime     *time.Time
	Priority    int
	CreatedAt   time.Time
}
