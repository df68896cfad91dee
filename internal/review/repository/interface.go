package repository

import (
	"context"
	"time"

	"schedule-partner/internal/model"
)

// ReviewRepository stores per-user daily reviews, one per date.
type ReviewRepository interface {
	// Upsert stores the review for its date, replacing any existing one.
	Upsert(ctx context.Context, userID string, review model.DailyReview) error

	// ByDate returns the review for a date, if present.
	ByDate(ctx context.Context, userID string, date time.Time) (model.DailyReview, bool)

	// Between returns reviews with date in [start, end], oldest first.
	// A zero bound is unbounded on that side.
	Between(ctx context.Context, userID string, start, end time.Time) ([]model.DailyReview, error)
}
