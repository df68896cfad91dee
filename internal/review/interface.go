package review

import (
	"context"
	"time"

	"schedule-partner/internal/model"
)

// UseCase defines the business logic interface for the daily review domain.
type UseCase interface {
	// CreateOrUpdate upserts the review for a date, recomputes its summary
	// and attaches character feedback. Feedback failures degrade to the
	// canned message and never fail the operation.
	CreateOrUpdate(ctx context.Context, sc model.Scope, input CreateInput) (CreateOutput, error)

	// List returns reviews in a date range, newest first.
	List(ctx context.Context, sc model.Scope, input ListInput) ([]model.DailyReview, error)

	// GetByDate returns the review for one date.
	GetByDate(ctx context.Context, sc model.Scope, date time.Time) (model.DailyReview, error)

	// Analytics aggregates reviews over a weekly or monthly window.
	Analytics(ctx context.Context, sc model.Scope, period string) (AnalyticsOutput, error)
}
