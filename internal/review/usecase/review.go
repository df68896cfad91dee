package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"schedule-partner/internal/ai"
	"schedule-partner/internal/model"
	"schedule-partner/internal/review"
)

const historyWindowDays = 30

// CreateOrUpdate upserts the review for a date, recomputes its summary and
// attaches character feedback.
func (uc *implUseCase) CreateOrUpdate(ctx context.Context, sc model.Scope, input review.CreateInput) (review.CreateOutput, error) {
	date := truncateToDate(input.ReviewDate)
	input.Stats.Date = date
	completionRate := input.Stats.CompletionRate()

	existing, found := uc.repo.ByDate(ctx, sc.UserID, date)

	rec := model.DailyReview{
		ID:          uuid.NewString(),
		UserID:      sc.UserID,
		ReviewDate:  date,
		Rating:      input.Rating,
		MoodKeyword: input.MoodKeyword,
		Reflection:  input.Reflection,
		Stats:       input.Stats,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if found {
		rec.ID = existing.ID
		rec.CreatedAt = existing.CreatedAt
	}

	// Averages exclude the day under review.
	average := uc.historicalAverage(ctx, sc.UserID, date)

	feedback := uc.aiUC.GenerateReviewFeedback(ctx, sc, ai.FeedbackInput{
		Rating:         input.Rating,
		CompletionRate: completionRate,
		FocusMinutes:   input.Stats.TotalFocusMinutes,
		MoodKeyword:    input.MoodKeyword,
		Average:        average,
	})
	rec.Feedback = feedback.Message

	if err := uc.repo.Upsert(ctx, sc.UserID, rec); err != nil {
		return review.CreateOutput{}, err
	}

	uc.l.Infof(ctx, "CreateOrUpdate: user=%s date=%s completion=%.2f fallback=%v",
		sc.UserID, date.Format("2006-01-02"), completionRate, feedback.Fallback)

	return review.CreateOutput{
		Review:         rec,
		CompletionRate: completionRate,
		Feedback:       feedback.Message,
		FeedbackFell:   feedback.Fallback,
	}, nil
}

// List returns reviews in a date range, newest first.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input review.ListInput) ([]model.DailyReview, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = 30
	}
	if limit > 100 {
		limit = 100
	}

	reviews, err := uc.repo.Between(ctx, sc.UserID, input.StartDate, input.EndDate)
	if err != nil {
		return nil, err
	}

	// Between returns oldest first; callers want newest first.
	for i, j := 0, len(reviews)-1; i < j; i, j = i+1, j-1 {
		reviews[i], reviews[j] = reviews[j], reviews[i]
	}

	if input.Offset >= len(reviews) {
		return []model.DailyReview{}, nil
	}
	reviews = reviews[input.Offset:]
	if len(reviews) > limit {
		reviews = reviews[:limit]
	}
	return reviews, nil
}

// GetByDate returns the review for one date.
func (uc *implUseCase) GetByDate(ctx context.Context, sc model.Scope, date time.Time) (model.DailyReview, error) {
	rec, ok := uc.repo.ByDate(ctx, sc.UserID, truncateToDate(date))
	if !ok {
		return model.DailyReview{}, review.ErrReviewNotFound
	}
	return rec, nil
}

// historicalAverage computes the trailing 30-day average before date.
func (uc *implUseCase) historicalAverage(ctx context.Context, userID string, date time.Time) model.HistoricalAverage {
	start := date.AddDate(0, 0, -historyWindowDays)
	history, err := uc.repo.Between(ctx, userID, start, date.AddDate(0, 0, -1))
	if err != nil || len(history) == 0 {
		return model.HistoricalAverage{}
	}

	var sumFocus, sumCompletion float64
	for _, h := range history {
		sumFocus += float64(h.Stats.TotalFocusMinutes)
		sumCompletion += h.Stats.CompletionRate()
	}
	n := float64(len(history))
	return model.HistoricalAverage{
		CompletionRate: sumCompletion / n,
		FocusMinutes:   sumFocus / n,
	}
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
