package usecase

import (
	"context"
	"math"
	"time"

	"schedule-partner/internal/model"
	"schedule-partner/internal/review"
)

// Analytics aggregates reviews over a weekly or monthly window ending today.
func (uc *implUseCase) Analytics(ctx context.Context, sc model.Scope, period string) (review.AnalyticsOutput, error) {
	var days int
	switch period {
	case "weekly":
		days = 7
	case "monthly":
		days = 30
	default:
		return review.AnalyticsOutput{}, review.ErrInvalidPeriod
	}

	end := truncateToDate(time.Now())
	start := end.AddDate(0, 0, -days)

	out := review.AnalyticsOutput{
		Period:          period,
		StartDate:       start.Format("2006-01-02"),
		EndDate:         end.Format("2006-01-02"),
		CompletionTrend: []review.TrendPoint{},
		MoodFrequency:   map[string]int{},
	}

	reviews, err := uc.repo.Between(ctx, sc.UserID, start, end)
	if err != nil {
		return review.AnalyticsOutput{}, err
	}
	if len(reviews) == 0 {
		return out, nil
	}

	var ratingSum, ratedDays, focusMinutes int
	for _, r := range reviews {
		if r.Rating > 0 {
			ratingSum += r.Rating
			ratedDays++
		}
		focusMinutes += r.Stats.TotalFocusMinutes

		out.CompletionTrend = append(out.CompletionTrend, review.TrendPoint{
			Date: r.ReviewDate.Format("2006-01-02"),
			Rate: math.Round(r.Stats.CompletionRate()*100) / 100,
		})
		if r.MoodKeyword != "" {
			out.MoodFrequency[r.MoodKeyword]++
		}
	}

	if ratedDays > 0 {
		out.AverageRating = math.Round(float64(ratingSum)/float64(ratedDays)*10) / 10
	}
	out.TotalFocusHours = math.Round(float64(focusMinutes)/60*10) / 10
	out.DaysReviewed = len(reviews)

	return out, nil
}
