package http

import (
	"math"
	"time"

	"schedule-partner/internal/model"
	"schedule-partner/internal/review"
)

const dateLayout = "2006-01-02"

type statsReq struct {
	TotalSchedules     int `json:"total_schedules"`
	CompletedSchedules int `json:"completed_schedules"`
	TotalTodos         int `json:"total_todos"`
	CompletedTodos     int `json:"completed_todos"`
	TotalFocusMinutes  int `json:"total_focus_minutes"`
}

type createReq struct {
	ReviewDate  string   `json:"review_date" binding:"required"`
	Rating      int      `json:"rating" binding:"omitempty,min=1,max=5"`
	MoodKeyword string   `json:"mood_keyword"`
	Reflection  string   `json:"reflection"`
	Stats       statsReq `json:"stats"`
}

func (req createReq) toInput() (review.CreateInput, error) {
	date, err := time.Parse(dateLayout, req.ReviewDate)
	if err != nil {
		return review.CreateInput{}, err
	}
	return review.CreateInput{
		ReviewDate:  date,
		Rating:      req.Rating,
		MoodKeyword: req.MoodKeyword,
		Reflection:  req.Reflection,
		Stats: model.ReviewStats{
			TotalSchedules:     req.Stats.TotalSchedules,
			CompletedSchedules: req.Stats.CompletedSchedules,
			TotalTodos:         req.Stats.TotalTodos,
			CompletedTodos:     req.Stats.CompletedTodos,
			TotalFocusMinutes:  req.Stats.TotalFocusMinutes,
		},
	}, nil
}

type summaryResp struct {
	TotalFocusMinutes       int     `json:"total_focus_minutes"`
	CompletedSchedulesCount int     `json:"completed_schedules_count"`
	TotalSchedulesCount     int     `json:"total_schedules_count"`
	CompletedTodosCount     int     `json:"completed_todos_count"`
	TotalTodosCount         int     `json:"total_todos_count"`
	CompletionRate          float64 `json:"completion_rate"`
}

type reviewResp struct {
	ID                string      `json:"id"`
	ReviewDate        string      `json:"review_date"`
	Rating            int         `json:"rating,omitempty"`
	MoodKeyword       string      `json:"mood_keyword,omitempty"`
	Reflection        string      `json:"reflection,omitempty"`
	Summary           summaryResp `json:"summary"`
	CharacterFeedback string      `json:"character_feedback,omitempty"`
}

func newReviewResp(r model.DailyReview) reviewResp {
	return reviewResp{
		ID:          r.ID,
		ReviewDate:  r.ReviewDate.Format(dateLayout),
		Rating:      r.Rating,
		MoodKeyword: r.MoodKeyword,
		Reflection:  r.Reflection,
		Summary: summaryResp{
			TotalFocusMinutes:       r.Stats.TotalFocusMinutes,
			CompletedSchedulesCount: r.Stats.CompletedSchedules,
			TotalSchedulesCount:     r.Stats.TotalSchedules,
			CompletedTodosCount:     r.Stats.CompletedTodos,
			TotalTodosCount:         r.Stats.TotalTodos,
			CompletionRate:          math.Round(r.Stats.CompletionRate()*100) / 100,
		},
		CharacterFeedback: r.Feedback,
	}
}

func newListResp(reviews []model.DailyReview) []reviewResp {
	out := make([]reviewResp, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, newReviewResp(r))
	}
	return out
}
