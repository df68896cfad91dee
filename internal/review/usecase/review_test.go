package usecase

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"schedule-partner/internal/ai"
	"schedule-partner/internal/model"
	"schedule-partner/internal/review"
	"schedule-partner/internal/review/repository/memory"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock AI use case: records the feedback input and returns a fixed message.
type mockAI struct {
	lastInput ai.FeedbackInput
	message   string
	fallback  bool
}

func (m *mockAI) ParseScheduleText(ctx context.Context, sc model.Scope, input ai.ParseScheduleInput) (ai.ParseScheduleOutput, error) {
	return ai.ParseScheduleOutput{}, errors.New("not implemented")
}

func (m *mockAI) GenerateCharacterResponse(ctx context.Context, sc model.Scope, input ai.ChatInput) (ai.ChatOutput, error) {
	return ai.ChatOutput{}, errors.New("not implemented")
}

func (m *mockAI) GenerateDailyPlan(ctx context.Context, sc model.Scope, input ai.PlanInput) (ai.PlanOutput, error) {
	return ai.PlanOutput{}, errors.New("not implemented")
}

func (m *mockAI) GenerateReviewFeedback(ctx context.Context, sc model.Scope, input ai.FeedbackInput) ai.FeedbackOutput {
	m.lastInput = input
	return ai.FeedbackOutput{Message: m.message, Fallback: m.fallback}
}

func newTestUseCase(aiMock *mockAI) *implUseCase {
	repo, err := memory.New()
	if err != nil {
		panic(err)
	}
	return New(&mockLogger{}, aiMock, repo)
}

var reviewDate = time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC)

func TestCreateOrUpdate_CompletionRate(t *testing.T) {
	aiMock := &mockAI{message: "잘했어!"}
	uc := newTestUseCase(aiMock)

	out, err := uc.CreateOrUpdate(context.Background(), model.Scope{UserID: "u1"}, review.CreateInput{
		ReviewDate:  reviewDate,
		Rating:      4,
		MoodKeyword: "뿌듯",
		Stats: model.ReviewStats{
			TotalSchedules:     4,
			CompletedSchedules: 3,
			TotalTodos:         6,
			CompletedTodos:     5,
			TotalFocusMinutes:  120,
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if math.Abs(out.CompletionRate-0.8) > 1e-9 {
		t.Errorf("completion rate = %v, want 0.8", out.CompletionRate)
	}
	if out.Feedback != "잘했어!" || out.FeedbackFell {
		t.Errorf("feedback = %q fell=%v", out.Feedback, out.FeedbackFell)
	}
	if aiMock.lastInput.FocusMinutes != 120 || aiMock.lastInput.MoodKeyword != "뿌듯" {
		t.Errorf("feedback input = %+v", aiMock.lastInput)
	}
}

func TestCreateOrUpdate_EmptyDayIsZeroRate(t *testing.T) {
	uc := newTestUseCase(&mockAI{message: "수고했어"})

	out, err := uc.CreateOrUpdate(context.Background(), model.Scope{UserID: "u1"}, review.CreateInput{
		ReviewDate: reviewDate,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.CompletionRate != 0 {
		t.Errorf("completion rate = %v, want 0", out.CompletionRate)
	}
}

func TestCreateOrUpdate_UpsertKeepsIdentity(t *testing.T) {
	uc := newTestUseCase(&mockAI{message: "ok"})
	sc := model.Scope{UserID: "u1"}
	ctx := context.Background()

	first, err := uc.CreateOrUpdate(ctx, sc, review.CreateInput{ReviewDate: reviewDate, Rating: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := uc.CreateOrUpdate(ctx, sc, review.CreateInput{ReviewDate: reviewDate, Rating: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.Review.ID != first.Review.ID {
		t.Error("upsert should keep the original review ID")
	}
	if second.Review.Rating != 5 {
		t.Errorf("rating = %d, want 5", second.Review.Rating)
	}

	got, err := uc.GetByDate(ctx, sc, reviewDate)
	if err != nil {
		t.Fatalf("GetByDate: %v", err)
	}
	if got.Rating != 5 {
		t.Errorf("stored rating = %d, want 5", got.Rating)
	}
}

func TestCreateOrUpdate_HistoricalAverage(t *testing.T) {
	aiMock := &mockAI{message: "ok"}
	uc := newTestUseCase(aiMock)
	sc := model.Scope{UserID: "u1"}
	ctx := context.Background()

	// Two prior days: completion 1.0 and 0.5, focus 60 and 120.
	uc.CreateOrUpdate(ctx, sc, review.CreateInput{
		ReviewDate: reviewDate.AddDate(0, 0, -2),
		Stats:      model.ReviewStats{TotalSchedules: 2, CompletedSchedules: 2, TotalFocusMinutes: 60},
	})
	uc.CreateOrUpdate(ctx, sc, review.CreateInput{
		ReviewDate: reviewDate.AddDate(0, 0, -1),
		Stats:      model.ReviewStats{TotalSchedules: 2, CompletedSchedules: 1, TotalFocusMinutes: 120},
	})

	uc.CreateOrUpdate(ctx, sc, review.CreateInput{ReviewDate: reviewDate})

	avg := aiMock.lastInput.Average
	if math.Abs(avg.CompletionRate-0.75) > 1e-9 {
		t.Errorf("avg completion = %v, want 0.75", avg.CompletionRate)
	}
	if math.Abs(avg.FocusMinutes-90) > 1e-9 {
		t.Errorf("avg focus = %v, want 90", avg.FocusMinutes)
	}
}

func TestGetByDate_NotFound(t *testing.T) {
	uc := newTestUseCase(&mockAI{})

	_, err := uc.GetByDate(context.Background(), model.Scope{UserID: "u1"}, reviewDate)
	if !errors.Is(err, review.ErrReviewNotFound) {
		t.Errorf("expected ErrReviewNotFound, got %v", err)
	}
}

func TestList_NewestFirstWithPaging(t *testing.T) {
	uc := newTestUseCase(&mockAI{message: "ok"})
	sc := model.Scope{UserID: "u1"}
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		uc.CreateOrUpdate(ctx, sc, review.CreateInput{ReviewDate: reviewDate.AddDate(0, 0, -i)})
	}

	reviews, err := uc.List(ctx, sc, review.ListInput{Limit: 2, Offset: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(reviews) != 2 {
		t.Fatalf("reviews = %d, want 2", len(reviews))
	}
	if !reviews[0].ReviewDate.Equal(reviewDate.AddDate(0, 0, -1)) {
		t.Errorf("first page entry = %s", reviews[0].ReviewDate)
	}
}

func TestAnalytics_InvalidPeriod(t *testing.T) {
	uc := newTestUseCase(&mockAI{})

	_, err := uc.Analytics(context.Background(), model.Scope{UserID: "u1"}, "yearly")
	if !errors.Is(err, review.ErrInvalidPeriod) {
		t.Errorf("expected ErrInvalidPeriod, got %v", err)
	}
}

func TestAnalytics_Aggregates(t *testing.T) {
	uc := newTestUseCase(&mockAI{message: "ok"})
	sc := model.Scope{UserID: "u1"}
	ctx := context.Background()

	today := truncateToDate(time.Now())
	uc.CreateOrUpdate(ctx, sc, review.CreateInput{
		ReviewDate:  today.AddDate(0, 0, -1),
		Rating:      4,
		MoodKeyword: "뿌듯",
		Stats:       model.ReviewStats{TotalSchedules: 2, CompletedSchedules: 1, TotalFocusMinutes: 90},
	})
	uc.CreateOrUpdate(ctx, sc, review.CreateInput{
		ReviewDate:  today.AddDate(0, 0, -2),
		Rating:      2,
		MoodKeyword: "뿌듯",
		Stats:       model.ReviewStats{TotalSchedules: 1, CompletedSchedules: 1, TotalFocusMinutes: 30},
	})

	out, err := uc.Analytics(ctx, sc, "weekly")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.DaysReviewed != 2 {
		t.Errorf("days reviewed = %d, want 2", out.DaysReviewed)
	}
	if out.AverageRating != 3.0 {
		t.Errorf("avg rating = %v, want 3.0", out.AverageRating)
	}
	if out.TotalFocusHours != 2.0 {
		t.Errorf("focus hours = %v, want 2.0", out.TotalFocusHours)
	}
	if out.MoodFrequency["뿌듯"] != 2 {
		t.Errorf("mood frequency = %v", out.MoodFrequency)
	}
	if len(out.CompletionTrend) != 2 {
		t.Errorf("trend length = %d", len(out.CompletionTrend))
	}
}
