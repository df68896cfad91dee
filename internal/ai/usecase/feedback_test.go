package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"schedule-partner/internal/ai"
	"schedule-partner/internal/model"
)

func feedbackInput() ai.FeedbackInput {
	return ai.FeedbackInput{
		Rating:         4,
		CompletionRate: 0.8,
		FocusMinutes:   120,
		MoodKeyword:    "뿌듯",
		Average:        model.HistoricalAverage{CompletionRate: 0.65, FocusMinutes: 90},
	}
}

func TestGenerateReviewFeedback_Success(t *testing.T) {
	provider := &mockProvider{text: "오늘 완료율이 평균보다 높았어! 정말 잘했어."}
	uc := newTestUseCase(provider, Config{})

	out := uc.GenerateReviewFeedback(context.Background(), model.Scope{UserID: "u1"}, feedbackInput())
	if out.Fallback {
		t.Error("fallback should be false on success")
	}
	if out.Message != "오늘 완료율이 평균보다 높았어! 정말 잘했어." {
		t.Errorf("unexpected message: %q", out.Message)
	}
	if out.Model != "mock-model" {
		t.Errorf("model = %q", out.Model)
	}
}

func TestGenerateReviewFeedback_FallbackOnError(t *testing.T) {
	provider := &mockProvider{err: errors.New("upstream exploded")}
	uc := newTestUseCase(provider, Config{})

	out := uc.GenerateReviewFeedback(context.Background(), model.Scope{}, feedbackInput())
	if !out.Fallback {
		t.Fatal("fallback should be true on provider error")
	}
	if out.Message != FallbackFeedback {
		t.Errorf("message = %q, want canned fallback", out.Message)
	}
}

func TestGenerateReviewFeedback_FallbackOnTimeout(t *testing.T) {
	provider := &mockProvider{waitForCtx: true}
	uc := newTestUseCase(provider, Config{Timeout: 20 * time.Millisecond})

	out := uc.GenerateReviewFeedback(context.Background(), model.Scope{}, feedbackInput())
	if !out.Fallback || out.Message != FallbackFeedback {
		t.Fatalf("timeout should degrade to fallback, got %+v", out)
	}
}

func TestGenerateReviewFeedback_Truncation(t *testing.T) {
	provider := &mockProvider{text: strings.Repeat("수", ai.MaxFeedbackLength+50)}
	uc := newTestUseCase(provider, Config{})

	out := uc.GenerateReviewFeedback(context.Background(), model.Scope{}, feedbackInput())
	if got := len([]rune(out.Message)); got != ai.MaxFeedbackLength {
		t.Errorf("message length = %d, want %d", got, ai.MaxFeedbackLength)
	}
}

func TestGenerateReviewFeedback_PromptDefaults(t *testing.T) {
	provider := &mockProvider{text: "잘했어!"}
	uc := newTestUseCase(provider, Config{})

	uc.GenerateReviewFeedback(context.Background(), model.Scope{}, ai.FeedbackInput{})
	if !strings.Contains(provider.lastReq.Prompt, "평점: 3/5") {
		t.Error("prompt should default rating to 3")
	}
	if !strings.Contains(provider.lastReq.Prompt, "기분: 보통") {
		t.Error("prompt should default mood to 보통")
	}
}
