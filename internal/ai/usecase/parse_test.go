package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"schedule-partner/internal/ai"
	"schedule-partner/internal/model"
)

var testRef = time.Date(2026, 8, 26, 10, 0, 0, 0, time.FixedZone("KST", 9*3600))

func parseInput(text string) ai.ParseScheduleInput {
	return ai.ParseScheduleInput{Text: text, ReferenceTime: testRef}
}

func kindOf(t *testing.T, err error) ai.FailureKind {
	t.Helper()
	var aiErr *ai.Error
	if !errors.As(err, &aiErr) {
		t.Fatalf("expected *ai.Error, got %T: %v", err, err)
	}
	return aiErr.Kind
}

func TestParseScheduleText_Success(t *testing.T) {
	provider := &mockProvider{text: "```json\n" + `{
		"title": "팀 회의",
		"start_time": "2026-08-27T15:00:00+09:00",
		"end_time": "2026-08-27T16:00:00+09:00",
		"all_day": false,
		"priority": 2,
		"tags": ["업무"],
		"confidence": 0.95
	}` + "\n```"}
	uc := newTestUseCase(provider, Config{})

	out, err := uc.ParseScheduleText(context.Background(), model.Scope{UserID: "u1"}, parseInput("내일 오후 3시에 팀 회의"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Schedule.Title != "팀 회의" {
		t.Errorf("title = %q, want %q", out.Schedule.Title, "팀 회의")
	}
	if out.Schedule.Priority != 2 {
		t.Errorf("priority = %d, want 2", out.Schedule.Priority)
	}
	if out.Schedule.EndTime == nil || !out.Schedule.EndTime.After(out.Schedule.StartTime) {
		t.Errorf("end time not after start time: %v", out.Schedule.EndTime)
	}
	if out.Model != "mock-model" {
		t.Errorf("model = %q, want mock-model", out.Model)
	}
	if provider.calls != 1 {
		t.Errorf("provider calls = %d, want exactly 1", provider.calls)
	}
}

func TestParseScheduleText_DefaultPriority(t *testing.T) {
	provider := &mockProvider{text: fmt.Sprintf(
		`{"title": "산책", "start_time": %q, "confidence": 0.9}`,
		testRef.Add(2*time.Hour).Format(time.RFC3339))}
	uc := newTestUseCase(provider, Config{})

	out, err := uc.ParseScheduleText(context.Background(), model.Scope{}, parseInput("이따 산책"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Schedule.Priority != model.PriorityDefault {
		t.Errorf("priority = %d, want default %d", out.Schedule.Priority, model.PriorityDefault)
	}
}

func TestParseScheduleText_LowConfidence(t *testing.T) {
	provider := &mockProvider{text: `{"title": "뭔가", "start_time": "2026-08-27T10:00:00+09:00", "confidence": 0.4}`}
	uc := newTestUseCase(provider, Config{})

	_, err := uc.ParseScheduleText(context.Background(), model.Scope{}, parseInput("음..."))
	if kind := kindOf(t, err); kind != ai.KindLowConfidence {
		t.Fatalf("kind = %s, want %s", kind, ai.KindLowConfidence)
	}

	var aiErr *ai.Error
	errors.As(err, &aiErr)
	if aiErr.Confidence != 0.4 {
		t.Errorf("confidence = %v, want 0.4", aiErr.Confidence)
	}
	if aiErr.Kind.Code() != "VALIDATION_003" {
		t.Errorf("code = %s, want VALIDATION_003", aiErr.Kind.Code())
	}
}

func TestParseScheduleText_ConfidenceAtThreshold(t *testing.T) {
	provider := &mockProvider{text: fmt.Sprintf(
		`{"title": "점심", "start_time": %q, "confidence": 0.7}`,
		testRef.Add(3*time.Hour).Format(time.RFC3339))}
	uc := newTestUseCase(provider, Config{})

	if _, err := uc.ParseScheduleText(context.Background(), model.Scope{}, parseInput("점심 약속")); err != nil {
		t.Fatalf("confidence exactly at threshold should pass, got %v", err)
	}
}

func TestParseScheduleText_InvalidPriority(t *testing.T) {
	for _, p := range []int{0, 6, -1} {
		provider := &mockProvider{text: fmt.Sprintf(
			`{"title": "x", "start_time": "2026-08-27T10:00:00+09:00", "priority": %d, "confidence": 0.9}`, p)}
		uc := newTestUseCase(provider, Config{})

		_, err := uc.ParseScheduleText(context.Background(), model.Scope{}, parseInput("x"))
		if kind := kindOf(t, err); kind != ai.KindInvalidPriority {
			t.Errorf("priority %d: kind = %s, want %s", p, kind, ai.KindInvalidPriority)
		}
	}
}

func TestParseScheduleText_DatetimeWindow(t *testing.T) {
	cases := []struct {
		name    string
		start   time.Time
		wantErr bool
	}{
		{"thirty minutes ago is tolerated", testRef.Add(-30 * time.Minute), false},
		{"two hours ago is rejected", testRef.Add(-2 * time.Hour), true},
		{"eleven months ahead is accepted", testRef.Add(330 * 24 * time.Hour), false},
		{"two years ahead is rejected", testRef.Add(2 * 365 * 24 * time.Hour), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			provider := &mockProvider{text: fmt.Sprintf(
				`{"title": "t", "start_time": %q, "confidence": 0.9}`, tc.start.Format(time.RFC3339))}
			uc := newTestUseCase(provider, Config{})

			_, err := uc.ParseScheduleText(context.Background(), model.Scope{}, parseInput("t"))
			if tc.wantErr {
				if kind := kindOf(t, err); kind != ai.KindInvalidDatetime {
					t.Fatalf("kind = %s, want %s", kind, ai.KindInvalidDatetime)
				}
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestParseScheduleText_MissingStartTime(t *testing.T) {
	provider := &mockProvider{text: `{"title": "회의", "confidence": 0.9}`}
	uc := newTestUseCase(provider, Config{})

	_, err := uc.ParseScheduleText(context.Background(), model.Scope{}, parseInput("회의"))
	if kind := kindOf(t, err); kind != ai.KindInvalidDatetime {
		t.Fatalf("kind = %s, want %s", kind, ai.KindInvalidDatetime)
	}
}

func TestParseScheduleText_EndBeforeStart(t *testing.T) {
	provider := &mockProvider{text: `{
		"title": "회의",
		"start_time": "2026-08-27T15:00:00+09:00",
		"end_time": "2026-08-27T14:00:00+09:00",
		"confidence": 0.9
	}`}
	uc := newTestUseCase(provider, Config{})

	_, err := uc.ParseScheduleText(context.Background(), model.Scope{}, parseInput("회의"))
	if kind := kindOf(t, err); kind != ai.KindInvalidDatetime {
		t.Fatalf("kind = %s, want %s", kind, ai.KindInvalidDatetime)
	}
}

func TestParseScheduleText_TitleTruncation(t *testing.T) {
	longTitle := strings.Repeat("가", ai.MaxTitleLength+1)
	provider := &mockProvider{text: fmt.Sprintf(
		`{"title": %q, "start_time": "2026-08-27T10:00:00+09:00", "confidence": 0.9}`, longTitle)}
	uc := newTestUseCase(provider, Config{})

	out, err := uc.ParseScheduleText(context.Background(), model.Scope{}, parseInput("x"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := len([]rune(out.Schedule.Title)); got != ai.MaxTitleLength {
		t.Errorf("title length = %d, want %d", got, ai.MaxTitleLength)
	}
}

func TestParseScheduleText_MalformedOutput(t *testing.T) {
	provider := &mockProvider{text: "죄송해요, 일정을 파싱할 수 없습니다."}
	uc := newTestUseCase(provider, Config{})

	_, err := uc.ParseScheduleText(context.Background(), model.Scope{}, parseInput("x"))
	var aiErr *ai.Error
	if !errors.As(err, &aiErr) || aiErr.Kind != ai.KindMalformedOutput {
		t.Fatalf("expected malformed_output, got %v", err)
	}
	if aiErr.Kind.Code() != "AI_003" {
		t.Errorf("code = %s, want AI_003", aiErr.Kind.Code())
	}
}

func TestParseScheduleText_EmptyInput(t *testing.T) {
	provider := &mockProvider{}
	uc := newTestUseCase(provider, Config{})

	if _, err := uc.ParseScheduleText(context.Background(), model.Scope{}, parseInput("   ")); err == nil {
		t.Fatal("expected error for empty input")
	}
	if provider.calls != 0 {
		t.Errorf("provider calls = %d, want 0 for empty input", provider.calls)
	}
}

func TestParseScheduleText_Timeout(t *testing.T) {
	provider := &mockProvider{waitForCtx: true}
	uc := newTestUseCase(provider, Config{Timeout: 20 * time.Millisecond})

	_, err := uc.ParseScheduleText(context.Background(), model.Scope{}, parseInput("내일 회의"))
	var aiErr *ai.Error
	if !errors.As(err, &aiErr) || aiErr.Kind != ai.KindTimeout {
		t.Fatalf("expected timeout, got %v", err)
	}
	if aiErr.Kind.Code() != "AI_001" {
		t.Errorf("code = %s, want AI_001", aiErr.Kind.Code())
	}
	if provider.calls != 1 {
		t.Errorf("provider calls = %d, want exactly 1 (no retry)", provider.calls)
	}
}

type statusErr struct{ status int }

func (e *statusErr) Error() string   { return fmt.Sprintf("http %d", e.status) }
func (e *statusErr) HTTPStatus() int { return e.status }

func TestParseScheduleText_RateLimited(t *testing.T) {
	provider := &mockProvider{err: &statusErr{status: 429}}
	uc := newTestUseCase(provider, Config{})

	_, err := uc.ParseScheduleText(context.Background(), model.Scope{}, parseInput("x"))
	var aiErr *ai.Error
	if !errors.As(err, &aiErr) || aiErr.Kind != ai.KindRateLimited {
		t.Fatalf("expected rate_limited, got %v", err)
	}
	if aiErr.Kind.Code() != "AI_002" {
		t.Errorf("code = %s, want AI_002", aiErr.Kind.Code())
	}
}

func TestParseScheduleText_QuotaMessageRateLimited(t *testing.T) {
	provider := &mockProvider{err: errors.New("generation failed: Quota exceeded for model")}
	uc := newTestUseCase(provider, Config{})

	_, err := uc.ParseScheduleText(context.Background(), model.Scope{}, parseInput("x"))
	if kind := kindOf(t, err); kind != ai.KindRateLimited {
		t.Fatalf("kind = %s, want %s", kind, ai.KindRateLimited)
	}
}
