package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"schedule-partner/config"
	"schedule-partner/internal/ai"
	"schedule-partner/internal/middleware"
	"schedule-partner/internal/model"
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

// Mock AI use case with canned results per operation.
type mockAIUseCase struct {
	parseOut ai.ParseScheduleOutput
	parseErr error
	chatOut  ai.ChatOutput
	chatErr  error
	planOut  ai.PlanOutput
	planErr  error
}

func (m *mockAIUseCase) ParseScheduleText(ctx context.Context, sc model.Scope, input ai.ParseScheduleInput) (ai.ParseScheduleOutput, error) {
	return m.parseOut, m.parseErr
}

func (m *mockAIUseCase) GenerateCharacterResponse(ctx context.Context, sc model.Scope, input ai.ChatInput) (ai.ChatOutput, error) {
	return m.chatOut, m.chatErr
}

func (m *mockAIUseCase) GenerateDailyPlan(ctx context.Context, sc model.Scope, input ai.PlanInput) (ai.PlanOutput, error) {
	return m.planOut, m.planErr
}

func (m *mockAIUseCase) GenerateReviewFeedback(ctx context.Context, sc model.Scope, input ai.FeedbackInput) ai.FeedbackOutput {
	return ai.FeedbackOutput{}
}

// Mock conversation recorder capturing records.
type mockRecorder struct {
	records []model.Conversation
}

func (m *mockRecorder) Record(ctx context.Context, sc model.Scope, conv model.Conversation) error {
	m.records = append(m.records, conv)
	return nil
}

func (m *mockRecorder) Recent(ctx context.Context, sc model.Scope, limit int) ([]model.Conversation, error) {
	return m.records, nil
}

func newTestRouter(uc ai.UseCase, rec *mockRecorder) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	mw := middleware.New(&mockLogger{}, config.RateLimitConfig{PerMinute: 6000, Burst: 100})
	h := New(&mockLogger{}, uc, rec, nil, CalendarConfig{})
	RegisterRoutes(r.Group("/api/v1/ai"), h, mw)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", "u1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestParse_Success(t *testing.T) {
	end := time.Date(2026, 8, 27, 16, 0, 0, 0, time.UTC)
	uc := &mockAIUseCase{parseOut: ai.ParseScheduleOutput{
		Schedule: ai.ParsedSchedule{
			Title:      "팀 회의",
			StartTime:  time.Date(2026, 8, 27, 15, 0, 0, 0, time.UTC),
			EndTime:    &end,
			Priority:   2,
			Confidence: 0.95,
		},
		Model: "test-model",
	}}
	rec := &mockRecorder{}
	r := newTestRouter(uc, rec)

	w := doJSON(t, r, "/api/v1/ai/parse", gin.H{"text": "내일 오후 3시에 팀 회의"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data parseResp `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Data.Parsed.Title != "팀 회의" || resp.Data.Confidence != 0.95 {
		t.Errorf("resp = %+v", resp.Data)
	}

	if len(rec.records) != 1 || rec.records[0].Intent != model.IntentSchedule {
		t.Errorf("records = %+v", rec.records)
	}
}

func TestParse_LowConfidence422(t *testing.T) {
	uc := &mockAIUseCase{parseErr: &ai.Error{Kind: ai.KindLowConfidence, Message: "confidence 0.40 below threshold 0.70", Confidence: 0.4}}
	r := newTestRouter(uc, &mockRecorder{})

	w := doJSON(t, r, "/api/v1/ai/parse", gin.H{"text": "음..."})
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", w.Code)
	}
	var resp struct {
		Code string `json:"code"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Code != "VALIDATION_003" {
		t.Errorf("code = %q, want VALIDATION_003", resp.Code)
	}
}

func TestParse_Timeout503(t *testing.T) {
	uc := &mockAIUseCase{parseErr: &ai.Error{Kind: ai.KindTimeout, Message: "provider call timed out"}}
	r := newTestRouter(uc, &mockRecorder{})

	w := doJSON(t, r, "/api/v1/ai/parse", gin.H{"text": "내일 회의"})
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", w.Code)
	}
	var resp struct {
		Code string `json:"code"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Code != "AI_001" {
		t.Errorf("code = %q, want AI_001", resp.Code)
	}
}

func TestParse_MissingText400(t *testing.T) {
	r := newTestRouter(&mockAIUseCase{}, &mockRecorder{})

	w := doJSON(t, r, "/api/v1/ai/parse", gin.H{})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestChat_ReactionAndSession(t *testing.T) {
	uc := &mockAIUseCase{chatOut: ai.ChatOutput{Message: "조금만 쉬어도 괜찮아!", Model: "test-model"}}
	rec := &mockRecorder{}
	r := newTestRouter(uc, rec)

	w := doJSON(t, r, "/api/v1/ai/chat", gin.H{"message": "오늘 너무 피곤해"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data chatResp `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Data.CharacterState.Emotion != "worried" || resp.Data.CharacterState.Animation != "comforting" {
		t.Errorf("reaction = %+v", resp.Data.CharacterState)
	}
	if _, err := uuid.Parse(resp.Data.SessionID); err != nil {
		t.Errorf("session id %q is not a UUID", resp.Data.SessionID)
	}
	if len(rec.records) != 1 || rec.records[0].Intent != model.IntentChat {
		t.Errorf("records = %+v", rec.records)
	}
}

func TestChat_KeepsGivenSession(t *testing.T) {
	uc := &mockAIUseCase{chatOut: ai.ChatOutput{Message: "응!"}}
	r := newTestRouter(uc, &mockRecorder{})

	session := uuid.NewString()
	w := doJSON(t, r, "/api/v1/ai/chat", gin.H{"message": "안녕", "session_id": session})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp struct {
		Data chatResp `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Data.SessionID != session {
		t.Errorf("session = %q, want %q", resp.Data.SessionID, session)
	}
}

func TestGeneratePlan_DefaultReasoning(t *testing.T) {
	uc := &mockAIUseCase{planOut: ai.PlanOutput{
		Entries: []ai.PlanEntry{{Title: "보고서", StartTime: "09:00"}},
	}}
	r := newTestRouter(uc, &mockRecorder{})

	w := doJSON(t, r, "/api/v1/ai/generate-plan", gin.H{
		"date":  "2026-08-27",
		"tasks": []gin.H{{"title": "보고서", "priority": 1}},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data generatePlanResp `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Data.Reasoning != defaultPlanReasoning {
		t.Errorf("reasoning = %q", resp.Data.Reasoning)
	}
}

func TestGeneratePlan_FirstEntryReason(t *testing.T) {
	uc := &mockAIUseCase{planOut: ai.PlanOutput{
		Entries: []ai.PlanEntry{{Title: "보고서", StartTime: "09:00", Reason: "집중이 필요한 작업"}},
	}}
	r := newTestRouter(uc, &mockRecorder{})

	w := doJSON(t, r, "/api/v1/ai/generate-plan", gin.H{
		"date":  "2026-08-27",
		"tasks": []gin.H{{"title": "보고서", "priority": 1}},
	})

	var resp struct {
		Data generatePlanResp `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Data.Reasoning != "집중이 필요한 작업" {
		t.Errorf("reasoning = %q", resp.Data.Reasoning)
	}
}

func TestGeneratePlan_BadDate400(t *testing.T) {
	r := newTestRouter(&mockAIUseCase{}, &mockRecorder{})

	w := doJSON(t, r, "/api/v1/ai/generate-plan", gin.H{
		"date":  "tomorrow",
		"tasks": []gin.H{{"title": "보고서", "priority": 1}},
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}
