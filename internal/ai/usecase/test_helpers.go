package usecase

import (
	"context"

	"schedule-partner/pkg/llm"
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

// Mock provider for testing. When waitForCtx is set, the call blocks until
// the context expires, simulating a slow upstream.
type mockProvider struct {
	text       string
	err        error
	waitForCtx bool
	lastReq    *llm.Request
	calls      int
}

func (m *mockProvider) GenerateText(ctx context.Context, req *llm.Request) (*llm.Response, error) {
	m.calls++
	m.lastReq = req
	if m.waitForCtx {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if m.err != nil {
		return nil, m.err
	}
	return &llm.Response{Text: m.text}, nil
}

func (m *mockProvider) Name() string  { return "mock" }
func (m *mockProvider) Model() string { return "mock-model" }

func newTestUseCase(p *mockProvider, cfg Config) *implUseCase {
	uc, err := New(&mockLogger{}, p, cfg)
	if err != nil {
		panic(err)
	}
	return uc
}
