package usecase

import (
	"testing"
	"time"

	"schedule-partner/internal/model"
)

func TestConfigValidate_Defaults(t *testing.T) {
	cfg := Config{}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("timeout = %v, want 30s", cfg.Timeout)
	}
	if cfg.MinConfidence != 0.7 {
		t.Errorf("min confidence = %v, want 0.7", cfg.MinConfidence)
	}
	if cfg.Timezone != "Asia/Seoul" {
		t.Errorf("timezone = %q, want Asia/Seoul", cfg.Timezone)
	}
	if cfg.DefaultPersonality != model.PersonalityFriendly {
		t.Errorf("personality = %q, want friendly", cfg.DefaultPersonality)
	}
}

func TestConfigValidate_Invalid(t *testing.T) {
	cfg := Config{MinConfidence: 1.5}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for out-of-range confidence")
	}

	cfg = Config{DefaultPersonality: "grumpy"}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown personality")
	}
}

func TestNew_NilProvider(t *testing.T) {
	if _, err := New(&mockLogger{}, nil, Config{}); err == nil {
		t.Error("expected error for nil provider")
	}
}
