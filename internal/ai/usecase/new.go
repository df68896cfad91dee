package usecase

import (
	"errors"
	"time"

	"schedule-partner/internal/model"
	pkgLog "schedule-partner/pkg/log"
	"schedule-partner/pkg/llm"
)

const (
	defaultTimeout       = 30 * time.Second
	defaultMinConfidence = 0.7
	defaultTimezone      = "Asia/Seoul"
)

// Config is the immutable tuning snapshot for the AI pipeline. It is copied
// at construction time; later mutation of the source has no effect.
type Config struct {
	Timeout            time.Duration // per-request deadline for provider calls
	MinConfidence      float64       // parse results below this are rejected
	Timezone           string        // IANA zone for prompt timestamps
	DefaultPersonality model.Personality
}

// Validate fills defaults and rejects unusable values.
func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	if c.MinConfidence == 0 {
		c.MinConfidence = defaultMinConfidence
	}
	if c.MinConfidence < 0 || c.MinConfidence > 1 {
		return errors.New("min confidence must be within [0, 1]")
	}
	if c.Timezone == "" {
		c.Timezone = defaultTimezone
	}
	if c.DefaultPersonality == "" {
		c.DefaultPersonality = model.PersonalityFriendly
	}
	if !c.DefaultPersonality.Valid() {
		return errors.New("unknown default personality")
	}
	return nil
}

type implUseCase struct {
	l        pkgLog.Logger
	provider llm.Provider
	cfg      Config
	loc      *time.Location
}

// New creates a new AI UseCase instance.
func New(l pkgLog.Logger, provider llm.Provider, cfg Config) (*implUseCase, error) {
	if provider == nil {
		return nil, errors.New("nil LLM provider")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		loc = time.UTC
	}

	return &implUseCase{
		l:        l,
		provider: provider,
		cfg:      cfg,
		loc:      loc,
	}, nil
}
