package llm

import (
	"fmt"
	"sort"

	"schedule-partner/config"
	"schedule-partner/pkg/gemini"
	"schedule-partner/pkg/qwen"
)

// Select builds the single provider the service will use: the enabled
// provider with the lowest priority value that initializes successfully.
// Retry and fallback across providers are deliberately not handled here —
// the orchestration layer issues exactly one call per request.
func Select(cfg *config.LLMConfig) (Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("LLM config is nil")
	}

	var enabled []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabled = append(enabled, p)
		}
	}
	if len(enabled) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	sort.Slice(enabled, func(i, j int) bool {
		return enabled[i].Priority < enabled[j].Priority
	})

	var lastErr error
	for _, p := range enabled {
		provider, err := New(p)
		if err != nil {
			lastErr = err
			continue
		}
		return provider, nil
	}

	return nil, fmt.Errorf("no provider could be initialized: %w", lastErr)
}

// New creates a concrete provider instance from its config entry.
func New(cfg config.ProviderConfig) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("provider %s: API key is required", cfg.Name)
	}

	switch cfg.Name {
	case "gemini":
		client, err := gemini.New(gemini.Config{
			APIKey: cfg.APIKey,
			Model:  cfg.Model,
			APIURL: cfg.BaseURL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		return NewGeminiAdapter(client), nil

	case "qwen", "alibaba":
		client, err := qwen.New(qwen.Config{
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			BaseURL: cfg.BaseURL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create qwen client: %w", err)
		}
		return NewQwenAdapter(client), nil

	case "openai", "deepseek":
		adapter, err := NewOpenAIAdapter(cfg.APIKey, cfg.Model, cfg.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to create openai client: %w", err)
		}
		return adapter, nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, cfg.Name)
	}
}
