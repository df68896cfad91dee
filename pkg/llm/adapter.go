package llm

import (
	"context"

	"schedule-partner/pkg/gemini"
	"schedule-partner/pkg/qwen"
)

// GeminiAdapter adapts pkg/gemini to the llm.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateText implements Provider
func (a *GeminiAdapter) GenerateText(ctx context.Context, req *Request) (*Response, error) {
	resp, err := a.client.GenerateText(ctx, &gemini.Request{
		System:      req.System,
		Prompt:      req.Prompt,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return nil, &ProviderError{Provider: "gemini", Err: err}
	}

	out := &Response{
		Text:         resp.Text,
		ProviderName: "gemini",
		ModelName:    a.client.Model(),
		Usage:        &Usage{},
	}
	if resp.Usage != nil {
		out.Usage = &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		}
	}
	return out, nil
}

// Name returns the provider name
func (a *GeminiAdapter) Name() string { return "gemini" }

// Model returns the model name
func (a *GeminiAdapter) Model() string { return a.client.Model() }

// QwenAdapter adapts pkg/qwen to the llm.Provider interface
type QwenAdapter struct {
	client qwen.IQwen
}

// NewQwenAdapter creates a new Qwen adapter
func NewQwenAdapter(client qwen.IQwen) *QwenAdapter {
	return &QwenAdapter{client: client}
}

// GenerateText implements Provider
func (a *QwenAdapter) GenerateText(ctx context.Context, req *Request) (*Response, error) {
	resp, err := a.client.GenerateText(ctx, &qwen.Request{
		System:      req.System,
		Prompt:      req.Prompt,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return nil, &ProviderError{Provider: "qwen", Err: err}
	}

	out := &Response{
		Text:         resp.Text,
		ProviderName: "qwen",
		ModelName:    a.client.Model(),
		Usage:        &Usage{},
	}
	if resp.Usage != nil {
		out.Usage = &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		}
	}
	return out, nil
}

// Name returns the provider name
func (a *QwenAdapter) Name() string { return "qwen" }

// Model returns the model name
func (a *QwenAdapter) Model() string { return a.client.Model() }
