package llm

import "context"

// Provider defines the interface for text-generation providers
type Provider interface {
	// GenerateText sends a generation request and returns a response
	GenerateText(ctx context.Context, req *Request) (*Response, error)

	// Name returns the provider name (e.g., "gemini", "qwen", "openai")
	Name() string

	// Model returns the model being used
	Model() string
}

// Request represents a normalized text generation request
type Request struct {
	System      string // optional system instruction
	Prompt      string
	Temperature float64
	MaxTokens   int
}

// Response represents a normalized text generation response
type Response struct {
	Text         string
	ProviderName string
	ModelName    string
	Usage        *Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
