package llm

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// OpenAIAdapter serves OpenAI and OpenAI-compatible endpoints (a custom
// base URL covers DeepSeek and similar services) through the official SDK.
type OpenAIAdapter struct {
	client openai.Client
	model  string
}

// openAIStatusError normalizes SDK errors to the HTTPStatus() convention
// shared by the hand-rolled client packages.
type openAIStatusError struct {
	status  int
	message string
}

func (e *openAIStatusError) Error() string {
	return fmt.Sprintf("openai: API error %d: %s", e.status, e.message)
}

// HTTPStatus returns the HTTP status code of the failed call.
func (e *openAIStatusError) HTTPStatus() int { return e.status }

// NewOpenAIAdapter creates a new OpenAI adapter. baseURL may be empty for
// the default endpoint.
func NewOpenAIAdapter(apiKey, model, baseURL string) (*OpenAIAdapter, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai: APIKey is required")
	}
	if model == "" {
		return nil, fmt.Errorf("openai: model is required")
	}

	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	return &OpenAIAdapter{
		client: openai.NewClient(opts...),
		model:  model,
	}, nil
}

// GenerateText implements Provider
func (a *OpenAIAdapter) GenerateText(ctx context.Context, req *Request) (*Response, error) {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, 2)
	if req.System != "" {
		messages = append(messages, openai.SystemMessage(req.System))
	}
	messages = append(messages, openai.UserMessage(req.Prompt))

	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(a.model),
		Messages: messages,
	}
	if req.Temperature > 0 {
		params.Temperature = openai.Float(req.Temperature)
	}
	if req.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(req.MaxTokens))
	}

	resp, err := a.client.Chat.Completions.New(ctx, params)
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			err = &openAIStatusError{status: apiErr.StatusCode, message: apiErr.Message}
		}
		return nil, &ProviderError{Provider: "openai", Err: err}
	}

	out := &Response{
		ProviderName: "openai",
		ModelName:    a.model,
		Usage: &Usage{
			InputTokens:  int(resp.Usage.PromptTokens),
			OutputTokens: int(resp.Usage.CompletionTokens),
			TotalTokens:  int(resp.Usage.TotalTokens),
		},
	}
	if len(resp.Choices) > 0 {
		out.Text = resp.Choices[0].Message.Content
	}
	return out, nil
}

// Name returns the provider name
func (a *OpenAIAdapter) Name() string { return "openai" }

// Model returns the model name
func (a *OpenAIAdapter) Model() string { return a.model }
