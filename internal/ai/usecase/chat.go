package usecase

import (
	"context"
	"strings"

	"schedule-partner/internal/ai"
	"schedule-partner/internal/model"
	"schedule-partner/pkg/llm"
)

// GenerateCharacterResponse produces an in-persona chat reply, capped at
// MaxChatLength characters.
func (uc *implUseCase) GenerateCharacterResponse(ctx context.Context, sc model.Scope, input ai.ChatInput) (ai.ChatOutput, error) {
	if strings.TrimSpace(input.Message) == "" {
		return ai.ChatOutput{}, ai.NewError(ai.KindEmptyResponse, "user message is empty", nil)
	}
	if input.Personality == "" {
		input.Personality = uc.cfg.DefaultPersonality
	}

	uc.l.Infof(ctx, "GenerateCharacterResponse: user=%s personality=%s time_of_day=%s",
		sc.UserID, input.Personality, input.TimeOfDay)

	text, err := uc.generate(ctx, &llm.Request{
		Prompt:      buildChatPrompt(input),
		Temperature: 0.8,
		MaxTokens:   512,
	})
	if err != nil {
		return ai.ChatOutput{}, err
	}

	return ai.ChatOutput{
		Message: extractText(text, ai.MaxChatLength),
		Model:   uc.provider.Model(),
	}, nil
}
