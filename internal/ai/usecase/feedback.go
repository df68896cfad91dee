package usecase

import (
	"context"

	"schedule-partner/internal/ai"
	"schedule-partner/internal/model"
	"schedule-partner/pkg/llm"
)

// FallbackFeedback is returned whenever feedback generation fails.
const FallbackFeedback = "오늘 하루도 수고했어! 완벽하지 않아도 괜찮아, 꾸준히 하는 게 중요해."

// GenerateReviewFeedback writes a short encouraging daily review. Feedback is
// decorative: any provider failure degrades to the canned message instead of
// surfacing an error.
func (uc *implUseCase) GenerateReviewFeedback(ctx context.Context, sc model.Scope, input ai.FeedbackInput) ai.FeedbackOutput {
	text, err := uc.generate(ctx, &llm.Request{
		Prompt:      buildFeedbackPrompt(input),
		Temperature: 0.7,
		MaxTokens:   512,
	})
	if err != nil {
		uc.l.Warnf(ctx, "GenerateReviewFeedback: falling back to default message: %v", err)
		return ai.FeedbackOutput{
			Message:  FallbackFeedback,
			Fallback: true,
		}
	}

	return ai.FeedbackOutput{
		Message: extractText(text, ai.MaxFeedbackLength),
		Model:   uc.provider.Model(),
	}
}
