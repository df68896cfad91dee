package ai

import (
	"context"

	"schedule-partner/internal/model"
)

// UseCase defines the business logic interface for the AI orchestration domain.
// Every operation runs the same pipeline: build prompt, call the provider once,
// extract the response, validate against domain rules.
type UseCase interface {
	// ParseScheduleText turns free-form natural language into a structured
	// schedule candidate, or fails with a tagged Error.
	ParseScheduleText(ctx context.Context, sc model.Scope, input ParseScheduleInput) (ParseScheduleOutput, error)

	// GenerateCharacterResponse produces an in-persona chat reply.
	GenerateCharacterResponse(ctx context.Context, sc model.Scope, input ChatInput) (ChatOutput, error)

	// GenerateDailyPlan orders and annotates a day's schedules into a plan.
	GenerateDailyPlan(ctx context.Context, sc model.Scope, input PlanInput) (PlanOutput, error)

	// GenerateReviewFeedback writes an encouraging daily review. It never
	// returns an error: on any failure the canned fallback message is used.
	GenerateReviewFeedback(ctx context.Context, sc model.Scope, input FeedbackInput) FeedbackOutput
}
