package usecase

import (
	"context"
	"errors"

	"schedule-partner/internal/ai"
	"schedule-partner/internal/model"
	"schedule-partner/pkg/llm"
)

// GenerateDailyPlan orders the day's tasks into a timed plan.
func (uc *implUseCase) GenerateDailyPlan(ctx context.Context, sc model.Scope, input ai.PlanInput) (ai.PlanOutput, error) {
	if len(input.Tasks) == 0 {
		return ai.PlanOutput{Entries: []ai.PlanEntry{}, Model: uc.provider.Model()}, nil
	}

	uc.l.Infof(ctx, "GenerateDailyPlan: user=%s date=%s tasks=%d",
		sc.UserID, input.Date.Format("2006-01-02"), len(input.Tasks))

	text, err := uc.generate(ctx, &llm.Request{
		Prompt:      buildPlanPrompt(input),
		Temperature: 0.4,
		MaxTokens:   2048,
	})
	if err != nil {
		// Plan generation knows only two failure modes: the deadline, or an
		// unusable response. Everything non-timeout collapses to the latter.
		var aiErr *ai.Error
		if errors.As(err, &aiErr) && aiErr.Kind != ai.KindTimeout {
			return ai.PlanOutput{}, ai.NewError(ai.KindMalformedOutput, "provider request failed", err)
		}
		return ai.PlanOutput{}, err
	}

	var entries []ai.PlanEntry
	if err := extractJSON(text, &entries); err != nil {
		uc.l.Errorf(ctx, "GenerateDailyPlan: malformed provider output: %v raw=%q", err, text)
		return ai.PlanOutput{}, err
	}

	validated, err := validatePlanEntries(entries)
	if err != nil {
		return ai.PlanOutput{}, err
	}

	return ai.PlanOutput{
		Entries: validated,
		Model:   uc.provider.Model(),
	}, nil
}
