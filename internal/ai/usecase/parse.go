package usecase

import (
	"context"
	"strings"
	"time"

	"schedule-partner/internal/ai"
	"schedule-partner/internal/model"
	"schedule-partner/pkg/llm"
)

// ParseScheduleText turns free-form text into a validated schedule candidate.
func (uc *implUseCase) ParseScheduleText(ctx context.Context, sc model.Scope, input ai.ParseScheduleInput) (ai.ParseScheduleOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		return ai.ParseScheduleOutput{}, ai.NewError(ai.KindMalformedOutput, "input text is empty", nil)
	}

	ref := input.ReferenceTime
	if ref.IsZero() {
		ref = time.Now()
	}
	ref = ref.In(uc.loc)

	uc.l.Infof(ctx, "ParseScheduleText: user=%s input_length=%d", sc.UserID, len(input.Text))

	text, err := uc.generate(ctx, &llm.Request{
		Prompt:      buildParsePrompt(input.Text, ref),
		Temperature: 0.2,
		MaxTokens:   1024,
	})
	if err != nil {
		return ai.ParseScheduleOutput{}, err
	}

	var raw rawSchedule
	if err := extractJSON(text, &raw); err != nil {
		uc.l.Errorf(ctx, "ParseScheduleText: malformed provider output: %v raw=%q", err, text)
		return ai.ParseScheduleOutput{}, err
	}

	schedule, err := uc.validateParsedSchedule(raw, ref)
	if err != nil {
		return ai.ParseScheduleOutput{}, err
	}

	uc.l.Infof(ctx, "ParseScheduleText: parsed %q confidence=%.2f", schedule.Title, schedule.Confidence)

	return ai.ParseScheduleOutput{
		Schedule: schedule,
		Model:    uc.provider.Model(),
	}, nil
}
