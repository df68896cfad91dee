package usecase

import (
	"context"
	"errors"
	"strings"

	"schedule-partner/internal/ai"
	"schedule-partner/pkg/llm"
)

// generate performs exactly one provider call under the configured deadline
// and classifies any failure into a tagged ai.Error. There is no retry and
// no provider fallback here: each operation costs at most one remote call.
func (uc *implUseCase) generate(ctx context.Context, req *llm.Request) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.cfg.Timeout)
	defer cancel()

	resp, err := uc.provider.GenerateText(ctx, req)
	if err != nil {
		return "", uc.classify(err)
	}

	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return "", ai.NewError(ai.KindEmptyResponse, "provider returned empty response", nil)
	}
	return text, nil
}

// classify maps transport-level failures onto failure kinds.
func (uc *implUseCase) classify(err error) *ai.Error {
	if errors.Is(err, context.DeadlineExceeded) {
		return ai.NewError(ai.KindTimeout, "provider call timed out", err)
	}
	if errors.Is(err, context.Canceled) {
		return ai.NewError(ai.KindTimeout, "provider call canceled", err)
	}

	if status, ok := llm.HTTPStatusOf(err); ok {
		if status == 429 {
			return ai.NewError(ai.KindRateLimited, "provider rate limit exceeded", err)
		}
		return ai.NewError(ai.KindEmptyResponse, "provider request failed", err)
	}

	// Providers without typed errors still signal quota exhaustion in text.
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "429") || strings.Contains(msg, "quota") {
		return ai.NewError(ai.KindRateLimited, "provider rate limit exceeded", err)
	}

	return ai.NewError(ai.KindEmptyResponse, "provider request failed", err)
}
