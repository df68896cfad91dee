package usecase

import (
	"context"
	"fmt"
	"time"

	"schedule-partner/internal/character"
	"schedule-partner/internal/model"
)

const defaultStateDuration = 60 * time.Minute

// DefaultIdleMessage greets the user when no state is active.
const DefaultIdleMessage = "안녕! 오늘 하루도 같이 보내자~"

type ledConfig struct {
	color   string
	pattern string
}

// ledMapping assigns each activity its device LED color and pattern.
var ledMapping = map[model.CharacterActivity]ledConfig{
	model.ActivityIdle:      {color: "#FFFFFF", pattern: "solid"},
	model.ActivityFocus:     {color: "#0066FF", pattern: "solid"},
	model.ActivityBreak:     {color: "#00FF66", pattern: "pulse"},
	model.ActivityNotify:    {color: "#FFAA00", pattern: "blink"},
	model.ActivityCelebrate: {color: "#FF00FF", pattern: "blink"},
}

func ledFor(activity model.CharacterActivity) ledConfig {
	if led, ok := ledMapping[activity]; ok {
		return led
	}
	return ledConfig{color: "#FFFFFF", pattern: "solid"}
}

// defaultIdleState is returned when a user has no active state.
func defaultIdleState() character.StateOutput {
	return character.StateOutput{
		Activity:     model.ActivityIdle,
		Emotion:      model.EmotionNormal,
		Message:      DefaultIdleMessage,
		LEDColor:     "#FFFFFF",
		LEDPattern:   "solid",
		AnimationKey: "idle_normal",
	}
}

// GetState returns the most recent non-expired state or the default idle one.
func (uc *implUseCase) GetState(ctx context.Context, sc model.Scope) (character.StateOutput, error) {
	state, ok := uc.repo.Active(ctx, sc.UserID, time.Now())
	if !ok {
		return defaultIdleState(), nil
	}

	return character.StateOutput{
		Activity:     state.Activity,
		Emotion:      state.Emotion,
		Message:      state.Message,
		LEDColor:     state.LEDColor,
		LEDPattern:   state.LEDPattern,
		AnimationKey: state.AnimationKey,
	}, nil
}

// UpdateState validates and records a new state with LED mapping applied.
func (uc *implUseCase) UpdateState(ctx context.Context, sc model.Scope, input character.UpdateStateInput) (character.StateOutput, error) {
	activity := model.CharacterActivity(input.Activity)
	if !activity.Valid() {
		return character.StateOutput{}, character.ErrInvalidActivity
	}
	emotion := model.CharacterEmotion(input.Emotion)
	if !emotion.Valid() {
		return character.StateOutput{}, character.ErrInvalidEmotion
	}

	duration := time.Duration(input.DurationMinutes) * time.Minute
	if duration <= 0 {
		duration = defaultStateDuration
	}

	now := time.Now()
	led := ledFor(activity)
	state := model.CharacterState{
		Activity:     activity,
		Emotion:      emotion,
		Message:      input.Message,
		LEDColor:     led.color,
		LEDPattern:   led.pattern,
		AnimationKey: fmt.Sprintf("%s_%s", activity, emotion),
		CreatedAt:    now,
		ExpiresAt:    now.Add(duration),
	}

	if err := uc.repo.Push(ctx, sc.UserID, state); err != nil {
		return character.StateOutput{}, err
	}

	uc.l.Infof(ctx, "UpdateState: user=%s activity=%s emotion=%s duration=%s",
		sc.UserID, activity, emotion, duration)

	return character.StateOutput{
		Activity:     state.Activity,
		Emotion:      state.Emotion,
		Message:      state.Message,
		LEDColor:     state.LEDColor,
		LEDPattern:   state.LEDPattern,
		AnimationKey: state.AnimationKey,
	}, nil
}

// ClearState expires all active states, resetting the character to idle.
func (uc *implUseCase) ClearState(ctx context.Context, sc model.Scope) (character.ClearStateOutput, error) {
	expired, err := uc.repo.ExpireAll(ctx, sc.UserID, time.Now())
	if err != nil {
		return character.ClearStateOutput{}, err
	}
	uc.l.Infof(ctx, "ClearState: user=%s expired=%d", sc.UserID, expired)
	return character.ClearStateOutput{ExpiredStates: expired}, nil
}

// History returns recent state changes, newest first.
func (uc *implUseCase) History(ctx context.Context, sc model.Scope, limit int) ([]model.CharacterState, error) {
	if limit <= 0 {
		limit = 20
	}
	return uc.repo.Recent(ctx, sc.UserID, limit)
}
