package character

import "schedule-partner/internal/model"

// UpdateStateInput is the input for recording a new character state.
type UpdateStateInput struct {
	Activity        string
	Emotion         string
	Message         string
	DurationMinutes int // how long the state lasts, default 60
}

// StateOutput is the character state as surfaced to clients and devices.
type StateOutput struct {
	Activity     model.CharacterActivity
	Emotion      model.CharacterEmotion
	Message      string
	LEDColor     string
	LEDPattern   string
	AnimationKey string
}

// ClearStateOutput reports how many states a clear expired.
type ClearStateOutput struct {
	ExpiredStates int
}
