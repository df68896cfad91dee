package model

import "time"

// CharacterActivity is what the character is currently doing.
type CharacterActivity string

const (
	ActivityIdle      CharacterActivity = "idle"
	ActivityFocus     CharacterActivity = "focus"
	ActivityBreak     CharacterActivity = "break"
	ActivityNotify    CharacterActivity = "notify"
	ActivityCelebrate CharacterActivity = "celebrate"
)

// Valid reports whether a is a known activity.
func (a CharacterActivity) Valid() bool {
	switch a {
	case ActivityIdle, ActivityFocus, ActivityBreak, ActivityNotify, ActivityCelebrate:
		return true
	}
	return false
}

// CharacterEmotion is the character's emotional state.
type CharacterEmotion string

const (
	EmotionNormal  CharacterEmotion = "normal"
	EmotionHappy   CharacterEmotion = "happy"
	EmotionProud   CharacterEmotion = "proud"
	EmotionTired   CharacterEmotion = "tired"
	EmotionWorried CharacterEmotion = "worried"
	EmotionExcited CharacterEmotion = "excited"
)

// Valid reports whether e is a known emotion.
func (e CharacterEmotion) Valid() bool {
	switch e {
	case EmotionNormal, EmotionHappy, EmotionProud, EmotionTired, EmotionWorried, EmotionExcited:
		return true
	}
	return false
}

// CharacterState is the character's synchronized display state.
// LED fields are pass-through values for IoT devices, not interpreted here.
type CharacterState struct {
	Activity     CharacterActivity
	Emotion      CharacterEmotion
	Message      string
	LEDColor     string // hex, e.g. "#FFFFFF"
	LEDPattern   string // solid, blink, pulse
	AnimationKey string
	CreatedAt    time.Time
	ExpiresAt    time.Time
}

// Expired reports whether the state has passed its expiry at now.
func (s CharacterState) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}
