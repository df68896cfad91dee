package http

import (
	"time"

	"schedule-partner/internal/character"
	"schedule-partner/internal/model"
)

type updateStateReq struct {
	Activity        string `json:"activity" binding:"required"`
	Emotion         string `json:"emotion" binding:"required"`
	Message         string `json:"message"`
	DurationMinutes int    `json:"duration_minutes"`
}

func (req updateStateReq) toInput() character.UpdateStateInput {
	return character.UpdateStateInput{
		Activity:        req.Activity,
		Emotion:         req.Emotion,
		Message:         req.Message,
		DurationMinutes: req.DurationMinutes,
	}
}

type stateResp struct {
	Activity     string `json:"activity"`
	Emotion      string `json:"emotion"`
	Message      string `json:"message"`
	LEDColor     string `json:"led_color"`
	LEDPattern   string `json:"led_pattern"`
	AnimationKey string `json:"animation_key"`
}

func newStateResp(out character.StateOutput) stateResp {
	return stateResp{
		Activity:     string(out.Activity),
		Emotion:      string(out.Emotion),
		Message:      out.Message,
		LEDColor:     out.LEDColor,
		LEDPattern:   out.LEDPattern,
		AnimationKey: out.AnimationKey,
	}
}

type clearStateResp struct {
	ExpiredStates int `json:"expired_states"`
}

type historyItemResp struct {
	Activity  string `json:"activity"`
	Emotion   string `json:"emotion"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
	ExpiresAt string `json:"expires_at"`
}

func newHistoryResp(states []model.CharacterState) []historyItemResp {
	items := make([]historyItemResp, 0, len(states))
	for _, s := range states {
		items = append(items, historyItemResp{
			Activity:  string(s.Activity),
			Emotion:   string(s.Emotion),
			Message:   s.Message,
			CreatedAt: s.CreatedAt.Format(time.RFC3339),
			ExpiresAt: s.ExpiresAt.Format(time.RFC3339),
		})
	}
	return items
}
