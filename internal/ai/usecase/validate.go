package usecase

import (
	"fmt"
	"time"

	"schedule-partner/internal/ai"
	"schedule-partner/internal/model"
)

const (
	pastTolerance   = time.Hour
	futureHorizon   = 365 * 24 * time.Hour
	planClockLayout = "15:04"
)

// rawSchedule is the wire shape of a parsed schedule before validation.
// Times stay strings until validated.
type rawSchedule struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	StartTime   string   `json:"start_time"`
	EndTime     string   `json:"end_time"`
	AllDay      bool     `json:"all_day"`
	Priority    *int     `json:"priority"`
	Tags        []string `json:"tags"`
	Confidence  float64  `json:"confidence"`
}

// validateParsedSchedule enforces the domain rules on a raw parse result and
// returns the canonical form. Reference time anchors the datetime window.
func (uc *implUseCase) validateParsedSchedule(raw rawSchedule, ref time.Time) (ai.ParsedSchedule, error) {
	if raw.Confidence < uc.cfg.MinConfidence {
		return ai.ParsedSchedule{}, &ai.Error{
			Kind:       ai.KindLowConfidence,
			Message:    fmt.Sprintf("confidence %.2f below threshold %.2f", raw.Confidence, uc.cfg.MinConfidence),
			Confidence: raw.Confidence,
		}
	}

	priority := model.PriorityDefault
	if raw.Priority != nil {
		priority = *raw.Priority
	}
	if priority < model.PriorityMin || priority > model.PriorityMax {
		return ai.ParsedSchedule{}, ai.NewError(ai.KindInvalidPriority,
			fmt.Sprintf("priority %d out of range %d-%d", priority, model.PriorityMin, model.PriorityMax), nil)
	}

	if raw.StartTime == "" {
		return ai.ParsedSchedule{}, ai.NewError(ai.KindInvalidDatetime, "missing start_time", nil)
	}
	start, err := parseISOTime(raw.StartTime, uc.loc)
	if err != nil {
		return ai.ParsedSchedule{}, ai.NewError(ai.KindInvalidDatetime, "invalid start_time format", err)
	}
	if start.Before(ref.Add(-pastTolerance)) {
		return ai.ParsedSchedule{}, ai.NewError(ai.KindInvalidDatetime, "schedule time is in the past", nil)
	}
	if start.After(ref.Add(futureHorizon)) {
		return ai.ParsedSchedule{}, ai.NewError(ai.KindInvalidDatetime, "schedule time is too far in the future", nil)
	}

	var end *time.Time
	if raw.EndTime != "" && raw.EndTime != "null" {
		e, err := parseISOTime(raw.EndTime, uc.loc)
		if err != nil {
			return ai.ParsedSchedule{}, ai.NewError(ai.KindInvalidDatetime, "invalid end_time format", err)
		}
		if !e.After(start) {
			return ai.ParsedSchedule{}, ai.NewError(ai.KindInvalidDatetime, "end time must be after start time", nil)
		}
		end = &e
	}

	return ai.ParsedSchedule{
		Title:       truncate(raw.Title, ai.MaxTitleLength),
		Description: truncate(raw.Description, ai.MaxDescriptionLength),
		StartTime:   start,
		EndTime:     end,
		AllDay:      raw.AllDay,
		Priority:    priority,
		Tags:        raw.Tags,
		Confidence:  raw.Confidence,
	}, nil
}

// validatePlanEntries checks the structural contract of a generated plan.
// Any invalid entry fails the whole plan.
func validatePlanEntries(entries []ai.PlanEntry) ([]ai.PlanEntry, error) {
	out := make([]ai.PlanEntry, 0, len(entries))
	for i, e := range entries {
		if e.Title == "" || e.StartTime == "" {
			return nil, ai.NewError(ai.KindMalformedOutput,
				fmt.Sprintf("plan entry %d missing title or start_time", i), nil)
		}
		if _, err := time.Parse(planClockLayout, e.StartTime); err != nil {
			return nil, ai.NewError(ai.KindMalformedOutput,
				fmt.Sprintf("plan entry %d has invalid start_time %q", i, e.StartTime), err)
		}
		if e.EndTime != "" {
			if _, err := time.Parse(planClockLayout, e.EndTime); err != nil {
				return nil, ai.NewError(ai.KindMalformedOutput,
					fmt.Sprintf("plan entry %d has invalid end_time %q", i, e.EndTime), err)
			}
		}
		e.Title = truncate(e.Title, ai.MaxTitleLength)
		out = append(out, e)
	}
	return out, nil
}

// parseISOTime accepts RFC 3339 with or without a trailing Z and the common
// no-offset variant providers emit. Offset-less times take loc.
func parseISOTime(s string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02T15:04:05", s, loc)
}
