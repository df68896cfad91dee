package http

import (
	"time"

	"schedule-partner/internal/ai"
	"schedule-partner/internal/character"
)

const dateLayout = "2006-01-02"

type parseReq struct {
	Text string `json:"text" binding:"required,min=1,max=500"`
}

type parsedScheduleResp struct {
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	StartTime   string   `json:"start_time"`
	EndTime     string   `json:"end_time,omitempty"`
	AllDay      bool     `json:"all_day"`
	Priority    int      `json:"priority"`
	Tags        []string `json:"tags,omitempty"`
}

type parseResp struct {
	Parsed     parsedScheduleResp `json:"parsed"`
	Confidence float64            `json:"confidence"`
	Model      string             `json:"model,omitempty"`
}

func newParseResp(out ai.ParseScheduleOutput) parseResp {
	s := out.Schedule
	resp := parseResp{
		Parsed: parsedScheduleResp{
			Title:       s.Title,
			Description: s.Description,
			StartTime:   s.StartTime.Format(time.RFC3339),
			AllDay:      s.AllDay,
			Priority:    s.Priority,
			Tags:        s.Tags,
		},
		Confidence: s.Confidence,
		Model:      out.Model,
	}
	if s.EndTime != nil {
		resp.Parsed.EndTime = s.EndTime.Format(time.RFC3339)
	}
	return resp
}

type chatContextReq struct {
	CompletedCount int `json:"completed_count"`
	TotalCount     int `json:"total_count"`
}

type chatReq struct {
	Message   string          `json:"message" binding:"required,min=1,max=1000"`
	SessionID string          `json:"session_id" binding:"omitempty,uuid"`
	Context   *chatContextReq `json:"context"`
}

type chatResp struct {
	Response       string             `json:"response"`
	CharacterState character.Reaction `json:"character_state"`
	SessionID      string             `json:"session_id"`
	Model          string             `json:"model,omitempty"`
}

type planTaskReq struct {
	Title            string `json:"title" binding:"required,min=1,max=255"`
	Priority         int    `json:"priority" binding:"required,min=1,max=5"`
	EstimatedMinutes int    `json:"estimated_duration" binding:"omitempty,min=1,max=480"`
}

type planPreferencesReq struct {
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	BreakDuration int    `json:"break_duration"`
}

type generatePlanReq struct {
	Date        string             `json:"date" binding:"required"`
	Tasks       []planTaskReq      `json:"tasks" binding:"required,min=1,max=20,dive"`
	Preferences planPreferencesReq `json:"preferences"`
}

func (req generatePlanReq) toInput() (ai.PlanInput, error) {
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return ai.PlanInput{}, err
	}

	tasks := make([]ai.PlanTask, 0, len(req.Tasks))
	for _, t := range req.Tasks {
		tasks = append(tasks, ai.PlanTask{
			Title:            t.Title,
			Priority:         t.Priority,
			EstimatedMinutes: t.EstimatedMinutes,
		})
	}

	return ai.PlanInput{
		Date:  date,
		Tasks: tasks,
		Preferences: ai.PlanPreferences{
			WorkStart:    req.Preferences.StartTime,
			WorkEnd:      req.Preferences.EndTime,
			BreakMinutes: req.Preferences.BreakDuration,
		},
	}, nil
}

type generatePlanResp struct {
	Plan      []ai.PlanEntry `json:"plan"`
	Reasoning string         `json:"reasoning"`
	Model     string         `json:"model,omitempty"`
}

const defaultPlanReasoning = "우선순위와 에너지 패턴을 고려해서 계획을 짰어요."

func newGeneratePlanResp(out ai.PlanOutput) generatePlanResp {
	reasoning := defaultPlanReasoning
	if len(out.Entries) > 0 && out.Entries[0].Reason != "" {
		reasoning = out.Entries[0].Reason
	}
	return generatePlanResp{
		Plan:      out.Entries,
		Reasoning: reasoning,
		Model:     out.Model,
	}
}

// timeOfDayBucket maps an hour to its Korean prompt bucket.
func timeOfDayBucket(t time.Time) string {
	switch h := t.Hour(); {
	case h >= 5 && h < 12:
		return "아침"
	case h >= 12 && h < 17:
		return "오후"
	case h >= 17 && h < 21:
		return "저녁"
	default:
		return "밤"
	}
}
