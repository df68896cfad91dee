package usecase

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"schedule-partner/internal/ai"
	"schedule-partner/internal/model"
)

// personalityStyles maps a character personality to the prompt style line.
var personalityStyles = map[model.Personality]string{
	model.PersonalityFriendly:   "친근하고 편안한 말투 (반말)",
	model.PersonalityMotivating: "동기부여하는 코치 스타일 (존댓말)",
	model.PersonalityCalm:       "차분하고 위로하는 상담사 스타일 (존댓말)",
}

func styleFor(p model.Personality) string {
	if s, ok := personalityStyles[p]; ok {
		return s
	}
	return personalityStyles[model.PersonalityFriendly]
}

// buildParsePrompt asks for a single schedule as strict JSON.
func buildParsePrompt(text string, now time.Time) string {
	return fmt.Sprintf(`현재 시간: %s
현재 날짜: %s

다음 텍스트를 일정 데이터로 파싱하세요: %q

응답은 반드시 아래 JSON 형식으로만 작성하세요:
{
    "title": "일정 제목",
    "start_time": "ISO 8601 형식 (예: 2025-01-30T19:00:00+09:00)",
    "end_time": "ISO 8601 형식 또는 null",
    "all_day": false,
    "priority": 3,
    "tags": ["태그1"],
    "confidence": 0.95
}

규칙:
- priority는 1-5 사이 (1=최고)
- confidence는 0-1 사이
- 날짜/시간이 명확하지 않으면 confidence를 낮게
`,
		now.Format(time.RFC3339),
		fmt.Sprintf("%s %s", now.Format("2006년 01월 02일"), now.Weekday()),
		text,
	)
}

// buildChatPrompt frames a single chat turn in the character's persona.
func buildChatPrompt(input ai.ChatInput) string {
	timeOfDay := input.TimeOfDay
	if timeOfDay == "" {
		timeOfDay = "일반"
	}
	style := styleFor(input.Personality)

	return fmt.Sprintf(`당신은 일정 관리를 돕는 AI 캐릭터입니다.

성격: %s
상황: %s 시간대
오늘 진행도: %d/%d 완료

사용자 메시지: %q

응답 규칙:
- 2-3문장 이내로 간결하게
- 격려와 실질적인 조언 제공
- 이모지는 최소한으로 (0-1개)
- %s로 작성
`, style, timeOfDay, input.CompletedCount, input.TotalCount, input.Message, style)
}

// buildPlanPrompt asks for an ordered day plan as a JSON array.
func buildPlanPrompt(input ai.PlanInput) string {
	prefs := input.Preferences
	if prefs.WorkStart == "" {
		prefs.WorkStart = "09:00"
	}
	if prefs.WorkEnd == "" {
		prefs.WorkEnd = "18:00"
	}
	if prefs.BreakMinutes <= 0 {
		prefs.BreakMinutes = 10
	}

	tasksJSON, err := json.MarshalIndent(input.Tasks, "", "  ")
	if err != nil {
		tasksJSON = []byte("[]")
	}

	return fmt.Sprintf(`날짜: %s
작업 시작: %s
작업 종료: %s
휴식 시간: %d분

할 일 목록:
%s

최적의 일정표를 JSON 배열로 생성하세요:
[
  {
    "title": "작업명",
    "start_time": "HH:MM",
    "end_time": "HH:MM",
    "reason": "이 시간에 배치한 이유"
  }
]

원칙:
- 우선순위 높은 작업을 오전에
- 적절한 휴식 포함
- 실현 가능한 계획
`, input.Date.Format("2006-01-02"), prefs.WorkStart, prefs.WorkEnd, prefs.BreakMinutes, string(tasksJSON))
}

// buildFeedbackPrompt asks for a short encouraging daily review.
func buildFeedbackPrompt(input ai.FeedbackInput) string {
	rating := input.Rating
	if rating == 0 {
		rating = 3
	}
	mood := strings.TrimSpace(input.MoodKeyword)
	if mood == "" {
		mood = "보통"
	}

	return fmt.Sprintf(`오늘의 회고:
- 평점: %d/5
- 완료율: %.0f%%
- 집중 시간: %d분
- 기분: %s

30일 평균:
- 완료율: %.0f%%
- 집중 시간: %.0f분

따뜻하고 격려하는 피드백을 2-3문장으로 작성하세요.
평가보다는 성취에 초점을 맞추세요.
`, rating, input.CompletionRate*100, input.FocusMinutes, mood,
		input.Average.CompletionRate*100, input.Average.FocusMinutes)
}
