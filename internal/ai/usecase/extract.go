package usecase

import (
	"encoding/json"
	"regexp"
	"strings"

	"schedule-partner/internal/ai"
)

var codeFenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")

// stripFences removes markdown code fences and surrounding prose that
// providers often wrap around JSON output.
func stripFences(text string) string {
	if m := codeFenceRe.FindStringSubmatch(text); len(m) > 1 {
		return strings.TrimSpace(m[1])
	}

	start := strings.IndexAny(text, "[{")
	if start == -1 {
		return strings.TrimSpace(text)
	}
	end := strings.LastIndexAny(text, "]}")
	if end == -1 || end < start {
		return strings.TrimSpace(text)
	}
	return strings.TrimSpace(text[start : end+1])
}

// extractJSON decodes provider output into v after stripping fences.
func extractJSON(text string, v any) error {
	cleaned := stripFences(text)
	if err := json.Unmarshal([]byte(cleaned), v); err != nil {
		return ai.NewError(ai.KindMalformedOutput, "invalid JSON in response", err)
	}
	return nil
}

// truncate caps s at max characters (runes, so multibyte text survives).
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}

// extractText trims and caps free-text provider output.
func extractText(text string, max int) string {
	return truncate(strings.TrimSpace(text), max)
}
