package character

import "strings"

// Reaction is a lightweight display hint derived from a chat message. It is
// separate from the stored CharacterState: reactions are per-response and
// never persisted.
type Reaction struct {
	Emotion   string `json:"emotion"`
	Animation string `json:"animation"`
}

var reactionKeywords = []struct {
	words    []string
	reaction Reaction
}{
	{[]string{"집중", "공부", "일", "작업"}, Reaction{Emotion: "motivated", Animation: "encouraging"}},
	{[]string{"힘들", "피곤", "지쳐"}, Reaction{Emotion: "worried", Animation: "comforting"}},
	{[]string{"완료", "끝", "했어", "성공"}, Reaction{Emotion: "proud", Animation: "celebrating"}},
}

// ReactToMessage picks a display reaction from keywords in the user message.
// First matching group wins; unmatched messages get the neutral reaction.
func ReactToMessage(message string) Reaction {
	for _, group := range reactionKeywords {
		for _, w := range group.words {
			if strings.Contains(message, w) {
				return group.reaction
			}
		}
	}
	return Reaction{Emotion: "normal", Animation: "talking"}
}
