package character

import "testing"

func TestReactToMessage(t *testing.T) {
	cases := []struct {
		name    string
		message string
		want    Reaction
	}{
		{"focus keyword", "지금부터 공부할게", Reaction{Emotion: "motivated", Animation: "encouraging"}},
		{"tired keyword", "오늘 너무 피곤해", Reaction{Emotion: "worried", Animation: "comforting"}},
		{"done keyword", "과제 다 했어!", Reaction{Emotion: "proud", Animation: "celebrating"}},
		{"neutral", "안녕", Reaction{Emotion: "normal", Animation: "talking"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ReactToMessage(tc.message); got != tc.want {
				t.Errorf("ReactToMessage(%q) = %+v, want %+v", tc.message, got, tc.want)
			}
		})
	}
}
