package model

// Personality is a named tone preset for the character companion.
// It controls prompt phrasing only, not logic.
type Personality string

const (
	PersonalityFriendly   Personality = "friendly"
	PersonalityMotivating Personality = "motivating"
	PersonalityCalm       Personality = "calm"
)

// Valid reports whether p is one of the known presets.
func (p Personality) Valid() bool {
	switch p {
	case PersonalityFriendly, PersonalityMotivating, PersonalityCalm:
		return true
	}
	return false
}
