package character

import "errors"

// Domain-specific errors for the character package.
var (
	ErrInvalidActivity = errors.New("invalid activity value")
	ErrInvalidEmotion  = errors.New("invalid emotion value")
)
