package ai

import "fmt"

// FailureKind classifies why an AI operation failed.
type FailureKind string

const (
	KindTimeout         FailureKind = "timeout"
	KindRateLimited     FailureKind = "rate_limited"
	KindEmptyResponse   FailureKind = "empty_response"
	KindMalformedOutput FailureKind = "malformed_output"
	KindLowConfidence   FailureKind = "low_confidence"
	KindInvalidDatetime FailureKind = "invalid_datetime"
	KindInvalidPriority FailureKind = "invalid_priority"
)

// Code maps the kind to its stable API error code.
func (k FailureKind) Code() string {
	switch k {
	case KindTimeout:
		return "AI_001"
	case KindRateLimited:
		return "AI_002"
	case KindMalformedOutput:
		return "AI_003"
	case KindEmptyResponse:
		return "AI_004"
	case KindInvalidDatetime:
		return "VALIDATION_001"
	case KindInvalidPriority:
		return "VALIDATION_002"
	case KindLowConfidence:
		return "VALIDATION_003"
	}
	return "AI_000"
}

// Error is the tagged failure type for all AI operations. Callers branch on
// Kind rather than on error identity.
type Error struct {
	Kind       FailureKind
	Message    string
	Confidence float64 // set for low_confidence failures
	Err        error   // underlying cause, may be nil
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Kind.Code(), e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Kind.Code(), e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError builds a tagged error with an optional cause.
func NewError(kind FailureKind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Err: cause}
}
