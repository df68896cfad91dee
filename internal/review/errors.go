package review

import "errors"

// Domain-specific errors for the review package.
var (
	ErrReviewNotFound = errors.New("review not found for this date")
	ErrInvalidPeriod  = errors.New("period must be weekly or monthly")
)
