package errors

import "fmt"

// HTTPError is an error that carries an HTTP status and a stable
// machine-readable code alongside the human-readable message.
type HTTPError struct {
	Status  int
	Code    string
	Message string
}

// NewHTTPError creates a new HTTPError without a machine-readable code.
func NewHTTPError(status int, message string) *HTTPError {
	return &HTTPError{Status: status, Message: message}
}

// NewHTTPErrorWithCode creates a new HTTPError with a machine-readable code.
func NewHTTPErrorWithCode(status int, code, message string) *HTTPError {
	return &HTTPError{Status: status, Code: code, Message: message}
}

func (e *HTTPError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("[%s] %s", e.Code, e.Message)
	}
	return e.Message
}
