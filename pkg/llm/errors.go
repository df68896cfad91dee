package llm

import (
	"errors"
	"fmt"
)

var (
	// ErrNoProvidersConfigured indicates no providers are enabled
	ErrNoProvidersConfigured = errors.New("no providers configured")

	// ErrUnknownProvider indicates an unrecognized provider name in config
	ErrUnknownProvider = errors.New("unknown provider")
)

// ProviderError wraps provider-specific errors
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// HTTPStatusOf reports the HTTP status carried by an API error anywhere in
// err's chain, if any. All client packages expose their status through an
// HTTPStatus() method.
func HTTPStatusOf(err error) (int, bool) {
	var sc interface{ HTTPStatus() int }
	if errors.As(err, &sc) {
		return sc.HTTPStatus(), true
	}
	return 0, false
}
