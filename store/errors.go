// ABOUTME: Error taxonomy for the mock data layer
// ABOUTME: Sentinel errors plus the ValidationError type used by edit flows
package store

import (
	"errors"
	"fmt"
)

var (
	// ErrSimulatedNetwork is the injected transient failure standing in
	// for real backend I/O trouble. Callers may retry the same call.
	ErrSimulatedNetwork = errors.New("simulated network error")

	// ErrLoad means the seed dataset could not be fetched or decoded.
	// Fatal to the initial render; retry is the caller's decision.
	ErrLoad = errors.New("failed to load leads")

	// ErrNotFound means a patch targeted an id absent from the
	// collection. Ids come from the loaded set, so this indicates a
	// caller bug rather than a recoverable condition.
	ErrNotFound = errors.New("lead not found")
)

// ValidationError reports a malformed field on an edit, detected before
// any state mutation. Always recoverable by re-submitting.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// IsValidationError reports whether err is (or wraps) a ValidationError.
func IsValidationError(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}
