// Package selection picks the profile content that best supports a job posting:
// the summary variant to lead with and the achievements offered as proof of each requirement.
package selection

import (
	"errors"
	"fmt"
)

// ErrNoSummaries is returned when a profile declares no summary variants
var ErrNoSummaries = errors.New("profile has no summaries")

// Error represents an error that occurs during content selection
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}
