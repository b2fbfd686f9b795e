// Package letters assembles cover letters from selected profile content and style templates.
package letters

import (
	"errors"
	"fmt"
)

// ErrUnknownStyle is returned for a style that has no templates
var ErrUnknownStyle = errors.New("unknown cover letter style")

// Error represents an error that occurs while loading templates or assembling a letter
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
