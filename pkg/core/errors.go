package core

import (
	"errors"
	"fmt"
)

var (
	// ErrUnrecognized is the failure kind when no format test matches the input.
	ErrUnrecognized = errors.New("core: unrecognized image format")

	// ErrMalformed is the failure kind when a format matched but its content is invalid.
	ErrMalformed = errors.New("core: malformed image data")

	// ErrBadRequest is the failure kind for invalid arguments from the caller.
	ErrBadRequest = errors.New("core: bad request")
)

// Error is a decoder failure carrying the diagnostic reported by the format parser.
type Error struct {
	Kind   error
	Reason string
}

func (e *Error) Error() string {
	if e.Reason == "" {
		return e.Kind.Error()
	}
	return e.Kind.Error() + ": " + e.Reason
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func fail(kind error, reason string) *Error {
	return &Error{Kind: kind, Reason: reason}
}

func failf(kind error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Reason: fmt.Sprintf(format, args...)}
}
