package streamloader

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedFormat is returned when no decoder recognizes the stream.
	ErrUnsupportedFormat = errors.New("streamloader: unsupported image format")

	// ErrMalformedData is returned when the format was recognized but its content is invalid.
	ErrMalformedData = errors.New("streamloader: malformed image data")

	// ErrSeekUnsupported is recorded when the decoder asks to move backwards
	// in a stream that cannot seek.
	ErrSeekUnsupported = errors.New("streamloader: stream does not support seeking backwards")

	// ErrInvalidComponents is returned for a component request outside 0-4.
	ErrInvalidComponents = errors.New("streamloader: invalid color components request")
)

// DecodeError describes a decoder failure. Kind is ErrUnsupportedFormat or
// ErrMalformedData; Reason is the diagnostic reported by the decoder.
type DecodeError struct {
	Op     string
	Kind   error
	Reason string
}

func (e *DecodeError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %v: %s", e.Op, e.Kind, e.Reason)
}

func (e *DecodeError) Unwrap() error {
	return e.Kind
}
