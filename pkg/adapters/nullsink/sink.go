// Package nullsink provides a no-op frame sink implementation.
package nullsink

import (
	"image"

	"github.com/user/imgstream/pkg/ports"
)

// Sink is a no-op implementation of ports.FrameSink.
// It discards all output, which is what a decode-only run wants.
type Sink struct{}

// New creates a new NullSink.
func New() *Sink {
	return &Sink{}
}

// Enabled returns false as this sink discards all output.
func (s *Sink) Enabled() bool {
	return false
}

// SaveImage does nothing.
func (s *Sink) SaveImage(name string, img *ports.Image) error {
	return nil
}

// SaveFrame does nothing.
func (s *Sink) SaveFrame(name string, index int, frame *ports.AnimatedFrame) error {
	return nil
}

// SaveSheet does nothing.
func (s *Sink) SaveSheet(name string, img image.Image) error {
	return nil
}

// Ensure Sink implements ports.FrameSink
var _ ports.FrameSink = (*Sink)(nil)
