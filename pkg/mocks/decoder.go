package mocks

import (
	"io"
	"iter"
	"sync"

	"github.com/user/imgstream/pkg/ports"
)

// ImageDecoder is a mock implementation of ports.ImageDecoder.
type ImageDecoder struct {
	mu sync.Mutex

	DecodeFunc         func(r io.Reader, req ports.ColorComponents) (*ports.Image, error)
	DecodeAnimatedFunc func(r io.Reader, req ports.ColorComponents) ([]ports.AnimatedFrame, error)

	// Recorded calls for verification
	DecodeCalls         int
	DecodeAnimatedCalls int
}

func (m *ImageDecoder) Decode(r io.Reader, req ports.ColorComponents) (*ports.Image, error) {
	m.mu.Lock()
	m.DecodeCalls++
	m.mu.Unlock()
	if m.DecodeFunc != nil {
		return m.DecodeFunc(r, req)
	}
	return &ports.Image{Width: 1, Height: 1, SourceComp: ports.RedGreenBlueAlpha, Comp: ports.RedGreenBlueAlpha, Data: make([]byte, 4)}, nil
}

func (m *ImageDecoder) DecodeAnimated(r io.Reader, req ports.ColorComponents) ([]ports.AnimatedFrame, error) {
	m.mu.Lock()
	m.DecodeAnimatedCalls++
	m.mu.Unlock()
	if m.DecodeAnimatedFunc != nil {
		return m.DecodeAnimatedFunc(r, req)
	}
	return []ports.AnimatedFrame{}, nil
}

// Frames yields whatever DecodeAnimated returns.
func (m *ImageDecoder) Frames(r io.Reader, req ports.ColorComponents) iter.Seq2[*ports.AnimatedFrame, error] {
	return func(yield func(*ports.AnimatedFrame, error) bool) {
		frames, err := m.DecodeAnimated(r, req)
		if err != nil {
			yield(nil, err)
			return
		}
		for i := range frames {
			if !yield(&frames[i], nil) {
				return
			}
		}
	}
}

var _ ports.ImageDecoder = (*ImageDecoder)(nil)
