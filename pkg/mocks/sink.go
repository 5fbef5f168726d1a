package mocks

import (
	"image"
	"sync"

	"github.com/user/imgstream/pkg/ports"
)

// FrameSink is a mock implementation of ports.FrameSink that keeps
// everything it receives.
type FrameSink struct {
	mu sync.RWMutex

	enabled bool

	Images map[string]*ports.Image
	Frames map[string]map[int]*ports.AnimatedFrame
	Sheets map[string]image.Image

	SaveImageFunc func(name string, img *ports.Image) error
}

// NewFrameSink creates a new mock FrameSink.
func NewFrameSink(enabled bool) *FrameSink {
	return &FrameSink{
		enabled: enabled,
		Images:  make(map[string]*ports.Image),
		Frames:  make(map[string]map[int]*ports.AnimatedFrame),
		Sheets:  make(map[string]image.Image),
	}
}

func (m *FrameSink) Enabled() bool {
	return m.enabled
}

func (m *FrameSink) SaveImage(name string, img *ports.Image) error {
	if m.SaveImageFunc != nil {
		return m.SaveImageFunc(name, img)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Images[name] = img
	return nil
}

func (m *FrameSink) SaveFrame(name string, index int, frame *ports.AnimatedFrame) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Frames[name] == nil {
		m.Frames[name] = make(map[int]*ports.AnimatedFrame)
	}
	m.Frames[name][index] = frame
	return nil
}

func (m *FrameSink) SaveSheet(name string, img image.Image) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Sheets[name] = img
	return nil
}

// FrameCount returns the number of frames saved under name.
func (m *FrameSink) FrameCount(name string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.Frames[name])
}

var _ ports.FrameSink = (*FrameSink)(nil)

// NullSink is a no-op implementation of ports.FrameSink.
type NullSink struct{}

func (m *NullSink) Enabled() bool                                             { return false }
func (m *NullSink) SaveImage(name string, img *ports.Image) error             { return nil }
func (m *NullSink) SaveFrame(name string, i int, f *ports.AnimatedFrame) error{ return nil }
func (m *NullSink) SaveSheet(name string, img image.Image) error              { return nil }

var _ ports.FrameSink = (*NullSink)(nil)
