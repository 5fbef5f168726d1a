// Package filesink writes decoded images and animation frames to files.
package filesink

import (
	"fmt"
	"image"
	"path/filepath"

	"github.com/user/imgstream/pkg/ports"
)

// Sink saves decoded output under a base directory.
//
// Stills are written as <name>.png, frames as <name>/frame-NNNN.png and
// contact sheets as <name>-sheet.png. With raw dumps enabled every image is
// also written as a zstd-compressed pixel dump next to its PNG.
type Sink struct {
	baseDir  string
	fs       ports.FileSystem
	renderer ports.Renderer
	raw      bool
}

// Option configures a Sink.
type Option func(*Sink)

// WithRawDumps enables .raw.zst pixel dumps.
func WithRawDumps(enabled bool) Option {
	return func(s *Sink) {
		s.raw = enabled
	}
}

// New creates a new FileSink.
func New(baseDir string, fs ports.FileSystem, renderer ports.Renderer, opts ...Option) *Sink {
	s := &Sink{
		baseDir:  baseDir,
		fs:       fs,
		renderer: renderer,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Enabled returns true as this sink saves output.
func (s *Sink) Enabled() bool {
	return true
}

// SaveImage saves a decoded still image.
func (s *Sink) SaveImage(name string, img *ports.Image) error {
	return s.save(filepath.Join(s.baseDir, name), img)
}

// SaveFrame saves one animation frame.
func (s *Sink) SaveFrame(name string, index int, frame *ports.AnimatedFrame) error {
	dir := filepath.Join(s.baseDir, name)
	if err := s.fs.MkdirAll(dir); err != nil {
		return err
	}
	return s.save(filepath.Join(dir, fmt.Sprintf("frame-%04d", index)), &frame.Image)
}

// SaveSheet saves a rendered contact sheet.
func (s *Sink) SaveSheet(name string, img image.Image) error {
	data, err := s.renderer.EncodeImage(img, ports.FormatPNG, 0)
	if err != nil {
		return fmt.Errorf("encode sheet: %w", err)
	}
	path := filepath.Join(s.baseDir, name+"-sheet.png")
	return s.fs.WriteFile(path, data)
}

func (s *Sink) save(base string, img *ports.Image) error {
	data, err := s.renderer.EncodeImage(img.ToNRGBA(), ports.FormatPNG, 0)
	if err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(base), err)
	}
	if err := s.fs.WriteFile(base+".png", data); err != nil {
		return err
	}
	if !s.raw {
		return nil
	}

	dump, err := EncodeRaw(img)
	if err != nil {
		return fmt.Errorf("dump %s: %w", filepath.Base(base), err)
	}
	return s.fs.WriteFile(base+".raw.zst", dump)
}

// Ensure Sink implements ports.FrameSink
var _ ports.FrameSink = (*Sink)(nil)
