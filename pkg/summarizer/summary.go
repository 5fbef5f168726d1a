// Package summarizer builds and formats reports for decode batches.
package summarizer

import "time"

// Summary contains everything reported about one batch.
type Summary struct {
	// Metadata
	GeneratedAt time.Time

	// Batch settings
	Settings Settings

	// Per-file results in input order
	Files []FileInfo

	// Totals over Files, filled in by Builder.Build
	Totals Totals
}

// Settings contains the batch configuration.
type Settings struct {
	Components string
	Animated   string
	MaxFrames  int // 0 = all
	Workers    int
	Sheet      bool
	OutputDir  string
}

// FileInfo describes one decoded file.
type FileInfo struct {
	Path       string
	Name       string
	Animated   bool
	Width      int
	Height     int
	SourceComp int
	Comp       int
	Frames     int
	DurationMs int
	Outputs    int
	Error      string // empty on success
}

// PixelBytes returns the size of the decoded pixel data held for the file.
func (f FileInfo) PixelBytes() int64 {
	return int64(f.Width) * int64(f.Height) * int64(f.Comp) * int64(f.Frames)
}

// Totals aggregates all files of a batch.
type Totals struct {
	Files      int
	Succeeded  int
	Failed     int
	Frames     int
	PixelBytes int64
}

// NewSummary creates a new Summary with the current timestamp.
func NewSummary() *Summary {
	return &Summary{
		GeneratedAt: time.Now(),
	}
}

// Builder provides a fluent interface for building a Summary.
type Builder struct {
	summary *Summary
}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{
		summary: NewSummary(),
	}
}

// WithSettings sets batch settings.
func (b *Builder) WithSettings(settings Settings) *Builder {
	b.summary.Settings = settings
	return b
}

// AddFile appends one file result.
func (b *Builder) AddFile(file FileInfo) *Builder {
	b.summary.Files = append(b.summary.Files, file)
	return b
}

// Build computes the totals and returns the constructed Summary.
func (b *Builder) Build() *Summary {
	t := Totals{Files: len(b.summary.Files)}
	for _, f := range b.summary.Files {
		if f.Error != "" {
			t.Failed++
			continue
		}
		t.Succeeded++
		t.Frames += f.Frames
		t.PixelBytes += f.PixelBytes()
	}
	b.summary.Totals = t
	return b.summary
}
