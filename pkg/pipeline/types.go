package pipeline

import (
	"fmt"
	"strings"

	"github.com/user/imgstream/pkg/ports"
)

// =============================================================================
// Decode Stage Types
// =============================================================================

// AnimatedMode selects between the still and animation decode paths.
type AnimatedMode int

const (
	// AnimatedAuto decodes GIF files as animations and everything else as stills.
	AnimatedAuto AnimatedMode = iota
	// AnimatedAlways decodes every file as an animation.
	AnimatedAlways
	// AnimatedNever decodes every file as a still, keeping only the first GIF frame.
	AnimatedNever
)

// String returns the name used in configuration files and flags.
func (m AnimatedMode) String() string {
	switch m {
	case AnimatedAuto:
		return "auto"
	case AnimatedAlways:
		return "always"
	case AnimatedNever:
		return "never"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ParseAnimatedMode parses an animated mode name.
func ParseAnimatedMode(s string) (AnimatedMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return AnimatedAuto, nil
	case "always", "yes", "true":
		return AnimatedAlways, nil
	case "never", "no", "false":
		return AnimatedNever, nil
	default:
		return AnimatedAuto, fmt.Errorf("unknown animated mode %q", s)
	}
}

// DecodeInput names one file to decode.
type DecodeInput struct {
	Path       string
	Name       string // output name, defaults to the file's base name
	Components ports.ColorComponents
	Animated   AnimatedMode
	MaxFrames  int // stop after this many frames (0 = all)
}

// DecodeResult holds a decoded file. Exactly one of Image and Frames is set.
type DecodeResult struct {
	Path     string
	Name     string
	Animated bool
	Image    *ports.Image
	Frames   []ports.AnimatedFrame
}

// Width returns the canvas width.
func (r DecodeResult) Width() int {
	if r.Image != nil {
		return r.Image.Width
	}
	if len(r.Frames) > 0 {
		return r.Frames[0].Width
	}
	return 0
}

// Height returns the canvas height.
func (r DecodeResult) Height() int {
	if r.Image != nil {
		return r.Image.Height
	}
	if len(r.Frames) > 0 {
		return r.Frames[0].Height
	}
	return 0
}

// FrameCount returns 1 for stills and the number of frames otherwise.
func (r DecodeResult) FrameCount() int {
	if r.Image != nil {
		return 1
	}
	return len(r.Frames)
}

// DurationMs returns the sum of all frame delays.
func (r DecodeResult) DurationMs() int {
	total := 0
	for _, f := range r.Frames {
		total += f.Delay
	}
	return total
}

// Components returns the source and returned channel counts.
func (r DecodeResult) Components() (source, returned ports.ColorComponents) {
	if r.Image != nil {
		return r.Image.SourceComp, r.Image.Comp
	}
	if len(r.Frames) > 0 {
		return r.Frames[0].SourceComp, r.Frames[0].Comp
	}
	return ports.Default, ports.Default
}

// =============================================================================
// Export Stage Types
// =============================================================================

// ExportInput contains a decoded file and how to write it out.
type ExportInput struct {
	Decoded      DecodeResult
	Sheet        bool // render a contact sheet for animations
	SheetOptions ports.SheetOptions
}

// ExportResult reports what was written.
type ExportResult struct {
	Outputs int
}
