// Package decode implements the file decoding stage.
package decode

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/user/imgstream/pkg/pipeline"
	"github.com/user/imgstream/pkg/ports"
)

var gifSignature = []byte("GIF8")

// Stage opens a file and decodes it as a still or an animation.
//
// A Stage owns its decoder, which binds one stream at a time, so a Stage
// must not be shared between goroutines.
type Stage struct {
	fs      ports.FileSystem
	decoder ports.ImageDecoder
	logger  ports.Logger
}

// NewStage creates a new decode stage.
func NewStage(fs ports.FileSystem, decoder ports.ImageDecoder, logger ports.Logger) *Stage {
	return &Stage{
		fs:      fs,
		decoder: decoder,
		logger:  logger.WithComponent("decode"),
	}
}

// Execute decodes the file named by input.Path.
func (s *Stage) Execute(ctx context.Context, input pipeline.DecodeInput) (pipeline.DecodeResult, error) {
	result := pipeline.DecodeResult{
		Path: input.Path,
		Name: input.Name,
	}
	if result.Name == "" {
		result.Name = OutputName(input.Path)
	}

	if err := ctx.Err(); err != nil {
		return result, err
	}

	s.logger.Debug("Opening %s", input.Path)
	f, err := s.fs.Open(input.Path)
	if err != nil {
		return result, fmt.Errorf("open %s: %w", input.Path, err)
	}
	defer f.Close()

	animated, err := s.isAnimated(f, input.Animated)
	if err != nil {
		return result, fmt.Errorf("sniff %s: %w", input.Path, err)
	}
	result.Animated = animated

	if !animated {
		s.logger.Debug("Decoding %s as still image", input.Path)
		img, err := s.decoder.Decode(f, input.Components)
		if err != nil {
			return result, err
		}
		result.Image = img
		return result, nil
	}

	s.logger.Debug("Decoding %s as animation", input.Path)
	if input.MaxFrames <= 0 {
		frames, err := s.decoder.DecodeAnimated(f, input.Components)
		if err != nil {
			return result, err
		}
		result.Frames = frames
		return result, nil
	}

	result.Frames = make([]ports.AnimatedFrame, 0, input.MaxFrames)
	for frame, err := range s.decoder.Frames(f, input.Components) {
		if err != nil {
			return result, err
		}
		result.Frames = append(result.Frames, *frame)
		if len(result.Frames) == input.MaxFrames {
			break
		}
	}
	return result, nil
}

// isAnimated decides the decode path. In auto mode it peeks at the GIF
// signature and rewinds the file.
func (s *Stage) isAnimated(f io.ReadSeeker, mode pipeline.AnimatedMode) (bool, error) {
	switch mode {
	case pipeline.AnimatedAlways:
		return true, nil
	case pipeline.AnimatedNever:
		return false, nil
	}

	head := make([]byte, len(gifSignature))
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return false, err
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return false, err
	}
	return bytes.Equal(head[:n], gifSignature), nil
}

// OutputName derives an output name from a file path.
func OutputName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// OutputNames derives output names for a list of paths, suffixing repeats
// with -2, -3 and so on so two inputs never write over each other.
func OutputNames(paths []string) []string {
	names := make([]string, len(paths))
	taken := make(map[string]bool, len(paths))
	for i, p := range paths {
		base := OutputName(p)
		name := base
		for n := 2; taken[name]; n++ {
			name = fmt.Sprintf("%s-%d", base, n)
		}
		taken[name] = true
		names[i] = name
	}
	return names
}
