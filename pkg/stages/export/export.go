// Package export implements the output stage that writes decoded files to a
// frame sink.
package export

import (
	"context"
	"fmt"

	"github.com/user/imgstream/pkg/pipeline"
	"github.com/user/imgstream/pkg/ports"
)

// Stage writes decoded stills, frames and contact sheets.
type Stage struct {
	sink     ports.FrameSink
	renderer ports.Renderer
	logger   ports.Logger
}

// NewStage creates a new export stage.
func NewStage(sink ports.FrameSink, renderer ports.Renderer, logger ports.Logger) *Stage {
	return &Stage{
		sink:     sink,
		renderer: renderer,
		logger:   logger.WithComponent("export"),
	}
}

// Execute writes one decoded file.
func (s *Stage) Execute(ctx context.Context, input pipeline.ExportInput) (pipeline.ExportResult, error) {
	result := pipeline.ExportResult{}
	if !s.sink.Enabled() {
		return result, nil
	}

	decoded := input.Decoded
	if decoded.Image != nil {
		if err := s.sink.SaveImage(decoded.Name, decoded.Image); err != nil {
			return result, fmt.Errorf("save image: %w", err)
		}
		result.Outputs++
	}

	for i := range decoded.Frames {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		if err := s.sink.SaveFrame(decoded.Name, i, &decoded.Frames[i]); err != nil {
			return result, fmt.Errorf("save frame %d: %w", i, err)
		}
		result.Outputs++
	}

	if input.Sheet && len(decoded.Frames) > 0 {
		s.logger.Debug("Rendering contact sheet for %s", decoded.Name)
		sheet := s.renderer.ContactSheet(decoded.Frames, input.SheetOptions)
		if err := s.sink.SaveSheet(decoded.Name, sheet); err != nil {
			return result, fmt.Errorf("save sheet: %w", err)
		}
		result.Outputs++
	}

	s.logger.Debug("Wrote %d outputs for %s", result.Outputs, decoded.Name)
	return result, nil
}
