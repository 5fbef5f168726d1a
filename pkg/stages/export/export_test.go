package export

import (
	"context"
	"errors"
	"image"
	"testing"

	"github.com/user/imgstream/pkg/adapters/logger"
	"github.com/user/imgstream/pkg/mocks"
	"github.com/user/imgstream/pkg/pipeline"
	"github.com/user/imgstream/pkg/ports"
)

func animated(n int) pipeline.DecodeResult {
	frames := make([]ports.AnimatedFrame, n)
	for i := range frames {
		frames[i] = ports.AnimatedFrame{
			Image: ports.Image{Width: 2, Height: 2, Comp: ports.RedGreenBlueAlpha, Data: make([]byte, 16)},
			Delay: 10 * (i + 1),
		}
	}
	return pipeline.DecodeResult{Name: "anim", Animated: true, Frames: frames}
}

func TestStage_ExportStill(t *testing.T) {
	sink := mocks.NewFrameSink(true)
	stage := NewStage(sink, &mocks.Renderer{}, logger.NewNoop())

	img := &ports.Image{Width: 1, Height: 1, Comp: ports.Grey, Data: []byte{7}}
	result, err := stage.Execute(context.Background(), pipeline.ExportInput{
		Decoded: pipeline.DecodeResult{Name: "photo", Image: img},
		Sheet:   true,
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if result.Outputs != 1 {
		t.Errorf("expected 1 output, got %d", result.Outputs)
	}
	if sink.Images["photo"] != img {
		t.Error("expected image to be saved under its name")
	}
	if len(sink.Sheets) != 0 {
		t.Error("stills never get a contact sheet")
	}
}

func TestStage_ExportFramesAndSheet(t *testing.T) {
	sink := mocks.NewFrameSink(true)
	var sheetFrames int
	var sheetOpts ports.SheetOptions
	renderer := &mocks.Renderer{
		ContactSheetFunc: func(frames []ports.AnimatedFrame, opts ports.SheetOptions) image.Image {
			sheetFrames = len(frames)
			sheetOpts = opts
			return image.NewRGBA(image.Rect(0, 0, 4, 4))
		},
	}
	stage := NewStage(sink, renderer, logger.NewNoop())

	result, err := stage.Execute(context.Background(), pipeline.ExportInput{
		Decoded:      animated(5),
		Sheet:        true,
		SheetOptions: ports.SheetOptions{Columns: 2},
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if result.Outputs != 6 {
		t.Errorf("expected 5 frames and 1 sheet, got %d outputs", result.Outputs)
	}
	if sink.FrameCount("anim") != 5 {
		t.Errorf("expected 5 frames, got %d", sink.FrameCount("anim"))
	}
	if sink.Frames["anim"][4].Delay != 50 {
		t.Errorf("expected frame 4 delay 50, got %d", sink.Frames["anim"][4].Delay)
	}
	if sheetFrames != 5 || sheetOpts.Columns != 2 {
		t.Errorf("unexpected sheet call: %d frames, %+v", sheetFrames, sheetOpts)
	}
	if _, ok := sink.Sheets["anim"]; !ok {
		t.Error("expected sheet to be saved")
	}
}

func TestStage_DisabledSink(t *testing.T) {
	stage := NewStage(&mocks.NullSink{}, &mocks.Renderer{}, logger.NewNoop())

	result, err := stage.Execute(context.Background(), pipeline.ExportInput{Decoded: animated(3), Sheet: true})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if result.Outputs != 0 {
		t.Errorf("expected no outputs, got %d", result.Outputs)
	}
}

func TestStage_SaveError(t *testing.T) {
	sink := mocks.NewFrameSink(true)
	sink.SaveImageFunc = func(name string, img *ports.Image) error {
		return errors.New("disk full")
	}
	stage := NewStage(sink, &mocks.Renderer{}, logger.NewNoop())

	_, err := stage.Execute(context.Background(), pipeline.ExportInput{
		Decoded: pipeline.DecodeResult{Name: "photo", Image: &ports.Image{}},
	})
	if err == nil {
		t.Error("expected error from sink")
	}
}

func TestStage_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	stage := NewStage(mocks.NewFrameSink(true), &mocks.Renderer{}, logger.NewNoop())
	if _, err := stage.Execute(ctx, pipeline.ExportInput{Decoded: animated(2)}); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
