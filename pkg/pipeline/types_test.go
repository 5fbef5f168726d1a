package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/user/imgstream/pkg/ports"
)

func TestParseAnimatedMode(t *testing.T) {
	tests := []struct {
		input   string
		want    AnimatedMode
		wantErr bool
	}{
		{"", AnimatedAuto, false},
		{"auto", AnimatedAuto, false},
		{"Always", AnimatedAlways, false},
		{"never", AnimatedNever, false},
		{"sometimes", AnimatedAuto, true},
	}

	for _, tt := range tests {
		got, err := ParseAnimatedMode(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseAnimatedMode(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseAnimatedMode(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestAnimatedMode_RoundTrip(t *testing.T) {
	for _, m := range []AnimatedMode{AnimatedAuto, AnimatedAlways, AnimatedNever} {
		got, err := ParseAnimatedMode(m.String())
		if err != nil || got != m {
			t.Errorf("ParseAnimatedMode(%q) = %v, %v", m.String(), got, err)
		}
	}
}

func TestDecodeResult_Still(t *testing.T) {
	r := DecodeResult{Image: &ports.Image{Width: 4, Height: 3, SourceComp: ports.RedGreenBlue, Comp: ports.RedGreenBlueAlpha}}

	if r.Width() != 4 || r.Height() != 3 || r.FrameCount() != 1 {
		t.Errorf("unexpected dimensions %dx%d, %d frames", r.Width(), r.Height(), r.FrameCount())
	}
	src, ret := r.Components()
	if src != ports.RedGreenBlue || ret != ports.RedGreenBlueAlpha {
		t.Errorf("unexpected components %v/%v", src, ret)
	}
	if r.DurationMs() != 0 {
		t.Errorf("expected no duration for a still, got %d", r.DurationMs())
	}
}

func TestDecodeResult_Animated(t *testing.T) {
	frame := func(delay int) ports.AnimatedFrame {
		return ports.AnimatedFrame{Image: ports.Image{Width: 8, Height: 2, SourceComp: ports.RedGreenBlueAlpha, Comp: ports.Grey}, Delay: delay}
	}
	r := DecodeResult{Animated: true, Frames: []ports.AnimatedFrame{frame(100), frame(50), frame(0)}}

	if r.Width() != 8 || r.Height() != 2 || r.FrameCount() != 3 {
		t.Errorf("unexpected dimensions %dx%d, %d frames", r.Width(), r.Height(), r.FrameCount())
	}
	if r.DurationMs() != 150 {
		t.Errorf("expected 150 ms, got %d", r.DurationMs())
	}
	if _, ret := r.Components(); ret != ports.Grey {
		t.Errorf("expected grey, got %v", ret)
	}

	var empty DecodeResult
	if empty.Width() != 0 || empty.FrameCount() != 0 {
		t.Error("expected zero values for an empty result")
	}
}

func TestStageFunc(t *testing.T) {
	boom := errors.New("boom")
	stage := StageFunc[int, int](func(ctx context.Context, in int) (int, error) {
		if in < 0 {
			return 0, boom
		}
		return in * 2, nil
	})

	var s Stage[int, int] = stage
	if got, err := s.Execute(context.Background(), 21); err != nil || got != 42 {
		t.Errorf("Execute(21) = %d, %v", got, err)
	}
	if _, err := s.Execute(context.Background(), -1); !errors.Is(err, boom) {
		t.Errorf("expected boom, got %v", err)
	}
}
