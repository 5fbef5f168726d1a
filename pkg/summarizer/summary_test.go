package summarizer

import (
	"testing"
	"time"
)

func TestNewSummary(t *testing.T) {
	before := time.Now()
	summary := NewSummary()
	after := time.Now()

	if summary.GeneratedAt.Before(before) || summary.GeneratedAt.After(after) {
		t.Errorf("GeneratedAt should be between %v and %v, got %v",
			before, after, summary.GeneratedAt)
	}
}

func TestBuilder_WithSettings(t *testing.T) {
	settings := Settings{
		Components: "rgba",
		Animated:   "auto",
		MaxFrames:  10,
		Workers:    4,
		Sheet:      true,
	}

	summary := NewBuilder().
		WithSettings(settings).
		Build()

	if summary.Settings != settings {
		t.Errorf("expected %+v, got %+v", settings, summary.Settings)
	}
}

func TestBuilder_Totals(t *testing.T) {
	summary := NewBuilder().
		AddFile(FileInfo{Path: "a.png", Width: 10, Height: 10, Comp: 4, Frames: 1}).
		AddFile(FileInfo{Path: "b.gif", Animated: true, Width: 4, Height: 2, Comp: 3, Frames: 5}).
		AddFile(FileInfo{Path: "c.bin", Error: "unsupported image format"}).
		Build()

	want := Totals{Files: 3, Succeeded: 2, Failed: 1, Frames: 6, PixelBytes: 400 + 120}
	if summary.Totals != want {
		t.Errorf("expected %+v, got %+v", want, summary.Totals)
	}
	if len(summary.Files) != 3 || summary.Files[1].Path != "b.gif" {
		t.Error("files should be kept in order")
	}
}

func TestFileInfo_PixelBytes(t *testing.T) {
	f := FileInfo{Width: 1280, Height: 853, Comp: 4, Frames: 1}
	if got := f.PixelBytes(); got != 1280*853*4 {
		t.Errorf("expected %d, got %d", 1280*853*4, got)
	}
}
