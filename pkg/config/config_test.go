package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/user/imgstream/pkg/core"
	"github.com/user/imgstream/pkg/pipeline"
	"github.com/user/imgstream/pkg/ports"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
	if cfg.DecoderLimits() != core.DefaultLimits {
		t.Errorf("expected core defaults, got %+v", cfg.DecoderLimits())
	}
	if cfg.OutputDir != "" {
		t.Error("file output should be off by default")
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "imgstream.yaml")
	content := `
components: rgba
animated: never
workers: 8
output_dir: ./frames
raw: true
sheet:
  enabled: true
  columns: 4
limits:
  max_dimension: 4096
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}

	if cfg.Components != "rgba" || cfg.Animated != "never" || cfg.Workers != 8 {
		t.Errorf("unexpected values: %+v", cfg)
	}
	if !cfg.Raw || cfg.OutputDir != "./frames" {
		t.Errorf("unexpected output settings: %+v", cfg)
	}
	if !cfg.Sheet.Enabled || cfg.Sheet.Columns != 4 {
		t.Errorf("unexpected sheet settings: %+v", cfg.Sheet)
	}
	// Fields absent from the file keep their defaults
	if cfg.Sheet.ThumbWidth != 160 {
		t.Errorf("expected default thumb width, got %d", cfg.Sheet.ThumbWidth)
	}
	if cfg.Limits.MaxDimension != 4096 || cfg.Limits.MaxPixels != core.DefaultLimits.MaxPixels {
		t.Errorf("unexpected limits: %+v", cfg.Limits)
	}
}

func TestLoadFromFile_Errors(t *testing.T) {
	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	os.WriteFile(path, []byte("workers: [1, 2"), 0644)
	if _, err := LoadFromFile(path); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"components", func(c *Config) { c.Components = "cmyk" }},
		{"animated", func(c *Config) { c.Animated = "sometimes" }},
		{"max frames", func(c *Config) { c.MaxFrames = -1 }},
		{"workers", func(c *Config) { c.Workers = -2 }},
		{"limits", func(c *Config) { c.Limits.MaxDimension = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.modify(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestToOrchestratorConfig(t *testing.T) {
	cfg := Defaults()
	cfg.Components = "grey"
	cfg.Animated = "always"
	cfg.MaxFrames = 5
	cfg.Sheet.Enabled = true

	oc := cfg.ToOrchestratorConfig([]string{"a.gif"})

	if oc.Components != ports.Grey || oc.Animated != pipeline.AnimatedAlways || oc.MaxFrames != 5 {
		t.Errorf("unexpected decode settings: %+v", oc)
	}
	if !oc.Sheet || oc.SheetOptions.Columns != 6 {
		t.Errorf("unexpected sheet settings: %+v", oc.SheetOptions)
	}
	if oc.SheetOptions.Background != (color.RGBA{R: 0x1a, G: 0x1a, B: 0x2e, A: 255}) {
		t.Errorf("unexpected background %v", oc.SheetOptions.Background)
	}
	if len(oc.Inputs) != 1 || oc.Workers != 4 {
		t.Errorf("unexpected batch settings: %+v", oc)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		input string
		want  color.Color
	}{
		{"#ff0000", color.RGBA{R: 255, A: 255}},
		{"00FF00", color.RGBA{G: 255, A: 255}},
		{"", color.Black},
		{"#abc", color.Black},
	}
	for _, tt := range tests {
		if got := ParseColor(tt.input); got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
