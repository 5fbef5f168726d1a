// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"image/color"
	"os"

	"github.com/user/imgstream/pkg/core"
	"github.com/user/imgstream/pkg/orchestrator"
	"github.com/user/imgstream/pkg/pipeline"
	"github.com/user/imgstream/pkg/ports"
	"gopkg.in/yaml.v3"
)

// Config represents the full configuration for imgstream.
type Config struct {
	// Decoding
	Components string       `yaml:"components"` // default, grey, grey-alpha, rgb, rgba
	Animated   string       `yaml:"animated"`   // auto, always, never
	MaxFrames  int          `yaml:"max_frames"`
	Limits     LimitsConfig `yaml:"limits"`

	// Output
	OutputDir string      `yaml:"output_dir"` // empty disables file output
	Raw       bool        `yaml:"raw"`
	Sheet     SheetConfig `yaml:"sheet"`
	Report    string      `yaml:"report"`

	// Batch
	Workers int `yaml:"workers"`

	// Logging
	LogLevel string `yaml:"log_level"`
}

// LimitsConfig bounds the image dimensions the decoder accepts.
type LimitsConfig struct {
	MaxDimension int `yaml:"max_dimension"`
	MaxPixels    int `yaml:"max_pixels"`
}

// SheetConfig represents contact sheet options.
type SheetConfig struct {
	Enabled         bool   `yaml:"enabled"`
	Columns         int    `yaml:"columns"`
	ThumbWidth      int    `yaml:"thumb_width"`
	Gap             int    `yaml:"gap"`
	BackgroundColor string `yaml:"background_color"`
	LabelColor      string `yaml:"label_color"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		// Decoding
		Components: "default",
		Animated:   "auto",
		Limits: LimitsConfig{
			MaxDimension: core.DefaultLimits.MaxDimension,
			MaxPixels:    core.DefaultLimits.MaxPixels,
		},

		// Output
		Sheet: SheetConfig{
			Columns:         6,
			ThumbWidth:      160,
			Gap:             8,
			BackgroundColor: "#1a1a2e",
			LabelColor:      "#ffffff",
		},

		// Batch
		Workers: 4,

		LogLevel: "info",
	}
}

// LoadFromFile loads configuration from a YAML file.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Validate checks the enumerated fields and numeric ranges.
func (c Config) Validate() error {
	if _, err := ports.ParseColorComponents(c.Components); err != nil {
		return err
	}
	if _, err := pipeline.ParseAnimatedMode(c.Animated); err != nil {
		return err
	}
	if c.MaxFrames < 0 {
		return fmt.Errorf("max_frames must not be negative, got %d", c.MaxFrames)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	if c.Limits.MaxDimension <= 0 {
		return fmt.Errorf("limits.max_dimension must be positive, got %d", c.Limits.MaxDimension)
	}
	return nil
}

// DecoderLimits converts the limits section for the decoder core.
func (c Config) DecoderLimits() core.Limits {
	return core.Limits{
		MaxDimension: c.Limits.MaxDimension,
		MaxPixels:    c.Limits.MaxPixels,
	}
}

// ParseColor parses a hex color string to color.Color.
func ParseColor(hex string) color.Color {
	if len(hex) == 0 {
		return color.Black
	}

	if hex[0] == '#' {
		hex = hex[1:]
	}

	if len(hex) != 6 {
		return color.Black
	}

	var r, g, b uint8
	for i, c := range []byte{hex[0], hex[1]} {
		v := hexValue(c)
		if i == 0 {
			r = v << 4
		} else {
			r |= v
		}
	}
	for i, c := range []byte{hex[2], hex[3]} {
		v := hexValue(c)
		if i == 0 {
			g = v << 4
		} else {
			g |= v
		}
	}
	for i, c := range []byte{hex[4], hex[5]} {
		v := hexValue(c)
		if i == 0 {
			b = v << 4
		} else {
			b |= v
		}
	}

	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func hexValue(c byte) uint8 {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	default:
		return 0
	}
}

// ToOrchestratorConfig converts Config to orchestrator.Config. Call Validate
// first; unparseable enumerations fall back to their defaults.
func (c Config) ToOrchestratorConfig(inputs []string) orchestrator.Config {
	comp, _ := ports.ParseColorComponents(c.Components)
	mode, _ := pipeline.ParseAnimatedMode(c.Animated)

	return orchestrator.Config{
		Inputs: inputs,

		Components: comp,
		Animated:   mode,
		MaxFrames:  c.MaxFrames,

		Sheet: c.Sheet.Enabled,
		SheetOptions: ports.SheetOptions{
			Columns:    c.Sheet.Columns,
			ThumbWidth: c.Sheet.ThumbWidth,
			Gap:        c.Sheet.Gap,
			Background: ParseColor(c.Sheet.BackgroundColor),
			LabelColor: ParseColor(c.Sheet.LabelColor),
		},

		Workers: c.Workers,
	}
}
