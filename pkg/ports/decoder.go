package ports

import (
	"fmt"
	"image"
	"io"
	"iter"
	"strings"
)

// ColorComponents is the number of interleaved channels per pixel.
type ColorComponents int

const (
	// Default keeps whatever the source format provides.
	Default ColorComponents = iota
	// Grey is a single luminance channel.
	Grey
	// GreyAlpha is luminance followed by alpha.
	GreyAlpha
	// RedGreenBlue is three color channels.
	RedGreenBlue
	// RedGreenBlueAlpha is three color channels followed by alpha.
	RedGreenBlueAlpha
)

// String returns the name used in configuration files and flags.
func (c ColorComponents) String() string {
	switch c {
	case Default:
		return "default"
	case Grey:
		return "grey"
	case GreyAlpha:
		return "grey-alpha"
	case RedGreenBlue:
		return "rgb"
	case RedGreenBlueAlpha:
		return "rgba"
	default:
		return fmt.Sprintf("components(%d)", int(c))
	}
}

// Valid reports whether c is one of the defined requests.
func (c ColorComponents) Valid() bool {
	return c >= Default && c <= RedGreenBlueAlpha
}

// ParseColorComponents parses a component request by name or count.
func ParseColorComponents(s string) (ColorComponents, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "default", "0":
		return Default, nil
	case "grey", "gray", "1":
		return Grey, nil
	case "grey-alpha", "gray-alpha", "greyalpha", "2":
		return GreyAlpha, nil
	case "rgb", "3":
		return RedGreenBlue, nil
	case "rgba", "4":
		return RedGreenBlueAlpha, nil
	default:
		return Default, fmt.Errorf("unknown color components %q", s)
	}
}

// Image is a decoded picture owned by the caller.
// Data holds Width*Height*Comp bytes, row-major with interleaved channels.
type Image struct {
	Width      int
	Height     int
	SourceComp ColorComponents // channels found in the file
	Comp       ColorComponents // channels present in Data
	Data       []byte
}

// ToNRGBA expands the pixel data into an image.NRGBA.
func (img *Image) ToNRGBA() *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, img.Width, img.Height))
	n := int(img.Comp)
	for i, j := 0, 0; i+n <= len(img.Data) && j < len(out.Pix); i, j = i+n, j+4 {
		p := img.Data[i : i+n]
		switch img.Comp {
		case Grey:
			out.Pix[j], out.Pix[j+1], out.Pix[j+2], out.Pix[j+3] = p[0], p[0], p[0], 255
		case GreyAlpha:
			out.Pix[j], out.Pix[j+1], out.Pix[j+2], out.Pix[j+3] = p[0], p[0], p[0], p[1]
		case RedGreenBlue:
			out.Pix[j], out.Pix[j+1], out.Pix[j+2], out.Pix[j+3] = p[0], p[1], p[2], 255
		default:
			copy(out.Pix[j:j+4], p)
		}
	}
	return out
}

// AnimatedFrame is one composed frame of an animation.
type AnimatedFrame struct {
	Image
	// Delay is the display time in milliseconds.
	Delay int
}

// ImageDecoder decodes images read from a stream. Implementations bind one
// stream per call and are not safe for concurrent use.
type ImageDecoder interface {
	// Decode reads a single image.
	Decode(r io.Reader, req ColorComponents) (*Image, error)

	// DecodeAnimated reads every frame of an animation in playback order.
	DecodeAnimated(r io.Reader, req ColorComponents) ([]AnimatedFrame, error)

	// Frames yields the frames of an animation one at a time.
	Frames(r io.Reader, req ColorComponents) iter.Seq2[*AnimatedFrame, error]
}
