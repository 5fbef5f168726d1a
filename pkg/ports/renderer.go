package ports

import (
	"image"
	"image/color"
)

// Renderer abstracts image encoding and drawing.
type Renderer interface {
	// EncodeImage encodes an image to the specified format.
	EncodeImage(img image.Image, format ImageFormat, quality int) ([]byte, error)

	// ResizeImage resizes an image to the specified dimensions.
	ResizeImage(img image.Image, width, height int) image.Image

	// ContactSheet lays out animation frames on a grid, each labelled with
	// its index and delay.
	ContactSheet(frames []AnimatedFrame, opts SheetOptions) image.Image
}

// SheetOptions controls contact sheet layout.
type SheetOptions struct {
	Columns    int
	ThumbWidth int
	Gap        int
	Background color.Color
	LabelColor color.Color
}

// ImageFormat specifies image encoding format.
type ImageFormat int

const (
	FormatJPEG ImageFormat = iota
	FormatPNG
)
