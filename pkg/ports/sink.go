package ports

import "image"

// FrameSink receives decoded output.
type FrameSink interface {
	// Enabled returns true if the sink writes anything.
	Enabled() bool

	// SaveImage saves a single decoded image under name.
	SaveImage(name string, img *Image) error

	// SaveFrame saves one animation frame under name.
	SaveFrame(name string, index int, frame *AnimatedFrame) error

	// SaveSheet saves a rendered contact sheet under name.
	SaveSheet(name string, img image.Image) error
}
