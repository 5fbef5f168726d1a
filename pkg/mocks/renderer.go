package mocks

import (
	"image"

	"github.com/user/imgstream/pkg/ports"
)

// Renderer is a mock implementation of ports.Renderer.
type Renderer struct {
	EncodeImageFunc  func(img image.Image, format ports.ImageFormat, quality int) ([]byte, error)
	ResizeImageFunc  func(img image.Image, width, height int) image.Image
	ContactSheetFunc func(frames []ports.AnimatedFrame, opts ports.SheetOptions) image.Image
}

func (m *Renderer) EncodeImage(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
	if m.EncodeImageFunc != nil {
		return m.EncodeImageFunc(img, format, quality)
	}
	return []byte{}, nil
}

func (m *Renderer) ResizeImage(img image.Image, width, height int) image.Image {
	if m.ResizeImageFunc != nil {
		return m.ResizeImageFunc(img, width, height)
	}
	return image.NewRGBA(image.Rect(0, 0, width, height))
}

func (m *Renderer) ContactSheet(frames []ports.AnimatedFrame, opts ports.SheetOptions) image.Image {
	if m.ContactSheetFunc != nil {
		return m.ContactSheetFunc(frames, opts)
	}
	return image.NewRGBA(image.Rect(0, 0, 1, 1))
}

var _ ports.Renderer = (*Renderer)(nil)
