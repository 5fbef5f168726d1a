// Package ggrenderer provides a renderer implementation using the gg library.
package ggrenderer

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"

	"github.com/fogleman/gg"
	"golang.org/x/image/draw"

	"github.com/user/imgstream/pkg/ports"
)

// Contact sheet defaults, used when SheetOptions leaves a field zero.
const (
	defaultColumns    = 6
	defaultThumbWidth = 160
	labelHeight       = 18
)

// Renderer implements ports.Renderer using the gg library.
type Renderer struct{}

// New creates a new Renderer.
func New() *Renderer {
	return &Renderer{}
}

// EncodeImage encodes an image to the specified format.
func (r *Renderer) EncodeImage(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
	var buf bytes.Buffer

	switch format {
	case ports.FormatJPEG:
		opts := &jpeg.Options{Quality: quality}
		if err := jpeg.Encode(&buf, img, opts); err != nil {
			return nil, fmt.Errorf("encode JPEG: %w", err)
		}
	case ports.FormatPNG:
		if err := png.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("encode PNG: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format: %d", format)
	}

	return buf.Bytes(), nil
}

// ResizeImage resizes an image to the specified dimensions.
func (r *Renderer) ResizeImage(img image.Image, width, height int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)
	return dst
}

// ContactSheet lays out frames left to right, top to bottom. Every cell is a
// thumbnail scaled to opts.ThumbWidth with a "#index delay" caption below it.
func (r *Renderer) ContactSheet(frames []ports.AnimatedFrame, opts ports.SheetOptions) image.Image {
	opts = sheetDefaults(opts)

	if len(frames) == 0 {
		dc := gg.NewContext(opts.ThumbWidth+2*opts.Gap, labelHeight+2*opts.Gap)
		dc.SetColor(opts.Background)
		dc.Clear()
		return dc.Image()
	}

	thumbW := opts.ThumbWidth
	thumbH := thumbW * frames[0].Height / max(frames[0].Width, 1)
	if thumbH < 1 {
		thumbH = 1
	}

	cols := min(opts.Columns, len(frames))
	rows := (len(frames) + cols - 1) / cols
	cellH := thumbH + labelHeight

	width := cols*thumbW + (cols+1)*opts.Gap
	height := rows*cellH + (rows+1)*opts.Gap

	dc := gg.NewContext(width, height)
	dc.SetColor(opts.Background)
	dc.Clear()

	for i := range frames {
		col, row := i%cols, i/cols
		x := opts.Gap + col*(thumbW+opts.Gap)
		y := opts.Gap + row*(cellH+opts.Gap)

		thumb := r.ResizeImage(frames[i].ToNRGBA(), thumbW, thumbH)
		dc.DrawImage(thumb, x, y)

		dc.SetColor(opts.LabelColor)
		label := fmt.Sprintf("#%d  %d ms", i, frames[i].Delay)
		dc.DrawStringAnchored(label, float64(x)+float64(thumbW)/2, float64(y+thumbH)+labelHeight/2, 0.5, 0.5)
	}

	return dc.Image()
}

func sheetDefaults(opts ports.SheetOptions) ports.SheetOptions {
	if opts.Columns <= 0 {
		opts.Columns = defaultColumns
	}
	if opts.ThumbWidth <= 0 {
		opts.ThumbWidth = defaultThumbWidth
	}
	if opts.Gap < 0 {
		opts.Gap = 0
	}
	if opts.Background == nil {
		opts.Background = color.White
	}
	if opts.LabelColor == nil {
		opts.LabelColor = color.Black
	}
	return opts
}

// Ensure Renderer implements ports.Renderer
var _ ports.Renderer = (*Renderer)(nil)
