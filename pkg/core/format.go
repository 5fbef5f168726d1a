package core

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/jpeg"
	"image/png"
	"io"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"
)

// Format identifies an image container.
type Format int

const (
	FormatUnknown Format = iota
	FormatJPEG
	FormatPNG
	FormatBMP
	FormatGIF
	FormatTIFF
	FormatWebP
)

// String returns the lowercase container name.
func (f Format) String() string {
	switch f {
	case FormatJPEG:
		return "jpeg"
	case FormatPNG:
		return "png"
	case FormatBMP:
		return "bmp"
	case FormatGIF:
		return "gif"
	case FormatTIFF:
		return "tiff"
	case FormatWebP:
		return "webp"
	default:
		return "unknown"
	}
}

var pngSignature = []byte("\x89PNG\r\n\x1a\n")

func jpegTest(ctx *Context) bool {
	p := ctx.Peek(3)
	return len(p) == 3 && p[0] == 0xFF && p[1] == 0xD8 && p[2] == 0xFF
}

func pngTest(ctx *Context) bool {
	return bytes.Equal(ctx.Peek(len(pngSignature)), pngSignature)
}

func bmpTest(ctx *Context) bool {
	p := ctx.Peek(18)
	if len(p) < 18 || p[0] != 'B' || p[1] != 'M' {
		return false
	}
	switch binary.LittleEndian.Uint32(p[14:]) {
	case 12, 40, 56, 108, 124:
		return true
	}
	return false
}

// GifTest reports whether the context is positioned at a GIF87a or GIF89a
// header. No bytes are consumed.
func GifTest(ctx *Context) bool {
	p := ctx.Peek(6)
	return len(p) == 6 && string(p[:4]) == "GIF8" && (p[4] == '7' || p[4] == '9') && p[5] == 'a'
}

func tiffTest(ctx *Context) bool {
	p := ctx.Peek(4)
	return len(p) == 4 && (string(p) == "II*\x00" || string(p) == "MM\x00*")
}

func webpTest(ctx *Context) bool {
	p := ctx.Peek(12)
	return len(p) == 12 && string(p[:4]) == "RIFF" && string(p[8:]) == "WEBP"
}

var formatTests = []struct {
	format Format
	test   func(*Context) bool
}{
	{FormatJPEG, jpegTest},
	{FormatPNG, pngTest},
	{FormatBMP, bmpTest},
	{FormatGIF, GifTest},
	{FormatTIFF, tiffTest},
	{FormatWebP, webpTest},
}

// Detect runs the format tests in priority order without consuming input.
func Detect(ctx *Context) Format {
	for _, ft := range formatTests {
		if ft.test(ctx) {
			return ft.format
		}
	}
	return FormatUnknown
}

var decoders = map[Format]func(io.Reader) (image.Image, error){
	FormatJPEG: jpeg.Decode,
	FormatPNG:  png.Decode,
	FormatBMP:  bmp.Decode,
	FormatTIFF: tiff.Decode,
	FormatWebP: webp.Decode,
}
