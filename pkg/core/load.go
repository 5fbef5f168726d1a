// Package core is the pull-based decoding engine behind the stream loader.
//
// The core never sees a stream. It pulls bytes through a Callbacks
// implementation, hands results back as Buffers that the caller must Free,
// and keeps multi-frame state in explicit values passed into every call.
// Pixel decoding for still formats is delegated to image/jpeg, image/png
// and golang.org/x/image; GIF frames are parsed incrementally here so that
// one frame can be produced per call.
package core

import "fmt"

// Limits bounds the images the core accepts.
type Limits struct {
	// MaxDimension is the largest accepted width or height.
	MaxDimension int
	// MaxPixels is the largest accepted width*height.
	MaxPixels int
}

// DefaultLimits matches the dimension cap of the reference decoder.
var DefaultLimits = Limits{
	MaxDimension: 1 << 24,
	MaxPixels:    1 << 28,
}

func (l Limits) check(w, h int) error {
	if w <= 0 || h <= 0 {
		return failf(ErrMalformed, "bad dimensions %dx%d", w, h)
	}
	if w > l.MaxDimension || h > l.MaxDimension {
		return failf(ErrMalformed, "too large: %dx%d exceeds %d", w, h, l.MaxDimension)
	}
	if l.MaxPixels > 0 && int64(w)*int64(h) > int64(l.MaxPixels) {
		return failf(ErrMalformed, "too large: %d pixels exceeds %d", int64(w)*int64(h), l.MaxPixels)
	}
	return nil
}

func validRequest(req int) error {
	if req < 0 || req > 4 {
		return failf(ErrBadRequest, "bad req_comp %d", req)
	}
	return nil
}

// LoadFromCallbacks decodes one image with DefaultLimits.
func LoadFromCallbacks(cb Callbacks, req int) (*Buffer, int, int, int, error) {
	return DefaultLimits.LoadFromCallbacks(cb, req)
}

// LoadFromCallbacks detects the container and decodes a single image.
//
// On success it returns a buffer of w*h*n bytes, where n is req when req is
// non-zero and the source component count otherwise, along with the width,
// the height and the source component count. The buffer belongs to the
// caller. On failure no buffer is returned and err is an *Error.
func (l Limits) LoadFromCallbacks(cb Callbacks, req int) (out *Buffer, w, h, comp int, err error) {
	if err := validRequest(req); err != nil {
		return nil, 0, 0, 0, err
	}

	ctx := StartCallbacks(cb)
	format := Detect(ctx)
	switch format {
	case FormatUnknown:
		return nil, 0, 0, 0, fail(ErrUnrecognized, "unknown image type")
	case FormatGIF:
		return l.loadFirstGifFrame(ctx, req)
	}

	var ihdr []byte
	if format == FormatPNG {
		ihdr = append(ihdr, ctx.Peek(pngIHDRLen)...)
	}

	img, derr := decoders[format](ctx)
	if derr != nil {
		return nil, 0, 0, 0, fail(ErrMalformed, fmt.Sprintf("%s: %v", format, derr))
	}

	b := img.Bounds()
	w, h = b.Dx(), b.Dy()
	if err := l.check(w, h); err != nil {
		return nil, 0, 0, 0, err
	}

	if format == FormatPNG {
		comp = pngComponents(ihdr, img)
	} else {
		comp = sourceComponents(img)
	}
	n := req
	if n == 0 {
		n = comp
	}
	out = Malloc(w * h * n)
	interleave(img, n, out.Bytes())
	return out, w, h, comp, nil
}

func (l Limits) loadFirstGifFrame(ctx *Context, req int) (*Buffer, int, int, int, error) {
	g := NewGifState()
	defer g.Release()

	out, comp, err := l.GifLoadNext(ctx, g, req)
	if err != nil {
		return nil, 0, 0, 0, err
	}
	if out == nil {
		return nil, 0, 0, 0, fail(ErrMalformed, "gif: no image data")
	}
	return out, g.Width(), g.Height(), comp, nil
}
