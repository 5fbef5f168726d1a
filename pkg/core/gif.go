package core

import (
	"compress/lzw"
	"encoding/binary"
	"errors"
	"io"
)

// GIF block introducers.
const (
	gifExtension       = 0x21
	gifImageDescriptor = 0x2C
	gifTrailer         = 0x3B

	gifGraphicControl = 0xF9
)

// Disposal methods from the graphic control extension.
const (
	DisposalBackground = 2
	DisposalPrevious   = 3
)

// GifState is the working state carried across GifLoadNext calls for one
// animation: palettes, the disposal flags of the previous frame and the
// RGBA canvas. Its buffers are allocated on the first frame and must be
// returned with Release once the sequence is done.
type GifState struct {
	w, h        int
	flags       int
	bgIndex     int
	transparent int
	eflags      int
	delay       int

	pal  [256][4]byte
	lpal [256][4]byte

	out        *Buffer
	background *Buffer
	history    *Buffer

	started  bool
	released bool
	frames   int
}

// NewGifState returns empty working state for a new animation.
func NewGifState() *GifState {
	return &GifState{transparent: -1}
}

// Width is the logical screen width. Zero before the first frame.
func (g *GifState) Width() int { return g.w }

// Height is the logical screen height. Zero before the first frame.
func (g *GifState) Height() int { return g.h }

// Delay is the display time of the most recent frame in milliseconds.
func (g *GifState) Delay() int { return g.delay }

// Disposal is the disposal method declared for the most recent frame.
func (g *GifState) Disposal() int { return (g.eflags & 0x1C) >> 2 }

// Frames is the number of frames produced so far.
func (g *GifState) Frames() int { return g.frames }

// Release frees the canvas buffers. Calling it more than once is a no-op.
func (g *GifState) Release() {
	if g.released {
		return
	}
	g.released = true
	Free(g.out)
	Free(g.background)
	Free(g.history)
	g.out, g.background, g.history = nil, nil, nil
}

// GifLoadNext decodes the next frame with DefaultLimits.
func GifLoadNext(ctx *Context, g *GifState, req int) (*Buffer, int, error) {
	return DefaultLimits.GifLoadNext(ctx, g, req)
}

// GifLoadNext composes the next frame onto the canvas held by g and returns
// a fresh copy of the canvas with req channels (4 when req is zero) plus the
// source component count, which is always 4 for GIF.
//
// The end of the animation, a trailer block or a clean end of input between
// blocks, is reported as a nil buffer with a nil error. Damaged data is
// reported as an *Error so callers can tell truncation from the end.
func (l Limits) GifLoadNext(ctx *Context, g *GifState, req int) (*Buffer, int, error) {
	if err := validRequest(req); err != nil {
		return nil, 0, err
	}
	if g.released {
		return nil, 0, fail(ErrBadRequest, "gif state already released")
	}

	first := !g.started
	if first {
		if err := g.readHeader(ctx, l); err != nil {
			return nil, 0, err
		}
		pcount := g.w * g.h
		g.out = Malloc(4 * pcount)
		g.background = Malloc(4 * pcount)
		g.history = Malloc(pcount)
		g.started = true
	} else {
		g.dispose()
	}
	clear(g.history.Bytes())

	for {
		if ctx.AtEOF() {
			return nil, 0, nil
		}
		tag, _ := ctx.ReadByte()
		switch tag {
		case gifImageDescriptor:
			if err := g.readImage(ctx, first); err != nil {
				return nil, 0, err
			}
			g.frames++
			if req == 0 {
				req = 4
			}
			return convertRGBA(g.out.Bytes(), req), 4, nil
		case gifExtension:
			if err := g.readExtension(ctx); err != nil {
				return nil, 0, err
			}
		case gifTrailer:
			return nil, 0, nil
		default:
			return nil, 0, failf(ErrMalformed, "gif: unknown block code 0x%02x", tag)
		}
	}
}

func (g *GifState) readHeader(ctx *Context, l Limits) error {
	var hdr [13]byte
	if _, err := io.ReadFull(ctx, hdr[:]); err != nil {
		return fail(ErrMalformed, "gif: truncated header")
	}
	if string(hdr[:4]) != "GIF8" || (hdr[4] != '7' && hdr[4] != '9') || hdr[5] != 'a' {
		return fail(ErrUnrecognized, "not GIF")
	}
	g.w = int(binary.LittleEndian.Uint16(hdr[6:]))
	g.h = int(binary.LittleEndian.Uint16(hdr[8:]))
	g.flags = int(hdr[10])
	g.bgIndex = int(hdr[11])
	g.transparent = -1
	if err := l.check(g.w, g.h); err != nil {
		return err
	}
	if g.flags&0x80 != 0 {
		return readColorTable(ctx, &g.pal, 2<<(g.flags&7), -1)
	}
	return nil
}

func readColorTable(ctx *Context, pal *[256][4]byte, n, transparent int) error {
	var rgb [256 * 3]byte
	if _, err := io.ReadFull(ctx, rgb[:n*3]); err != nil {
		return fail(ErrMalformed, "gif: truncated color table")
	}
	for i := 0; i < n; i++ {
		pal[i] = [4]byte{rgb[i*3], rgb[i*3+1], rgb[i*3+2], 255}
		if i == transparent {
			pal[i][3] = 0
		}
	}
	return nil
}

// dispose applies the previous frame's disposal to the canvas and then
// snapshots the canvas as the background for the next frame. Restoring to
// the previous canvas would need a second snapshot, so it is treated as
// restoring to the background, as the reference decoder does when decoding
// one frame at a time.
func (g *GifState) dispose() {
	out, bg, hist := g.out.Bytes(), g.background.Bytes(), g.history.Bytes()
	switch g.Disposal() {
	case DisposalBackground, DisposalPrevious:
		for pi, touched := range hist {
			if touched != 0 {
				copy(out[pi*4:pi*4+4], bg[pi*4:pi*4+4])
			}
		}
	}
	copy(bg, out)
}

func (g *GifState) readExtension(ctx *Context) error {
	ext, err := ctx.ReadByte()
	if err != nil {
		return fail(ErrMalformed, "gif: truncated extension")
	}
	if ext == gifGraphicControl {
		size, err := ctx.ReadByte()
		if err != nil {
			return fail(ErrMalformed, "gif: truncated graphic control extension")
		}
		if size == 4 {
			var b [4]byte
			if _, err := io.ReadFull(ctx, b[:]); err != nil {
				return fail(ErrMalformed, "gif: truncated graphic control extension")
			}
			g.eflags = int(b[0])
			g.delay = 10 * int(binary.LittleEndian.Uint16(b[1:3]))
			if g.transparent >= 0 {
				g.pal[g.transparent][3] = 255
			}
			if g.eflags&0x01 != 0 {
				g.transparent = int(b[3])
				g.pal[g.transparent][3] = 0
			} else {
				g.transparent = -1
			}
		} else {
			ctx.Skip(int(size))
		}
	}
	for {
		n, err := ctx.ReadByte()
		if err != nil {
			return fail(ErrMalformed, "gif: truncated extension data")
		}
		if n == 0 {
			return nil
		}
		ctx.Skip(int(n))
	}
}

func (g *GifState) readImage(ctx *Context, first bool) error {
	var d [9]byte
	if _, err := io.ReadFull(ctx, d[:]); err != nil {
		return fail(ErrMalformed, "gif: truncated image descriptor")
	}
	x := int(binary.LittleEndian.Uint16(d[0:]))
	y := int(binary.LittleEndian.Uint16(d[2:]))
	w := int(binary.LittleEndian.Uint16(d[4:]))
	h := int(binary.LittleEndian.Uint16(d[6:]))
	if x+w > g.w || y+h > g.h {
		return fail(ErrMalformed, "gif: bad image descriptor")
	}

	lflags := int(d[8])
	table := &g.pal
	if lflags&0x80 != 0 {
		transparent := -1
		if g.eflags&0x01 != 0 {
			transparent = g.transparent
		}
		if err := readColorTable(ctx, &g.lpal, 2<<(lflags&7), transparent); err != nil {
			return err
		}
		table = &g.lpal
	} else if g.flags&0x80 == 0 {
		return fail(ErrMalformed, "gif: missing color table")
	}

	litWidth, err := ctx.ReadByte()
	if err != nil {
		return fail(ErrMalformed, "gif: truncated image data")
	}
	if litWidth < 2 || litWidth > 8 {
		return failf(ErrMalformed, "gif: bad LZW code size %d", litWidth)
	}

	br := &blockReader{r: ctx}
	lr := lzw.NewReader(br, lzw.LSB, int(litWidth))
	defer lr.Close()

	indices := make([]byte, w*h)
	if _, err := io.ReadFull(lr, indices); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return fail(ErrMalformed, "gif: not enough image data")
		}
		return failf(ErrMalformed, "gif: %v", err)
	}
	if err := br.drain(); err != nil {
		return fail(ErrMalformed, "gif: truncated image data")
	}

	g.plot(indices, x, y, w, h, lflags&0x40 != 0, table)

	if first && g.bgIndex > 0 {
		bg := g.pal[g.bgIndex]
		bg[3] = 255
		out := g.out.Bytes()
		for pi, touched := range g.history.Bytes() {
			if touched == 0 {
				copy(out[pi*4:pi*4+4], bg[:])
			}
		}
	}
	return nil
}

// plot writes decoded palette indices into the canvas. Entries whose alpha
// is not above 128 leave the canvas untouched.
func (g *GifState) plot(indices []byte, x, y, w, h int, interlaced bool, table *[256][4]byte) {
	out, hist := g.out.Bytes(), g.history.Bytes()
	rows := sequentialRows(h)
	if interlaced {
		rows = interlacedRows(h)
	}
	for r, dy := range rows {
		line := indices[r*w : (r+1)*w]
		for c, code := range line {
			pi := (y+dy)*g.w + x + c
			hist[pi] = 1
			col := table[code]
			if col[3] > 128 {
				copy(out[pi*4:pi*4+4], col[:])
			}
		}
	}
}

func sequentialRows(h int) []int {
	rows := make([]int, h)
	for i := range rows {
		rows[i] = i
	}
	return rows
}

func interlacedRows(h int) []int {
	passes := []struct{ start, step int }{{0, 8}, {4, 8}, {2, 4}, {1, 2}}
	rows := make([]int, 0, h)
	for _, p := range passes {
		for r := p.start; r < h; r += p.step {
			rows = append(rows, r)
		}
	}
	return rows
}

// blockReader reads the data sub-blocks that follow an image descriptor
// and reports io.EOF at the zero-length terminator.
type blockReader struct {
	r     *Context
	buf   [255]byte
	slice []byte
	err   error
}

func (b *blockReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	for len(b.slice) == 0 {
		if b.err != nil {
			return 0, b.err
		}
		n, err := b.r.ReadByte()
		if err != nil {
			b.err = io.ErrUnexpectedEOF
			return 0, b.err
		}
		if n == 0 {
			b.err = io.EOF
			return 0, b.err
		}
		if _, err := io.ReadFull(b.r, b.buf[:n]); err != nil {
			b.err = io.ErrUnexpectedEOF
			return 0, b.err
		}
		b.slice = b.buf[:n]
	}
	n := copy(p, b.slice)
	b.slice = b.slice[n:]
	return n, nil
}

// drain consumes the remaining sub-blocks up to the terminator.
func (b *blockReader) drain() error {
	_, err := io.Copy(io.Discard, b)
	return err
}
