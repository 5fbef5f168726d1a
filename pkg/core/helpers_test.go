package core

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"hash/crc32"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

// memCallbacks serves callbacks from an in-memory byte slice. maxRead
// limits how many bytes a single Read returns, to exercise short reads.
type memCallbacks struct {
	r       *bytes.Reader
	maxRead int
	reads   int
}

func newMemCallbacks(data []byte) *memCallbacks {
	return &memCallbacks{r: bytes.NewReader(data)}
}

func (m *memCallbacks) Read(data []byte) int {
	m.reads++
	if m.maxRead > 0 && len(data) > m.maxRead {
		data = data[:m.maxRead]
	}
	n, _ := m.r.Read(data)
	return n
}

func (m *memCallbacks) Skip(n int) int64 {
	pos, err := m.r.Seek(int64(n), io.SeekCurrent)
	if err != nil {
		return -1
	}
	return pos
}

func (m *memCallbacks) EOF() bool {
	return m.r.Len() == 0
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func encodeJPEG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}))
	return buf.Bytes()
}

func encodeGIF(t *testing.T, g *gif.GIF) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, gif.EncodeAll(&buf, g))
	return buf.Bytes()
}

func solidNRGBA(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	return img
}

var (
	clear4 = color.RGBA{0, 0, 0, 0}
	red    = color.RGBA{255, 0, 0, 255}
	green  = color.RGBA{0, 255, 0, 255}
	blue   = color.RGBA{0, 0, 255, 255}
)

func filledPaletted(r image.Rectangle, p color.Palette, index uint8) *image.Paletted {
	img := image.NewPaletted(r, p)
	for i := range img.Pix {
		img.Pix[i] = index
	}
	return img
}

// threeFrameGIF builds a 4x4 animation that exercises sub-rectangles,
// background disposal and transparency.
func threeFrameGIF(t *testing.T) []byte {
	t.Helper()
	p := color.Palette{clear4, red, green, blue}

	f0 := filledPaletted(image.Rect(0, 0, 4, 4), p, 1)
	f1 := filledPaletted(image.Rect(1, 1, 3, 3), p, 2)
	f2 := filledPaletted(image.Rect(0, 0, 4, 4), p, 0)
	f2.SetColorIndex(0, 0, 3)

	return encodeGIF(t, &gif.GIF{
		Image:    []*image.Paletted{f0, f1, f2},
		Delay:    []int{10, 20, 30},
		Disposal: []byte{gif.DisposalNone, gif.DisposalBackground, gif.DisposalNone},
	})
}

func pixelAt(buf []byte, w, comp, x, y int) []byte {
	i := (y*w + x) * comp
	return buf[i : i+comp]
}

// rawPNG assembles a PNG with the given bit depth and colour type, which
// image/png cannot produce for grey+alpha or tRNS. pix holds the unfiltered
// rows; a non-nil trns adds a tRNS chunk.
func rawPNG(t *testing.T, w, h int, depth, colorType byte, pix, trns []byte) []byte {
	t.Helper()
	var out bytes.Buffer
	out.Write(pngSignature)

	chunk := func(typ string, data []byte) {
		var n [4]byte
		binary.BigEndian.PutUint32(n[:], uint32(len(data)))
		out.Write(n[:])
		out.WriteString(typ)
		out.Write(data)
		crc := crc32.NewIEEE()
		crc.Write([]byte(typ))
		crc.Write(data)
		binary.BigEndian.PutUint32(n[:], crc.Sum32())
		out.Write(n[:])
	}

	ihdr := make([]byte, 13)
	binary.BigEndian.PutUint32(ihdr[0:], uint32(w))
	binary.BigEndian.PutUint32(ihdr[4:], uint32(h))
	ihdr[8], ihdr[9] = depth, colorType
	chunk("IHDR", ihdr)
	if trns != nil {
		chunk("tRNS", trns)
	}

	var idat bytes.Buffer
	zw := zlib.NewWriter(&idat)
	stride := len(pix) / h
	for y := 0; y < h; y++ {
		_, err := zw.Write(append([]byte{0}, pix[y*stride:(y+1)*stride]...))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	chunk("IDAT", idat.Bytes())
	chunk("IEND", nil)
	return out.Bytes()
}

// ramp returns n bytes counting up from start.
func ramp(n int, start byte) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = start + byte(i)
	}
	return b
}
