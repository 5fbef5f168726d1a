package streamloader

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

// noSeek hides the Seek method of the wrapped reader.
type noSeek struct {
	r io.Reader
}

func (n noSeek) Read(p []byte) (int, error) {
	return n.r.Read(p)
}

// failAfter returns err once limit bytes have been served.
type failAfter struct {
	data  []byte
	limit int
	err   error
	pos   int
}

func (f *failAfter) Read(p []byte) (int, error) {
	if f.pos >= f.limit {
		return 0, f.err
	}
	end := f.pos + len(p)
	if end > f.limit {
		end = f.limit
	}
	n := copy(p, f.data[f.pos:end])
	f.pos += n
	return n, nil
}

func gradientRGBA(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{uint8(x), uint8(y), uint8(x + y), 255})
		}
	}
	return img
}

func encodeJPEG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, &jpeg.Options{Quality: 85}))
	return buf.Bytes()
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// frameColors is the palette used by animatedGIF; frame i is filled with
// entry i%len(frameColors).
var frameColors = color.Palette{
	color.RGBA{255, 0, 0, 255},
	color.RGBA{0, 255, 0, 255},
	color.RGBA{0, 0, 255, 255},
	color.RGBA{255, 255, 0, 255},
	color.RGBA{0, 255, 255, 255},
	color.RGBA{255, 0, 255, 255},
	color.RGBA{255, 255, 255, 255},
	color.RGBA{0, 0, 0, 255},
}

// animatedGIF encodes n full-canvas frames of w x h; frame i has delay i+1
// centiseconds.
func animatedGIF(t *testing.T, n, w, h int) []byte {
	t.Helper()
	g := &gif.GIF{}
	for i := 0; i < n; i++ {
		img := image.NewPaletted(image.Rect(0, 0, w, h), frameColors)
		idx := uint8(i % len(frameColors))
		for j := range img.Pix {
			img.Pix[j] = idx
		}
		g.Image = append(g.Image, img)
		g.Delay = append(g.Delay, i+1)
	}
	var buf bytes.Buffer
	require.NoError(t, gif.EncodeAll(&buf, g))
	return buf.Bytes()
}

// greyAlphaPNG builds a PNG with colour type 4 (grey+alpha, 8 bits) from
// w*h (grey, alpha) pairs.
func greyAlphaPNG(t *testing.T, w, h int, pix []byte) []byte {
	t.Helper()
	var out bytes.Buffer
	out.WriteString("\x89PNG\r\n\x1a\n")

	chunk := func(typ string, data []byte) {
		_ = binary.Write(&out, binary.BigEndian, uint32(len(data)))
		out.WriteString(typ)
		out.Write(data)
		crc := crc32.NewIEEE()
		crc.Write([]byte(typ))
		crc.Write(data)
		_ = binary.Write(&out, binary.BigEndian, crc.Sum32())
	}

	ihdr := make([]byte, 13)
	binary.BigEndian.PutUint32(ihdr[0:], uint32(w))
	binary.BigEndian.PutUint32(ihdr[4:], uint32(h))
	ihdr[8], ihdr[9] = 8, 4
	chunk("IHDR", ihdr)

	var idat bytes.Buffer
	zw := zlib.NewWriter(&idat)
	for y := 0; y < h; y++ {
		_, err := zw.Write(append([]byte{0}, pix[y*w*2:(y+1)*w*2]...))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	chunk("IDAT", idat.Bytes())
	chunk("IEND", nil)
	return out.Bytes()
}
