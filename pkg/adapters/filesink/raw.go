package filesink

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"

	"github.com/user/imgstream/pkg/ports"
)

// rawMagic starts every raw dump. It is followed by width, height and
// component count as little-endian uint32 values, then the pixel data.
var rawMagic = [4]byte{'I', 'S', 'R', 'W'}

const rawHeaderSize = 16

var errBadRaw = errors.New("filesink: not a raw pixel dump")

// EncodeRaw serializes img's pixel buffer and compresses it with zstd.
func EncodeRaw(img *ports.Image) ([]byte, error) {
	var plain bytes.Buffer
	plain.Grow(rawHeaderSize + len(img.Data))
	plain.Write(rawMagic[:])
	var dims [12]byte
	binary.LittleEndian.PutUint32(dims[0:], uint32(img.Width))
	binary.LittleEndian.PutUint32(dims[4:], uint32(img.Height))
	binary.LittleEndian.PutUint32(dims[8:], uint32(img.Comp))
	plain.Write(dims[:])
	plain.Write(img.Data)

	var out bytes.Buffer
	enc, err := zstd.NewWriter(&out, zstd.WithEncoderConcurrency(1))
	if err != nil {
		return nil, err
	}
	if _, err := enc.Write(plain.Bytes()); err != nil {
		enc.Close()
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// DecodeRaw reverses EncodeRaw.
func DecodeRaw(r io.Reader) (*ports.Image, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	plain, err := io.ReadAll(dec)
	if err != nil {
		return nil, err
	}
	if len(plain) < rawHeaderSize || !bytes.Equal(plain[:4], rawMagic[:]) {
		return nil, errBadRaw
	}

	w := int(binary.LittleEndian.Uint32(plain[4:]))
	h := int(binary.LittleEndian.Uint32(plain[8:]))
	comp := ports.ColorComponents(binary.LittleEndian.Uint32(plain[12:]))
	data := plain[rawHeaderSize:]
	if !comp.Valid() || comp == ports.Default || len(data) != w*h*int(comp) {
		return nil, fmt.Errorf("%w: %dx%d with %d components does not match %d bytes", errBadRaw, w, h, int(comp), len(data))
	}

	return &ports.Image{Width: w, Height: h, SourceComp: comp, Comp: comp, Data: data}, nil
}
