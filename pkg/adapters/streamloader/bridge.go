package streamloader

import (
	"errors"
	"io"

	"github.com/user/imgstream/pkg/core"
)

// bridge serves the decoder core's read/skip/eof callbacks from the stream
// bound for the current call.
//
// Stream failures cannot travel through the callbacks, which only return
// counts, so the first one is kept in err and reported by the loader once
// the core returns.
type bridge struct {
	stream    io.Reader
	scratch   *readBuffer
	offset    int64
	exhausted bool
	err       error
}

func newBridge() *bridge {
	return &bridge{scratch: newReadBuffer()}
}

func (b *bridge) bind(r io.Reader) {
	if b.stream != nil {
		panic("streamloader: loader is already decoding another stream")
	}
	b.stream = r
	b.offset = 0
	b.exhausted = false
	b.err = nil
}

func (b *bridge) unbind() {
	b.stream = nil
}

// Read performs a single stream read of at most len(data) bytes and copies
// what arrived into data.
func (b *bridge) Read(data []byte) int {
	if b.stream == nil || b.err != nil || len(data) == 0 {
		return 0
	}
	buf := b.scratch.ensure(len(data))
	n, err := b.stream.Read(buf)
	if n < 0 || n > len(buf) {
		n = 0
	}
	copy(data, buf[:n])
	b.offset += int64(n)

	switch {
	case err == nil:
	case errors.Is(err, io.EOF):
		b.exhausted = true
	default:
		b.err = err
	}
	return n
}

// Skip moves n bytes relative to the current position and returns the new
// position counted from where the stream was bound, or -1. Seekable streams
// seek; other streams can only discard forward.
func (b *bridge) Skip(n int) int64 {
	if b.stream == nil || b.err != nil {
		return -1
	}
	if s, ok := b.stream.(io.Seeker); ok {
		_, err := s.Seek(int64(n), io.SeekCurrent)
		if err == nil {
			b.offset += int64(n)
			b.exhausted = false
			return b.offset
		}
		// Pipes and sockets implement Seek but refuse it.
		if n < 0 {
			b.err = err
			return -1
		}
	}
	if n < 0 {
		b.err = ErrSeekUnsupported
		return -1
	}

	skipped, err := io.CopyN(io.Discard, b.stream, int64(n))
	b.offset += skipped
	switch {
	case err == nil:
	case errors.Is(err, io.EOF):
		b.exhausted = true
	default:
		b.err = err
		return -1
	}
	return b.offset
}

// EOF reports whether the stream has said it cannot produce more bytes.
func (b *bridge) EOF() bool {
	return b.exhausted || b.err != nil
}

var _ core.Callbacks = (*bridge)(nil)
