package core

import "sync/atomic"

var outstanding atomic.Int64

// Buffer is memory allocated by the decoder core. Ownership moves to the
// caller when a Buffer is returned, and the caller must hand it back with
// Free exactly once.
type Buffer struct {
	data  []byte
	freed bool
}

// Malloc allocates a zeroed buffer of n bytes and counts it as outstanding.
func Malloc(n int) *Buffer {
	if n < 0 {
		n = 0
	}
	outstanding.Add(1)
	return &Buffer{data: make([]byte, n)}
}

// Free releases b. A nil buffer is ignored; freeing the same buffer twice panics.
func Free(b *Buffer) {
	if b == nil {
		return
	}
	if b.freed {
		panic("core: double free")
	}
	b.freed = true
	b.data = nil
	outstanding.Add(-1)
}

// Bytes returns the buffer contents. The slice must not be retained after Free.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// Len returns the buffer size in bytes.
func (b *Buffer) Len() int {
	return len(b.data)
}

// Allocations returns the number of buffers handed out and not yet freed.
func Allocations() int64 {
	return outstanding.Load()
}
