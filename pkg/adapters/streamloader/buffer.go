package streamloader

const initialBufferSize = 1024

// readBuffer is scratch space for copying stream bytes into the decoder's
// input window. It only grows.
type readBuffer struct {
	data []byte
}

func newReadBuffer() *readBuffer {
	return &readBuffer{data: make([]byte, initialBufferSize)}
}

// ensure returns a slice of n bytes backed by the buffer, reallocating to
// twice the request when the current storage is too small.
func (b *readBuffer) ensure(n int) []byte {
	if n <= 0 {
		return b.data[:0]
	}
	if n > len(b.data) {
		b.data = make([]byte, 2*n)
	}
	return b.data[:n]
}

// Cap returns the current storage size.
func (b *readBuffer) Cap() int {
	return len(b.data)
}
