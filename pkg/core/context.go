package core

import "io"

// Callbacks is the pull interface the core uses to obtain encoded bytes.
type Callbacks interface {
	// Read fills data with up to len(data) bytes and returns how many were
	// written. Zero means no more data is available.
	Read(data []byte) int

	// Skip moves the read position n bytes relative to the current one and
	// returns the new position, or -1 if the move failed.
	Skip(n int) int64

	// EOF reports whether the source is exhausted.
	EOF() bool
}

const bufferLen = 128

// Context is the parsing state shared by every format reader: a small
// read-ahead window over the callbacks. It implements io.Reader and
// io.ByteReader so ecosystem decoders can consume it directly.
type Context struct {
	cb        Callbacks
	buf       []byte
	pos       int
	chunk     [bufferLen]byte
	exhausted bool
}

// StartCallbacks creates a context reading from cb.
func StartCallbacks(cb Callbacks) *Context {
	return &Context{cb: cb, buf: make([]byte, 0, bufferLen)}
}

func (c *Context) pending() int {
	return len(c.buf) - c.pos
}

func (c *Context) refill() bool {
	if c.exhausted {
		return false
	}
	if c.pos == len(c.buf) {
		c.buf = c.buf[:0]
		c.pos = 0
	}
	n := c.cb.Read(c.chunk[:])
	if n <= 0 {
		c.exhausted = true
		return false
	}
	if n > len(c.chunk) {
		n = len(c.chunk)
	}
	c.buf = append(c.buf, c.chunk[:n]...)
	return true
}

// Peek returns up to n upcoming bytes without consuming them. Fewer bytes
// are returned only when the source is exhausted.
func (c *Context) Peek(n int) []byte {
	for c.pending() < n {
		if !c.refill() {
			break
		}
	}
	end := c.pos + n
	if end > len(c.buf) {
		end = len(c.buf)
	}
	return c.buf[c.pos:end]
}

// Read implements io.Reader.
func (c *Context) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if c.pending() == 0 {
		if c.exhausted {
			return 0, io.EOF
		}
		// Large reads bypass the window.
		if len(p) >= bufferLen {
			n := c.cb.Read(p)
			if n <= 0 {
				c.exhausted = true
				return 0, io.EOF
			}
			if n > len(p) {
				n = len(p)
			}
			return n, nil
		}
		if !c.refill() {
			return 0, io.EOF
		}
	}
	n := copy(p, c.buf[c.pos:])
	c.pos += n
	return n, nil
}

// ReadByte implements io.ByteReader.
func (c *Context) ReadByte() (byte, error) {
	if c.pending() == 0 && !c.refill() {
		return 0, io.EOF
	}
	b := c.buf[c.pos]
	c.pos++
	return b, nil
}

// Skip discards n bytes, asking the callbacks to skip whatever is not
// already buffered. Non-positive counts are ignored.
func (c *Context) Skip(n int) {
	if n <= 0 {
		return
	}
	if n <= c.pending() {
		c.pos += n
		return
	}
	n -= c.pending()
	c.pos = len(c.buf)
	if c.exhausted {
		return
	}
	if c.cb.Skip(n) < 0 {
		c.exhausted = true
	}
}

// AtEOF reports whether no further bytes can be read.
func (c *Context) AtEOF() bool {
	if c.pending() > 0 {
		return false
	}
	if !c.exhausted && c.cb.EOF() {
		return true
	}
	return len(c.Peek(1)) == 0
}
