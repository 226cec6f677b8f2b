package buffer

import "fmt"

// PreconditionError is the panic value raised when a Buffer method is called
// with arguments that violate its contract. It signals a bug in the caller,
// not bad input, and is therefore never returned as an error.
type PreconditionError struct {
	Op     string
	Reason string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("buffer: %s: %s", e.Op, e.Reason)
}

// violated panics with a PreconditionError
func violated(op, format string, args ...interface{}) {
	panic(&PreconditionError{Op: op, Reason: fmt.Sprintf(format, args...)})
}

// --------------------------------------------------------------------------
// Buffer
// --------------------------------------------------------------------------

// Buffer is an append-only byte buffer with an exposed backing store.
// The zero value is an empty buffer with no capacity and is ready to use.
type Buffer struct {
	buf   []byte // backing store, len(buf) is the capacity
	count int    // number of written bytes
}

// New creates a buffer whose backing store holds exactly initialCapacity bytes
func New(initialCapacity int) *Buffer {
	if initialCapacity < 0 {
		violated("new", "negative capacity %d", initialCapacity)
	}
	return &Buffer{buf: make([]byte, initialCapacity)}
}

// Len returns the number of written bytes
func (b *Buffer) Len() int {
	return b.count
}

// Cap returns the size of the backing store
func (b *Buffer) Cap() int {
	return len(b.buf)
}

// Grow guarantees that at least additional bytes can be written without
// another reallocation. If the remaining space is too small the store is
// replaced by one of exactly Len()+additional bytes and the written bytes
// are copied over.
func (b *Buffer) Grow(additional int) {
	if additional < 0 {
		violated("grow", "negative size %d", additional)
	}

	if len(b.buf)-b.count >= additional {
		return
	}

	newBuf := make([]byte, b.count+additional)
	copy(newBuf, b.buf[:b.count])
	b.buf = newBuf
}

// Raw returns the backing store over its full capacity.
//
// Callers may write into [Len(), Cap()) and must then call Advance with the
// number of bytes written. The returned slice is invalidated by the next Grow.
func (b *Buffer) Raw() []byte {
	return b.buf
}

// Advance moves the length cursor forward by delta bytes without writing.
// It commits bytes that were written through Raw.
func (b *Buffer) Advance(delta int) {
	if delta < 0 {
		violated("advance", "negative delta %d", delta)
	}
	if delta > len(b.buf)-b.count {
		violated("advance", "delta %d exceeds remaining capacity %d", delta, len(b.buf)-b.count)
	}
	b.count += delta
}

// Bytes returns a copy of the written bytes. The result never aliases the
// backing store, so it stays valid after the buffer is reset or grown.
func (b *Buffer) Bytes() []byte {
	out := make([]byte, b.count)
	copy(out, b.buf[:b.count])
	return out
}

// Reset discards the written bytes but keeps the backing store
func (b *Buffer) Reset() {
	b.count = 0
}

// --------------------------------------------------------------------------
// Stream Methods (io.Writer, io.ByteWriter)
// --------------------------------------------------------------------------

// Write appends p with a single bulk copy. It always returns len(p), nil.
func (b *Buffer) Write(p []byte) (int, error) {
	b.Grow(len(p))
	n := copy(b.buf[b.count:], p)
	b.Advance(n)
	return n, nil
}

// WriteByte appends a single byte. It always returns nil.
func (b *Buffer) WriteByte(c byte) error {
	b.Grow(1)
	b.buf[b.count] = c
	b.count++
	return nil
}
