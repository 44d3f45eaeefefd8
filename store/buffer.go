package store

import (
	"github.com/lexstore/lexstore/internal/pool"
)

// Buffer is a memory-backed Sink over a pooled byte buffer. It grows as
// needed and never fails a write.
//
// Call Release when done to return the underlying buffer to the pool; the
// Buffer must not be used afterwards.
type Buffer struct {
	buf *pool.ByteBuffer
}

var _ Sink = (*Buffer)(nil)

// NewBuffer returns a Buffer backed by a buffer from the store pool.
func NewBuffer() *Buffer {
	return &Buffer{buf: pool.GetStoreBuffer()}
}

// WriteByte appends a single byte.
func (b *Buffer) WriteByte(c byte) error {
	b.buf.MustWriteByte(c)

	return nil
}

// WriteBytes appends all of p.
func (b *Buffer) WriteBytes(p []byte) error {
	b.buf.MustWrite(p)

	return nil
}

// Bytes returns the accumulated bytes. The returned slice shares the
// underlying buffer; it is invalidated by further writes, Reset, or Release.
func (b *Buffer) Bytes() []byte {
	return b.buf.Bytes()
}

// Len returns the number of bytes written since creation or the last Reset.
func (b *Buffer) Len() int {
	return b.buf.Len()
}

// Reset discards the accumulated bytes but keeps the underlying buffer for
// reuse.
func (b *Buffer) Reset() {
	b.buf.Reset()
}

// Release returns the underlying buffer to the pool. The Buffer must not be
// used after Release.
func (b *Buffer) Release() {
	if b.buf != nil {
		pool.PutStoreBuffer(b.buf)
		b.buf = nil
	}
}
