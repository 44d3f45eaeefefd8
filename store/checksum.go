package store

import (
	"github.com/cespare/xxhash/v2"
)

// ChecksumSink wraps another Sink and folds every byte that passes through
// into a running xxHash64 digest. Segment files use it to append an
// integrity footer over everything written before it.
//
// The digest covers exactly the bytes accepted by the inner sink: a byte
// rejected with an I/O error is not folded in.
type ChecksumSink struct {
	dst     Sink
	digest  *xxhash.Digest
	onebyte [1]byte
}

var _ Sink = (*ChecksumSink)(nil)

// NewChecksumSink wraps dst in a ChecksumSink with a fresh digest.
func NewChecksumSink(dst Sink) *ChecksumSink {
	return &ChecksumSink{dst: dst, digest: xxhash.New()}
}

// WriteByte appends a single byte and folds it into the digest.
func (c *ChecksumSink) WriteByte(b byte) error {
	if err := c.dst.WriteByte(b); err != nil {
		return err
	}
	c.onebyte[0] = b
	_, _ = c.digest.Write(c.onebyte[:]) // never fails

	return nil
}

// WriteBytes appends all of p and folds it into the digest.
func (c *ChecksumSink) WriteBytes(p []byte) error {
	if err := c.dst.WriteBytes(p); err != nil {
		return err
	}
	_, _ = c.digest.Write(p) // never fails

	return nil
}

// Sum64 returns the xxHash64 of every byte written so far.
func (c *ChecksumSink) Sum64() uint64 {
	return c.digest.Sum64()
}

// Reset restarts the digest without touching the inner sink.
func (c *ChecksumSink) Reset() {
	c.digest.Reset()
}
