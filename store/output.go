package store

import (
	"encoding/binary"
	"fmt"
	"maps"
	"slices"
)

// copyBufferSize is the chunk size used by Output.CopyBytes. The scratch
// buffer is allocated lazily on the first copy and reused for the lifetime
// of the Output.
const copyBufferSize = 16384

// Sink is the destination contract every concrete byte destination
// implements. The two primitives are all a destination needs to provide;
// Output builds every composite encoding on top of them.
//
// The write cursor belongs to the concrete destination. Sinks are not safe
// for concurrent use.
type Sink interface {
	// WriteByte appends a single byte. An I/O error from the underlying
	// destination propagates unmodified.
	WriteByte(b byte) error

	// WriteBytes appends all of p. A zero-length slice is a no-op. Callers
	// select a sub-range by slicing (p[off : off+n]); out-of-range indices
	// panic via Go's bounds check rather than surfacing as an I/O error.
	WriteBytes(p []byte) error
}

// Output implements every composite encoding of the lexstore wire format on
// top of a Sink. One Output wraps one destination and must be driven by a
// single goroutine.
type Output struct {
	dst     Sink
	scratch [binary.MaxVarintLen64]byte
	copyBuf []byte // lazily allocated by CopyBytes, fixed at copyBufferSize
}

// NewOutput wraps dst in an Output. The Output does not take over the
// destination's lifecycle; flushing and closing remain the destination's
// responsibility.
func NewOutput(dst Sink) *Output {
	return &Output{dst: dst}
}

// WriteByte writes a single byte to the destination.
func (o *Output) WriteByte(b byte) error {
	return o.dst.WriteByte(b)
}

// WriteBytes writes all of p to the destination.
func (o *Output) WriteBytes(p []byte) error {
	return o.dst.WriteBytes(p)
}

// WriteInt16 writes the low 16 bits of v as two bytes, most-significant
// first.
func (o *Output) WriteInt16(v int16) error {
	binary.BigEndian.PutUint16(o.scratch[:2], uint16(v))

	return o.dst.WriteBytes(o.scratch[:2])
}

// WriteInt32 writes v as four bytes, most-significant first, using the full
// 32-bit two's-complement pattern.
func (o *Output) WriteInt32(v int32) error {
	binary.BigEndian.PutUint32(o.scratch[:4], uint32(v))

	return o.dst.WriteBytes(o.scratch[:4])
}

// WriteInt64 writes v as eight bytes, most-significant first: the high 32
// bits followed by the low 32 bits.
func (o *Output) WriteInt64(v int64) error {
	binary.BigEndian.PutUint64(o.scratch[:8], uint64(v))

	return o.dst.WriteBytes(o.scratch[:8])
}

// WriteVInt writes v in the variable-length format: 7 payload bits per byte,
// least-significant group first, continuation bit set on every byte except
// the last. Values 0-127 take one byte, 128-16383 two bytes, and so on, up
// to five bytes.
//
// Negative values are encoded as their unsigned 32-bit bit pattern and
// always take five bytes; callers should avoid them.
func (o *Output) WriteVInt(v int32) error {
	n := binary.PutUvarint(o.scratch[:], uint64(uint32(v)))

	return o.dst.WriteBytes(o.scratch[:n])
}

// WriteVLong writes a non-negative v in the variable-length format, taking
// between one and nine bytes.
//
// Panics if v is negative; that is a caller defect, not an I/O condition.
// Signed values belong in WriteZLong.
func (o *Output) WriteVLong(v int64) error {
	if v < 0 {
		panic(fmt.Sprintf("store: negative value %d passed to WriteVLong", v))
	}

	return o.writeUvarint(uint64(v))
}

// writeUvarint encodes the full unsigned 64-bit domain, one to ten bytes.
// WriteZLong relies on this unasserted variant because zigzag-transformed
// values may occupy all 64 bits.
func (o *Output) writeUvarint(u uint64) error {
	n := binary.PutUvarint(o.scratch[:], u)

	return o.dst.WriteBytes(o.scratch[:n])
}

// WriteZInt writes v zigzag-encoded as a VInt. Small magnitudes of either
// sign stay compact: 0 encodes as 0, -1 as 1, 1 as 2, -2 as 3, and so on.
func (o *Output) WriteZInt(v int32) error {
	return o.WriteVInt(int32(uint32(v<<1) ^ uint32(v>>31)))
}

// WriteZLong writes v zigzag-encoded in the variable-length format, taking
// between one and ten bytes.
func (o *Output) WriteZLong(v int64) error {
	return o.writeUvarint(uint64(v<<1) ^ uint64(v>>63))
}

// WriteString writes the UTF-8 byte length of s as a VInt followed by the
// bytes themselves, with no terminator. The empty string is a single zero
// byte.
func (o *Output) WriteString(s string) error {
	if err := o.WriteVInt(int32(len(s))); err != nil {
		return err
	}
	if len(s) == 0 {
		return nil
	}

	return o.dst.WriteBytes([]byte(s))
}

// CopyBytes transfers numBytes bytes from src into this destination in
// chunks of at most 16384 bytes, byte-identical to numBytes sequential
// single-byte transfers. On a read or write failure mid-transfer the copy
// aborts immediately; bytes already written stay written.
//
// Panics if numBytes is negative.
func (o *Output) CopyBytes(src Source, numBytes int64) error {
	if numBytes < 0 {
		panic(fmt.Sprintf("store: negative copy count %d", numBytes))
	}
	if o.copyBuf == nil {
		o.copyBuf = make([]byte, copyBufferSize)
	}

	for left := numBytes; left > 0; {
		chunk := int64(copyBufferSize)
		if left < chunk {
			chunk = left
		}
		if err := src.ReadBytes(o.copyBuf[:chunk]); err != nil {
			return err
		}
		if err := o.dst.WriteBytes(o.copyBuf[:chunk]); err != nil {
			return err
		}
		left -= chunk
	}

	return nil
}

// WriteStringMap writes the entry count as an Int32 followed by each entry
// as two consecutive strings, key then value. A nil or empty map writes
// Int32(0) and nothing else.
//
// Entries are emitted in sorted key order so the encoding is deterministic;
// decoders reconstruct an equivalent key-to-value association.
func (o *Output) WriteStringMap(m map[string]string) error {
	if err := o.WriteInt32(int32(len(m))); err != nil {
		return err
	}

	for _, k := range slices.Sorted(maps.Keys(m)) {
		if err := o.WriteString(k); err != nil {
			return err
		}
		if err := o.WriteString(m[k]); err != nil {
			return err
		}
	}

	return nil
}

// WriteStringSet writes the element count as an Int32 followed by each
// element as a string, in sorted order. A nil or empty set writes Int32(0)
// and nothing else.
func (o *Output) WriteStringSet(set map[string]struct{}) error {
	if err := o.WriteInt32(int32(len(set))); err != nil {
		return err
	}

	for _, s := range slices.Sorted(maps.Keys(set)) {
		if err := o.WriteString(s); err != nil {
			return err
		}
	}

	return nil
}
