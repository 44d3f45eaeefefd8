package store

import (
	"encoding/binary"
	"errors"
	"fmt"
)

var (
	// ErrShortRead reports a Source asked for more bytes than it had left.
	ErrShortRead = errors.New("short read")

	// ErrVarintOverflow reports a variable-length integer whose continuation
	// bits ran past the maximum encoding length for its width.
	ErrVarintOverflow = errors.New("malformed varint exceeds maximum length")
)

// Varint encoding lengths: a 32-bit value needs at most 5 bytes, the full
// unsigned 64-bit domain at most 10.
const (
	maxVIntLen  = 5
	maxVLongLen = binary.MaxVarintLen64
)

// Source is the origin contract consumed by Input and by Output.CopyBytes:
// fill the caller's buffer completely, or fail if fewer bytes are available.
//
// The read cursor belongs to the concrete source. Sources are not safe for
// concurrent use.
type Source interface {
	// ReadBytes fills all of p with the next len(p) bytes. It fails, rather
	// than short-reading, when the source cannot supply that many bytes.
	ReadBytes(p []byte) error
}

// Input is the structural mirror of Output: it decodes, from a Source, the
// values an Output encoded. One Input wraps one source and must be driven by
// a single goroutine.
type Input struct {
	src     Source
	scratch [8]byte
}

// NewInput wraps src in an Input.
func NewInput(src Source) *Input {
	return &Input{src: src}
}

// ReadByte reads and returns a single byte.
func (in *Input) ReadByte() (byte, error) {
	if err := in.src.ReadBytes(in.scratch[:1]); err != nil {
		return 0, err
	}

	return in.scratch[0], nil
}

// ReadBytes fills all of p with the next len(p) bytes.
func (in *Input) ReadBytes(p []byte) error {
	return in.src.ReadBytes(p)
}

// ReadInt16 reads two big-endian bytes as an int16.
func (in *Input) ReadInt16() (int16, error) {
	if err := in.src.ReadBytes(in.scratch[:2]); err != nil {
		return 0, err
	}

	return int16(binary.BigEndian.Uint16(in.scratch[:2])), nil
}

// ReadInt32 reads four big-endian bytes as an int32.
func (in *Input) ReadInt32() (int32, error) {
	if err := in.src.ReadBytes(in.scratch[:4]); err != nil {
		return 0, err
	}

	return int32(binary.BigEndian.Uint32(in.scratch[:4])), nil
}

// ReadInt64 reads eight big-endian bytes as an int64.
func (in *Input) ReadInt64() (int64, error) {
	if err := in.src.ReadBytes(in.scratch[:8]); err != nil {
		return 0, err
	}

	return int64(binary.BigEndian.Uint64(in.scratch[:8])), nil
}

// ReadVInt reads a variable-length 32-bit integer written by
// Output.WriteVInt.
func (in *Input) ReadVInt() (int32, error) {
	u, err := in.readUvarint(maxVIntLen)
	if err != nil {
		return 0, err
	}

	return int32(uint32(u)), nil //nolint:gosec
}

// ReadVLong reads a variable-length 64-bit integer written by
// Output.WriteVLong or its unasserted internal variant.
func (in *Input) ReadVLong() (int64, error) {
	u, err := in.readUvarint(maxVLongLen)
	if err != nil {
		return 0, err
	}

	return int64(u), nil //nolint:gosec
}

func (in *Input) readUvarint(maxBytes int) (uint64, error) {
	var u uint64
	var shift uint
	for range maxBytes {
		b, err := in.ReadByte()
		if err != nil {
			return 0, err
		}
		u |= uint64(b&0x7F) << shift
		if b < 0x80 {
			return u, nil
		}
		shift += 7
	}

	return 0, ErrVarintOverflow
}

// ReadZInt reads a zigzag-encoded VInt written by Output.WriteZInt.
func (in *Input) ReadZInt() (int32, error) {
	v, err := in.ReadVInt()
	if err != nil {
		return 0, err
	}
	u := uint32(v)

	return int32(u>>1) ^ -int32(u&1), nil //nolint:gosec
}

// ReadZLong reads a zigzag-encoded VLong written by Output.WriteZLong.
func (in *Input) ReadZLong() (int64, error) {
	u, err := in.readUvarint(maxVLongLen)
	if err != nil {
		return 0, err
	}

	return int64(u>>1) ^ -int64(u&1), nil //nolint:gosec
}

// ReadString reads a VInt byte length followed by that many UTF-8 bytes.
func (in *Input) ReadString() (string, error) {
	n, err := in.ReadVInt()
	if err != nil {
		return "", err
	}
	if n < 0 {
		return "", fmt.Errorf("store: invalid string length %d", n)
	}
	if n == 0 {
		return "", nil
	}

	buf := make([]byte, n)
	if err := in.src.ReadBytes(buf); err != nil {
		return "", err
	}

	return string(buf), nil
}

// ReadStringMap reads an Int32 entry count followed by that many key/value
// string pairs, reconstructing the association written by
// Output.WriteStringMap.
func (in *Input) ReadStringMap() (map[string]string, error) {
	count, err := in.ReadInt32()
	if err != nil {
		return nil, err
	}
	if count < 0 {
		return nil, fmt.Errorf("store: invalid map entry count %d", count)
	}

	m := make(map[string]string, count)
	for range count {
		k, err := in.ReadString()
		if err != nil {
			return nil, err
		}
		v, err := in.ReadString()
		if err != nil {
			return nil, err
		}
		m[k] = v
	}

	return m, nil
}

// ReadStringSet reads an Int32 element count followed by that many strings,
// reconstructing the set written by Output.WriteStringSet.
func (in *Input) ReadStringSet() (map[string]struct{}, error) {
	count, err := in.ReadInt32()
	if err != nil {
		return nil, err
	}
	if count < 0 {
		return nil, fmt.Errorf("store: invalid set element count %d", count)
	}

	set := make(map[string]struct{}, count)
	for range count {
		s, err := in.ReadString()
		if err != nil {
			return nil, err
		}
		set[s] = struct{}{}
	}

	return set, nil
}

// BytesSource is a memory-backed Source over a byte slice. It reads
// sequentially from the slice without copying it; the caller must not
// modify the slice while the source is in use.
type BytesSource struct {
	data []byte
	pos  int
}

var _ Source = (*BytesSource)(nil)

// NewBytesSource returns a Source reading sequentially from data.
func NewBytesSource(data []byte) *BytesSource {
	return &BytesSource{data: data}
}

// ReadBytes fills all of p from the remaining bytes, or fails with
// ErrShortRead if fewer than len(p) bytes remain.
func (s *BytesSource) ReadBytes(p []byte) error {
	if remaining := len(s.data) - s.pos; len(p) > remaining {
		return fmt.Errorf("store: need %d bytes, %d available: %w", len(p), remaining, ErrShortRead)
	}

	s.pos += copy(p, s.data[s.pos:])

	return nil
}

// Remaining returns the number of unread bytes.
func (s *BytesSource) Remaining() int {
	return len(s.data) - s.pos
}
