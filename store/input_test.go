package store

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInput_FixedWidthRoundTrip(t *testing.T) {
	buf := NewBuffer()
	defer buf.Release()
	out := NewOutput(buf)

	require.NoError(t, out.WriteInt16(-2))
	require.NoError(t, out.WriteInt32(0x7FEEDDCC))
	require.NoError(t, out.WriteInt64(-42))

	in := NewInput(NewBytesSource(buf.Bytes()))

	v16, err := in.ReadInt16()
	require.NoError(t, err)
	require.Equal(t, int16(-2), v16)

	v32, err := in.ReadInt32()
	require.NoError(t, err)
	require.Equal(t, int32(0x7FEEDDCC), v32)

	v64, err := in.ReadInt64()
	require.NoError(t, err)
	require.Equal(t, int64(-42), v64)
}

func TestInput_ReadByteAndBytes(t *testing.T) {
	in := NewInput(NewBytesSource([]byte{0xAB, 1, 2, 3}))

	b, err := in.ReadByte()
	require.NoError(t, err)
	require.Equal(t, byte(0xAB), b)

	p := make([]byte, 3)
	require.NoError(t, in.ReadBytes(p))
	require.Equal(t, []byte{1, 2, 3}, p)

	_, err = in.ReadByte()
	require.ErrorIs(t, err, ErrShortRead)
}

func TestInput_VarintOverflow(t *testing.T) {
	// Five continuation bytes with no terminator exceed the VInt limit.
	in := NewInput(NewBytesSource(bytes.Repeat([]byte{0x80}, 5)))
	_, err := in.ReadVInt()
	require.ErrorIs(t, err, ErrVarintOverflow)

	// Ten continuation bytes exceed the VLong limit.
	in = NewInput(NewBytesSource(bytes.Repeat([]byte{0x80}, 10)))
	_, err = in.ReadVLong()
	require.ErrorIs(t, err, ErrVarintOverflow)
}

func TestInput_TruncatedVarint(t *testing.T) {
	// A continuation bit with no following byte is a short read, never a
	// silently shorter value.
	in := NewInput(NewBytesSource([]byte{0x80}))
	_, err := in.ReadVInt()
	require.ErrorIs(t, err, ErrShortRead)
}

func TestInput_ReadString_InvalidLength(t *testing.T) {
	// VInt(-1) as a string length is invalid.
	in := NewInput(NewBytesSource([]byte{0xFF, 0xFF, 0xFF, 0xFF, 0x0F}))
	_, err := in.ReadString()
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid string length")
}

func TestInput_ReadStringMap_InvalidCount(t *testing.T) {
	in := NewInput(NewBytesSource([]byte{0xFF, 0xFF, 0xFF, 0xFF}))
	_, err := in.ReadStringMap()
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid map entry count")
}

func TestBytesSource_ReadBytes(t *testing.T) {
	src := NewBytesSource([]byte{1, 2, 3, 4, 5})
	require.Equal(t, 5, src.Remaining())

	p := make([]byte, 2)
	require.NoError(t, src.ReadBytes(p))
	require.Equal(t, []byte{1, 2}, p)
	require.Equal(t, 3, src.Remaining())

	// Zero-length fill is a no-op.
	require.NoError(t, src.ReadBytes(nil))
	require.Equal(t, 3, src.Remaining())

	// Asking for more than remains fails without consuming anything.
	big := make([]byte, 4)
	require.ErrorIs(t, src.ReadBytes(big), ErrShortRead)
	require.Equal(t, 3, src.Remaining())
}
