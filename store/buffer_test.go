package store

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuffer_WriteAndBytes(t *testing.T) {
	buf := NewBuffer()
	defer buf.Release()

	require.NoError(t, buf.WriteByte(0x01))
	require.NoError(t, buf.WriteBytes([]byte{0x02, 0x03}))
	require.NoError(t, buf.WriteBytes(nil)) // zero-length no-op

	require.Equal(t, 3, buf.Len())
	require.Equal(t, []byte{0x01, 0x02, 0x03}, buf.Bytes())
}

func TestBuffer_Reset(t *testing.T) {
	buf := NewBuffer()
	defer buf.Release()

	require.NoError(t, buf.WriteBytes([]byte("postings")))
	buf.Reset()

	require.Equal(t, 0, buf.Len())
	require.NoError(t, buf.WriteByte(0x7F))
	require.Equal(t, []byte{0x7F}, buf.Bytes())
}

func TestBuffer_Release(t *testing.T) {
	buf := NewBuffer()
	require.NoError(t, buf.WriteBytes([]byte{1, 2, 3}))

	buf.Release()
	// Double release is a no-op.
	buf.Release()

	// A fresh buffer starts empty even if it came back from the pool.
	next := NewBuffer()
	defer next.Release()
	require.Equal(t, 0, next.Len())
}

func TestBuffer_OffsetSlicing(t *testing.T) {
	buf := NewBuffer()
	defer buf.Release()

	// The offset/length form of the primitive is expressed by slicing.
	payload := []byte{9, 8, 7, 6, 5}
	require.NoError(t, buf.WriteBytes(payload[1:4]))
	require.Equal(t, []byte{8, 7, 6}, buf.Bytes())
}
