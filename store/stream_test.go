package store

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStream_WriteAndFlush(t *testing.T) {
	var dst bytes.Buffer
	stream := NewStream(&dst)
	out := NewOutput(stream)

	require.NoError(t, out.WriteVInt(300))
	require.NoError(t, out.WriteString("segment"))

	// Nothing is promised before Flush.
	require.NoError(t, stream.Flush())

	in := NewInput(NewBytesSource(dst.Bytes()))
	v, err := in.ReadVInt()
	require.NoError(t, err)
	require.Equal(t, int32(300), v)

	s, err := in.ReadString()
	require.NoError(t, err)
	require.Equal(t, "segment", s)
}

func TestStream_CreateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "0001.dat")

	stream, err := Create(path)
	require.NoError(t, err)

	out := NewOutput(stream)
	require.NoError(t, out.WriteInt32(1))
	require.NoError(t, out.WriteString("hello"))
	require.NoError(t, stream.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, append([]byte{0, 0, 0, 1, 5}, []byte("hello")...), data)
}

func TestStream_CreateInvalidPath(t *testing.T) {
	_, err := Create(filepath.Join(t.TempDir(), "missing", "0001.dat"))
	require.Error(t, err)
}
