// Package lexstore provides the low-level storage I/O layer of the lexstore
// search-index format.
//
// Every on-disk structure of the index (term dictionaries, postings, stored
// fields, doc values) is serialized through the primitives in the store
// package: fixed-width big-endian integers, variable-length integers,
// zigzag-encoded signed integers, length-prefixed UTF-8 strings, bulk byte
// copies, and keyed string collections. Their byte-exactness directly
// determines index size and decode cost, so the encodings are deterministic
// and minimal-length by contract.
//
// # Basic Usage
//
// Encoding into memory:
//
//	out, buf := lexstore.NewBufferOutput()
//	defer buf.Release()
//
//	_ = out.WriteVInt(42)
//	_ = out.WriteString("body")
//	_ = out.WriteZLong(-3)
//
//	data := buf.Bytes()
//
// Decoding:
//
//	in := lexstore.NewBytesInput(data)
//	v, _ := in.ReadVInt()
//	field, _ := in.ReadString()
//	delta, _ := in.ReadZLong()
//
// Writing a segment file with an integrity footer:
//
//	stream, _ := store.Create(path)
//	cs := store.NewChecksumSink(stream)
//	out := store.NewOutput(cs)
//	// ... writes ...
//	_ = out.WriteInt64(int64(cs.Sum64()))
//	_ = stream.Close()
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the store
// package, simplifying the most common use cases. For custom destinations
// implement store.Sink directly.
package lexstore

import (
	"io"

	"github.com/lexstore/lexstore/store"
)

// NewOutput wraps any store.Sink in an Output.
func NewOutput(dst store.Sink) *store.Output {
	return store.NewOutput(dst)
}

// NewBufferOutput returns an Output backed by a pooled in-memory buffer,
// together with the buffer for access to the encoded bytes. Release the
// buffer when done.
func NewBufferOutput() (*store.Output, *store.Buffer) {
	buf := store.NewBuffer()

	return store.NewOutput(buf), buf
}

// NewStreamOutput returns an Output writing to w through a buffered stream,
// together with the stream for flushing. The caller remains responsible for
// closing w.
func NewStreamOutput(w io.Writer) (*store.Output, *store.Stream) {
	stream := store.NewStream(w)

	return store.NewOutput(stream), stream
}

// NewChecksumOutput wraps dst so that every written byte is folded into an
// xxHash64 digest, and returns the Output together with the checksum sink
// for reading the running digest.
func NewChecksumOutput(dst store.Sink) (*store.Output, *store.ChecksumSink) {
	cs := store.NewChecksumSink(dst)

	return store.NewOutput(cs), cs
}

// NewBytesInput returns an Input decoding sequentially from data.
func NewBytesInput(data []byte) *store.Input {
	return store.NewInput(store.NewBytesSource(data))
}
