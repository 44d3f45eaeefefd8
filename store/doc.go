// Package store provides the byte-oriented I/O primitives that every on-disk
// structure of the lexstore index format is built from.
//
// The package is organized around two small contracts:
//
//   - Sink: a destination that accepts bytes (memory buffer, file, socket).
//     Concrete sinks only implement WriteByte and WriteBytes; every composite
//     encoding is implemented once by Output on top of those two primitives,
//     so no destination duplicates encoding logic.
//   - Source: an origin that fills caller-provided buffers, failing when
//     fewer bytes are available than requested. Input mirrors Output on top
//     of a Source.
//
// # Wire format
//
// All fixed-width integers are written big-endian. Variable-length integers
// use the continuation-bit scheme: 7 payload bits per byte, least-significant
// group first, high bit set on every byte except the last. Strings are
// written as a VInt byte length followed by raw UTF-8 bytes. The encoding of
// every value is deterministic: the same input always produces the same byte
// sequence.
//
// # Concurrency
//
// Output and Input keep internal state (scratch buffers, the copy buffer)
// and must be driven by a single goroutine. Sharing a destination between
// goroutines requires serialization in a layer above this package.
//
// # Errors
//
// I/O failures from the underlying destination or source propagate
// unmodified; this package never retries or translates them. Contract
// violations by the caller (a negative value passed to WriteVLong, a
// negative count passed to CopyBytes, out-of-range slicing) panic instead of
// returning an error, since they indicate a defect rather than a recoverable
// condition.
package store
