package store

import (
	"bufio"
	"io"
	"os"
)

// Stream is a Sink over any io.Writer, buffered so that the byte-at-a-time
// encode path does not hit the destination per byte. It suits file and
// socket destinations.
//
// Callers must Flush before the written bytes are guaranteed to reach the
// underlying writer.
type Stream struct {
	w *bufio.Writer
	f *os.File // non-nil only when created via Create
}

var _ Sink = (*Stream)(nil)

// NewStream returns a Stream writing to w.
func NewStream(w io.Writer) *Stream {
	return &Stream{w: bufio.NewWriter(w)}
}

// Create creates or truncates the file at path and returns a Stream writing
// to it. Close flushes and closes the file.
func Create(path string) (*Stream, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	return &Stream{w: bufio.NewWriter(f), f: f}, nil
}

// WriteByte appends a single byte.
func (s *Stream) WriteByte(b byte) error {
	return s.w.WriteByte(b)
}

// WriteBytes appends all of p.
func (s *Stream) WriteBytes(p []byte) error {
	_, err := s.w.Write(p)

	return err
}

// Flush writes any buffered bytes to the underlying writer.
func (s *Stream) Flush() error {
	return s.w.Flush()
}

// Close flushes buffered bytes and, when the Stream was created via Create,
// closes the underlying file. A flush failure takes precedence over a close
// failure.
func (s *Stream) Close() error {
	ferr := s.w.Flush()
	if s.f != nil {
		if cerr := s.f.Close(); ferr == nil {
			ferr = cerr
		}
	}

	return ferr
}
