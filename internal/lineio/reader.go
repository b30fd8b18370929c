// internal/lineio/reader.go
package lineio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// ErrNotSeekable is returned by Seek when the source cannot be repositioned.
var ErrNotSeekable = errors.New("source is not seekable")

// Reader reads newline-terminated records into caller-owned buffers,
// tracking the logical offset of the next unread byte.
type Reader struct {
	src io.Reader
	br  *bufio.Reader
	off int64
}

// NewReader wraps r. If r is also an io.Seeker, Seek can rewind it.
func NewReader(r io.Reader) *Reader {
	return &Reader{src: r, br: bufio.NewReader(r)}
}

// Offset returns the position of the next byte Read will return.
func (r *Reader) Offset() int64 {
	return r.off
}

// Read fills buf up to and including the first '\n', or until buf is full.
// It returns io.EOF only when no bytes were read; a partial record at end of
// input is returned with a nil error and terminated == false.
func (r *Reader) Read(buf []byte) (n int, terminated bool, err error) {
	for n < len(buf) {
		b, err := r.br.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) && n > 0 {
				return n, false, nil
			}
			return n, false, err
		}
		buf[n] = b
		n++
		r.off++
		if b == '\n' {
			return n, true, nil
		}
	}
	return n, false, nil
}

// Seek repositions the underlying source to off and drops buffered data.
func (r *Reader) Seek(off int64) error {
	s, ok := r.src.(io.Seeker)
	if !ok {
		return ErrNotSeekable
	}
	if _, err := s.Seek(off, io.SeekStart); err != nil {
		return fmt.Errorf("seeking to %d: %w", off, err)
	}
	r.br.Reset(r.src)
	r.off = off
	return nil
}
