// SPDX-License-Identifier: MPL-2.0

// Package scan copies one input source to a sink under a truncation policy.
//
// Every policy reads the source in fixed-size chunks, so memory use is bounded
// by the chunk size plus whatever the policy must withhold: nothing for the
// "first N" policies, N bytes for AllButLastBytes and the last N records for
// AllButLastLines.
package scan

import (
	"bytes"
	"errors"
	"io"
	"math"
)

// DefaultBufferSize is the read chunk size used when none is configured.
const DefaultBufferSize = 8 * 1024

const (
	// OpRead marks an Error raised while reading the source.
	OpRead = "read"
	// OpWrite marks an Error raised while writing to the sink.
	OpWrite = "write"
)

var (
	// ErrRead matches every Error with Op OpRead.
	ErrRead = errors.New("read error")
	// ErrWrite matches every Error with Op OpWrite.
	ErrWrite = errors.New("write error")
)

type (
	// Scanner applies truncation policies. A Scanner holds no per-source
	// state and may be reused for any number of sources.
	Scanner struct {
		bufSize int
	}

	// Option configures a Scanner.
	Option func(*Scanner)

	// Error is an I/O failure during a scan. Err is the error returned by
	// the source or the sink.
	Error struct {
		Op  string
		Err error
	}

	// Cursor reports what a scan wrote to the sink.
	Cursor struct {
		// Bytes is the number of bytes written.
		Bytes uint64
		// Delims is the number of delimiter bytes among the bytes written.
		// It is only maintained by the line policies.
		Delims uint64
	}
)

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Op + " error: " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches ErrRead or ErrWrite according to Op.
func (e *Error) Is(target error) bool {
	return target == ErrRead && e.Op == OpRead || target == ErrWrite && e.Op == OpWrite
}

// WithBufferSize sets the read chunk size. Non-positive sizes are ignored.
func WithBufferSize(n int) Option {
	return func(s *Scanner) {
		if n > 0 {
			s.bufSize = n
		}
	}
}

// New creates a Scanner.
func New(opts ...Option) *Scanner {
	s := &Scanner{bufSize: DefaultBufferSize}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// BufferSize returns the configured read chunk size.
func (s *Scanner) BufferSize() int {
	return s.bufSize
}

// Copy writes the whole source to dst.
func (s *Scanner) Copy(dst io.Writer, src io.Reader) (Cursor, error) {
	var cur Cursor
	err := s.each(src, func(chunk []byte) (bool, error) {
		return false, cur.write(dst, chunk)
	})
	return cur, err
}

// FirstLines copies src up to and including the n-th delimiter. Fewer than n
// delimiters means the whole source is copied. n == 0 writes nothing.
func (s *Scanner) FirstLines(dst io.Writer, src io.Reader, n uint64, delim byte) (Cursor, error) {
	var cur Cursor
	if n == 0 {
		return cur, nil
	}

	err := s.each(src, func(chunk []byte) (bool, error) {
		end := len(chunk)
		done := false
		for off := 0; off < len(chunk); {
			i := bytes.IndexByte(chunk[off:], delim)
			if i < 0 {
				break
			}
			off += i + 1
			cur.Delims++
			if cur.Delims == n {
				end = off
				done = true
				break
			}
		}
		return done, cur.write(dst, chunk[:end])
	})
	return cur, err
}

// FirstBytes copies at most n bytes of src. With stopAtNUL the copy also ends
// right after the first NUL byte written.
func (s *Scanner) FirstBytes(dst io.Writer, src io.Reader, n uint64, stopAtNUL bool) (Cursor, error) {
	var cur Cursor
	if n == 0 {
		return cur, nil
	}

	err := s.each(src, func(chunk []byte) (bool, error) {
		take := len(chunk)
		if remaining := n - cur.Bytes; uint64(take) >= remaining {
			take = int(remaining)
		}
		if stopAtNUL {
			if i := bytes.IndexByte(chunk[:take], 0); i >= 0 {
				take = i + 1
				return true, cur.write(dst, chunk[:take])
			}
		}
		if err := cur.write(dst, chunk[:take]); err != nil {
			return true, err
		}
		return cur.Bytes == n, nil
	})
	return cur, err
}

// AllButLastBytes copies all of src except its final n bytes. When the source
// is shorter than n nothing is written.
func (s *Scanner) AllButLastBytes(dst io.Writer, src io.Reader, n uint64) (Cursor, error) {
	if n == 0 {
		return s.Copy(dst, src)
	}

	var cur Cursor
	ring := newByteRing(clampInt(n))
	err := s.each(src, func(chunk []byte) (bool, error) {
		return false, ring.push(&cur, dst, chunk)
	})
	return cur, err
}

// AllButLastLines copies all of src except its final n records. A trailing
// record without a delimiter counts as a record. The result is exact for any
// distribution of record lengths.
func (s *Scanner) AllButLastLines(dst io.Writer, src io.Reader, n uint64, delim byte) (Cursor, error) {
	if n == 0 {
		return s.Copy(dst, src)
	}

	var cur Cursor
	win := newLineWindow(clampInt(n), delim)
	err := s.each(src, func(chunk []byte) (bool, error) {
		return false, win.push(&cur, dst, chunk)
	})
	if err != nil {
		return cur, err
	}
	return cur, win.finish(&cur, dst)
}

// each feeds fn successive chunks of src until fn reports done, src is
// exhausted, or an error occurs. Data returned together with a read error is
// processed before the error is reported.
func (s *Scanner) each(src io.Reader, fn func(chunk []byte) (done bool, err error)) error {
	buf := make([]byte, s.bufSize)
	for {
		n, rerr := src.Read(buf)
		if n > 0 {
			done, err := fn(buf[:n])
			if err != nil {
				return err
			}
			if done {
				return nil
			}
		}
		if rerr == io.EOF {
			return nil
		}
		if rerr != nil {
			return &Error{Op: OpRead, Err: rerr}
		}
	}
}

// write sends p to dst and accounts for it.
func (c *Cursor) write(dst io.Writer, p []byte) error {
	if len(p) == 0 {
		return nil
	}
	n, err := dst.Write(p)
	c.Bytes += uint64(n)
	if err != nil {
		return &Error{Op: OpWrite, Err: err}
	}
	return nil
}

// countDelims adds the delimiters in p to the cursor.
func (c *Cursor) countDelims(p []byte, delim byte) {
	c.Delims += uint64(bytes.Count(p, []byte{delim}))
}

func clampInt(n uint64) int {
	if n > math.MaxInt {
		return math.MaxInt
	}
	return int(n)
}
