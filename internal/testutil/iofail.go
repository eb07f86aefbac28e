// SPDX-License-Identifier: MPL-2.0

package testutil

type (
	// FailingWriter accepts the first Limit bytes and then fails every
	// write with Err.
	FailingWriter struct {
		Err     error
		Limit   int
		written int
	}

	// FailingReader fails every read with Err.
	FailingReader struct {
		Err error
	}
)

// Write implements io.Writer.
func (w *FailingWriter) Write(p []byte) (int, error) {
	room := max(w.Limit-w.written, 0)
	if room >= len(p) {
		w.written += len(p)
		return len(p), nil
	}
	w.written += room
	return room, w.Err
}

// Written returns the number of bytes accepted.
func (w *FailingWriter) Written() int {
	return w.written
}

// Read implements io.Reader.
func (r FailingReader) Read([]byte) (int, error) {
	return 0, r.Err
}
