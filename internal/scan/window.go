// SPDX-License-Identifier: MPL-2.0

package scan

import (
	"bytes"
	"io"
)

// lineWindow withholds the last keep records of a stream.
//
// Every position is a stream offset. buf holds the stream from offset base
// on; bytes before start have already been written. ends[head:] are the
// offsets just past each delimiter not yet emitted, oldest first. Both
// slices are compacted only once their consumed prefix is larger than what
// remains, so each byte and each delimiter is moved a bounded number of
// times.
type lineWindow struct {
	buf   []byte
	base  int
	start int
	ends  []int
	head  int
	keep  int
	delim byte
}

func newLineWindow(keep int, delim byte) *lineWindow {
	return &lineWindow{keep: keep, delim: delim}
}

// live returns the number of complete records still withheld.
func (w *lineWindow) live() int {
	return len(w.ends) - w.head
}

// tail returns the stream offset just past the last byte pushed.
func (w *lineWindow) tail() int {
	return w.base + len(w.buf)
}

// push appends p and emits every complete record that has at least keep
// complete records after it.
func (w *lineWindow) push(cur *Cursor, dst io.Writer, p []byte) error {
	pos := w.tail()
	w.buf = append(w.buf, p...)
	for off := 0; ; {
		i := bytes.IndexByte(p[off:], w.delim)
		if i < 0 {
			break
		}
		off += i + 1
		w.ends = append(w.ends, pos+off)
	}

	if excess := w.live() - w.keep; excess > 0 {
		return w.emit(cur, dst, excess)
	}
	return nil
}

// finish handles end of input. An unterminated final record is one of the
// withheld records, so when it exists alongside keep complete ones the
// oldest complete record is still owed to the sink.
func (w *lineWindow) finish(cur *Cursor, dst io.Writer) error {
	end := w.tail()
	partial := end > w.start && (w.live() == 0 || w.ends[len(w.ends)-1] < end)
	if !partial {
		return nil
	}
	if excess := w.live() + 1 - w.keep; excess > 0 {
		return w.emit(cur, dst, excess)
	}
	return nil
}

// emit writes the k oldest complete records and drops them from the window.
func (w *lineWindow) emit(cur *Cursor, dst io.Writer, k int) error {
	cut := w.ends[w.head+k-1]
	if err := cur.write(dst, w.buf[w.start-w.base:cut-w.base]); err != nil {
		return err
	}
	cur.Delims += uint64(k)

	w.start = cut
	w.head += k
	w.compact()
	return nil
}

// compact reclaims the consumed prefixes of buf and ends once they outgrow
// the live data.
func (w *lineWindow) compact() {
	if off := w.start - w.base; off > len(w.buf)-off {
		n := copy(w.buf, w.buf[off:])
		w.buf = w.buf[:n]
		w.base = w.start
	}
	if w.head > w.live() {
		n := copy(w.ends, w.ends[w.head:])
		w.ends = w.ends[:n]
		w.head = 0
	}
}
