// SPDX-License-Identifier: MPL-2.0

package scan

import "io"

// minRingAlloc is the first backing allocation of a byteRing. Storage then
// doubles on demand up to the ring's limit, so a huge withhold count costs
// nothing until the input is actually that long.
const minRingAlloc = 4 * 1024

// byteRing is a FIFO holding the most recent bytes of a stream, never more
// than limit of them. Pushing past the limit evicts the oldest bytes to the
// sink in order.
type byteRing struct {
	buf   []byte
	head  int
	size  int
	limit int
}

func newByteRing(limit int) *byteRing {
	return &byteRing{limit: limit}
}

// Len returns the number of withheld bytes.
func (r *byteRing) Len() int {
	return r.size
}

// push appends p, first writing to dst whatever no longer fits. The result is
// the same as pushing p one byte at a time and emitting the oldest byte
// whenever the ring is full.
func (r *byteRing) push(cur *Cursor, dst io.Writer, p []byte) error {
	if over := r.size + len(p) - r.limit; over > 0 {
		k := min(over, r.size)
		if err := r.drain(cur, dst, k); err != nil {
			return err
		}
		if over -= k; over > 0 {
			// p alone is longer than the ring: its head passes straight through.
			if err := cur.write(dst, p[:over]); err != nil {
				return err
			}
			p = p[over:]
		}
	}
	r.append(p)
	return nil
}

// drain writes the k oldest bytes to dst and drops them.
func (r *byteRing) drain(cur *Cursor, dst io.Writer, k int) error {
	if k == 0 {
		return nil
	}
	first := min(k, len(r.buf)-r.head)
	if err := cur.write(dst, r.buf[r.head:r.head+first]); err != nil {
		return err
	}
	if first < k {
		if err := cur.write(dst, r.buf[:k-first]); err != nil {
			return err
		}
	}
	r.head = (r.head + k) % len(r.buf)
	r.size -= k
	return nil
}

// append stores p after the newest byte. The caller guarantees that the ring
// stays within its limit.
func (r *byteRing) append(p []byte) {
	if len(p) == 0 {
		return
	}
	if need := r.size + len(p); need > len(r.buf) {
		r.grow(need)
	}
	tail := (r.head + r.size) % len(r.buf)
	n := copy(r.buf[tail:], p)
	copy(r.buf, p[n:])
	r.size += len(p)
}

// grow reallocates the backing array to hold at least need bytes and
// linearizes the contents.
func (r *byteRing) grow(need int) {
	size := max(need, minRingAlloc, 2*len(r.buf))
	size = min(size, r.limit)

	buf := make([]byte, size)
	if r.size > 0 {
		n := copy(buf, r.buf[r.head:min(r.head+r.size, len(r.buf))])
		copy(buf[n:], r.buf[:r.size-n])
	}
	r.buf = buf
	r.head = 0
}
