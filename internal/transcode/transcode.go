// SPDX-License-Identifier: MPL-2.0

// Package transcode implements the output transformations of cat: line
// numbering, end-of-line markers, visible tabs and control characters, and
// squeezing of repeated blank lines.
//
// A Transcoder is an io.Writer. Its state (line start, previous line blank,
// line counter) lives across Write calls until Reset, so a source may arrive
// in any number of chunks.
package transcode

import (
	"bufio"
	"io"
	"strconv"
)

// numberWidth is the width of the right-justified line number field.
const numberWidth = 6

type (
	// Options selects the transformations applied by a Transcoder.
	Options struct {
		// Number numbers every output line.
		Number bool
		// NumberNonblank numbers non-blank lines only. It overrides Number.
		NumberNonblank bool
		// SqueezeBlank suppresses blank lines that follow a blank line.
		SqueezeBlank bool
		// ShowEnds writes '$' before every newline.
		ShowEnds bool
		// ShowTabs writes TAB as "^I".
		ShowTabs bool
		// ShowNonprinting uses ^ and M- notation for control and high bytes.
		ShowNonprinting bool
	}

	// Transcoder applies Options to everything written to it.
	Transcoder struct {
		out       *bufio.Writer
		sink      *sinkWriter
		opts      Options
		lineStart bool
		prevBlank bool
		line      uint64
		numBuf    []byte
		visBuf    [4]byte
	}

	// sinkWriter remembers the first error of the underlying writer.
	sinkWriter struct {
		w   io.Writer
		err error
	}
)

func (s *sinkWriter) Write(p []byte) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	n, err := s.w.Write(p)
	if err != nil {
		s.err = err
	}
	return n, err
}

// Plain reports whether the options leave every byte untouched, in which case
// callers may copy input straight to the output.
func (o Options) Plain() bool {
	return o == Options{}
}

// New creates a Transcoder writing to w.
func New(w io.Writer, opts Options) *Transcoder {
	sink := &sinkWriter{w: w}
	return &Transcoder{
		out:       bufio.NewWriter(sink),
		sink:      sink,
		opts:      opts,
		lineStart: true,
	}
}

// Reset starts a new source: the next byte begins line 1 and no blank line
// precedes it. Buffered output is kept.
func (t *Transcoder) Reset() {
	t.lineStart = true
	t.prevBlank = false
	t.line = 0
}

// Lines returns the number of line numbers emitted so far.
func (t *Transcoder) Lines() uint64 {
	return t.line
}

// Flush writes any buffered output to the underlying writer.
func (t *Transcoder) Flush() error {
	return t.out.Flush()
}

// Write transcodes p. It always consumes all of p unless the underlying
// writer fails.
func (t *Transcoder) Write(p []byte) (int, error) {
	for i, c := range p {
		if c == '\n' {
			t.newline()
		} else {
			t.content(c)
		}
		if t.sink.err != nil {
			return i, t.sink.err
		}
	}
	return len(p), nil
}

func (t *Transcoder) newline() {
	blank := t.lineStart
	if blank {
		if t.opts.SqueezeBlank && t.prevBlank {
			return
		}
		if t.opts.Number && !t.opts.NumberNonblank {
			t.writeNumber()
		}
	}
	if t.opts.ShowEnds {
		t.out.WriteByte('$')
	}
	t.out.WriteByte('\n')
	t.lineStart = true
	t.prevBlank = blank
}

func (t *Transcoder) content(c byte) {
	if t.lineStart {
		if t.opts.Number || t.opts.NumberNonblank {
			t.writeNumber()
		}
		t.lineStart = false
		t.prevBlank = false
	}

	switch {
	case t.opts.ShowNonprinting:
		t.out.Write(AppendVisible(t.visBuf[:0], c, t.opts.ShowTabs))
	case c == '\t' && t.opts.ShowTabs:
		t.out.WriteString("^I")
	default:
		t.out.WriteByte(c)
	}
}

func (t *Transcoder) writeNumber() {
	t.line++
	t.numBuf = strconv.AppendUint(t.numBuf[:0], t.line, 10)
	for range numberWidth - len(t.numBuf) {
		t.out.WriteByte(' ')
	}
	t.out.Write(t.numBuf)
	t.out.WriteByte('\t')
}

// AppendVisible appends the visible notation of c to dst: "^X" for control
// bytes, "^?" for DEL, and c itself otherwise. A byte with the high bit set
// becomes "M-" followed by the notation of c-128. TAB is written as "^I" only
// when showTabs is set and LF is always written as-is, with or without the
// "M-" prefix.
func AppendVisible(dst []byte, c byte, showTabs bool) []byte {
	if c >= 128 {
		dst = append(dst, 'M', '-')
		c -= 128
	}
	switch {
	case c == '\t' && showTabs:
		return append(dst, '^', 'I')
	case c == '\t' || c == '\n':
		return append(dst, c)
	case c < 32:
		return append(dst, '^', c+64)
	case c == 127:
		return append(dst, '^', '?')
	default:
		return append(dst, c)
	}
}
