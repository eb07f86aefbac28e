// SPDX-License-Identifier: MPL-2.0

package scan

import (
	"bytes"
	"errors"
	"io"
	"math"
	"math/rand/v2"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/invowk/coreutils/internal/testutil"
)

func TestScanner_FirstLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		n     uint64
		delim byte
		want  string
	}{
		{name: "zero lines", input: "a\nb\n", n: 0, delim: '\n', want: ""},
		{name: "fewer lines than n", input: "a\nb\n", n: 10, delim: '\n', want: "a\nb\n"},
		{name: "exact", input: "a\nb\nc\n", n: 2, delim: '\n', want: "a\nb\n"},
		{name: "unterminated tail kept", input: "a\nb", n: 5, delim: '\n', want: "a\nb"},
		{name: "empty input", input: "", n: 3, delim: '\n', want: ""},
		{name: "nul delimited", input: "a\x00b\x00c\x00", n: 2, delim: 0, want: "a\x00b\x00"},
		{name: "newlines inside nul records", input: "a\nb\x00\nc\nd", n: 10, delim: 0, want: "a\nb\x00\nc\nd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			cur, err := New().FirstLines(&out, strings.NewReader(tt.input), tt.n, tt.delim)
			if err != nil {
				t.Fatalf("FirstLines() unexpected error: %v", err)
			}
			if out.String() != tt.want {
				t.Errorf("FirstLines() wrote %q, want %q", out.String(), tt.want)
			}
			if cur.Bytes != uint64(len(tt.want)) {
				t.Errorf("Cursor.Bytes = %d, want %d", cur.Bytes, len(tt.want))
			}
		})
	}
}

func TestScanner_FirstLines_TenOfEleven(t *testing.T) {
	t.Parallel()

	var in strings.Builder
	for i := range 11 {
		in.WriteString(strings.Repeat("x", i) + "\n")
	}
	input := in.String()
	want := input[:strings.LastIndex(input, "xxxxxxxxxx\n")]

	// A one-byte chunk size forces every record across chunk boundaries.
	for _, size := range []int{1, 3, DefaultBufferSize} {
		var out bytes.Buffer
		cur, err := New(WithBufferSize(size)).FirstLines(&out, strings.NewReader(input), 10, '\n')
		if err != nil {
			t.Fatalf("FirstLines() unexpected error: %v", err)
		}
		if out.String() != want {
			t.Errorf("buffer %d: FirstLines() wrote %q, want %q", size, out.String(), want)
		}
		if cur.Delims != 10 {
			t.Errorf("buffer %d: Cursor.Delims = %d, want 10", size, cur.Delims)
		}
	}
}

func TestScanner_FirstBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		n         uint64
		stopAtNUL bool
		want      string
	}{
		{name: "zero", input: "abc", n: 0, want: ""},
		{name: "prefix", input: "abcdef\n", n: 4, want: "abcd"},
		{name: "longer than input", input: "abc", n: 100, want: "abc"},
		{name: "max count", input: "abc", n: math.MaxUint64, want: "abc"},
		{name: "stop at nul", input: "ab\x00cd", n: 10, stopAtNUL: true, want: "ab\x00"},
		{name: "nul ignored without flag", input: "ab\x00cd", n: 10, want: "ab\x00cd"},
		{name: "limit before nul", input: "ab\x00cd", n: 2, stopAtNUL: true, want: "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			_, err := New(WithBufferSize(2)).FirstBytes(&out, strings.NewReader(tt.input), tt.n, tt.stopAtNUL)
			if err != nil {
				t.Fatalf("FirstBytes() unexpected error: %v", err)
			}
			if out.String() != tt.want {
				t.Errorf("FirstBytes() wrote %q, want %q", out.String(), tt.want)
			}
		})
	}
}

func TestScanner_FirstBytes_PrefixProperty(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(1, 2))
	for range 200 {
		input := randomBytes(rng, rng.IntN(300))
		n := uint64(rng.IntN(400))
		var out bytes.Buffer
		if _, err := New(WithBufferSize(1+rng.IntN(64))).FirstBytes(&out, bytes.NewReader(input), n, false); err != nil {
			t.Fatalf("FirstBytes() unexpected error: %v", err)
		}
		want := input[:min(uint64(len(input)), n)]
		if !bytes.Equal(out.Bytes(), want) {
			t.Fatalf("FirstBytes(len=%d, n=%d) = %q, want %q", len(input), n, out.Bytes(), want)
		}
	}
}

func TestScanner_AllButLastBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		n     uint64
		want  string
	}{
		{name: "zero copies everything", input: "abcdef", n: 0, want: "abcdef"},
		{name: "withhold two", input: "abcdef", n: 2, want: "abcd"},
		{name: "withhold all", input: "abc", n: 3, want: ""},
		{name: "withhold more than input", input: "abc", n: 10, want: ""},
		{name: "huge count", input: "abc", n: math.MaxUint64, want: ""},
		{name: "empty input", input: "", n: 1, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			cur, err := New(WithBufferSize(4)).AllButLastBytes(&out, strings.NewReader(tt.input), tt.n)
			if err != nil {
				t.Fatalf("AllButLastBytes() unexpected error: %v", err)
			}
			if out.String() != tt.want {
				t.Errorf("AllButLastBytes() wrote %q, want %q", out.String(), tt.want)
			}
			if cur.Bytes != uint64(len(tt.want)) {
				t.Errorf("Cursor.Bytes = %d, want %d", cur.Bytes, len(tt.want))
			}
		})
	}
}

func TestScanner_AllButLastBytes_Property(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(3, 4))
	for range 300 {
		input := randomBytes(rng, rng.IntN(10_000))
		tail := rng.IntN(len(input) + 50)
		var out bytes.Buffer
		s := New(WithBufferSize(1 + rng.IntN(2048)))
		if _, err := s.AllButLastBytes(&out, bytes.NewReader(input), uint64(tail)); err != nil {
			t.Fatalf("AllButLastBytes() unexpected error: %v", err)
		}
		var want []byte
		if tail < len(input) {
			want = input[:len(input)-tail]
		}
		if !bytes.Equal(out.Bytes(), want) {
			t.Fatalf("AllButLastBytes(len=%d, tail=%d, buf=%d) wrote %d bytes, want %d",
				len(input), tail, s.BufferSize(), out.Len(), len(want))
		}
	}
}

func TestScanner_AllButLastLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		n     uint64
		delim byte
		want  string
	}{
		{name: "zero copies everything", input: "a\nb\n", n: 0, delim: '\n', want: "a\nb\n"},
		{name: "withhold one", input: "a\nb\nc\n", n: 1, delim: '\n', want: "a\nb\n"},
		{name: "withhold all", input: "a\nb\n", n: 2, delim: '\n', want: ""},
		{name: "withhold more than input", input: "a\nb\n", n: 5, delim: '\n', want: ""},
		{name: "unterminated tail is a record", input: "a\nb\nc", n: 1, delim: '\n', want: "a\nb\n"},
		{name: "unterminated only record", input: "abc", n: 1, delim: '\n', want: ""},
		{name: "variable lengths", input: "short\na much longer line here\nx\n", n: 1, delim: '\n', want: "short\na much longer line here\n"},
		{name: "blank records", input: "\n\n\n", n: 2, delim: '\n', want: "\n"},
		{name: "nul delimited", input: "a\x00b\x00c\x00", n: 1, delim: 0, want: "a\x00b\x00"},
		{name: "huge count", input: "a\nb\n", n: math.MaxUint64, delim: '\n', want: ""},
		{name: "empty", input: "", n: 3, delim: '\n', want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			for _, size := range []int{1, 2, DefaultBufferSize} {
				var out bytes.Buffer
				_, err := New(WithBufferSize(size)).AllButLastLines(&out, strings.NewReader(tt.input), tt.n, tt.delim)
				if err != nil {
					t.Fatalf("AllButLastLines() unexpected error: %v", err)
				}
				if out.String() != tt.want {
					t.Errorf("buffer %d: AllButLastLines() wrote %q, want %q", size, out.String(), tt.want)
				}
			}
		})
	}
}

func TestScanner_AllButLastLines_Property(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(5, 6))
	for range 300 {
		records := rng.IntN(60)
		var lines []string
		for range records {
			// Record lengths vary from empty to far larger than the withhold count.
			lines = append(lines, strings.Repeat("y", rng.IntN(500))+"\n")
		}
		input := strings.Join(lines, "")
		if rng.IntN(3) == 0 {
			input += "unterminated"
			lines = append(lines, "unterminated")
		}

		tail := rng.IntN(len(lines) + 3)
		var out bytes.Buffer
		cur, err := New(WithBufferSize(1+rng.IntN(700))).AllButLastLines(&out, strings.NewReader(input), uint64(tail), '\n')
		if err != nil {
			t.Fatalf("AllButLastLines() unexpected error: %v", err)
		}

		keep := max(len(lines)-tail, 0)
		want := strings.Join(lines[:keep], "")
		if out.String() != want {
			t.Fatalf("AllButLastLines(records=%d, tail=%d) wrote %d bytes, want %d", len(lines), tail, out.Len(), len(want))
		}
		if tail > 0 && cur.Delims != uint64(strings.Count(want, "\n")) {
			t.Fatalf("Cursor.Delims = %d, want %d", cur.Delims, strings.Count(want, "\n"))
		}
	}
}

func TestLineWindow_StaysBounded(t *testing.T) {
	t.Parallel()

	const (
		keep    = 1000
		lineLen = 10
		chunk   = 4096
		records = 200_000
	)
	line := []byte(strings.Repeat("z", lineLen-1) + "\n")
	input := bytes.Repeat(line, records)
	liveMax := (keep + 1) * lineLen

	var (
		out bytes.Buffer
		cur Cursor
	)
	w := newLineWindow(keep, '\n')
	for off := 0; off < len(input); off += chunk {
		if err := w.push(&cur, &out, input[off:min(off+chunk, len(input))]); err != nil {
			t.Fatalf("push() error = %v", err)
		}
		if len(w.buf) > 2*(liveMax+chunk) {
			t.Fatalf("buffer holds %d bytes at offset %d, want at most %d", len(w.buf), off, 2*(liveMax+chunk))
		}
		if len(w.ends) > 2*(keep+chunk) {
			t.Fatalf("deque holds %d offsets at offset %d, want at most %d", len(w.ends), off, 2*(keep+chunk))
		}
	}
	if err := w.finish(&cur, &out); err != nil {
		t.Fatalf("finish() error = %v", err)
	}

	want := len(input) - keep*lineLen
	if out.Len() != want || !bytes.Equal(out.Bytes(), input[:want]) {
		t.Errorf("wrote %d bytes, want the first %d", out.Len(), want)
	}
	if cur.Delims != records-keep {
		t.Errorf("Cursor.Delims = %d, want %d", cur.Delims, records-keep)
	}
}

func TestScanner_Copy(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	cur, err := New().Copy(&out, iotest.OneByteReader(strings.NewReader("hello\nworld")))
	if err != nil {
		t.Fatalf("Copy() unexpected error: %v", err)
	}
	if out.String() != "hello\nworld" {
		t.Errorf("Copy() wrote %q", out.String())
	}
	if cur.Bytes != 11 {
		t.Errorf("Cursor.Bytes = %d, want 11", cur.Bytes)
	}
}

func TestScanner_DataWithEOF(t *testing.T) {
	t.Parallel()

	// DataErrReader returns the final data together with io.EOF.
	var out bytes.Buffer
	_, err := New().FirstLines(&out, iotest.DataErrReader(strings.NewReader("a\nb\nc")), 10, '\n')
	if err != nil {
		t.Fatalf("FirstLines() unexpected error: %v", err)
	}
	if out.String() != "a\nb\nc" {
		t.Errorf("FirstLines() wrote %q", out.String())
	}
}

func TestScanner_ReadError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	src := io.MultiReader(strings.NewReader("abc"), iotest.ErrReader(boom))

	var out bytes.Buffer
	_, err := New().Copy(&out, src)
	if !errors.Is(err, ErrRead) || !errors.Is(err, boom) {
		t.Fatalf("Copy() error = %v, want ErrRead wrapping boom", err)
	}
	if out.String() != "abc" {
		t.Errorf("data before the error should be written, got %q", out.String())
	}
}

func TestScanner_WriteError(t *testing.T) {
	t.Parallel()

	policies := map[string]func(*Scanner, io.Writer, io.Reader) error{
		"copy": func(s *Scanner, w io.Writer, r io.Reader) error {
			_, err := s.Copy(w, r)
			return err
		},
		"first lines": func(s *Scanner, w io.Writer, r io.Reader) error {
			_, err := s.FirstLines(w, r, 1, '\n')
			return err
		},
		"first bytes": func(s *Scanner, w io.Writer, r io.Reader) error {
			_, err := s.FirstBytes(w, r, 2, false)
			return err
		},
		"all but last bytes": func(s *Scanner, w io.Writer, r io.Reader) error {
			_, err := s.AllButLastBytes(w, r, 1)
			return err
		},
		"all but last lines": func(s *Scanner, w io.Writer, r io.Reader) error {
			_, err := s.AllButLastLines(w, r, 1, '\n')
			return err
		},
	}

	for name, run := range policies {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			err := run(New(), &testutil.FailingWriter{Err: errors.New("disk full")}, strings.NewReader("a\nb\nc\n"))
			if !errors.Is(err, ErrWrite) {
				t.Errorf("error = %v, want ErrWrite", err)
			}
		})
	}
}

func TestWithBufferSize_IgnoresNonPositive(t *testing.T) {
	t.Parallel()

	if got := New(WithBufferSize(0)).BufferSize(); got != DefaultBufferSize {
		t.Errorf("BufferSize() = %d, want %d", got, DefaultBufferSize)
	}
	if got := New(WithBufferSize(-5)).BufferSize(); got != DefaultBufferSize {
		t.Errorf("BufferSize() = %d, want %d", got, DefaultBufferSize)
	}
}

func randomBytes(rng *rand.Rand, n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(rng.IntN(256))
	}
	return b
}

func TestError_Op(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	_, err := New().Copy(io.Discard, iotest.ErrReader(boom))

	var se *Error
	if !errors.As(err, &se) {
		t.Fatalf("error = %T, want *Error", err)
	}
	if se.Op != OpRead || se.Err != boom {
		t.Errorf("Error = %+v, want read of boom", se)
	}
	if errors.Is(err, ErrWrite) {
		t.Error("a read error should not match ErrWrite")
	}
	if got, want := err.Error(), "read error: boom"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
