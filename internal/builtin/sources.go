// SPDX-License-Identifier: MPL-2.0

package builtin

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/invowk/coreutils/internal/issue"
	"github.com/invowk/coreutils/internal/scan"
)

const (
	stdinOperand = "-"
	stdinName    = "standard input"
	stdoutName   = "standard output"
)

type (
	// source is one opened input.
	source struct {
		// operand is the argument as typed.
		operand string
		// display names the source in headers and messages.
		display string
		r       io.Reader
	}

	// flusher is a buffered sink.
	flusher interface {
		io.Writer
		Flush() error
	}

	// unbuffered adapts a plain writer to flusher.
	unbuffered struct {
		io.Writer
	}
)

func (unbuffered) Flush() error { return nil }

// forEachSource calls fn for each operand in order; no operands means
// standard input, as does "-". The first failure ends the loop unless
// keepGoing is set, in which case every source is attempted and all
// failures are returned joined. A failure to write standard output always
// ends the loop.
func forEachSource(ctx context.Context, hc *HandlerContext, operands []string, keepGoing bool, fn func(src source) error) error {
	if len(operands) == 0 {
		operands = []string{stdinOperand}
	}

	var errs []error
	for _, operand := range operands {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		err := withSource(hc, operand, fn)
		if err == nil {
			continue
		}
		errs = append(errs, err)
		if !keepGoing || isStdoutFailure(err) {
			break
		}
	}
	return errors.Join(errs...)
}

// withSource opens operand, resolving relative paths against the working
// directory, and hands it to fn. A close failure is reported when fn
// succeeded.
func withSource(hc *HandlerContext, operand string, fn func(src source) error) (err error) {
	if operand == stdinOperand {
		return fn(source{operand: operand, display: stdinName, r: hc.stdin()})
	}

	path := operand
	if !filepath.IsAbs(path) && hc.Dir != "" {
		path = filepath.Join(hc.Dir, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return &issue.IOError{Path: operand, Err: err}
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = &issue.IOError{Path: operand, Err: closeErr}
		}
	}()

	return fn(source{operand: operand, display: operand, r: f})
}

// ioFailure tags a scan error with the path it concerns: the source for
// read failures, standard output for write failures.
func ioFailure(display string, err error) error {
	if err == nil {
		return nil
	}
	var se *scan.Error
	if errors.As(err, &se) {
		if se.Op == scan.OpWrite {
			return &issue.IOError{Path: stdoutName, Err: se.Err}
		}
		return &issue.IOError{Path: display, Err: se.Err}
	}
	return &issue.IOError{Path: display, Err: err}
}

func isStdoutFailure(err error) bool {
	var ioe *issue.IOError
	return errors.As(err, &ioe) && ioe.Path == stdoutName
}

// writeStdout tags a failure writing help or version text.
func writeStdout(err error) error {
	if err == nil {
		return nil
	}
	return &issue.IOError{Path: stdoutName, Err: err}
}

// finish flushes sink and adds its failure to err, unless standard output
// already failed.
func finish(sink flusher, err error) error {
	if ferr := sink.Flush(); ferr != nil && !isStdoutFailure(err) {
		return errors.Join(err, &issue.IOError{Path: stdoutName, Err: ferr})
	}
	return err
}
