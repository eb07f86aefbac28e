// SPDX-License-Identifier: MPL-2.0

package builtin

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/invowk/coreutils/internal/issue"
)

// ExitError signals a non-zero exit code without forcing os.Exit inside a
// command. An ExitError without Err exits silently.
type ExitError struct {
	Code int
	Err  error
}

// Error returns the error message for ExitError.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// Unwrap returns the underlying error, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// Main runs cmd with args, reports its error on the HandlerContext's
// standard error and returns the exit status.
func Main(ctx context.Context, cmd Command, args []string) int {
	err := cmd.Run(ctx, args)
	hc := GetHandlerContext(ctx)
	stderr := hc.Stderr
	if stderr == nil {
		stderr = io.Discard
	}
	return Report(stderr, cmd.Name(), err)
}

// Report writes err as "prog: message" lines to w and returns the exit
// status it stands for: 0 for nil, the code of an ExitError, 1 otherwise.
// Joined errors are reported one per line, in order. Usage errors are
// followed by a pointer to --help.
func Report(w io.Writer, prog string, err error) int {
	if err == nil {
		return 0
	}

	code := 1
	var ee *ExitError
	if errors.As(err, &ee) {
		code = ee.Code
		if ee.Err == nil {
			return code
		}
		err = ee.Err
	}

	for _, e := range flatten(err) {
		fmt.Fprintf(w, "%s: %s\n", prog, e.Error())
		if errors.Is(e, issue.ErrUsage) {
			fmt.Fprintf(w, "Try '%s --help' for more information.\n", prog)
		}
	}
	return code
}

// flatten expands errors.Join results.
func flatten(err error) []error {
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return []error{err}
	}
	var out []error
	for _, e := range joined.Unwrap() {
		out = append(out, flatten(e)...)
	}
	return out
}
