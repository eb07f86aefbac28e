// SPDX-License-Identifier: MPL-2.0

package builtin

import (
	"bytes"
	"context"
	"errors"
	"os"
	"testing"

	"github.com/invowk/coreutils/internal/issue"
)

func TestReport(t *testing.T) {
	t.Parallel()

	missing := &issue.IOError{Path: "nofile", Err: &os.PathError{Op: "open", Path: "nofile", Err: os.ErrNotExist}}

	tests := []struct {
		name   string
		err    error
		code   int
		output string
	}{
		{"nil", nil, 0, ""},
		{"plain error", errors.New("boom"), 1, "prog: boom\n"},
		{"silent exit", &ExitError{Code: 3}, 3, ""},
		{"exit with message", &ExitError{Code: 2, Err: errors.New("bad")}, 2, "prog: bad\n"},
		{"io error", missing, 1, "prog: nofile: File does not exist\n"},
		{
			"usage error",
			issue.NewUnknownOption("-x"),
			1,
			"prog: unknown option -- 'x'\nTry 'prog --help' for more information.\n",
		},
		{
			"joined",
			errors.Join(errors.New("first"), errors.Join(errors.New("second"), errors.New("third"))),
			1,
			"prog: first\nprog: second\nprog: third\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			if code := Report(&buf, "prog", tt.err); code != tt.code {
				t.Errorf("Report() = %d, want %d", code, tt.code)
			}
			if buf.String() != tt.output {
				t.Errorf("output = %q, want %q", buf.String(), tt.output)
			}
		})
	}
}

func TestMain_ReportsOnHandlerStderr(t *testing.T) {
	t.Parallel()

	cmd := newMockCommand("mock")
	cmd.runFn = func(context.Context, []string) error {
		return &ExitError{Code: 4, Err: errors.New("went wrong")}
	}

	var stderr bytes.Buffer
	ctx := WithHandlerContext(t.Context(), &HandlerContext{Stderr: &stderr})
	if code := Main(ctx, cmd, []string{"mock"}); code != 4 {
		t.Errorf("Main() = %d, want 4", code)
	}
	if got, want := stderr.String(), "mock: went wrong\n"; got != want {
		t.Errorf("stderr = %q, want %q", got, want)
	}
}

func TestExitError(t *testing.T) {
	t.Parallel()

	if got := (&ExitError{Code: 5}).Error(); got != "exit status 5" {
		t.Errorf("Error() = %q", got)
	}
	cause := errors.New("cause")
	if !errors.Is(&ExitError{Code: 1, Err: cause}, cause) {
		t.Error("ExitError should unwrap to its cause")
	}
}
