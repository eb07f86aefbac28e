// SPDX-License-Identifier: MPL-2.0

package builtin

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/invowk/coreutils/internal/config"
)

type runResult struct {
	stdout string
	stderr string
	code   int
}

// runCommand runs cmd through Main with in-memory streams rooted at dir.
func runCommand(t *testing.T, cmd Command, cfg *config.Config, dir, stdin string, args ...string) runResult {
	t.Helper()

	var stdout, stderr bytes.Buffer
	ctx := WithHandlerContext(t.Context(), &HandlerContext{
		Stdin:     strings.NewReader(stdin),
		Stdout:    &stdout,
		Stderr:    &stderr,
		Dir:       dir,
		LookupEnv: os.LookupEnv,
		Config:    cfg,
	})
	code := Main(ctx, cmd, append([]string{cmd.Name()}, args...))
	return runResult{stdout: stdout.String(), stderr: stderr.String(), code: code}
}

func numberedLines(n int) string {
	var b strings.Builder
	for i := 1; i <= n; i++ {
		b.WriteString("line ")
		b.WriteString(itoa(i))
		b.WriteByte('\n')
	}
	return b.String()
}

func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	var digits []byte
	for ; i > 0; i /= 10 {
		digits = append([]byte{byte('0' + i%10)}, digits...)
	}
	return string(digits)
}
