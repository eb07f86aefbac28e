// SPDX-License-Identifier: MPL-2.0

// Command coreutils is the multi-call binary. Installed under the name of a
// utility (a link named cat, head, true or false) it behaves exactly like
// that utility; under any other name it offers them as subcommands next to
// list, man and sh.
package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/invowk/coreutils/internal/app"
	"github.com/invowk/coreutils/internal/builtin"
)

func main() {
	os.Exit(run(os.Args))
}

// run dispatches on the name the binary was invoked as.
func run(argv []string) int {
	name := strings.TrimSuffix(filepath.Base(argv[0]), ".exe")
	if _, ok := builtin.DefaultRegistry.Lookup(name); ok {
		return app.Main(name, argv[1:])
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return execute(ctx, app.New(app.Dependencies{}), argv[1:], os.Stdin, os.Stdout, os.Stderr)
}
