// SPDX-License-Identifier: MPL-2.0

package main

import (
	"context"
	"io"

	"github.com/invowk/coreutils/internal/app"
	"github.com/invowk/coreutils/internal/builtin"
	"github.com/invowk/coreutils/internal/manual"

	"github.com/spf13/cobra"
)

const rootName = "coreutils"

// newRootCommand builds the command tree. Every registered utility becomes a
// subcommand that receives its arguments untouched.
func newRootCommand(a *app.App) *cobra.Command {
	root := &cobra.Command{
		Use:   rootName,
		Short: "GNU-compatible cat, head, true and false",
		Long: TitleStyle.Render(rootName) + SubtitleStyle.Render(" - GNU-compatible cat, head, true and false") + `

Each utility can be run as a subcommand, or directly by installing a link
to this binary under the utility's name.

` + SubtitleStyle.Render("Examples:") + `
  coreutils head -n 5 notes.txt     Print the first five lines
  coreutils cat -n a.txt b.txt      Number the lines of two files
  coreutils sh -c 'cat f | head'    Run a script with the utilities built in
  coreutils man head                Read the head manual page`,
		Version:       builtin.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	for _, name := range a.Registry.Names() {
		root.AddCommand(newUtilityCommand(a, name))
	}
	root.AddCommand(newListCommand(a), newManCommand(), newShCommand(a))
	return root
}

// newUtilityCommand wraps one utility. Flag parsing is left to the utility.
func newUtilityCommand(a *app.App, name string) *cobra.Command {
	short := name
	if page := manual.Get(name); page != nil {
		short = page.Summary()
	}
	return &cobra.Command{
		Use:                name + " [ARG]...",
		Short:              short,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if code := a.Run(cmd.Context(), handlerContext(cmd), name, args); code != 0 {
				return &builtin.ExitError{Code: code}
			}
			return nil
		},
	}
}

// handlerContext binds the process environment to the command's streams.
func handlerContext(cmd *cobra.Command) *builtin.HandlerContext {
	hc := builtin.OSHandlerContext()
	hc.Stdin = cmd.InOrStdin()
	hc.Stdout = cmd.OutOrStdout()
	hc.Stderr = cmd.ErrOrStderr()
	return hc
}

// execute runs the command tree with args and returns the exit status.
// Utilities report their own failures; everything else is reported here.
func execute(ctx context.Context, a *app.App, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	root := newRootCommand(a)
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	return builtin.Report(stderr, rootName, root.ExecuteContext(ctx))
}
