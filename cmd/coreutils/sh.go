// SPDX-License-Identifier: MPL-2.0

package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/invowk/coreutils/internal/app"
	"github.com/invowk/coreutils/internal/builtin"
	"github.com/invowk/coreutils/internal/issue"

	"github.com/spf13/cobra"
)

func newShCommand(a *app.App) *cobra.Command {
	var script string
	cmd := &cobra.Command{
		Use:   "sh [-c SCRIPT | FILE] [ARG]...",
		Short: "Run a POSIX shell script with the utilities as builtins",
		Long: `Run a POSIX shell script in which cat, head, true and false are builtins.

The script comes from -c, from FILE, or else from standard input. The
remaining arguments become the positional parameters $1, $2, ...`,
		RunE: func(cmd *cobra.Command, args []string) error {
			hc := handlerContext(cmd)

			var (
				src  io.Reader
				name string
			)
			switch {
			case cmd.Flags().Changed("command"):
				src, name = strings.NewReader(script), "-c"
			case len(args) > 0:
				path := args[0]
				if !filepath.IsAbs(path) {
					path = filepath.Join(hc.Dir, path)
				}
				f, err := os.Open(path)
				if err != nil {
					return &issue.IOError{Path: args[0], Err: err}
				}
				defer f.Close()
				src, name, args = f, args[0], args[1:]
			default:
				src, name = hc.Stdin, "stdin"
			}

			cfg, logger := a.Setup(cmd.Context(), hc, "sh")
			code, err := builtin.RunScript(cmd.Context(), src, builtin.ScriptOptions{
				Name:     name,
				Dir:      hc.Dir,
				Params:   args,
				Stdin:    hc.Stdin,
				Stdout:   hc.Stdout,
				Stderr:   hc.Stderr,
				Registry: a.Registry,
				Config:   cfg,
				Logger:   logger,
			})
			if err != nil || code != 0 {
				return &builtin.ExitError{Code: code, Err: err}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&script, "command", "c", "", "read the script from `SCRIPT`")
	cmd.Flags().SetInterspersed(false)
	return cmd
}
