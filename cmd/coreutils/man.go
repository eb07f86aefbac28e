// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/invowk/coreutils/internal/manual"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newManCommand() *cobra.Command {
	var (
		style string
		width int
	)
	cmd := &cobra.Command{
		Use:       "man UTILITY",
		Short:     "Show the manual page of a utility",
		Args:      cobra.ExactArgs(1),
		ValidArgs: manual.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			page := manual.Get(args[0])
			if page == nil {
				return fmt.Errorf("no manual entry for %s", args[0])
			}
			if style == "" && !isTerminal(cmd.OutOrStdout()) {
				style = manual.NoTTYStyle
			}

			out, err := page.Render(manual.RenderOptions{Style: style, Width: width})
			if err != nil {
				return fmt.Errorf("failed to render manual page: %w", err)
			}
			_, err = io.WriteString(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().StringVar(&style, "style", "", "glamour style (dark, light, notty, ...); detected when empty")
	cmd.Flags().IntVar(&width, "width", 80, "wrap text at this column, 0 to disable")
	return cmd
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
