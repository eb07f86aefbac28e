// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"

	"github.com/invowk/coreutils/internal/app"
	"github.com/invowk/coreutils/internal/manual"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

func newListCommand(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available utilities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t := table.New().
				Border(lipgloss.RoundedBorder()).
				BorderStyle(SubtitleStyle).
				Headers("UTILITY", "DESCRIPTION").
				StyleFunc(func(row, col int) lipgloss.Style {
					switch {
					case row == table.HeaderRow:
						return headerCellStyle
					case col == 0:
						return cellStyle.Foreground(ColorHighlight)
					default:
						return cellStyle
					}
				})
			for _, name := range a.Registry.Names() {
				summary := ""
				if page := manual.Get(name); page != nil {
					summary = page.Summary()
				}
				t.Row(name, summary)
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			return err
		},
	}
}
