// SPDX-License-Identifier: MPL-2.0

package builtin

import (
	"context"

	"github.com/invowk/coreutils/internal/usage"
)

// exitCommand implements true and false: both ignore their arguments and
// exit with a fixed status.
type exitCommand struct {
	name        string
	code        int
	description string
}

func init() {
	RegisterDefault(&exitCommand{
		name:        "true",
		code:        0,
		description: "Exit with a status code indicating success.",
	})
	RegisterDefault(&exitCommand{
		name:        "false",
		code:        1,
		description: "Exit with a status code indicating failure.",
	})
}

// Name returns the command name.
func (c *exitCommand) Name() string {
	return c.name
}

// SupportedFlags returns nil: only a sole --help or --version is recognized.
func (c *exitCommand) SupportedFlags() []FlagInfo {
	return nil
}

func (c *exitCommand) help() usage.Help {
	return usage.Help{
		Usage: []string{
			"Usage: " + c.name + " [ignored command line arguments]",
			"  or:  " + c.name + " OPTION",
		},
		Description: c.description,
		Entries:     helpEntries(nil),
	}
}

// Run prints help or version text when it is the only argument, then exits
// with the command's status. The status stays the same even after printing,
// so "false --help" still fails.
func (c *exitCommand) Run(ctx context.Context, args []string) error {
	if len(args) == 2 {
		hc := GetHandlerContext(ctx)
		var err error
		switch args[1] {
		case "--help":
			err = usage.WriteHelp(hc.Stdout, c.help())
		case "--version":
			err = usage.WriteVersion(hc.Stdout, metaFor(c.name))
		}
		if err != nil {
			return &ExitError{Code: max(c.code, 1), Err: writeStdout(err)}
		}
	}

	if c.code != 0 {
		return &ExitError{Code: c.code}
	}
	return nil
}
