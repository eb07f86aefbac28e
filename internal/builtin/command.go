// SPDX-License-Identifier: MPL-2.0

package builtin

import (
	"context"
	"strings"

	"github.com/invowk/coreutils/internal/usage"
)

type (
	// Command is a utility.
	Command interface {
		// Name returns the command name (e.g. "head").
		Name() string

		// Run executes the command. args[0] is the command name, args[1:]
		// are the arguments. Streams come from the HandlerContext in ctx.
		Run(ctx context.Context, args []string) error

		// SupportedFlags returns the options the command accepts, in the
		// order they appear in --help.
		SupportedFlags() []FlagInfo
	}

	// FlagInfo describes an option.
	FlagInfo struct {
		// Name is the long name without dashes ("lines"). Empty for
		// short-only options.
		Name string
		// ShortName is the single-character alias ("n"). Empty if none.
		ShortName string
		// Aliases are further long names ("silent" for --quiet).
		Aliases []string
		// Description explains the option. Newlines continue it on
		// following help lines.
		Description string
		// TakesValue indicates the option requires a value.
		TakesValue bool
		// ValueName names the value in help output ("[-]NUM").
		ValueName string
	}

	// configUser is implemented by commands whose behavior depends on the
	// configuration file.
	configUser interface {
		usesConfig()
	}
)

var (
	helpFlag    = FlagInfo{Name: "help", Description: "display this help and exit"}
	versionFlag = FlagInfo{Name: "version", Description: "output version information and exit"}
)

// NeedsConfig reports whether cmd reads settings from the configuration file.
// Callers skip loading configuration for commands that do not.
func NeedsConfig(cmd Command) bool {
	_, ok := cmd.(configUser)
	return ok
}

// key identifies the flag in option handlers.
func (f FlagInfo) key() string {
	if f.Name != "" {
		return f.Name
	}
	return f.ShortName
}

// longNames returns every long spelling of the flag.
func (f FlagInfo) longNames() []string {
	if f.Name == "" {
		return f.Aliases
	}
	return append([]string{f.Name}, f.Aliases...)
}

// Entry renders the flag as a row of the --help option table.
func (f FlagInfo) Entry() usage.Entry {
	var parts []string
	if f.ShortName != "" {
		parts = append(parts, "-"+f.ShortName)
	}
	for i, name := range f.longNames() {
		s := "--" + name
		if i == 0 && f.TakesValue && f.ValueName != "" {
			s += "=" + f.ValueName
		}
		parts = append(parts, s)
	}

	opt := strings.Join(parts, ", ")
	if f.ShortName == "" {
		opt = "    " + opt
	}
	return usage.Entry{Option: opt, Description: f.Description}
}

// helpEntries renders flags followed by --help and --version.
func helpEntries(flags []FlagInfo) []usage.Entry {
	entries := make([]usage.Entry, 0, len(flags)+2)
	for _, f := range flags {
		entries = append(entries, f.Entry())
	}
	return append(entries, helpFlag.Entry(), versionFlag.Entry())
}
