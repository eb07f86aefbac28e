// SPDX-License-Identifier: MPL-2.0

// Package usage renders the --help and --version texts shared by every
// utility. Rendering is pure: all program metadata arrives in an explicit
// Meta value, nothing is read from globals.
package usage

import (
	"fmt"
	"io"
	"strings"
)

// DefaultYear is the copyright year used when Meta.Year is zero.
const DefaultYear = 2025

const licenseNotice = `License GPLv3+: GNU GPL version 3 or later <https://gnu.org/licenses/gpl.html>.
This is free software: you are free to change and redistribute it.
There is NO WARRANTY, to the extent permitted by law.
`

type (
	// Meta identifies a program for --version output.
	Meta struct {
		// Name is the utility name, e.g. "head".
		Name string
		// Project is the suite the utility belongs to.
		Project string
		// Version is the release string.
		Version string
		// Authors is credited in the copyright and "Written by" lines.
		Authors string
		// Year is the copyright year; zero means DefaultYear.
		Year int
	}

	// Entry is one row of the option table.
	Entry struct {
		// Option is the left column, e.g. "-n, --lines=[-]NUM".
		Option string
		// Description is the right column. Embedded newlines continue the
		// description on following lines, aligned under its first line.
		Description string
	}

	// Help is the content of a --help text.
	Help struct {
		// Usage holds the synopsis lines, printed as-is.
		Usage []string
		// Description is printed after the synopsis.
		Description string
		// Entries is the option table.
		Entries []Entry
		// Epilog is printed after the option table, separated by a blank line.
		Epilog string
	}
)

// WriteHelp writes h to w.
func WriteHelp(w io.Writer, h Help) error {
	var b strings.Builder
	for _, line := range h.Usage {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	if h.Description != "" {
		b.WriteString(h.Description)
		b.WriteByte('\n')
	}

	if len(h.Entries) > 0 {
		b.WriteByte('\n')
		writeTable(&b, h.Entries)
	}

	if h.Epilog != "" {
		b.WriteByte('\n')
		b.WriteString(h.Epilog)
		if !strings.HasSuffix(h.Epilog, "\n") {
			b.WriteByte('\n')
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// writeTable prints entries as "  OPTION  DESCRIPTION" with the description
// column aligned on the widest option.
func writeTable(b *strings.Builder, entries []Entry) {
	width := 0
	for _, e := range entries {
		width = max(width, len(e.Option))
	}
	indent := strings.Repeat(" ", width+4)

	for _, e := range entries {
		first, rest, _ := strings.Cut(e.Description, "\n")
		fmt.Fprintf(b, "  %-*s  %s\n", width, e.Option, first)
		for rest != "" {
			var line string
			line, rest, _ = strings.Cut(rest, "\n")
			b.WriteString(indent)
			b.WriteString(strings.TrimSpace(line))
			b.WriteByte('\n')
		}
	}
}

// WriteVersion writes the version banner for m to w.
func WriteVersion(w io.Writer, m Meta) error {
	year := m.Year
	if year == 0 {
		year = DefaultYear
	}
	_, err := fmt.Fprintf(w, "%s (%s) %s\nCopyright (C) %d %s\n%s\nWritten by %s.\n",
		m.Name, m.Project, m.Version, year, m.Authors, licenseNotice, m.Authors)
	return err
}
