// SPDX-License-Identifier: MPL-2.0

package builtin

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/invowk/coreutils/internal/count"
	"github.com/invowk/coreutils/internal/issue"
	"github.com/invowk/coreutils/internal/scan"
	"github.com/invowk/coreutils/internal/usage"
)

// defaultHeadLines is the number of lines printed without -c or -n.
const defaultHeadLines = 10

const headEpilog = `NUM may have a multiplier suffix:
b 512, kB 1000, K 1024, MB 1000*1000, M 1024*1024,
GB 1000*1000*1000, G 1024*1024*1024, and so on for T, P, E, Z, Y, R, Q.
Binary prefixes can be used, too: KiB=K, MiB=M, and so on.`

type (
	// headCommand implements the head utility.
	headCommand struct {
		name  string
		flags []FlagInfo
	}

	// headOptions is the parsed head command line. Exactly one of bytes and
	// lines is set.
	headOptions struct {
		bytes   *count.Spec
		lines   *count.Spec
		quiet   bool
		verbose bool
		zero    bool
	}
)

func init() {
	RegisterDefault(newHeadCommand())
}

func newHeadCommand() *headCommand {
	return &headCommand{
		name: "head",
		flags: []FlagInfo{
			{
				Name: "bytes", ShortName: "c", TakesValue: true, ValueName: "[-]NUM",
				Description: "print the first NUM bytes of each file;\n" +
					"with the leading '-', print all but the last\nNUM bytes of each file",
			},
			{
				Name: "lines", ShortName: "n", TakesValue: true, ValueName: "[-]NUM",
				Description: "print the first NUM lines instead of the first 10;\n" +
					"with the leading '-', print all but the last\nNUM lines of each file",
			},
			{Name: "quiet", ShortName: "q", Aliases: []string{"silent"}, Description: "never print headers giving file names"},
			{Name: "verbose", ShortName: "v", Description: "always print headers giving file names"},
			{Name: "zero-terminated", ShortName: "z", Description: "line delimiter is NUL, not newline"},
		},
	}
}

// Name returns the command name.
func (c *headCommand) Name() string {
	return c.name
}

// SupportedFlags returns the flags supported by this command.
func (c *headCommand) SupportedFlags() []FlagInfo {
	return c.flags
}

func (c *headCommand) usesConfig() {}

func (c *headCommand) help() usage.Help {
	return usage.Help{
		Usage: []string{"Usage: head [OPTION]... [FILE]..."},
		Description: "Print the first 10 lines of each FILE to standard output.\n" +
			"With more than one FILE, precede each with a header giving the name.\n\n" +
			"With no FILE, or when FILE is -, read standard input.",
		Entries: helpEntries(c.flags),
		Epilog:  headEpilog,
	}
}

// parse turns the arguments into head options and operands. -c and -n
// replace each other, as do -q and -v: the last one given wins.
func (c *headCommand) parse(args []string) (headOptions, parsedArgs, error) {
	def := count.FirstN(defaultHeadLines)
	opts := headOptions{lines: &def}

	parsed, err := parseArgs(args, c.flags, func(f FlagInfo, option, value string) error {
		switch f.key() {
		case "bytes", "lines":
			spec, err := count.Parse(value)
			if err != nil {
				return issue.NewBadValue(option, value, err)
			}
			if f.key() == "bytes" {
				opts.bytes, opts.lines = &spec, nil
			} else {
				opts.bytes, opts.lines = nil, &spec
			}
		case "quiet":
			opts.quiet, opts.verbose = true, false
		case "verbose":
			opts.quiet, opts.verbose = false, true
		case "zero-terminated":
			opts.zero = true
		}
		return nil
	})
	return opts, parsed, err
}

// Run executes the head command.
func (c *headCommand) Run(ctx context.Context, args []string) error {
	hc := GetHandlerContext(ctx)

	opts, parsed, err := c.parse(args[1:])
	if err != nil {
		return err
	}
	switch {
	case parsed.help:
		return writeStdout(usage.WriteHelp(hc.Stdout, c.help()))
	case parsed.version:
		return writeStdout(usage.WriteVersion(hc.Stdout, metaFor(c.name)))
	}

	cfg := hc.settings()
	logger := hc.logger(ctx)
	sc := scan.New(scan.WithBufferSize(int(cfg.BufferSize)))
	out := bufio.NewWriterSize(hc.Stdout, sc.BufferSize())

	unit, spec := opts.policy()
	logger.Debug("head", "unit", unit, "mode", spec.Mode, "count", spec.String(),
		"zero_terminated", opts.zero, "buffer_size", sc.BufferSize())

	headers := opts.verbose || !opts.quiet && len(parsed.operands) > 1
	first := true
	err = forEachSource(ctx, hc, parsed.operands, cfg.ContinueOnError, func(src source) error {
		if headers {
			sep := "\n"
			if first {
				sep = ""
			}
			if _, err := fmt.Fprintf(out, "%s==> %s <==\n", sep, src.display); err != nil {
				return &issue.IOError{Path: stdoutName, Err: err}
			}
		}
		first = false

		cur, err := opts.scan(sc, out, src.r)
		logger.Debug("scanned", "source", src.display, "bytes", cur.Bytes, "delimiters", cur.Delims)
		if err != nil {
			return ioFailure(src.display, err)
		}
		if err := out.Flush(); err != nil {
			return &issue.IOError{Path: stdoutName, Err: err}
		}
		return nil
	})
	return finish(out, err)
}

// policy returns the unit and count in effect.
func (o headOptions) policy() (string, count.Spec) {
	if o.bytes != nil {
		return "bytes", *o.bytes
	}
	return "lines", *o.lines
}

func (o headOptions) delim() byte {
	if o.zero {
		return 0
	}
	return '\n'
}

// scan copies the selected part of src to dst.
func (o headOptions) scan(sc *scan.Scanner, dst io.Writer, src io.Reader) (scan.Cursor, error) {
	unit, spec := o.policy()
	n := spec.Limit()
	switch {
	case unit == "bytes" && spec.Mode == count.AllButLast:
		return sc.AllButLastBytes(dst, src, n)
	case unit == "bytes":
		return sc.FirstBytes(dst, src, n, o.zero)
	case spec.Mode == count.AllButLast:
		return sc.AllButLastLines(dst, src, n, o.delim())
	default:
		return sc.FirstLines(dst, src, n, o.delim())
	}
}
