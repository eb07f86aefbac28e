// SPDX-License-Identifier: MPL-2.0

package builtin

import (
	"context"

	"github.com/invowk/coreutils/internal/scan"
	"github.com/invowk/coreutils/internal/transcode"
	"github.com/invowk/coreutils/internal/usage"
)

// catCommand implements the cat utility.
type catCommand struct {
	name  string
	flags []FlagInfo
}

func init() {
	RegisterDefault(newCatCommand())
}

func newCatCommand() *catCommand {
	return &catCommand{
		name: "cat",
		flags: []FlagInfo{
			{Name: "show-all", ShortName: "A", Description: "equivalent to -vET"},
			{Name: "number-nonblank", ShortName: "b", Description: "number nonempty output lines, overrides -n"},
			{ShortName: "e", Description: "equivalent to -vE"},
			{Name: "show-ends", ShortName: "E", Description: "display $ at end of each line"},
			{Name: "number", ShortName: "n", Description: "number all output lines"},
			{Name: "squeeze-blank", ShortName: "s", Description: "suppress repeated empty output lines"},
			{ShortName: "t", Description: "equivalent to -vT"},
			{Name: "show-tabs", ShortName: "T", Description: "display TAB characters as ^I"},
			{ShortName: "u", Description: "(ignored)"},
			{Name: "show-nonprinting", ShortName: "v", Description: "use ^ and M- notation, except for LFD and TAB"},
		},
	}
}

// Name returns the command name.
func (c *catCommand) Name() string {
	return c.name
}

// SupportedFlags returns the flags supported by this command.
func (c *catCommand) SupportedFlags() []FlagInfo {
	return c.flags
}

func (c *catCommand) usesConfig() {}

func (c *catCommand) help() usage.Help {
	return usage.Help{
		Usage: []string{"Usage: cat [OPTION]... [FILE]..."},
		Description: "Concatenate FILE(s) to standard output.\n\n" +
			"With no FILE, or when FILE is -, read standard input.",
		Entries: helpEntries(c.flags),
		Epilog: "Examples:\n" +
			"  cat f - g  Output f's contents, then standard input, then g's contents.\n" +
			"  cat        Copy standard input to standard output.",
	}
}

// parse turns the arguments into transcoder options and operands.
func (c *catCommand) parse(args []string) (transcode.Options, parsedArgs, error) {
	var opts transcode.Options
	parsed, err := parseArgs(args, c.flags, func(f FlagInfo, _, _ string) error {
		switch f.key() {
		case "show-all":
			opts.ShowNonprinting, opts.ShowEnds, opts.ShowTabs = true, true, true
		case "number-nonblank":
			opts.NumberNonblank = true
		case "e":
			opts.ShowNonprinting, opts.ShowEnds = true, true
		case "show-ends":
			opts.ShowEnds = true
		case "number":
			opts.Number = true
		case "squeeze-blank":
			opts.SqueezeBlank = true
		case "t":
			opts.ShowNonprinting, opts.ShowTabs = true, true
		case "show-tabs":
			opts.ShowTabs = true
		case "show-nonprinting":
			opts.ShowNonprinting = true
		}
		return nil
	})
	return opts, parsed, err
}

// Run executes the cat command.
func (c *catCommand) Run(ctx context.Context, args []string) error {
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

	// Numbering and blank squeezing start over with every source.
	var (
		sink flusher = unbuffered{hc.Stdout}
		tc   *chunkFlusher
	)
	if !opts.Plain() {
		tc = &chunkFlusher{transcode.New(hc.Stdout, opts)}
		sink = tc
	}
	logger.Debug("cat", "options", opts, "buffer_size", sc.BufferSize(), "sources", len(parsed.operands))

	err = forEachSource(ctx, hc, parsed.operands, cfg.ContinueOnError, func(src source) error {
		if tc != nil {
			tc.Reset()
		}
		cur, err := sc.Copy(sink, src.r)
		logger.Debug("copied", "source", src.display, "bytes", cur.Bytes)
		return ioFailure(src.display, err)
	})
	return finish(sink, err)
}

// chunkFlusher flushes the transcoder after every chunk so interactive
// input is echoed as soon as it is read.
type chunkFlusher struct {
	*transcode.Transcoder
}

func (f *chunkFlusher) Write(p []byte) (int, error) {
	n, err := f.Transcoder.Write(p)
	if err != nil {
		return n, err
	}
	return n, f.Flush()
}
