// SPDX-License-Identifier: MPL-2.0

package builtin

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/invowk/coreutils/internal/config"

	"github.com/charmbracelet/log"
	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// ScriptOptions configures RunScript.
type ScriptOptions struct {
	// Name labels the script in parse errors.
	Name string
	// Dir is the initial working directory; empty means the process's.
	Dir string
	// Env is the initial environment as KEY=value pairs; nil means the
	// process's.
	Env []string
	// Params are the positional parameters ($1, $2, ...).
	Params []string
	// Stdin, Stdout and Stderr are the script's streams.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	// Registry supplies the in-process utilities; nil means DefaultRegistry.
	Registry *Registry
	// Config and Logger are handed to every utility the script runs.
	Config *config.Config
	Logger *log.Logger
}

// ExecHandler returns mvdan/sh middleware that runs commands found in reg
// in-process and passes every other command on to next.
//
// A utility that fails has already reported on the script's standard error;
// the interpreter only sees its exit status.
func ExecHandler(reg *Registry, cfg *config.Config, logger *log.Logger) func(next interp.ExecHandlerFunc) interp.ExecHandlerFunc {
	return func(next interp.ExecHandlerFunc) interp.ExecHandlerFunc {
		return func(ctx context.Context, args []string) error {
			if len(args) == 0 {
				return next(ctx, args)
			}
			cmd, ok := reg.Lookup(args[0])
			if !ok {
				return next(ctx, args)
			}

			hc := ExtractHandlerContext(ctx)
			hc.Config = cfg
			hc.Logger = logger
			if code := Main(WithHandlerContext(ctx, hc), cmd, args); code != 0 {
				return interp.NewExitStatus(uint8(code))
			}
			return nil
		}
	}
}

// RunScript parses and runs a POSIX shell script in which the registered
// utilities are builtins. It returns the script's exit status; the error is
// non-nil only when the script could not be parsed or run at all.
func RunScript(ctx context.Context, script io.Reader, opts ScriptOptions) (int, error) {
	name := opts.Name
	if name == "" {
		name = "script"
	}
	prog, err := syntax.NewParser().Parse(script, name)
	if err != nil {
		return 2, fmt.Errorf("failed to parse script: %w", err)
	}

	reg := opts.Registry
	if reg == nil {
		reg = DefaultRegistry
	}
	env := opts.Env
	if env == nil {
		env = os.Environ()
	}

	runnerOpts := []interp.RunnerOption{
		interp.Env(expand.ListEnviron(env...)),
		interp.StdIO(opts.Stdin, opts.Stdout, opts.Stderr),
		interp.ExecHandlers(ExecHandler(reg, opts.Config, opts.Logger)),
	}
	if opts.Dir != "" {
		runnerOpts = append(runnerOpts, interp.Dir(opts.Dir))
	}
	// "--" keeps parameters such as "-v" from being read as shell options.
	if len(opts.Params) > 0 {
		runnerOpts = append(runnerOpts, interp.Params(append([]string{"--"}, opts.Params...)...))
	}

	runner, err := interp.New(runnerOpts...)
	if err != nil {
		return 1, fmt.Errorf("failed to create interpreter: %w", err)
	}

	if err := runner.Run(ctx, prog); err != nil {
		var status interp.ExitStatus
		if errors.As(err, &status) {
			return int(status), nil
		}
		return 1, fmt.Errorf("script execution failed: %w", err)
	}
	return 0, nil
}
