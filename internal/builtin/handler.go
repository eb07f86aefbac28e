// SPDX-License-Identifier: MPL-2.0

package builtin

import (
	"context"
	"io"
	"os"

	"github.com/invowk/coreutils/internal/config"
	"github.com/invowk/coreutils/internal/logging"

	"github.com/charmbracelet/log"
	"mvdan.cc/sh/v3/interp"
)

type (
	// HandlerContext provides the execution environment of a command.
	HandlerContext struct {
		// Stdin is the input stream for the command.
		Stdin io.Reader
		// Stdout is the output stream for the command.
		Stdout io.Writer
		// Stderr is the error output stream for the command.
		Stderr io.Writer
		// Dir is the working directory relative paths are resolved against.
		Dir string
		// LookupEnv retrieves environment variables.
		LookupEnv func(string) (string, bool)
		// Logger receives diagnostics. Nil discards them.
		Logger *log.Logger
		// Config holds the loaded settings. Nil means defaults.
		Config *config.Config
	}

	handlerContextKey struct{}
)

// OSHandlerContext returns a HandlerContext for the process's own streams,
// working directory and environment.
func OSHandlerContext() *HandlerContext {
	dir, err := os.Getwd()
	if err != nil {
		dir = "."
	}
	return &HandlerContext{
		Stdin:     os.Stdin,
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		Dir:       dir,
		LookupEnv: os.LookupEnv,
	}
}

// ExtractHandlerContext builds a HandlerContext from mvdan/sh's handler
// context. Logger and Config are left empty.
func ExtractHandlerContext(ctx context.Context) *HandlerContext {
	hc := interp.HandlerCtx(ctx)
	return &HandlerContext{
		Stdin:  hc.Stdin,
		Stdout: hc.Stdout,
		Stderr: hc.Stderr,
		Dir:    hc.Dir,
		LookupEnv: func(name string) (string, bool) {
			v := hc.Env.Get(name)
			return v.Str, v.Set
		},
	}
}

// WithHandlerContext stores hc in ctx.
func WithHandlerContext(ctx context.Context, hc *HandlerContext) context.Context {
	return context.WithValue(ctx, handlerContextKey{}, hc)
}

// GetHandlerContext returns the HandlerContext stored with
// WithHandlerContext, or else the one mvdan/sh provides.
func GetHandlerContext(ctx context.Context) *HandlerContext {
	if hc, ok := ctx.Value(handlerContextKey{}).(*HandlerContext); ok {
		return hc
	}
	return ExtractHandlerContext(ctx)
}

// logger returns the configured logger, falling back to the one in ctx.
func (hc *HandlerContext) logger(ctx context.Context) *log.Logger {
	if hc.Logger != nil {
		return hc.Logger
	}
	return logging.FromContext(ctx)
}

// settings returns the loaded configuration or the defaults.
func (hc *HandlerContext) settings() *config.Config {
	if hc.Config != nil {
		return hc.Config
	}
	return config.DefaultConfig()
}

// stdin never returns nil so a command without input reads nothing.
func (hc *HandlerContext) stdin() io.Reader {
	if hc.Stdin == nil {
		return eofReader{}
	}
	return hc.Stdin
}

type eofReader struct{}

func (eofReader) Read([]byte) (int, error) { return 0, io.EOF }
