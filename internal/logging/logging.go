// SPDX-License-Identifier: MPL-2.0

// Package logging builds the diagnostic logger of the utilities. Diagnostics
// go to standard error, prefixed with the program name, and are filtered by
// the configured level so a default run prints nothing extra.
package logging

import (
	"context"
	"io"

	"github.com/invowk/coreutils/internal/config"

	"github.com/charmbracelet/log"
)

// New creates a logger writing to w. An unknown level falls back to warn.
func New(w io.Writer, prefix string, level config.LogLevel) *log.Logger {
	lvl, err := log.ParseLevel(string(level))
	if err != nil {
		lvl = log.WarnLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix: prefix,
		Level:  lvl,
	})
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}

// WithLogger stores l in ctx.
func WithLogger(ctx context.Context, l *log.Logger) context.Context {
	return log.WithContext(ctx, l)
}

// FromContext returns the logger stored in ctx, or a discarding logger.
func FromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(log.ContextKey).(*log.Logger); ok && l != nil {
		return l
	}
	return Discard()
}
