// SPDX-License-Identifier: MPL-2.0

package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/invowk/coreutils/internal/builtin"
	"github.com/invowk/coreutils/internal/config"
	"github.com/invowk/coreutils/internal/issue"
	"github.com/invowk/coreutils/internal/logging"

	"github.com/charmbracelet/log"
)

// ExitCommandNotFound is the status for a name no utility answers to, as in
// a shell.
const ExitCommandNotFound = 127

type (
	// App wires configuration and logging around the utility registry.
	App struct {
		Config   config.Provider
		Registry *builtin.Registry
		// ConfigDir overrides the configuration directory lookup.
		ConfigDir string
	}

	// Dependencies defines the injection points for building an App. Nil
	// fields are replaced with production defaults by New.
	Dependencies struct {
		Config    config.Provider
		Registry  *builtin.Registry
		ConfigDir string
	}
)

// New creates an App from deps.
func New(deps Dependencies) *App {
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}
	if deps.Registry == nil {
		deps.Registry = builtin.DefaultRegistry
	}
	return &App{
		Config:    deps.Config,
		Registry:  deps.Registry,
		ConfigDir: deps.ConfigDir,
	}
}

// Run runs the utility called name with args (not including the program
// name) and returns its exit status. Utilities that read configuration get
// it loaded first; a configuration that cannot be loaded is reported as a
// warning and the defaults apply.
func (a *App) Run(ctx context.Context, hc *builtin.HandlerContext, name string, args []string) int {
	stderr := hc.Stderr
	if stderr == nil {
		stderr = io.Discard
	}

	cmd, ok := a.Registry.Lookup(name)
	if !ok {
		fmt.Fprintf(stderr, "%s: %v\n", name, builtin.ErrCommandNotFound)
		return ExitCommandNotFound
	}

	run := *hc
	if builtin.NeedsConfig(cmd) {
		run.Config, run.Logger = a.Setup(ctx, hc, name)
		ctx = logging.WithLogger(ctx, run.Logger)
	}

	argv := append([]string{name}, args...)
	return builtin.Main(builtin.WithHandlerContext(ctx, &run), cmd, argv)
}

// Setup loads the configuration for hc and builds the logger it asks for,
// prefixed with name. A configuration that cannot be loaded is reported as a
// warning and the defaults apply.
func (a *App) Setup(ctx context.Context, hc *builtin.HandlerContext, name string) (*config.Config, *log.Logger) {
	stderr := hc.Stderr
	if stderr == nil {
		stderr = io.Discard
	}

	cfg, err := a.loadConfig(ctx, hc)
	if err != nil {
		logging.New(stderr, name, config.LogLevelWarn).Warn(formatErrorForDisplay(err, debugRequested(hc)))
		cfg = config.DefaultConfig()
	}
	return cfg, logging.New(stderr, name, cfg.LogLevel)
}

func (a *App) loadConfig(ctx context.Context, hc *builtin.HandlerContext) (*config.Config, error) {
	opts := config.LoadOptions{ConfigDirPath: a.ConfigDir}
	if hc.LookupEnv != nil {
		if path, ok := hc.LookupEnv(config.PathEnv); ok && path != "" {
			opts.ConfigFilePath = path
		}
	}
	return a.Config.Load(ctx, opts)
}

// debugRequested reports whether the environment asks for debug logging. It
// stands in for the log level when the configuration itself failed to load.
func debugRequested(hc *builtin.HandlerContext) bool {
	if hc.LookupEnv == nil {
		return false
	}
	level, _ := hc.LookupEnv(config.EnvPrefix + "_LOG_LEVEL")
	return config.LogLevel(level) == config.LogLevelDebug
}

// formatErrorForDisplay formats an error for user display. An
// ActionableError shows its suggestions, and its cause chain when verbose.
func formatErrorForDisplay(err error, verbose bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verbose)
	}
	return err.Error()
}

// Main runs the utility called name with args against the process's
// streams. Interrupts cancel the run's context.
func Main(name string, args []string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return New(Dependencies{}).Run(ctx, builtin.OSHandlerContext(), name, args)
}
