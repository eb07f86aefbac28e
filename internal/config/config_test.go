// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/invowk/coreutils/internal/testutil"
)

// Tests in this file change process state and cannot run in parallel.

func TestConfigDir_Override(t *testing.T) {
	dir := t.TempDir()
	SetConfigDirOverride(dir)
	t.Cleanup(Reset)

	got, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir() error = %v", err)
	}
	if got != dir {
		t.Errorf("ConfigDir() = %q, want %q", got, dir)
	}
}

func TestConfigDir_XDG(t *testing.T) {
	if filepath.Separator != '/' {
		t.Skip("XDG lookup only applies to unix-like systems")
	}
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	got, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir() error = %v", err)
	}
	// macOS ignores XDG_CONFIG_HOME.
	if want := filepath.Join(xdg, AppName); got != want && filepath.Base(got) != AppName {
		t.Errorf("ConfigDir() = %q, want %q", got, want)
	}
}

func TestConfigDir_HomeFallback(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("home fallback layout differs outside linux")
	}
	home := t.TempDir()
	testutil.SetHomeDir(t, home)
	t.Setenv("XDG_CONFIG_HOME", "")

	got, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir() error = %v", err)
	}
	if want := filepath.Join(home, ".config", AppName); got != want {
		t.Errorf("ConfigDir() = %q, want %q", got, want)
	}
}

func TestLoad_UsesConfigDirOverride(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `buffer_size: 1024`)
	SetConfigDirOverride(dir)
	t.Cleanup(Reset)

	cfg, path, err := loadWithOptions(t.Context(), LoadOptions{})
	if err != nil {
		t.Fatalf("loadWithOptions() error = %v", err)
	}
	if cfg.BufferSize != 1024 {
		t.Errorf("BufferSize = %d, want 1024", cfg.BufferSize)
	}
	if path != filepath.Join(dir, "config.cue") {
		t.Errorf("resolved path = %q", path)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `log_level: "info"`)
	t.Setenv("COREUTILS_LOG_LEVEL", "error")
	t.Setenv("COREUTILS_BUFFER_SIZE", "65536")
	t.Setenv("COREUTILS_CONTINUE_ON_ERROR", "true")

	cfg, err := NewProvider().Load(t.Context(), LoadOptions{ConfigDirPath: dir})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := Config{LogLevel: LogLevelError, BufferSize: 65536, ContinueOnError: true}
	if *cfg != want {
		t.Errorf("Load() = %+v, want %+v", *cfg, want)
	}
}

func TestLoad_InvalidEnvOverride(t *testing.T) {
	t.Setenv("COREUTILS_BUFFER_SIZE", "3")

	_, err := NewProvider().Load(t.Context(), LoadOptions{ConfigDirPath: t.TempDir()})
	if !errors.Is(err, ErrInvalidBufferSize) {
		t.Errorf("Load() error = %v, want ErrInvalidBufferSize", err)
	}
}
