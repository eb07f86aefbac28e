// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
)

const (
	// LogLevelDebug logs every scan decision.
	LogLevelDebug LogLevel = "debug"
	// LogLevelInfo logs configuration and per-source summaries.
	LogLevelInfo LogLevel = "info"
	// LogLevelWarn only logs recoverable problems such as a bad config file.
	LogLevelWarn LogLevel = "warn"
	// LogLevelError only logs failures.
	LogLevelError LogLevel = "error"

	// MinBufferSize is the smallest accepted read chunk.
	MinBufferSize BufferSize = 512
	// MaxBufferSize is the largest accepted read chunk.
	MaxBufferSize BufferSize = 1 << 20
	// DefaultBufferSize is the read chunk used when none is configured.
	DefaultBufferSize BufferSize = 8 << 10
)

var (
	// ErrInvalidLogLevel is returned when a LogLevel value is not recognized.
	ErrInvalidLogLevel = errors.New("invalid log level")
	// ErrInvalidBufferSize is returned when a BufferSize is out of range.
	ErrInvalidBufferSize = errors.New("invalid buffer size")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// LogLevel is the minimum level of diagnostic messages.
	LogLevel string

	// InvalidLogLevelError is returned when a LogLevel value is not recognized.
	// It wraps ErrInvalidLogLevel for errors.Is() compatibility.
	InvalidLogLevelError struct {
		Value LogLevel
	}

	// BufferSize is the read chunk size in bytes.
	BufferSize int

	// InvalidBufferSizeError is returned when a BufferSize is outside
	// [MinBufferSize, MaxBufferSize].
	InvalidBufferSizeError struct {
		Value BufferSize
	}

	// InvalidConfigError collects the field errors of a Config.
	// It wraps ErrInvalidConfig for errors.Is() compatibility.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the settings read from the config file and environment.
	Config struct {
		// LogLevel sets the diagnostic log level (default "warn").
		LogLevel LogLevel `json:"log_level" mapstructure:"log_level"`
		// BufferSize sets the read chunk size of cat and head.
		BufferSize BufferSize `json:"buffer_size" mapstructure:"buffer_size"`
		// ContinueOnError keeps going after a failed source instead of
		// stopping at the first one.
		ContinueOnError bool `json:"continue_on_error" mapstructure:"continue_on_error"`
	}
)

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string { return string(l) }

// IsValid returns whether the LogLevel is one of the defined levels.
func (l LogLevel) IsValid() (bool, []error) {
	switch l {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		return true, nil
	default:
		return false, []error{&InvalidLogLevelError{Value: l}}
	}
}

// Error implements the error interface for InvalidLogLevelError.
func (e *InvalidLogLevelError) Error() string {
	return fmt.Sprintf("invalid log level %q (valid: debug, info, warn, error)", e.Value)
}

// Unwrap returns ErrInvalidLogLevel for errors.Is() compatibility.
func (e *InvalidLogLevelError) Unwrap() error { return ErrInvalidLogLevel }

// IsValid returns whether the BufferSize is within range.
func (b BufferSize) IsValid() (bool, []error) {
	if b < MinBufferSize || b > MaxBufferSize {
		return false, []error{&InvalidBufferSizeError{Value: b}}
	}
	return true, nil
}

// Error implements the error interface for InvalidBufferSizeError.
func (e *InvalidBufferSizeError) Error() string {
	return fmt.Sprintf("invalid buffer size %d (valid: %d to %d)", e.Value, MinBufferSize, MaxBufferSize)
}

// Unwrap returns ErrInvalidBufferSize for errors.Is() compatibility.
func (e *InvalidBufferSizeError) Unwrap() error { return ErrInvalidBufferSize }

// IsValid returns whether every field of the Config is valid.
func (c Config) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.LogLevel.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.BufferSize.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid config: %v", errors.Join(e.FieldErrors...))
}

// Unwrap returns ErrInvalidConfig for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:        LogLevelWarn,
		BufferSize:      DefaultBufferSize,
		ContinueOnError: false,
	}
}
