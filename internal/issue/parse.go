// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// UnknownOption is a short option the utility does not define.
	UnknownOption Kind = iota + 1
	// UnknownLongOption is a long option the utility does not define.
	UnknownLongOption
	// AmbiguousOption is an abbreviated long option matching several options.
	AmbiguousOption
	// UnexpectedArgument is a "--name=value" for an option taking no value.
	UnexpectedArgument
	// MissingOperand is an option requiring a value that had none.
	MissingOperand
	// BadValue is an option value that could not be parsed.
	BadValue
	// NoInput is a missing mandatory operand.
	NoInput
)

// ErrUsage is matched by every *ParseError through errors.Is.
var ErrUsage = errors.New("invalid usage")

type (
	// Kind classifies a ParseError.
	Kind int

	// ParseError describes an invalid command line.
	ParseError struct {
		Kind Kind
		// Option is the option as typed, with dashes ("-n", "--lines").
		Option string
		// Value is the offending value for BadValue.
		Value string
		// Reason explains a BadValue.
		Reason string
		// Err is the underlying cause, if any.
		Err error
	}
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case UnknownOption:
		return "unknown-option"
	case UnknownLongOption:
		return "unknown-long-option"
	case AmbiguousOption:
		return "ambiguous-option"
	case UnexpectedArgument:
		return "unexpected-argument"
	case MissingOperand:
		return "missing-operand"
	case BadValue:
		return "bad-value"
	case NoInput:
		return "no-input"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	switch e.Kind {
	case UnknownOption:
		return fmt.Sprintf("unknown option -- '%s'", strings.TrimPrefix(e.Option, "-"))
	case UnknownLongOption:
		return fmt.Sprintf("unrecognized option '%s'", e.Option)
	case AmbiguousOption:
		if e.Err != nil {
			return e.Err.Error()
		}
		return fmt.Sprintf("option '%s' is ambiguous", e.Option)
	case UnexpectedArgument:
		return fmt.Sprintf("option '%s' doesn't allow an argument", e.Option)
	case MissingOperand:
		return fmt.Sprintf("option '%s' requires an argument", e.Option)
	case BadValue:
		msg := fmt.Sprintf("ambiguous argument '%s' for '%s'", e.Value, e.Option)
		if e.Reason != "" {
			msg += "\n" + e.Reason
		}
		return msg
	case NoInput:
		return "missing operand"
	default:
		return "invalid arguments"
	}
}

// Unwrap returns the underlying cause.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrUsage.
func (e *ParseError) Is(target error) bool {
	return target == ErrUsage
}

// NewUnknownOption reports an undefined short or long option, choosing the
// kind from the option's spelling.
func NewUnknownOption(option string) *ParseError {
	kind := UnknownOption
	if strings.HasPrefix(option, "--") {
		kind = UnknownLongOption
	}
	return &ParseError{Kind: kind, Option: option}
}

// NewBadValue reports an unparseable option value. The cause's message
// becomes the reason.
func NewBadValue(option, value string, cause error) *ParseError {
	pe := &ParseError{Kind: BadValue, Option: option, Value: value, Err: cause}
	if cause != nil {
		pe.Reason = cause.Error()
	}
	return pe
}
