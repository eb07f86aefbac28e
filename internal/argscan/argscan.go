// SPDX-License-Identifier: MPL-2.0

// Package argscan splits a raw argument list into GNU-style option tokens.
//
// Every utility consumes the same token stream and decides on its own which
// options exist and which of them take a value. The scanner never fails:
// deciding that a token is unknown is the caller's job.
package argscan

import (
	"fmt"
	"iter"
	"strings"
)

const (
	// Short is a single-character option from a "-abc" cluster.
	Short Kind = iota
	// Long is a "--name" option without an inline value.
	Long
	// LongWithValue is a "--name=value" option.
	LongWithValue
	// Value is an operand (file name, "-", or anything after "--").
	Value
	// EndOfOptions is the "--" separator. It is reported once.
	EndOfOptions
)

type (
	// Kind classifies a Token.
	Kind int

	// Token is one element of the scanned argument list.
	Token struct {
		Kind Kind
		// Rune is the option character for Short tokens.
		Rune rune
		// Name is the option name (without dashes) for Long and LongWithValue.
		Name string
		// Value holds the inline value of LongWithValue or the operand of Value.
		Value string
	}

	// Scanner produces tokens lazily from an argument list.
	Scanner struct {
		args    []string
		pos     int
		cluster []rune
		literal bool
	}
)

// String returns a human-readable name for the token kind.
func (k Kind) String() string {
	switch k {
	case Short:
		return "short"
	case Long:
		return "long"
	case LongWithValue:
		return "long-with-value"
	case Value:
		return "value"
	case EndOfOptions:
		return "end-of-options"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Flag renders the option as the user typed it ("-n", "--lines").
// It returns the operand itself for Value tokens.
func (t Token) Flag() string {
	switch t.Kind {
	case Short:
		return "-" + string(t.Rune)
	case Long, LongWithValue:
		return "--" + t.Name
	case EndOfOptions:
		return "--"
	default:
		return t.Value
	}
}

// New creates a Scanner over args. args must not include the program name.
func New(args []string) *Scanner {
	return &Scanner{args: args}
}

// Next returns the next token, or false once the arguments are exhausted.
func (s *Scanner) Next() (Token, bool) {
	if len(s.cluster) > 0 {
		r := s.cluster[0]
		s.cluster = s.cluster[1:]
		return Token{Kind: Short, Rune: r}, true
	}

	if s.pos >= len(s.args) {
		return Token{}, false
	}
	arg := s.args[s.pos]
	s.pos++

	if s.literal {
		return Token{Kind: Value, Value: arg}, true
	}

	switch {
	case arg == "--":
		s.literal = true
		return Token{Kind: EndOfOptions}, true
	case strings.HasPrefix(arg, "--"):
		name := arg[2:]
		if k, v, ok := strings.Cut(name, "="); ok {
			return Token{Kind: LongWithValue, Name: k, Value: v}, true
		}
		return Token{Kind: Long, Name: name}, true
	case len(arg) > 1 && arg[0] == '-':
		s.cluster = []rune(arg[1:])
		return s.Next()
	default:
		return Token{Kind: Value, Value: arg}, true
	}
}

// OptionValue consumes the argument of the option returned by the last call
// to Next. The rest of a short cluster wins ("-n5"); otherwise the next raw
// argument is taken verbatim, even when it starts with a dash ("-n -5").
func (s *Scanner) OptionValue() (string, bool) {
	if len(s.cluster) > 0 {
		v := string(s.cluster)
		s.cluster = nil
		return v, true
	}
	if s.pos >= len(s.args) {
		return "", false
	}
	v := s.args[s.pos]
	s.pos++
	return v, true
}

// All returns the remaining tokens as a sequence. Option values are not
// consumed specially, so All suits utilities without valued options.
func (s *Scanner) All() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for {
			tok, ok := s.Next()
			if !ok || !yield(tok) {
				return
			}
		}
	}
}
