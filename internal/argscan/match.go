// SPDX-License-Identifier: MPL-2.0

package argscan

import (
	"errors"
	"strings"
)

var (
	// ErrNoMatch is returned by Match when no candidate starts with the name.
	ErrNoMatch = errors.New("no matching option")
	// ErrAmbiguous is returned by Match when several candidates share the prefix.
	ErrAmbiguous = errors.New("ambiguous option")
)

// AmbiguousError lists the candidates an abbreviated long option could mean.
// It wraps ErrAmbiguous for errors.Is() compatibility.
type AmbiguousError struct {
	Name       string
	Candidates []string
}

// Error implements the error interface.
func (e *AmbiguousError) Error() string {
	return "option '--" + e.Name + "' is ambiguous; possibilities: '--" +
		strings.Join(e.Candidates, "' '--") + "'"
}

// Unwrap returns ErrAmbiguous.
func (e *AmbiguousError) Unwrap() error {
	return ErrAmbiguous
}

// Match resolves a possibly abbreviated long option name against candidates.
// An exact match always wins; otherwise the prefix must be unique.
func Match(name string, candidates []string) (string, error) {
	var found []string
	for _, c := range candidates {
		if c == name {
			return c, nil
		}
		if name != "" && strings.HasPrefix(c, name) {
			found = append(found, c)
		}
	}

	switch len(found) {
	case 0:
		return "", ErrNoMatch
	case 1:
		return found[0], nil
	default:
		return "", &AmbiguousError{Name: name, Candidates: found}
	}
}
