// SPDX-License-Identifier: MPL-2.0

// Package count parses the NUM[SUFFIX] arguments accepted by -c/--bytes and
// -n/--lines.
//
// A leading '-' turns "the first NUM units" into "all but the last NUM
// units". Suffixes multiply the digits: b (512), K M G T P E Z Y R Q in
// powers of 1024, the same letters followed by "B" in powers of 1000, and
// followed by "iB" as an explicit binary spelling. Magnitudes are computed
// with math/big and must fit in 128 bits.
package count

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strings"
)

const (
	// First keeps the first N units of the input.
	First Mode = iota
	// AllButLast withholds the trailing N units of the input.
	AllButLast
)

// MaxBits is the widest magnitude Parse accepts.
const MaxBits = 128

// suffixLetters maps each multiplier letter to its exponent by position.
const suffixLetters = "kmgtpezyrq"

var (
	// ErrNoDigits is returned when the argument has no leading digit run.
	ErrNoDigits = errors.New("missing digits")
	// ErrBadSuffix is returned for an unrecognized multiplier suffix.
	ErrBadSuffix = errors.New("invalid suffix")
	// ErrTooLarge is returned when the magnitude exceeds MaxBits.
	ErrTooLarge = errors.New("value too large")

	maxUint64 = new(big.Int).SetUint64(math.MaxUint64)
)

type (
	// Mode selects between head-first and all-but-last truncation.
	Mode int

	// Spec is a parsed count argument. It is immutable once returned by Parse.
	Spec struct {
		Mode      Mode
		magnitude *big.Int
	}
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case First:
		return "first"
	case AllButLast:
		return "all-but-last"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// FirstN returns a Spec keeping the first n units.
func FirstN(n uint64) Spec {
	return Spec{Mode: First, magnitude: new(big.Int).SetUint64(n)}
}

// AllButLastN returns a Spec withholding the last n units.
func AllButLastN(n uint64) Spec {
	return Spec{Mode: AllButLast, magnitude: new(big.Int).SetUint64(n)}
}

// Magnitude returns a copy of the count after suffix multiplication.
func (s Spec) Magnitude() *big.Int {
	if s.magnitude == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(s.magnitude)
}

// Limit returns the magnitude saturated to uint64. No input source can be
// longer than that, so saturation never changes the result of a scan.
func (s Spec) Limit() uint64 {
	if s.magnitude == nil {
		return 0
	}
	if s.magnitude.Cmp(maxUint64) > 0 {
		return math.MaxUint64
	}
	return s.magnitude.Uint64()
}

// IsZero reports whether the magnitude is zero.
func (s Spec) IsZero() bool {
	return s.magnitude == nil || s.magnitude.Sign() == 0
}

// String renders the spec back in argument form ("-1024", "10").
func (s Spec) String() string {
	if s.Mode == AllButLast {
		return "-" + s.Magnitude().String()
	}
	return s.Magnitude().String()
}

// Parse parses "[-]DIGITS[SUFFIX]".
func Parse(arg string) (Spec, error) {
	spec := Spec{Mode: First}
	rest := arg
	if strings.HasPrefix(rest, "-") {
		spec.Mode = AllButLast
		rest = rest[1:]
	}

	end := 0
	for end < len(rest) && rest[end] >= '0' && rest[end] <= '9' {
		end++
	}
	if end == 0 {
		return Spec{}, ErrNoDigits
	}

	n, ok := new(big.Int).SetString(rest[:end], 10)
	if !ok {
		return Spec{}, ErrNoDigits
	}

	mult, err := Multiplier(rest[end:])
	if err != nil {
		return Spec{}, err
	}

	n.Mul(n, mult)
	if n.BitLen() > MaxBits {
		return Spec{}, ErrTooLarge
	}
	spec.magnitude = n
	return spec, nil
}

// Multiplier returns the factor denoted by a suffix. The empty suffix is 1.
func Multiplier(suffix string) (*big.Int, error) {
	switch suffix {
	case "":
		return big.NewInt(1), nil
	case "b":
		return big.NewInt(512), nil
	}

	exp := strings.IndexByte(suffixLetters, lower(suffix[0]))
	if exp < 0 {
		return nil, fmt.Errorf("%w '%s'", ErrBadSuffix, suffix)
	}
	exp++

	var base int64
	switch suffix[1:] {
	case "", "iB":
		base = 1024
	case "B":
		base = 1000
	default:
		return nil, fmt.Errorf("%w '%s'", ErrBadSuffix, suffix)
	}

	return new(big.Int).Exp(big.NewInt(base), big.NewInt(int64(exp)), nil), nil
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
