// Package numeral holds the vocabulary shared by the numeric core of the
// calculator: radixes, the (pretty, canonical) string pair exchanged with the
// evaluator, and the error taxonomy.
//
// The arithmetic lives in the sub-packages:
//
//  | Package  | Provides                                                         |
//  |----------|------------------------------------------------------------------|
//  | rational | Exact fractions, recurring expansions, continued fractions, ...  |
//  | integer  | Fixed width registers under seven integer encodings             |
//  | float    | Floating point with caller chosen exponent/significand widths    |
//  | decimal  | Plain, scientific, engineering and SI decimal strings            |
//
// Nothing in these packages reads global state. Every configuration value
// (radix, width, encoding, grouping, ...) is passed in by the caller.
package numeral

import (
	"strconv"
)

// Radix is a numeral base used for parsing and formatting. Values are never
// stored in a radix.
type Radix int

// Supported radixes.
const (
	Bin Radix = 2
	Oct Radix = 8
	Dec Radix = 10
	Hex Radix = 16
)

// ParseRadix returns the radix for its base.
func ParseRadix(base int) (Radix, error) {
	r := Radix(base)
	if !r.Valid() {
		return 0, UnsupportedPrecision.New("radix %d", base)
	}

	return r, nil
}

// Valid reports whether r is one of the supported radixes.
func (r Radix) Valid() bool {
	switch r {
	case Bin, Oct, Dec, Hex:
		return true
	}

	return false
}

// BitsPerDigit returns the number of bits a digit carries in radix r, or 0 if
// r is not a power of two.
func (r Radix) BitsPerDigit() uint {
	switch r {
	case Bin:
		return 1
	case Oct:
		return 3
	case Hex:
		return 4
	}

	return 0
}

// ExponentMarker returns the exponent marker for r: 'e' (power of ten) for
// decimal, 'p' (power of two) otherwise.
func (r Radix) ExponentMarker() byte {
	if r == Dec {
		return 'e'
	}

	return 'p'
}

// Digit returns the value of the digit c in radix r.
func (r Radix) Digit(c byte) (d int, ok bool) {
	switch {
	case '0' <= c && c <= '9':
		d = int(c - '0')
	case 'a' <= c && c <= 'f':
		d = int(c-'a') + 10
	case 'A' <= c && c <= 'F':
		d = int(c-'A') + 10
	default:
		return 0, false
	}

	if d >= int(r) {
		return 0, false
	}

	return d, true
}

const digits = "0123456789abcdef"

// DigitChar returns the character for digit d (0 <= d < 16). Letters are
// lower case.
func DigitChar(d int) byte {
	return digits[d]
}

// String implements fmt.Stringer.
func (r Radix) String() string {
	switch r {
	case Bin:
		return "bin"
	case Oct:
		return "oct"
	case Dec:
		return "dec"
	case Hex:
		return "hex"
	}

	return "radix(" + strconv.Itoa(int(r)) + ")"
}

// Pair is what the core hands back to the evaluator for display: Pretty is
// meant for the typesetting layer and may contain grouping and markup,
// Canonical is ungrouped and can be parsed back by this module.
type Pair struct {
	Pretty    string
	Canonical string
}

// String returns the canonical string.
func (p Pair) String() string {
	return p.Canonical
}
