package numeral

import "github.com/zeebo/errs"

// Error classes shared by every package of the numeric core. Packages wrap
// these with their own class, so membership is tested with Has:
//
//  if numeral.DivisionByZero.Has(err) { ... }
var (
	// MalformedNumber is a string that does not parse under the requested
	// radix or precision grammar.
	MalformedNumber = errs.Class("malformed number")

	// DivisionByZero is a zero denominator, or a fixed width divide or
	// modulo by zero.
	DivisionByZero = errs.Class("division by zero")

	// Overflow is an overflow policy violation. Only the unbounded integer
	// encoding reports it; every other encoding wraps silently.
	Overflow = errs.Class("overflow policy violation")

	// UnsupportedPrecision is a bit width, radix or precision profile that
	// is not in the supported table.
	UnsupportedPrecision = errs.Class("unsupported precision")
)
