// Package float emulates binary floating point with any exponent and
// significand width.
//
// A Profile fixes the layout of a format. The bit pattern of a Float is
// stored in an integer.Int of the profile's width under the Unsigned
// encoding:
//
//  | sign | exponent (ExponentBits) | significand (SignificandBits) |
//
// The exponent is biased by 2^(ExponentBits-1)-1. An exponent field of all
// zeros holds zeros and subnormals; all ones holds the infinities (zero
// significand) and NaN (any other significand).
//
// Arithmetic never touches the native float types. The operands are turned
// into their exact rational values (Wide), combined exactly, and the result
// is rounded once into the target profile with round half to even. Callers
// evaluating a longer expression can stay in Wide and call Round at the end.
//
// Special values follow IEEE 754: NaN propagates, Inf - Inf and 0 * Inf are
// NaN, a finite value divided by zero is an infinity of the product sign and
// a finite value divided by an infinity is a signed zero.
//
// Text forms
//
// Parse reads plain numerals in radix 2, 8, 10 or 16 with an optional
// exponent: "e" scales by a power of ten in radix 10 and "p" by a power of
// two otherwise. The exponent itself is always written in decimal.
//
// Normalise writes the value with one leading significand digit and a binary
// exponent, in the digits of the requested radix:
//
//  10 in radix 2  = 1.01p+3
//  10 in radix 16 = 1.4p+3
//  10 in radix 10 = 1.25p+3
//
// Parse with normalized set reads that form back.
package float

import "github.com/zeebo/errs"

// Error is the error class for this package.
var Error = errs.Class("float")
