// Package decimal formats exact rationals as base 10 text.
//
// A number is split into a mantissa and a power of ten:
//
//  number = mantissa * 10 ^ exponent
//
// For example:
//
//  1234.5 = 1.2345 * 10^3    (scientific, 1 <= |mantissa| < 10)
//  1234.5 = 1.2345 * 10^3    (engineering, exponent a multiple of 3)
//  0.0123 = 12.3   * 10^-3
//
// The mantissa stays an exact rational. Its digits are expanded only after
// the split, so the recurring cycle is found relative to the shifted point:
//
//  1000/7 = 142.(857142)
//  1000/7 = 1.(428571)e2
//
// Forms
//
// Every form is returned as a numeral.Pair. The pretty string follows the
// Schema: decimal point, digit grouping, recurring brackets and exponent
// marker. The canonical string never groups digits and always uses ".", "e"
// and "(...)", so Parse reads it back exactly.
//
//  | Form        | Pretty (default schema) | Canonical     |
//  |-------------|-------------------------|---------------|
//  | Plain       | 1,234.5                 | 1234.5        |
//  | Scientific  | 1.2345e3                | 1.2345e3      |
//  | Engineering | 12.3e-3                 | 12.3e-3       |
//  | SI          | 12.3m                   | 12.3e-3       |
//
// SI uses the prefixes from yotta (10^24) down to yocto (10^-24) and falls
// back to the engineering form outside that range.
//
// Precision
//
// A Schema with a nonzero Precision first rounds the value to that many
// significant digits, half to even. Scale bounds the number of fraction
// digits searched for a recurring cycle; a longer cycle is cut at Scale
// digits and the pretty form ends with an ellipsis.
package decimal

import "github.com/zeebo/errs"

// Error is the error class for this package.
var Error = errs.Class("decimal")
