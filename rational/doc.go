// Package rational provides an immutable exact fraction over arbitrary
// precision integers.
//
// The value of a Rat is:
//
//  value = numerator / denominator
//
// The denominator is never zero and the sign is always carried by the
// numerator. Constructors keep the terms they are given (6/4 stays 6/4) until
// LowestTerms is called; the results of arithmetic are always in lowest terms.
//
// Views
//
// Several derived views are computed on demand:
//
//  | Method             | 5/12 yields                                  |
//  |--------------------|----------------------------------------------|
//  | Mixed              | 0 and 5/12                                   |
//  | ContinuedFraction  | [0; 2, 2, 2]                                 |
//  | EgyptianFractions  | 1/3 + 1/12                                   |
//  | Recurring(32)      | prefix "0.41", cycle "6", period 1           |
//  | Factorize          | 5 / 2^2 3                                    |
//
// Recurring expansions are found by long division: every remainder is
// recorded with the digit position where it first appeared and the first
// repeated remainder marks the start of the cycle. A denominator whose prime
// factors all divide the radix (2 and 5 for radix 10) terminates with period 0.
//
// Factorizing large terms is expensive. A Factorizer remembers the prime
// split of recent terms and factorizes batches concurrently.
//
// Errors
//
// A zero denominator, at construction or division, is a
// numeral.DivisionByZero error. Strings that do not parse are
// numeral.MalformedNumber errors.
package rational

import "github.com/zeebo/errs"

// Error is the error class for this package.
var Error = errs.Class("rational")
