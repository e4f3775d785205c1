// Package integer emulates a hardware register of a chosen width under one of
// seven encodings.
//
// An Int is a bit pattern plus the Schema (width and encoding) it is read
// under. Arithmetic decodes the operands, computes exactly and stores the
// result back, wrapping the way the encoding wraps. Bitwise operations,
// rotations and logical shifts work on the raw pattern.
//
// Encodings
//
// For a width of w bits (M = 2^w, H = 2^(w-1)):
//
//  | Encoding       | Range            | Store v as                 | Negate            |
//  |----------------|------------------|----------------------------|-------------------|
//  | TwosComplement | [-H, H-1]        | v mod M                    | NOT then +1       |
//  | OnesComplement | [-(H-1), H-1]    | v mod (M-1)                | NOT               |
//  | SignMagnitude  | [-(H-1), H-1]    | sign bit, |v| mod H        | flip the top bit  |
//  | ExcessN        | [-H, H-1]        | (v + H) mod M              | M - pattern       |
//  | Negabinary     | see below        | base -2 digits             | (-2)x + x         |
//  | Unsigned       | [0, M-1]         | v mod M                    | M - pattern       |
//  | Unbounded      | [-H, H-1]        | v, no wrap                 | -v                |
//
// Ones' complement and sign-magnitude have a negative zero pattern. It
// decodes to zero and is never produced by arithmetic.
//
// Negabinary has no sign bit. With m = 0b...1010 (the odd positions) a
// pattern p is worth (p XOR m) - m, so a byte holds [-170, 85]:
//
//  +5 = 0000_0101  (4 + 1)
//  -5 = 0000_1111  (-8 + 4 - 2 + 1)
//
// Unbounded never wraps. With a fixed width it keeps the two's complement
// layout and reports results outside that range as numeral.Overflow. With
// the Unlimited width it is an arbitrary precision integer bounded only by
// MaxUnboundedBits.
//
// Shifts and rotations
//
// Amounts are taken modulo the width, so shifting a byte by 9 is the same as
// shifting it by 1, and negative amounts go the other way. Two's complement,
// ones' complement, sign-magnitude, unsigned and unbounded shifts scale the
// value; excess-n and negabinary shifts move the raw pattern.
//
// Division
//
// Quo and Rem follow DivisionPolicies, which truncates toward zero for every
// encoding. QuoRemPolicy accepts an explicit Floored policy.
package integer

import "github.com/zeebo/errs"

// Error is the error class for this package.
var Error = errs.Class("integer")
