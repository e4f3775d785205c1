package rational

import (
	"math/big"
	"strings"

	"github.com/calebcase/numeral"
	"github.com/cockroachdb/apd/v3"
	"github.com/govalues/decimal"
)

// DefaultPrecision is the number of significant digits used by Decimal when
// no context is given.
const DefaultPrecision = 34

// Parse returns the value of the decimal string s, e.g. "-12.5e-3". When ctx
// has a nonzero precision the value is first rounded by ctx; a nil ctx or a
// zero precision keeps every digit. Exponents past the apd limit of
// ±apd.MaxExponent are a MalformedNumber error.
func Parse(s string, ctx *apd.Context) (_ Rat, err error) {
	defer Error.WrapP(&err)

	d, _, err := apd.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Rat{}, numeral.MalformedNumber.Wrap(err)
	}
	if d.Form != apd.Finite {
		return Rat{}, numeral.MalformedNumber.New("%q is not finite", s)
	}

	if ctx != nil && ctx.Precision > 0 {
		_, err = ctx.Round(d, d)
		if err != nil {
			return Rat{}, numeral.UnsupportedPrecision.Wrap(err)
		}
	}

	return FromAPD(d), nil
}

// ParseFraction returns the value of "p/q" or "p". The terms are kept as
// written.
func ParseFraction(s string) (_ Rat, err error) {
	defer Error.WrapP(&err)

	s = strings.TrimSpace(s)
	ns, ds, found := strings.Cut(s, "/")

	n, ok := new(big.Int).SetString(strings.TrimSpace(ns), 10)
	if !ok {
		return Rat{}, numeral.MalformedNumber.New("numerator of %q", s)
	}
	if !found {
		return Rat{num: n, den: one}, nil
	}

	d, ok := new(big.Int).SetString(strings.TrimSpace(ds), 10)
	if !ok {
		return Rat{}, numeral.MalformedNumber.New("denominator of %q", s)
	}

	return New(n, d)
}

// ParseRecurring returns the exact value of a positional numeral in radix
// with an optional recurring cycle in parentheses:
//
//  0.1(6)   = 1/6
//  -2.(3)   = -7/3
//  0.(0011) = 1/5 in radix 2
//
// It is the inverse of Expansion.String.
func ParseRecurring(s string, radix numeral.Radix) (_ Rat, err error) {
	defer Error.WrapP(&err)

	e, err := parseExpansion(s, radix)
	if err != nil {
		return Rat{}, err
	}

	return FromExpansion(e)
}

func parseExpansion(s string, radix numeral.Radix) (e Expansion, err error) {
	e.Radix = radix
	e.Complete = true

	s = strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(s, "-"):
		e.Negative = true
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}

	if open := strings.IndexByte(s, '('); open >= 0 {
		if !strings.HasSuffix(s, ")") || open+2 > len(s)-1 {
			return e, numeral.MalformedNumber.New("unbalanced cycle in %q", s)
		}
		e.Cycle = s[open+1 : len(s)-1]
		s = s[:open]
		if !strings.Contains(s, ".") {
			return e, numeral.MalformedNumber.New("cycle without a point in %q", s)
		}
	}

	e.Integer, e.Fraction, _ = strings.Cut(s, ".")
	if e.Integer == "" && e.Fraction == "" && e.Cycle == "" {
		return e, numeral.MalformedNumber.New("no digits")
	}

	for _, part := range []string{e.Integer, e.Fraction, e.Cycle} {
		for i := 0; i < len(part); i++ {
			if _, ok := radix.Digit(part[i]); !ok {
				return e, numeral.MalformedNumber.New("digit %q in %s", part[i], radix)
			}
		}
	}

	return e, nil
}

// FromAPD returns the exact value of the finite decimal d.
func FromAPD(d *apd.Decimal) Rat {
	n := d.Coeff.MathBigInt()
	if d.Negative {
		n.Neg(n)
	}

	exp := int64(d.Exponent)
	if exp >= 0 {
		n.Mul(n, new(big.Int).Exp(ten, big.NewInt(exp), nil))

		return Rat{num: n, den: one}
	}

	return reduced(n, new(big.Int).Exp(ten, big.NewInt(-exp), nil))
}

// Decimal returns r rounded to the precision of ctx. A nil ctx rounds half to
// even at DefaultPrecision significant digits.
func (r Rat) Decimal(ctx *apd.Context) (_ *apd.Decimal, err error) {
	defer Error.WrapP(&err)

	if ctx == nil {
		ctx = apd.BaseContext.WithPrecision(DefaultPrecision)
		ctx.Rounding = apd.RoundHalfEven
	}

	n := apd.NewWithBigInt(new(apd.BigInt).SetMathBigInt(r.n()), 0)
	if r.d().Cmp(one) == 0 {
		if ctx.Precision > 0 {
			_, err = ctx.Round(n, n)
			if err != nil {
				return nil, numeral.UnsupportedPrecision.Wrap(err)
			}
		}

		return n, nil
	}

	if ctx.Precision == 0 {
		return nil, numeral.UnsupportedPrecision.New("division needs a nonzero precision")
	}

	d := apd.NewWithBigInt(new(apd.BigInt).SetMathBigInt(r.d()), 0)
	out := new(apd.Decimal)
	_, err = ctx.Quo(out, n, d)
	if err != nil {
		return nil, numeral.UnsupportedPrecision.Wrap(err)
	}

	return out, nil
}

// FromDecimal returns the exact value of a fixed point decimal.
func FromDecimal(d decimal.Decimal) Rat {
	n := new(big.Int).SetUint64(d.Coef())
	if d.IsNeg() {
		n.Neg(n)
	}

	return reduced(n, new(big.Int).Exp(ten, big.NewInt(int64(d.Scale())), nil))
}

// ToDecimal returns r as a fixed point decimal with at most scale fraction
// digits, rounded half to even. Values that need more than the 19 digits a
// decimal.Decimal holds are an UnsupportedPrecision error.
func (r Rat) ToDecimal(scale int) (_ decimal.Decimal, err error) {
	defer Error.WrapP(&err)

	if scale < 0 {
		scale = 0
	}

	pow := new(big.Int).Exp(ten, big.NewInt(int64(scale)), nil)
	v := reduced(roundHalfEven(r.Mul(FromInt(pow))), pow)

	d, err := decimal.Parse(v.FloatString(scale))
	if err != nil {
		return decimal.Decimal{}, numeral.UnsupportedPrecision.Wrap(err)
	}

	// Parse rounds away fraction digits past its coefficient.
	if !FromDecimal(d).Equal(v) {
		return decimal.Decimal{}, numeral.UnsupportedPrecision.New("%s needs more than %d digits", v, decimal.MaxPrec)
	}

	return d, nil
}

// roundHalfEven returns the integer nearest to r, ties to even.
func roundHalfEven(r Rat) *big.Int {
	q, m := new(big.Int).DivMod(r.n(), r.d(), new(big.Int))

	// Compare 2m with d.
	m.Lsh(m, 1)
	switch m.Cmp(r.d()) {
	case 1:
		q.Add(q, one)
	case 0:
		if q.Bit(0) == 1 {
			q.Add(q, one)
		}
	}

	return q
}
