package rational

import (
	"math/big"
	"strings"

	"github.com/calebcase/numeral"
)

// Expansion is the positional expansion of a rational number in some radix:
//
//  [-]Integer.Fraction(Cycle)
//
// Cycle repeats forever. It is empty when the expansion terminates.
type Expansion struct {
	Radix    numeral.Radix
	Negative bool
	Integer  string
	Fraction string
	Cycle    string

	// Complete is false when the digit budget ran out before the expansion
	// either terminated or repeated. Fraction then holds the digits
	// computed so far.
	Complete bool
}

// Period returns the length of the recurring cycle, 0 for a terminating
// expansion.
func (e Expansion) Period() int {
	return len(e.Cycle)
}

// Prefix returns the sign, the integer digits, the radix point and the
// non-recurring fraction digits. The point is present whenever there is a
// fraction or a cycle, so 1/3 gives "0." and 1/4 gives "0.25".
func (e Expansion) Prefix() string {
	var b strings.Builder

	if e.Negative {
		b.WriteByte('-')
	}
	b.WriteString(e.Integer)
	if e.Fraction != "" || e.Cycle != "" {
		b.WriteByte('.')
		b.WriteString(e.Fraction)
	}

	return b.String()
}

// Markup returns the expansion with the cycle enclosed by open and close.
func (e Expansion) Markup(open, close string) string {
	if e.Cycle == "" {
		return e.Prefix()
	}

	return e.Prefix() + open + e.Cycle + close
}

// String returns the canonical form, e.g. "0.1(6)". ParseRecurring reads it
// back.
func (e Expansion) String() string {
	return e.Markup("(", ")")
}

// Digits returns the first n fraction digits, repeating the cycle as
// needed. Fewer digits are returned only when the expansion terminates
// earlier or is incomplete.
func (e Expansion) Digits(n int) string {
	if len(e.Fraction) >= n || e.Cycle == "" {
		if len(e.Fraction) > n {
			return e.Fraction[:n]
		}

		return e.Fraction
	}

	var b strings.Builder
	b.WriteString(e.Fraction)
	for b.Len() < n {
		b.WriteString(e.Cycle)
	}

	return b.String()[:n]
}

// Truncated returns the expansion cut at scale fraction digits, without
// markup.
func (e Expansion) Truncated(scale int) string {
	frac := e.Digits(scale)

	var b strings.Builder
	if e.Negative && (strings.Trim(e.Integer, "0") != "" || strings.Trim(frac, "0") != "") {
		b.WriteByte('-')
	}
	b.WriteString(e.Integer)
	if frac != "" {
		b.WriteByte('.')
		b.WriteString(frac)
	}

	return b.String()
}

// Recurring returns the decimal expansion of r, computing at most scale
// fraction digits while looking for the cycle.
func (r Rat) Recurring(scale int) Expansion {
	return r.Expand(numeral.Dec, scale)
}

// Expand returns the expansion of r in radix by long division. Every
// remainder is remembered with the position of the digit it produced; the
// first remainder seen twice closes the cycle. A terminating expansion has
// no cycle, so its remainders are not remembered. At most scale fraction
// digits are produced.
func (r Rat) Expand(radix numeral.Radix, scale int) Expansion {
	d := r.d()
	rem := new(big.Int)
	whole, _ := new(big.Int).QuoRem(new(big.Int).Abs(r.n()), d, rem)

	e := Expansion{
		Radix:    radix,
		Negative: r.Sign() < 0,
		Integer:  whole.Text(int(radix)),
	}

	if rem.Sign() == 0 {
		e.Complete = true

		return e
	}

	base := big.NewInt(int64(radix))
	track := !r.Terminates(radix)
	seen := map[string]int{}
	digits := make([]byte, 0, 16)
	q := new(big.Int)

	for len(digits) < scale {
		if track {
			key := string(rem.Bytes())
			if pos, ok := seen[key]; ok {
				e.Fraction = string(digits[:pos])
				e.Cycle = string(digits[pos:])
				e.Complete = true

				return e
			}
			seen[key] = len(digits)
		}

		rem.Mul(rem, base)
		q.QuoRem(rem, d, rem)
		digits = append(digits, numeral.DigitChar(int(q.Int64())))

		if rem.Sign() == 0 {
			e.Fraction = string(digits)
			e.Complete = true

			return e
		}
	}

	// The cycle may close exactly at the budget.
	if pos, ok := seen[string(rem.Bytes())]; ok {
		e.Fraction = string(digits[:pos])
		e.Cycle = string(digits[pos:])
		e.Complete = true

		return e
	}

	e.Fraction = string(digits)

	return e
}

// Terminates reports whether the expansion of r in radix is finite: every
// prime factor of the reduced denominator divides the radix.
func (r Rat) Terminates(radix numeral.Radix) bool {
	d := r.LowestTerms().Den()
	base := big.NewInt(int64(radix))
	g := new(big.Int)

	for {
		g.GCD(nil, nil, d, base)
		if g.Cmp(one) == 0 {
			break
		}
		for new(big.Int).Rem(d, g).Sign() == 0 {
			d.Quo(d, g)
		}
	}

	return d.Cmp(one) == 0
}

// FromExpansion returns the exact value of e. An incomplete expansion gives
// the value of its digits.
func FromExpansion(e Expansion) (Rat, error) {
	return fromDigits(e.Radix, e.Negative, e.Integer, e.Fraction, e.Cycle)
}

// fromDigits computes
//
//  (int frac cycle - int frac) / (R^(f+c) - R^f)
//
// where the digit strings are read as integers in radix R.
func fromDigits(radix numeral.Radix, negative bool, integer, fraction, cycle string) (Rat, error) {
	if !radix.Valid() {
		return Rat{}, Error.Wrap(numeral.UnsupportedPrecision.New("radix %d", int(radix)))
	}
	if integer == "" {
		integer = "0"
	}

	head, ok := new(big.Int).SetString(integer+fraction, int(radix))
	if !ok {
		return Rat{}, Error.Wrap(numeral.MalformedNumber.New("%q in %s", integer+"."+fraction, radix))
	}

	base := big.NewInt(int64(radix))
	f := new(big.Int).Exp(base, big.NewInt(int64(len(fraction))), nil)

	var n, d *big.Int
	if cycle == "" {
		n, d = head, f
	} else {
		full, ok := new(big.Int).SetString(integer+fraction+cycle, int(radix))
		if !ok {
			return Rat{}, Error.Wrap(numeral.MalformedNumber.New("cycle %q in %s", cycle, radix))
		}

		n = full.Sub(full, head)
		d = new(big.Int).Exp(base, big.NewInt(int64(len(fraction)+len(cycle))), nil)
		d.Sub(d, f)
	}

	if negative {
		n.Neg(n)
	}

	return reduced(n, d), nil
}
