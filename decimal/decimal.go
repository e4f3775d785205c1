package decimal

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/calebcase/numeral"
	"github.com/calebcase/numeral/rational"
)

// Block is a number split into a mantissa and a power of ten.
type Block struct {
	Mantissa rational.Rat
	Exponent int
}

// Value returns Mantissa * 10^Exponent.
func (b Block) Value() rational.Rat {
	return shift(b.Mantissa, b.Exponent)
}

// String returns the canonical exponential form, e.g. "1.(3)e-1".
func (b Block) String() string {
	return canonical(b.Mantissa, b.Mantissa.Expand(numeral.Dec, DefaultScale)) + "e" + strconv.Itoa(b.Exponent)
}

// canonical returns the exact string of r given its expansion x: the
// expansion once its cycle closes within CanonicalScale digits, the fraction
// p/q otherwise.
func canonical(r rational.Rat, x rational.Expansion) string {
	if !x.Complete && len(x.Fraction) < CanonicalScale {
		x = r.Expand(numeral.Dec, CanonicalScale)
	}
	if x.Complete {
		return x.String()
	}

	return r.LowestTerms().String()
}

// Split returns r as a Block whose exponent is a multiple of step and whose
// mantissa has a magnitude in [1, 10^step). Zero splits into 0e0. A step
// below 1 is taken as 1.
func Split(r rational.Rat, step int) Block {
	if r.IsZero() {
		return Block{}
	}
	if step < 1 {
		step = 1
	}

	e := floorLog10(r.Abs())
	e = floorDiv(e, step) * step

	return Block{
		Mantissa: shift(r, -e),
		Exponent: e,
	}
}

// floorLog10 returns floor(log10 r) for r > 0.
func floorLog10(r rational.Rat) int {
	n, d := r.Num(), r.Den()

	// r is in (10^(e-1), 10^(e+1)).
	e := len(n.String()) - len(d.String())
	if cmpPow10(n, d, e) < 0 {
		e--
	}

	return e
}

// cmpPow10 compares n with d * 10^e.
func cmpPow10(n, d *big.Int, e int) int {
	if e >= 0 {
		return n.Cmp(new(big.Int).Mul(d, pow10(e)))
	}

	return new(big.Int).Mul(n, pow10(-e)).Cmp(d)
}

func pow10(n int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}

	return q
}

// shift returns r * 10^k.
func shift(r rational.Rat, k int) rational.Rat {
	switch {
	case k > 0:
		return r.Mul(rational.FromInt(pow10(k)))
	case k < 0:
		q, _ := r.Quo(rational.FromInt(pow10(-k)))

		return q
	}

	return r
}

// Parse reads a canonical string back into its exact value:
//
//  [-]digits[.digits][(cycle)][e[-]digits]
//  [-]digits/digits[e[-]digits]
func Parse(s string) (_ rational.Rat, err error) {
	defer Error.WrapP(&err)

	s = strings.TrimSpace(s)

	mant, exp, ok := strings.Cut(strings.ToLower(s), "e")

	var r rational.Rat
	if strings.Contains(mant, "/") {
		r, err = rational.ParseFraction(mant)
	} else {
		r, err = rational.ParseRecurring(mant, numeral.Dec)
	}
	if err != nil {
		return rational.Rat{}, err
	}
	if !ok {
		return r, nil
	}

	k, err := strconv.Atoi(exp)
	if err != nil {
		return rational.Rat{}, numeral.MalformedNumber.New("exponent %q", exp)
	}
	if k > MaxExponent || k < -MaxExponent {
		return rational.Rat{}, numeral.UnsupportedPrecision.New("exponent %d beyond ±%d", k, MaxExponent)
	}

	return shift(r, k), nil
}
