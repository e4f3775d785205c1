package float

import (
	"math/big"

	"github.com/calebcase/numeral/rational"
)

// Kind classifies a Wide value.
type Kind uint8

const (
	Finite Kind = iota
	Infinite
	NaNKind
)

func (k Kind) String() string {
	switch k {
	case Finite:
		return "finite"
	case Infinite:
		return "infinite"
	case NaNKind:
		return "nan"
	}

	return "unknown"
}

// Wide is an unrounded intermediate: an exact rational, a signed infinity or
// NaN. The sign of a zero is kept so that -0 survives a round trip.
//
// The zero Wide is +0.
type Wide struct {
	kind Kind
	neg  bool
	rat  rational.Rat
}

// WideRat returns the exact value r.
func WideRat(r rational.Rat) Wide {
	return Wide{neg: r.Sign() < 0, rat: r}
}

// WideZero returns a zero with the given sign.
func WideZero(negative bool) Wide {
	return Wide{neg: negative}
}

// WideInf returns +Inf for sign >= 0 and -Inf otherwise.
func WideInf(sign int) Wide {
	return Wide{kind: Infinite, neg: sign < 0}
}

// WideNaN returns NaN.
func WideNaN() Wide {
	return Wide{kind: NaNKind}
}

// Kind returns the class of w.
func (w Wide) Kind() Kind {
	return w.kind
}

// IsNaN reports whether w is NaN.
func (w Wide) IsNaN() bool {
	return w.kind == NaNKind
}

// IsInf reports whether w is an infinity.
func (w Wide) IsInf() bool {
	return w.kind == Infinite
}

// IsZero reports whether w is a zero of either sign.
func (w Wide) IsZero() bool {
	return w.kind == Finite && w.rat.IsZero()
}

// Signbit reports whether w is negative or a negative zero.
func (w Wide) Signbit() bool {
	return w.neg
}

// Rat returns the exact value of a finite w and false otherwise.
func (w Wide) Rat() (rational.Rat, bool) {
	if w.kind != Finite {
		return rational.Rat{}, false
	}

	return w.rat, true
}

// Neg flips the sign.
func (w Wide) Neg() Wide {
	if w.kind == NaNKind {
		return w
	}

	return Wide{kind: w.kind, neg: !w.neg, rat: w.rat.Neg()}
}

// Abs clears the sign.
func (w Wide) Abs() Wide {
	if w.kind == NaNKind {
		return w
	}

	return Wide{kind: w.kind, rat: w.rat.Abs()}
}

// Add returns w + x.
func (w Wide) Add(x Wide) Wide {
	switch {
	case w.kind == NaNKind || x.kind == NaNKind:
		return WideNaN()
	case w.kind == Infinite && x.kind == Infinite:
		if w.neg != x.neg {
			return WideNaN()
		}

		return w
	case w.kind == Infinite:
		return w
	case x.kind == Infinite:
		return x
	}

	sum := w.rat.Add(x.rat)
	if sum.IsZero() {
		// Exact cancellation rounds to +0; only -0 + -0 stays negative.
		return WideZero(w.neg && x.neg && w.rat.IsZero() && x.rat.IsZero())
	}

	return WideRat(sum)
}

// Sub returns w - x.
func (w Wide) Sub(x Wide) Wide {
	return w.Add(x.Neg())
}

// Mul returns w * x.
func (w Wide) Mul(x Wide) Wide {
	neg := w.neg != x.neg

	switch {
	case w.kind == NaNKind || x.kind == NaNKind:
		return WideNaN()
	case w.kind == Infinite || x.kind == Infinite:
		if w.IsZero() || x.IsZero() {
			return WideNaN()
		}

		return Wide{kind: Infinite, neg: neg}
	}

	p := w.rat.Mul(x.rat)
	if p.IsZero() {
		return WideZero(neg)
	}

	return WideRat(p)
}

// Quo returns w / x. Division by zero gives a signed infinity, or NaN for
// 0/0.
func (w Wide) Quo(x Wide) Wide {
	neg := w.neg != x.neg

	switch {
	case w.kind == NaNKind || x.kind == NaNKind:
		return WideNaN()
	case w.kind == Infinite && x.kind == Infinite:
		return WideNaN()
	case w.kind == Infinite:
		return Wide{kind: Infinite, neg: neg}
	case x.kind == Infinite:
		return WideZero(neg)
	case x.rat.IsZero():
		if w.rat.IsZero() {
			return WideNaN()
		}

		return Wide{kind: Infinite, neg: neg}
	}

	q, err := w.rat.Quo(x.rat)
	if err != nil || q.IsZero() {
		return WideZero(neg)
	}

	return WideRat(q)
}

// Cmp compares w and x. ordered is false when either is NaN. Zeros compare
// equal whatever their sign.
func (w Wide) Cmp(x Wide) (c int, ordered bool) {
	if w.kind == NaNKind || x.kind == NaNKind {
		return 0, false
	}

	rank := func(v Wide) int {
		if v.kind != Infinite {
			return 0
		}
		if v.neg {
			return -1
		}

		return 1
	}

	rw, rx := rank(w), rank(x)
	switch {
	case rw < rx:
		return -1, true
	case rw > rx:
		return 1, true
	case rw != 0:
		return 0, true
	}

	return w.rat.Cmp(x.rat), true
}

func (w Wide) String() string {
	switch w.kind {
	case NaNKind:
		return "NaN"
	case Infinite:
		if w.neg {
			return "-Inf"
		}

		return "+Inf"
	}

	if w.neg && w.rat.IsZero() {
		return "-0"
	}

	return w.rat.String()
}

// Round rounds w into p with round half to even.
func (w Wide) Round(p Profile) (_ Float, err error) {
	defer Error.WrapP(&err)

	err = p.Validate()
	if err != nil {
		return Float{}, err
	}

	return w.round(p), nil
}

// round assumes a valid profile.
func (w Wide) round(p Profile) Float {
	switch w.kind {
	case NaNKind:
		return NaN(p)
	case Infinite:
		return Inf(p, signOf(w.neg))
	}

	if w.rat.IsZero() {
		return Zero(p, w.neg)
	}

	a := w.rat.Abs()
	n, d := a.Num(), a.Den()

	s := int(p.SignificandBits)

	// e = floor(log2 a)
	e := n.BitLen() - d.BitLen()
	if shiftCmp(n, d, e) < 0 {
		e--
	}
	if e > p.MaxExponent() {
		return Inf(p, signOf(w.neg))
	}
	if e < p.MinExponent() {
		e = p.MinExponent()
	}

	// m = round(a * 2^(s-e)) lies in [2^s, 2^(s+1)] for normal values and
	// below 2^s for subnormals. A carry to 2^(s+1) moves into the exponent
	// field on its own.
	num, den := new(big.Int).Set(n), new(big.Int).Set(d)
	if k := s - e; k >= 0 {
		num.Lsh(num, uint(k))
	} else {
		den.Lsh(den, uint(-k))
	}
	m := roundHalfEven(num, den)

	pattern := big.NewInt(int64(e + p.Bias() - 1))
	pattern.Lsh(pattern, uint(s))
	pattern.Add(pattern, m)

	if pattern.Cmp(infPattern(p)) >= 0 {
		return Inf(p, signOf(w.neg))
	}
	if w.neg {
		pattern.SetBit(pattern, int(p.Width()-1), 1)
	}

	return fromPattern(p, pattern)
}

// shiftCmp compares n with d * 2^e.
func shiftCmp(n, d *big.Int, e int) int {
	if e >= 0 {
		return n.Cmp(new(big.Int).Lsh(d, uint(e)))
	}

	return new(big.Int).Lsh(n, uint(-e)).Cmp(d)
}

// roundHalfEven returns n/d rounded to the nearest integer, ties to even. n
// and d are positive.
func roundHalfEven(n, d *big.Int) *big.Int {
	q, r := new(big.Int).QuoRem(n, d, new(big.Int))

	r.Lsh(r, 1)
	switch r.Cmp(d) {
	case 1:
		q.Add(q, big.NewInt(1))
	case 0:
		if q.Bit(0) == 1 {
			q.Add(q, big.NewInt(1))
		}
	}

	return q
}

func signOf(neg bool) int {
	if neg {
		return -1
	}

	return 1
}
