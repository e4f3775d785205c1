package rational

import (
	"fmt"
	"math/big"

	"github.com/calebcase/numeral"
)

var (
	zero = big.NewInt(0)
	one  = big.NewInt(1)
	ten  = big.NewInt(10)
)

// Rat is an exact fraction. The zero value is 0/1.
//
// A Rat never mutates the integers it holds, so values may be copied and
// shared freely between goroutines.
type Rat struct {
	num *big.Int
	den *big.Int
}

// Zero and One.
var (
	Zero = Rat{}
	One  = Rat{num: one, den: one}
)

// New returns num/den. The terms are copied and not reduced. A negative
// denominator moves its sign to the numerator.
func New(num, den *big.Int) (Rat, error) {
	if den.Sign() == 0 {
		return Rat{}, Error.Wrap(numeral.DivisionByZero.New("%s/0", num))
	}

	n := new(big.Int).Set(num)
	d := new(big.Int).Set(den)
	if d.Sign() < 0 {
		n.Neg(n)
		d.Neg(d)
	}

	return Rat{num: n, den: d}, nil
}

// NewInt64 returns num/den.
func NewInt64(num, den int64) (Rat, error) {
	return New(big.NewInt(num), big.NewInt(den))
}

// MustNew is like NewInt64 but panics if den is zero. It simplifies
// initialization of constants.
func MustNew(num, den int64) Rat {
	r, err := NewInt64(num, den)
	if err != nil {
		panic(fmt.Sprintf("MustNew(%d, %d) failed: %v", num, den, err))
	}

	return r
}

// FromInt returns i/1.
func FromInt(i *big.Int) Rat {
	return Rat{num: new(big.Int).Set(i), den: one}
}

// FromInt64 returns i/1.
func FromInt64(i int64) Rat {
	return Rat{num: big.NewInt(i), den: one}
}

// FromBigRat returns the value of x.
func FromBigRat(x *big.Rat) Rat {
	return Rat{
		num: new(big.Int).Set(x.Num()),
		den: new(big.Int).Set(x.Denom()),
	}
}

// n and d return the terms without copying. Callers must not modify them.
func (r Rat) n() *big.Int {
	if r.num == nil {
		return zero
	}

	return r.num
}

func (r Rat) d() *big.Int {
	if r.den == nil {
		return one
	}

	return r.den
}

// reduced builds a Rat in lowest terms from terms the caller owns.
func reduced(n, d *big.Int) Rat {
	if d.Sign() < 0 {
		n.Neg(n)
		d.Neg(d)
	}

	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(n), d)
	if g.Cmp(one) != 0 && g.Sign() != 0 {
		n.Quo(n, g)
		d.Quo(d, g)
	}

	return Rat{num: n, den: d}
}

// Num returns a copy of the numerator.
func (r Rat) Num() *big.Int {
	return new(big.Int).Set(r.n())
}

// Den returns a copy of the denominator. It is always positive.
func (r Rat) Den() *big.Int {
	return new(big.Int).Set(r.d())
}

// BigRat returns the value as a *big.Rat.
func (r Rat) BigRat() *big.Rat {
	return new(big.Rat).SetFrac(r.n(), r.d())
}

// Add returns r + x.
func (r Rat) Add(x Rat) Rat {
	n := new(big.Int).Mul(r.n(), x.d())
	n.Add(n, new(big.Int).Mul(x.n(), r.d()))

	return reduced(n, new(big.Int).Mul(r.d(), x.d()))
}

// Sub returns r - x.
func (r Rat) Sub(x Rat) Rat {
	n := new(big.Int).Mul(r.n(), x.d())
	n.Sub(n, new(big.Int).Mul(x.n(), r.d()))

	return reduced(n, new(big.Int).Mul(r.d(), x.d()))
}

// Mul returns r * x.
func (r Rat) Mul(x Rat) Rat {
	return reduced(
		new(big.Int).Mul(r.n(), x.n()),
		new(big.Int).Mul(r.d(), x.d()),
	)
}

// Quo returns r / x.
func (r Rat) Quo(x Rat) (Rat, error) {
	if x.IsZero() {
		return Rat{}, Error.Wrap(numeral.DivisionByZero.New("%s / 0", r))
	}

	return reduced(
		new(big.Int).Mul(r.n(), x.d()),
		new(big.Int).Mul(r.d(), x.n()),
	), nil
}

// Rem returns the remainder of r / x after truncating the quotient toward
// zero. The result has the sign of r.
func (r Rat) Rem(x Rat) (Rat, error) {
	q, err := r.Quo(x)
	if err != nil {
		return Rat{}, err
	}

	t := FromInt(q.Trunc())

	return r.Sub(t.Mul(x)), nil
}

// Inv returns 1 / r.
func (r Rat) Inv() (Rat, error) {
	return One.Quo(r)
}

// Pow returns r raised to the integer power e. A negative exponent inverts r
// first, so 0^-e is a division by zero.
func (r Rat) Pow(e int) (Rat, error) {
	base := r
	if e < 0 {
		var err error
		base, err = r.Inv()
		if err != nil {
			return Rat{}, err
		}
		e = -e
	}

	x := big.NewInt(int64(e))

	return reduced(
		new(big.Int).Exp(base.n(), x, nil),
		new(big.Int).Exp(base.d(), x, nil),
	), nil
}

// Neg returns -r.
func (r Rat) Neg() Rat {
	return Rat{num: new(big.Int).Neg(r.n()), den: r.d()}
}

// Abs returns |r|.
func (r Rat) Abs() Rat {
	if r.Sign() >= 0 {
		return r
	}

	return r.Neg()
}

// Sign returns -1, 0 or +1.
func (r Rat) Sign() int {
	return r.n().Sign()
}

// IsZero reports whether r == 0.
func (r Rat) IsZero() bool {
	return r.n().Sign() == 0
}

// Cmp compares r and x and returns -1, 0 or +1.
func (r Rat) Cmp(x Rat) int {
	a := new(big.Int).Mul(r.n(), x.d())
	b := new(big.Int).Mul(x.n(), r.d())

	return a.Cmp(b)
}

// Equal reports whether r and x have the same value, regardless of terms.
func (r Rat) Equal(x Rat) bool {
	return r.Cmp(x) == 0
}

// LowestTerms divides both terms by their greatest common divisor.
func (r Rat) LowestTerms() Rat {
	return reduced(r.Num(), r.Den())
}

// IsLowestTerms reports whether gcd(numerator, denominator) == 1.
func (r Rat) IsLowestTerms() bool {
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(r.n()), r.d())

	return g.Cmp(one) == 0
}

// GCD returns the greatest common divisor of r and x: the largest rational g
// such that r/g and x/g are both integers. It is
// gcd(numerators) / lcm(denominators) with both operands in lowest terms.
func (r Rat) GCD(x Rat) Rat {
	a, b := r.LowestTerms(), x.LowestTerms()

	n := new(big.Int).GCD(nil, nil, new(big.Int).Abs(a.n()), new(big.Int).Abs(b.n()))
	if n.Sign() == 0 {
		return Rat{}
	}

	return reduced(n, lcm(a.d(), b.d()))
}

// LCM returns the least common multiple of the denominators of r and x in
// lowest terms, the common denominator used to add them.
func (r Rat) LCM(x Rat) *big.Int {
	return lcm(r.LowestTerms().d(), x.LowestTerms().d())
}

func lcm(a, b *big.Int) *big.Int {
	a = new(big.Int).Abs(a)
	b = new(big.Int).Abs(b)
	if a.Sign() == 0 || b.Sign() == 0 {
		return new(big.Int)
	}

	g := new(big.Int).GCD(nil, nil, a, b)
	l := new(big.Int).Quo(a, g)

	return l.Mul(l, b)
}

// IsInteger reports whether the denominator divides the numerator.
func (r Rat) IsInteger() bool {
	return new(big.Int).Rem(r.n(), r.d()).Sign() == 0
}

// IsProper reports whether |r| < 1.
func (r Rat) IsProper() bool {
	return new(big.Int).Abs(r.n()).Cmp(r.d()) < 0
}

// Trunc returns the integer part of r, truncated toward zero.
func (r Rat) Trunc() *big.Int {
	return new(big.Int).Quo(r.n(), r.d())
}

// Floor returns the greatest integer <= r.
func (r Rat) Floor() *big.Int {
	q := new(big.Int)
	m := new(big.Int)
	q.DivMod(r.n(), r.d(), m)

	return q
}

// Mixed returns the integer part (truncated toward zero) and the proper
// remainder, so that r == whole + frac. Both parts share the sign of r.
func (r Rat) Mixed() (whole *big.Int, frac Rat) {
	q, m := new(big.Int).QuoRem(r.n(), r.d(), new(big.Int))

	return q, reduced(m, r.Den())
}

// Percent returns r * 100.
func (r Rat) Percent() Rat {
	return r.Mul(FromInt64(100))
}

// Float64 returns the nearest float64 and whether it is exact.
func (r Rat) Float64() (f float64, exact bool) {
	return r.BigRat().Float64()
}

// String returns "num/den", or "num" when the denominator is 1.
func (r Rat) String() string {
	if r.d().Cmp(one) == 0 {
		return r.n().String()
	}

	return r.n().String() + "/" + r.d().String()
}

// FloatString returns r in decimal with scale digits after the point,
// truncated toward zero.
func (r Rat) FloatString(scale int) string {
	e := r.Expand(numeral.Dec, scale)

	return e.Truncated(scale)
}
