package float

import (
	"math"
	"math/big"

	"github.com/calebcase/numeral/integer"
	"github.com/calebcase/numeral/rational"
)

// Float is a floating point value of some Profile, held as its bit pattern.
// Float is immutable.
//
// The zero Float is +0 in the Double profile.
type Float struct {
	profile Profile
	bits    integer.Int
}

func (f Float) prof() Profile {
	if f.profile.ExponentBits == 0 {
		return Double
	}

	return f.profile
}

func (f Float) pattern() *big.Int {
	return f.bits.Bits()
}

// fromPattern assumes p is valid and pattern fits.
func fromPattern(p Profile, pattern *big.Int) Float {
	bits, err := integer.FromBits(p.Schema(), pattern)
	if err != nil {
		panic(err)
	}

	return Float{profile: p, bits: bits}
}

func fieldMask(n uint) *big.Int {
	m := new(big.Int).Lsh(big.NewInt(1), n)

	return m.Sub(m, big.NewInt(1))
}

// infPattern is the positive infinity: the exponent field all ones.
func infPattern(p Profile) *big.Int {
	return new(big.Int).Lsh(fieldMask(p.ExponentBits), p.SignificandBits)
}

// New rounds r into p.
func New(p Profile, r rational.Rat) (Float, error) {
	return WideRat(r).Round(p)
}

// FromBits returns the Float of p with the raw pattern bits. A pattern wider
// than the profile is a MalformedNumber error.
func FromBits(p Profile, bits *big.Int) (_ Float, err error) {
	defer Error.WrapP(&err)

	err = p.Validate()
	if err != nil {
		return Float{}, err
	}

	i, err := integer.FromBits(p.Schema(), bits)
	if err != nil {
		return Float{}, err
	}

	return Float{profile: p, bits: i}, nil
}

// FromInt reads the pattern held by i, which must fit the width of p.
func FromInt(p Profile, i integer.Int) (Float, error) {
	return FromBits(p, i.Bits())
}

// FromFloat64 returns the Double with the bits of x.
func FromFloat64(x float64) Float {
	return fromPattern(Double, new(big.Int).SetUint64(math.Float64bits(x)))
}

// FromFloat32 returns the Single with the bits of x.
func FromFloat32(x float32) Float {
	return fromPattern(Single, new(big.Int).SetUint64(uint64(math.Float32bits(x))))
}

// Float64 returns f rounded to a float64.
func (f Float) Float64() float64 {
	d := f
	if f.prof() != Double {
		d = f.Wide().round(Double)
	}

	return math.Float64frombits(d.pattern().Uint64())
}

// Float32 returns f rounded to a float32.
func (f Float) Float32() float32 {
	s := f
	if f.prof() != Single {
		s = f.Wide().round(Single)
	}

	return math.Float32frombits(uint32(s.pattern().Uint64()))
}

// Zero returns a zero of p with the given sign.
func Zero(p Profile, negative bool) Float {
	pattern := new(big.Int)
	if negative {
		pattern.SetBit(pattern, int(p.Width()-1), 1)
	}

	return fromPattern(p, pattern)
}

// Inf returns +Inf for sign >= 0 and -Inf otherwise.
func Inf(p Profile, sign int) Float {
	pattern := infPattern(p)
	if sign < 0 {
		pattern.SetBit(pattern, int(p.Width()-1), 1)
	}

	return fromPattern(p, pattern)
}

// NaN returns the canonical quiet NaN of p: exponent all ones and the top
// significand bit set.
func NaN(p Profile) Float {
	pattern := infPattern(p)
	pattern.SetBit(pattern, int(p.SignificandBits-1), 1)

	return fromPattern(p, pattern)
}

// MaxValue returns the largest finite value of p.
func MaxValue(p Profile) Float {
	pattern := new(big.Int).Sub(infPattern(p), big.NewInt(1))

	return fromPattern(p, pattern)
}

// MinNormal returns the smallest positive normal value of p.
func MinNormal(p Profile) Float {
	return fromPattern(p, new(big.Int).Lsh(big.NewInt(1), p.SignificandBits))
}

// SmallestNonzero returns the smallest positive subnormal value of p.
func SmallestNonzero(p Profile) Float {
	return fromPattern(p, big.NewInt(1))
}

// Profile returns the layout of f.
func (f Float) Profile() Profile {
	return f.prof()
}

// Bits returns the bit pattern as an unsigned integer of the profile width.
func (f Float) Bits() integer.Int {
	if f.profile.ExponentBits == 0 {
		return Zero(Double, false).bits
	}

	return f.bits
}

// Signbit reports whether the sign bit is set.
func (f Float) Signbit() bool {
	return f.pattern().Bit(int(f.prof().Width()-1)) == 1
}

// BiasedExponent returns the raw exponent field.
func (f Float) BiasedExponent() int {
	p := f.prof()
	e := new(big.Int).Rsh(f.pattern(), p.SignificandBits)
	e.And(e, fieldMask(p.ExponentBits))

	return int(e.Int64())
}

// Exponent returns the exponent field minus the bias. Zeros and subnormals
// give MinExponent-1, infinities and NaN give MaxExponent+1.
func (f Float) Exponent() int {
	return f.BiasedExponent() - f.prof().Bias()
}

// SignificandBits returns the raw significand field, without the implicit
// bit.
func (f Float) SignificandBits() *big.Int {
	p := f.prof()

	return new(big.Int).And(f.pattern(), fieldMask(p.SignificandBits))
}

func (f Float) special() bool {
	return f.BiasedExponent() == int(fieldMask(f.prof().ExponentBits).Int64())
}

// IsNaN reports whether f is a NaN: exponent all ones, significand nonzero.
func (f Float) IsNaN() bool {
	return f.special() && f.SignificandBits().Sign() != 0
}

// IsInf reports whether f is an infinity: exponent all ones, significand
// zero.
func (f Float) IsInf() bool {
	return f.special() && f.SignificandBits().Sign() == 0
}

// IsFinite reports whether f is neither an infinity nor NaN.
func (f Float) IsFinite() bool {
	return !f.special()
}

// IsZero reports whether f is a zero of either sign.
func (f Float) IsZero() bool {
	return f.BiasedExponent() == 0 && f.SignificandBits().Sign() == 0
}

// IsSubnormal reports whether f is nonzero with a zero exponent field.
func (f Float) IsSubnormal() bool {
	return f.BiasedExponent() == 0 && f.SignificandBits().Sign() != 0
}

// significand returns m and k with |f| = m * 2^k for a finite f. m includes
// the implicit bit of normal values.
func (f Float) significand() (m *big.Int, k int) {
	p := f.prof()
	m = f.SignificandBits()
	be := f.BiasedExponent()
	s := int(p.SignificandBits)

	if be == 0 {
		return m, p.MinExponent() - s
	}

	m.SetBit(m, s, 1)

	return m, be - p.Bias() - s
}

// ldexp returns m * 2^k.
func ldexp(m *big.Int, k int) rational.Rat {
	if k >= 0 {
		return rational.FromInt(new(big.Int).Lsh(m, uint(k)))
	}

	den := new(big.Int).Lsh(big.NewInt(1), uint(-k))

	return rational.FromBigRat(new(big.Rat).SetFrac(m, den))
}

// Wide returns the exact value of f.
func (f Float) Wide() Wide {
	switch {
	case f.IsNaN():
		return WideNaN()
	case f.IsInf():
		return WideInf(signOf(f.Signbit()))
	case f.IsZero():
		return WideZero(f.Signbit())
	}

	r := ldexp(f.significand())
	if f.Signbit() {
		r = r.Neg()
	}

	return WideRat(r)
}

// Value returns the exact value of a finite f. ok is false for infinities
// and NaN.
func (f Float) Value() (r rational.Rat, ok bool) {
	return f.Wide().Rat()
}

// Cast rounds f into another profile.
func (f Float) Cast(p Profile) (Float, error) {
	return f.Wide().Round(p)
}
