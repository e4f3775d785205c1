package integer

import (
	"math/big"

	"github.com/calebcase/numeral"
)

var (
	zero = big.NewInt(0)
	one  = big.NewInt(1)
)

// rule is the per encoding behaviour of a fixed width register. Patterns are
// non-negative integers below 2^w. encode wraps any value into a pattern
// following the encoding's own wraparound; only Unbounded refuses to wrap.
type rule interface {
	encode(v *big.Int, w uint) (*big.Int, error)
	decode(p *big.Int, w uint) *big.Int
	negate(p *big.Int, w uint) *big.Int

	min(w uint) *big.Int
	max(w uint) *big.Int

	// arithmetic reports whether shifts scale the value (keeping the sign)
	// instead of moving the raw pattern.
	arithmetic() bool
}

var rules = map[Encoding]rule{
	Unbounded:      unbounded{},
	TwosComplement: twos{},
	OnesComplement: ones{},
	SignMagnitude:  signMagnitude{},
	ExcessN:        excess{},
	Negabinary:     negabinary{},
	Unsigned:       unsigned{},
}

func ruleFor(e Encoding) rule {
	return rules[e]
}

// half returns 2^(w-1).
func half(w uint) *big.Int {
	return new(big.Int).Lsh(one, w-1)
}

// wrap returns v mod m in [0, m).
func wrap(v, m *big.Int) *big.Int {
	return new(big.Int).Mod(v, m)
}

// twos is two's complement: the pattern is v mod 2^w.
type twos struct{}

func (twos) encode(v *big.Int, w uint) (*big.Int, error) {
	return wrap(v, modulus(w)), nil
}

func (twos) decode(p *big.Int, w uint) *big.Int {
	v := new(big.Int).Set(p)
	if p.Bit(int(w-1)) == 1 {
		v.Sub(v, modulus(w))
	}

	return v
}

// negate is NOT then +1.
func (twos) negate(p *big.Int, w uint) *big.Int {
	n := new(big.Int).Xor(p, mask(w))
	n.Add(n, one)

	return n.And(n, mask(w))
}

func (twos) min(w uint) *big.Int { return new(big.Int).Neg(half(w)) }
func (twos) max(w uint) *big.Int { return new(big.Int).Sub(half(w), one) }
func (twos) arithmetic() bool    { return true }

// unsigned holds 0..2^w-1; negative values wrap to the top of the range.
type unsigned struct{}

func (unsigned) encode(v *big.Int, w uint) (*big.Int, error) {
	return wrap(v, modulus(w)), nil
}

func (unsigned) decode(p *big.Int, w uint) *big.Int {
	return new(big.Int).Set(p)
}

func (unsigned) negate(p *big.Int, w uint) *big.Int {
	return wrap(new(big.Int).Neg(p), modulus(w))
}

func (unsigned) min(w uint) *big.Int { return new(big.Int) }
func (unsigned) max(w uint) *big.Int { return mask(w) }
func (unsigned) arithmetic() bool    { return true }

// ones is ones' complement. A negative value is the NOT of its magnitude,
// which makes arithmetic modulo 2^w - 1 (the end-around carry). The
// pattern of all ones is negative zero.
type ones struct{}

func (ones) encode(v *big.Int, w uint) (*big.Int, error) {
	return wrap(v, mask(w)), nil
}

func (ones) decode(p *big.Int, w uint) *big.Int {
	if p.Bit(int(w-1)) == 0 {
		return new(big.Int).Set(p)
	}

	m := new(big.Int).Sub(mask(w), p)

	return m.Neg(m)
}

// negate is NOT.
func (ones) negate(p *big.Int, w uint) *big.Int {
	return new(big.Int).Xor(p, mask(w))
}

func (ones) min(w uint) *big.Int {
	m := new(big.Int).Sub(half(w), one)

	return m.Neg(m)
}

func (ones) max(w uint) *big.Int { return new(big.Int).Sub(half(w), one) }
func (ones) arithmetic() bool    { return true }

// signMagnitude keeps the sign in the top bit and |v| mod 2^(w-1) below it.
// The pattern with only the top bit set is negative zero.
type signMagnitude struct{}

func (signMagnitude) encode(v *big.Int, w uint) (*big.Int, error) {
	h := half(w)
	p := wrap(new(big.Int).Abs(v), h)
	if v.Sign() < 0 && p.Sign() != 0 {
		p.Or(p, h)
	}

	return p, nil
}

func (signMagnitude) decode(p *big.Int, w uint) *big.Int {
	m := new(big.Int).SetBit(p, int(w-1), 0)
	if p.Bit(int(w-1)) == 1 {
		m.Neg(m)
	}

	return m
}

// negate flips the sign bit.
func (signMagnitude) negate(p *big.Int, w uint) *big.Int {
	return new(big.Int).Xor(p, half(w))
}

func (signMagnitude) min(w uint) *big.Int {
	m := new(big.Int).Sub(half(w), one)

	return m.Neg(m)
}

func (signMagnitude) max(w uint) *big.Int { return new(big.Int).Sub(half(w), one) }
func (signMagnitude) arithmetic() bool    { return true }

// excess stores v + 2^(w-1), wrapping modulo 2^w.
type excess struct{}

func (excess) encode(v *big.Int, w uint) (*big.Int, error) {
	return wrap(new(big.Int).Add(v, half(w)), modulus(w)), nil
}

func (excess) decode(p *big.Int, w uint) *big.Int {
	return new(big.Int).Sub(p, half(w))
}

// negate maps v+B to B-v, which is 2^w - p since B is half the modulus.
func (excess) negate(p *big.Int, w uint) *big.Int {
	return wrap(new(big.Int).Neg(p), modulus(w))
}

func (excess) min(w uint) *big.Int { return new(big.Int).Neg(half(w)) }
func (excess) max(w uint) *big.Int { return new(big.Int).Sub(half(w), one) }
func (excess) arithmetic() bool    { return false }

// negabinary is base -2. With m the mask of the odd bit positions
// (0b1010...), a pattern p has the value (p XOR m) - m.
type negabinary struct{}

// oddBits returns 0b...1010 over w bits.
func oddBits(w uint) *big.Int {
	m := new(big.Int)
	for i := 1; i < int(w); i += 2 {
		m.SetBit(m, i, 1)
	}

	return m
}

func (negabinary) encode(v *big.Int, w uint) (*big.Int, error) {
	m := oddBits(w)
	p := wrap(new(big.Int).Add(v, m), modulus(w))

	return p.Xor(p, m), nil
}

func (negabinary) decode(p *big.Int, w uint) *big.Int {
	m := oddBits(w)
	v := new(big.Int).Xor(p, m)

	return v.Sub(v, m)
}

// negate uses -x = (-2)x + x: shifting the digits up one place multiplies by
// -2, and the sum is taken with negabinary addition.
func (negabinary) negate(p *big.Int, w uint) *big.Int {
	shifted := new(big.Int).Lsh(p, 1)
	shifted.And(shifted, mask(w))

	return negabinaryAdd(shifted, p, w)
}

// negabinaryAdd adds two patterns without leaving base -2.
func negabinaryAdd(a, b *big.Int, w uint) *big.Int {
	m := oddBits(w)
	s := new(big.Int).Xor(a, m)
	s.Add(s, new(big.Int).Xor(b, m))
	s.Sub(s, m)
	s.Mod(s, modulus(w))

	return s.Xor(s, m)
}

func (negabinary) min(w uint) *big.Int { return new(big.Int).Neg(oddBits(w)) }

func (negabinary) max(w uint) *big.Int { return new(big.Int).Sub(mask(w), oddBits(w)) }

func (negabinary) arithmetic() bool { return false }

// unbounded refuses to wrap. A fixed width keeps the two's complement layout
// and range; an Unlimited width stores the signed value itself.
type unbounded struct{}

func (unbounded) encode(v *big.Int, w uint) (*big.Int, error) {
	if w == 0 {
		if v.BitLen() > MaxUnboundedBits {
			return nil, numeral.Overflow.New("%d bits exceed %d", v.BitLen(), MaxUnboundedBits)
		}

		return new(big.Int).Set(v), nil
	}

	t := twos{}
	if v.Cmp(t.min(w)) < 0 || v.Cmp(t.max(w)) > 0 {
		return nil, numeral.Overflow.New("%s does not fit %d bits", v, w)
	}

	return t.encode(v, w)
}

func (unbounded) decode(p *big.Int, w uint) *big.Int {
	if w == 0 {
		return new(big.Int).Set(p)
	}

	return twos{}.decode(p, w)
}

// negate does not report overflow; Int.Neg re-encodes the value instead.
func (unbounded) negate(p *big.Int, w uint) *big.Int {
	if w == 0 {
		return new(big.Int).Neg(p)
	}

	return twos{}.negate(p, w)
}

func (unbounded) min(w uint) *big.Int { return twos{}.min(w) }
func (unbounded) max(w uint) *big.Int { return twos{}.max(w) }
func (unbounded) arithmetic() bool    { return true }
