package integer

import (
	"math/big"

	"github.com/calebcase/numeral"
)

// operand returns the pattern of x as seen by i. An operand with another
// schema contributes its raw bits cut to the width of i.
func (i Int) operand(x Int) *big.Int {
	if i.schema.Width == Unlimited {
		return x.Value()
	}
	if x.schema == i.schema {
		return x.pattern()
	}

	return new(big.Int).And(x.Bits(), mask(i.width()))
}

// Not flips every bit of the pattern. With an Unlimited width it is -i-1.
func (i Int) Not() Int {
	if i.schema.Width == Unlimited {
		return i.withBits(new(big.Int).Not(i.pattern()))
	}

	return i.withBits(new(big.Int).Xor(i.pattern(), mask(i.width())))
}

// And returns i AND x.
func (i Int) And(x Int) Int {
	return i.withBits(new(big.Int).And(i.pattern(), i.operand(x)))
}

// Or returns i OR x.
func (i Int) Or(x Int) Int {
	return i.withBits(new(big.Int).Or(i.pattern(), i.operand(x)))
}

// Xor returns i XOR x.
func (i Int) Xor(x Int) Int {
	return i.withBits(new(big.Int).Xor(i.pattern(), i.operand(x)))
}

// Nand returns NOT (i AND x).
func (i Int) Nand(x Int) Int {
	return i.And(x).Not()
}

// Nor returns NOT (i OR x).
func (i Int) Nor(x Int) Int {
	return i.Or(x).Not()
}

// Xnor returns NOT (i XOR x).
func (i Int) Xnor(x Int) Int {
	return i.Xor(x).Not()
}

// amount reduces a shift or rotation amount modulo the width. A fixed width
// register never shifts by w or more: shifting a byte by 9 shifts it by 1.
func (i Int) amount(n int) uint {
	if i.schema.Width == Unlimited {
		return uint(n)
	}

	w := int(i.schema.Width)

	return uint(((n % w) + w) % w)
}

// ShiftLeft shifts i left by n bits, or right by -n bits. Arithmetic
// encodings multiply the value by 2^n and wrap; excess-n and negabinary shift
// the raw pattern and drop the bits leaving the register.
func (i Int) ShiftLeft(n int) (_ Int, err error) {
	defer Error.WrapP(&err)

	if n < 0 {
		return i.ShiftRight(-n)
	}

	k := i.amount(n)
	if i.schema.Width == Unlimited && k > MaxUnboundedBits && i.Sign() != 0 {
		return Int{}, numeral.Overflow.New("shift by %d exceeds %d bits", n, MaxUnboundedBits)
	}

	if i.rule().arithmetic() {
		return i.with(new(big.Int).Lsh(i.Value(), k))
	}

	p := new(big.Int).Lsh(i.pattern(), k)

	return i.withBits(p.And(p, mask(i.width()))), nil
}

// ShiftRight shifts i right by n bits, or left by -n bits. Two's complement,
// unsigned and unbounded values are divided by 2^n rounding down. Ones'
// complement and sign-magnitude keep the sign and shift the magnitude.
// Excess-n and negabinary shift the raw pattern in with zeros.
func (i Int) ShiftRight(n int) (_ Int, err error) {
	defer Error.WrapP(&err)

	if n < 0 {
		return i.ShiftLeft(-n)
	}

	k := i.amount(n)

	switch i.schema.Encoding {
	case OnesComplement, SignMagnitude:
		v := i.Value()
		m := new(big.Int).Abs(v)
		m.Rsh(m, k)
		if v.Sign() < 0 {
			m.Neg(m)
		}

		return i.with(m)
	case ExcessN, Negabinary:
		return i.withBits(new(big.Int).Rsh(i.pattern(), k)), nil
	}

	return i.with(new(big.Int).Rsh(i.Value(), k))
}

// ShiftRightLogical shifts the raw pattern right by n bits filling with zeros,
// whatever the encoding. An Unlimited width has no top bit to fill from and
// is an UnsupportedPrecision error.
func (i Int) ShiftRightLogical(n int) (_ Int, err error) {
	defer Error.WrapP(&err)

	if i.schema.Width == Unlimited {
		return Int{}, numeral.UnsupportedPrecision.New("logical shift needs a fixed width")
	}
	if n < 0 {
		return i.ShiftLeft(-n)
	}

	return i.withBits(new(big.Int).Rsh(i.pattern(), i.amount(n))), nil
}

// RotateLeft rotates the pattern left by n bits, or right by -n bits. An
// Unlimited width is an UnsupportedPrecision error.
func (i Int) RotateLeft(n int) (_ Int, err error) {
	defer Error.WrapP(&err)

	if i.schema.Width == Unlimited {
		return Int{}, numeral.UnsupportedPrecision.New("rotation needs a fixed width")
	}

	k := i.amount(n)
	if k == 0 {
		return i, nil
	}

	w := i.width()
	p := i.pattern()

	out := new(big.Int).Lsh(p, k)
	out.Or(out, new(big.Int).Rsh(p, w-k))

	return i.withBits(out.And(out, mask(w))), nil
}

// RotateRight rotates the pattern right by n bits.
func (i Int) RotateRight(n int) (Int, error) {
	return i.RotateLeft(-n)
}

// ShiftLeft1, ShiftRight1, RotateLeft1 and RotateRight1 are the single bit
// steps bound to one keystroke.

func (i Int) ShiftLeft1() (Int, error)   { return i.ShiftLeft(1) }
func (i Int) ShiftRight1() (Int, error)  { return i.ShiftRight(1) }
func (i Int) RotateLeft1() (Int, error)  { return i.RotateLeft(1) }
func (i Int) RotateRight1() (Int, error) { return i.RotateRight(1) }
