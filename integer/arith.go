package integer

import (
	"math/big"

	"github.com/calebcase/numeral"
)

// Arithmetic decodes both operands, computes the exact result and stores it
// back under the schema of the receiver. The store wraps silently except under
// Unbounded, where a result out of range is an Overflow error.

// Add returns i + x.
func (i Int) Add(x Int) (_ Int, err error) {
	defer Error.WrapP(&err)

	return i.with(new(big.Int).Add(i.Value(), x.Value()))
}

// Sub returns i - x.
func (i Int) Sub(x Int) (_ Int, err error) {
	defer Error.WrapP(&err)

	return i.with(new(big.Int).Sub(i.Value(), x.Value()))
}

// Mul returns i * x.
func (i Int) Mul(x Int) (_ Int, err error) {
	defer Error.WrapP(&err)

	return i.with(new(big.Int).Mul(i.Value(), x.Value()))
}

// Quo returns i / x under the division policy of the encoding.
func (i Int) Quo(x Int) (Int, error) {
	q, _, err := i.QuoRem(x)

	return q, err
}

// Rem returns the remainder of i / x under the division policy of the
// encoding.
func (i Int) Rem(x Int) (Int, error) {
	_, r, err := i.QuoRem(x)

	return r, err
}

// Neg returns -i. Fixed width encodings apply their own negation rule to the
// pattern; the two's complement minimum is its own negation.
func (i Int) Neg() (_ Int, err error) {
	defer Error.WrapP(&err)

	if i.schema.Encoding == Unbounded {
		return i.with(new(big.Int).Neg(i.Value()))
	}

	return i.withBits(i.rule().negate(i.pattern(), i.width())), nil
}

// Abs returns |i|.
func (i Int) Abs() (Int, error) {
	if i.Sign() >= 0 {
		return i, nil
	}

	return i.Neg()
}

// Cmp compares the decoded values of i and x and returns -1, 0 or +1.
func (i Int) Cmp(x Int) int {
	return i.Value().Cmp(x.Value())
}

// Min returns the operand with the smaller value, i on ties.
func (i Int) Min(x Int) Int {
	if x.Cmp(i) < 0 {
		return x
	}

	return i
}

// Max returns the operand with the larger value, i on ties.
func (i Int) Max(x Int) Int {
	if x.Cmp(i) > 0 {
		return x
	}

	return i
}

// Pow returns i raised to the value of x by square and multiply. Every step
// wraps like a single multiplication, which gives the same result as wrapping
// the exact power once because each encoding's wrap is compatible with
// multiplication.
//
// A negative exponent is the reciprocal truncated toward zero: 1 stays 1, -1
// alternates sign, 0 is a DivisionByZero error and every other base gives 0.
func (i Int) Pow(x Int) (_ Int, err error) {
	defer Error.WrapP(&err)

	base := i.Value()
	e := x.Value()

	if e.Sign() < 0 {
		switch {
		case base.Sign() == 0:
			return Int{}, numeral.DivisionByZero.New("0^%s", e)
		case base.CmpAbs(one) == 0:
			if base.Sign() < 0 && e.Bit(0) == 0 {
				return i.with(big.NewInt(1))
			}

			return i.with(base)
		default:
			return i.with(new(big.Int))
		}
	}

	acc, err := i.with(big.NewInt(1))
	if err != nil {
		return Int{}, err
	}
	b := i

	for k := 0; k < e.BitLen(); k++ {
		if e.Bit(k) == 1 {
			acc, err = acc.Mul(b)
			if err != nil {
				return Int{}, err
			}
		}

		if k+1 < e.BitLen() {
			b, err = b.Mul(b)
			if err != nil {
				return Int{}, err
			}
		}
	}

	return acc, nil
}
