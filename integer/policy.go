package integer

import (
	"math/big"

	"github.com/calebcase/numeral"
)

// DivisionPolicy selects how a quotient is rounded.
type DivisionPolicy int

const (
	// Truncated rounds the quotient toward zero. The remainder takes the
	// sign of the dividend.
	Truncated DivisionPolicy = iota

	// Floored rounds the quotient toward negative infinity. The remainder
	// takes the sign of the divisor.
	Floored
)

func (p DivisionPolicy) String() string {
	switch p {
	case Truncated:
		return "truncated"
	case Floored:
		return "floored"
	}

	return "unknown"
}

// DivisionPolicies is the rounding used by Quo, Rem and QuoRem for each
// encoding. Every encoding currently truncates, like the hardware divide of
// a two's complement machine.
var DivisionPolicies = map[Encoding]DivisionPolicy{
	Unbounded:      Truncated,
	TwosComplement: Truncated,
	OnesComplement: Truncated,
	SignMagnitude:  Truncated,
	ExcessN:        Truncated,
	Negabinary:     Truncated,
	Unsigned:       Truncated,
}

// QuoRem returns the quotient and remainder of i / x using the division
// policy of the receiver's encoding.
func (i Int) QuoRem(x Int) (q, r Int, err error) {
	return i.QuoRemPolicy(x, DivisionPolicies[i.schema.Encoding])
}

// QuoRemPolicy is QuoRem with an explicit policy. A zero divisor is a
// DivisionByZero error. Results wrap like any other arithmetic, so the two's
// complement minimum divided by -1 is itself.
func (i Int) QuoRemPolicy(x Int, p DivisionPolicy) (q, r Int, err error) {
	defer Error.WrapP(&err)

	a, b := i.Value(), x.Value()
	if b.Sign() == 0 {
		return Int{}, Int{}, numeral.DivisionByZero.New("%s / 0", a)
	}

	qv, rv := new(big.Int).QuoRem(a, b, new(big.Int))
	if p == Floored && rv.Sign() != 0 && rv.Sign() != b.Sign() {
		qv.Sub(qv, one)
		rv.Add(rv, b)
	}

	q, err = i.with(qv)
	if err != nil {
		return Int{}, Int{}, err
	}

	r, err = i.with(rv)
	if err != nil {
		return Int{}, Int{}, err
	}

	return q, r, nil
}
