package rational

import (
	"math/big"

	"github.com/calebcase/numeral"
)

// ContinuedFraction returns the terms [a0; a1, a2, ...] of r computed by the
// Euclidean algorithm with floor division. Only a0 may be zero or negative;
// every later term is positive. The last term absorbs what is left, so the
// terms reproduce r exactly (see FromContinuedFraction).
func (r Rat) ContinuedFraction() []*big.Int {
	n := r.Num()
	d := r.Den()

	terms := []*big.Int{}
	for d.Sign() != 0 {
		a, m := new(big.Int).DivMod(n, d, new(big.Int))
		terms = append(terms, a)
		n, d = d, m
	}

	return terms
}

// FromContinuedFraction returns the value of [a0; a1, ..., an] folded with
// the convergent recurrence
//
//  h(i) = a(i) h(i-1) + h(i-2)
//  k(i) = a(i) k(i-1) + k(i-2)
func FromContinuedFraction(terms []*big.Int) (_ Rat, err error) {
	defer Error.WrapP(&err)

	if len(terms) == 0 {
		return Rat{}, numeral.MalformedNumber.New("empty continued fraction")
	}

	h0, h1 := big.NewInt(0), big.NewInt(1)
	k0, k1 := big.NewInt(1), big.NewInt(0)

	for _, a := range terms {
		h := new(big.Int).Mul(a, h1)
		h.Add(h, h0)
		k := new(big.Int).Mul(a, k1)
		k.Add(k, k0)

		h0, h1 = h1, h
		k0, k1 = k1, k
	}

	if k1.Sign() == 0 {
		return Rat{}, numeral.DivisionByZero.New("continued fraction %v", terms)
	}

	return reduced(h1, k1), nil
}

// Convergents returns the successive convergents of the continued fraction of
// r. The last one equals r.
func (r Rat) Convergents() []Rat {
	terms := r.ContinuedFraction()
	out := make([]Rat, 0, len(terms))

	h0, h1 := big.NewInt(0), big.NewInt(1)
	k0, k1 := big.NewInt(1), big.NewInt(0)

	for _, a := range terms {
		h := new(big.Int).Mul(a, h1)
		h.Add(h, h0)
		k := new(big.Int).Mul(a, k1)
		k.Add(k, k0)

		h0, h1 = h1, h
		k0, k1 = k1, k

		out = append(out, Rat{num: new(big.Int).Set(h), den: new(big.Int).Set(k)})
	}

	return out
}

// EgyptianFractions returns distinct unit fractions summing exactly to r, in
// decreasing order of magnitude. Each step takes the largest unit fraction not
// larger than what remains:
//
//  k = ceil(d/n)
//
// This is the Fibonacci-Sylvester expansion; the numerator of the remainder
// strictly decreases, so it always terminates. A value of one or more leads
// with its integer part as a single whole term, e.g. 7/3 gives [2 1/3]. A
// negative r gives the negated terms of |r| and zero gives none.
func (r Rat) EgyptianFractions() []Rat {
	x := r.Abs().LowestTerms()
	whole, rem := x.Mixed()

	out := []Rat{}
	if whole.Sign() != 0 {
		out = append(out, FromInt(whole))
	}

	for !rem.IsZero() {
		k := ceilQuo(rem.d(), rem.n())

		u := Rat{num: one, den: k}
		rem = rem.Sub(u)
		out = append(out, u)
	}

	if r.Sign() < 0 {
		for k := range out {
			out[k] = out[k].Neg()
		}
	}

	return out
}

// ceilQuo returns ceil(a/b) for positive a and b.
func ceilQuo(a, b *big.Int) *big.Int {
	q, m := new(big.Int).QuoRem(a, b, new(big.Int))
	if m.Sign() != 0 {
		q.Add(q, one)
	}

	return q
}

// Approximate returns the closest fraction to r whose denominator does not
// exceed maxDen. Candidates are the last convergent that fits and the best
// semiconvergent after it; ties go to the convergent.
func (r Rat) Approximate(maxDen *big.Int) (_ Rat, err error) {
	defer Error.WrapP(&err)

	if maxDen.Sign() <= 0 {
		return Rat{}, numeral.UnsupportedPrecision.New("maximum denominator %s", maxDen)
	}

	x := r.LowestTerms()
	if x.d().Cmp(maxDen) <= 0 {
		return x, nil
	}

	p0, q0 := big.NewInt(0), big.NewInt(1)
	p1, q1 := big.NewInt(1), big.NewInt(0)
	n, d := x.Num(), x.Den()

	for {
		a, m := new(big.Int).DivMod(n, d, new(big.Int))

		q2 := new(big.Int).Mul(a, q1)
		q2.Add(q2, q0)
		if q2.Cmp(maxDen) > 0 {
			break
		}

		p2 := new(big.Int).Mul(a, p1)
		p2.Add(p2, p0)

		p0, q0, p1, q1 = p1, q1, p2, q2
		n, d = d, m
	}

	// k is the largest multiple of the next step that keeps q0 + k*q1 within
	// the bound.
	k := new(big.Int).Sub(maxDen, q0)
	k.Quo(k, q1)

	semi := reduced(
		new(big.Int).Add(p0, new(big.Int).Mul(k, p1)),
		new(big.Int).Add(q0, new(big.Int).Mul(k, q1)),
	)
	conv := reduced(new(big.Int).Set(p1), new(big.Int).Set(q1))

	if semi.Sub(x).Abs().Cmp(conv.Sub(x).Abs()) < 0 {
		return semi, nil
	}

	return conv, nil
}
