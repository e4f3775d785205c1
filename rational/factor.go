package rational

import (
	"math/big"
	"sort"
	"strconv"
	"strings"
)

// Group tells which term of a fraction a prime factor belongs to.
type Group int

const (
	Numerator Group = iota
	Denominator
)

func (g Group) String() string {
	switch g {
	case Numerator:
		return "numerator"
	case Denominator:
		return "denominator"
	}

	return "group(" + strconv.Itoa(int(g)) + ")"
}

// Factor is one prime power p^e of a term.
type Factor struct {
	Prime    *big.Int
	Exponent int
	Group    Group
}

func (f Factor) String() string {
	if f.Exponent == 1 {
		return f.Prime.String()
	}

	return f.Prime.String() + "^" + strconv.Itoa(f.Exponent)
}

// Factors is the factorization of a fraction.
type Factors []Factor

// Group returns the factors belonging to g.
func (fs Factors) Group(g Group) Factors {
	out := Factors{}
	for _, f := range fs {
		if f.Group == g {
			out = append(out, f)
		}
	}

	return out
}

// String returns e.g. "2^2 3 / 5 7". A term equal to one is written "1".
func (fs Factors) String() string {
	term := func(g Group) string {
		parts := []string{}
		for _, f := range fs.Group(g) {
			parts = append(parts, f.String())
		}
		if len(parts) == 0 {
			return "1"
		}

		return strings.Join(parts, " ")
	}

	if len(fs.Group(Denominator)) == 0 {
		return term(Numerator)
	}

	return term(Numerator) + " / " + term(Denominator)
}

// Factorize returns the prime factors of |r| in lowest terms: the numerator
// group first, then the denominator group, each in ascending order of prime.
// Zero has no factorization and yields nil.
func (r Rat) Factorize() Factors {
	if r.IsZero() {
		return nil
	}

	x := r.Abs().LowestTerms()

	out := Factors{}
	out = append(out, group(primeFactors(x.Num()), Numerator)...)
	out = append(out, group(primeFactors(x.Den()), Denominator)...)

	return out
}

// smallPrimes bounds trial division. Cofactors left after it are split with
// Pollard's rho.
const smallPrimes = 1 << 10

// Rounds of Miller-Rabin for ProbablyPrime.
const primeRounds = 20

// primeFactors returns the prime factors of n > 0 with multiplicity in
// ascending order.
func primeFactors(n *big.Int) []*big.Int {
	primes := []*big.Int{}

	n = new(big.Int).Set(n)
	p := new(big.Int)
	m := new(big.Int)
	q := new(big.Int)

	for i := int64(2); i < smallPrimes && n.Cmp(one) > 0; i++ {
		p.SetInt64(i)
		for {
			q.QuoRem(n, p, m)
			if m.Sign() != 0 {
				break
			}
			primes = append(primes, big.NewInt(i))
			n.Set(q)
		}
	}

	if n.Cmp(one) > 0 {
		primes = append(primes, split(n)...)
	}

	sort.Slice(primes, func(i, j int) bool {
		return primes[i].Cmp(primes[j]) < 0
	})

	return primes
}

// group collects sorted primes into prime powers of g.
func group(primes []*big.Int, g Group) Factors {
	out := Factors{}
	for _, p := range primes {
		if len(out) > 0 && out[len(out)-1].Prime.Cmp(p) == 0 {
			out[len(out)-1].Exponent++

			continue
		}

		out = append(out, Factor{Prime: p, Exponent: 1, Group: g})
	}

	return out
}

// split returns the prime factors of n > 1 with multiplicity.
func split(n *big.Int) []*big.Int {
	if n.ProbablyPrime(primeRounds) {
		return []*big.Int{new(big.Int).Set(n)}
	}

	d := rho(n)
	rest := new(big.Int).Quo(n, d)

	return append(split(d), split(rest)...)
}

// rho finds a nontrivial divisor of the composite n with Pollard's rho using
// Floyd cycle detection on x -> x^2 + c mod n. A failed walk retries with the
// next c.
func rho(n *big.Int) *big.Int {
	if n.Bit(0) == 0 {
		return big.NewInt(2)
	}

	step := func(x, c *big.Int) {
		x.Mul(x, x)
		x.Add(x, c)
		x.Mod(x, n)
	}

	diff := new(big.Int)
	d := new(big.Int)

	for c := big.NewInt(1); ; c.Add(c, one) {
		x := big.NewInt(2)
		y := big.NewInt(2)
		d.SetInt64(1)

		for d.Cmp(one) == 0 {
			step(x, c)
			step(y, c)
			step(y, c)

			diff.Sub(x, y)
			diff.Abs(diff)
			d.GCD(nil, nil, diff, n)
		}

		if d.Cmp(n) != 0 {
			return new(big.Int).Set(d)
		}
	}
}
