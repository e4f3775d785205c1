package rational

import (
	"context"
	"math/big"
	"runtime"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// DefaultFactorCacheSize is the number of terms a Factorizer remembers when
// no size is given.
const DefaultFactorCacheSize = 1024

// Factorizer factorizes fractions and remembers the prime split of recently
// seen terms. Concurrent requests for the same term share one split. It is
// safe for concurrent use.
type Factorizer struct {
	cache *lru.Cache[string, []*big.Int]
	group singleflight.Group
}

// NewFactorizer returns a factorizer remembering up to size terms.
func NewFactorizer(size int) (*Factorizer, error) {
	if size <= 0 {
		size = DefaultFactorCacheSize
	}

	cache, err := lru.New[string, []*big.Int](size)
	if err != nil {
		return nil, Error.Wrap(err)
	}

	return &Factorizer{
		cache: cache,
	}, nil
}

// Factorize is Rat.Factorize backed by the cache.
func (f *Factorizer) Factorize(r Rat) Factors {
	if r.IsZero() {
		return nil
	}

	x := r.Abs().LowestTerms()

	out := Factors{}
	out = append(out, group(f.primes(x.Num()), Numerator)...)
	out = append(out, group(f.primes(x.Den()), Denominator)...)

	return out
}

// FactorizeAll factorizes every fraction in rs, spreading the work over
// GOMAXPROCS goroutines. It stops early when ctx is done.
func (f *Factorizer) FactorizeAll(ctx context.Context, rs []Rat) ([]Factors, error) {
	out := make([]Factors, len(rs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for k := range rs {
		k := k
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			out[k] = f.Factorize(rs[k])

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, Error.Wrap(err)
	}

	return out, nil
}

// Len returns the number of cached terms.
func (f *Factorizer) Len() int {
	return f.cache.Len()
}

// primes returns the sorted prime factors of n with multiplicity. The
// returned integers are copies owned by the caller.
func (f *Factorizer) primes(n *big.Int) []*big.Int {
	key := n.Text(16)

	cached, ok := f.cache.Get(key)
	if !ok {
		v, _, _ := f.group.Do(key, func() (interface{}, error) {
			ps := primeFactors(n)
			f.cache.Add(key, ps)

			return ps, nil
		})
		cached = v.([]*big.Int)
	}

	out := make([]*big.Int, len(cached))
	for k, p := range cached {
		out[k] = new(big.Int).Set(p)
	}

	return out
}
