package float

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/calebcase/numeral"
	"github.com/calebcase/numeral/integer"
)

// MaxExponentBits keeps the bias and every exponent in an int.
const MaxExponentBits = 30

// Profile is the layout of a binary floating point format. SignificandBits
// counts the stored fraction bits; the implicit leading bit is not stored.
type Profile struct {
	ExponentBits    uint
	SignificandBits uint
}

// The IEEE 754 binary interchange formats.
var (
	Half      = Profile{ExponentBits: 5, SignificandBits: 10}
	Single    = Profile{ExponentBits: 8, SignificandBits: 23}
	Double    = Profile{ExponentBits: 11, SignificandBits: 52}
	Quadruple = Profile{ExponentBits: 15, SignificandBits: 112}
	Octuple   = Profile{ExponentBits: 19, SignificandBits: 236}
)

var names = map[string]Profile{
	"half":      Half,
	"single":    Single,
	"double":    Double,
	"quadruple": Quadruple,
	"octuple":   Octuple,
}

// Width returns the total number of bits.
func (p Profile) Width() uint {
	return 1 + p.ExponentBits + p.SignificandBits
}

// Precision returns the significand width including the implicit bit.
func (p Profile) Precision() uint {
	return p.SignificandBits + 1
}

// Bias is 2^(ExponentBits-1) - 1.
func (p Profile) Bias() int {
	return 1<<(p.ExponentBits-1) - 1
}

// MaxExponent is the largest unbiased exponent of a finite value.
func (p Profile) MaxExponent() int {
	return p.Bias()
}

// MinExponent is the unbiased exponent of the smallest normal value.
func (p Profile) MinExponent() int {
	return 1 - p.Bias()
}

// Digits returns the number of significant decimal digits needed to print a
// value so that it parses back to the same bits: ceil(p log10 2) + 1.
func (p Profile) Digits() int {
	return int(math.Ceil(float64(p.Precision())*math.Log10(2))) + 1
}

// Schema returns the integer schema holding the bit patterns.
func (p Profile) Schema() integer.Schema {
	return integer.Schema{
		Width:    integer.Width(p.Width()),
		Encoding: integer.Unsigned,
	}
}

// Validate reports an UnsupportedPrecision error for layouts this package
// cannot emulate.
func (p Profile) Validate() error {
	if p.ExponentBits < 2 || p.ExponentBits > MaxExponentBits {
		return Error.Wrap(numeral.UnsupportedPrecision.New("%d exponent bits", p.ExponentBits))
	}
	if p.SignificandBits < 1 {
		return Error.Wrap(numeral.UnsupportedPrecision.New("%d significand bits", p.SignificandBits))
	}
	if p.Width() > uint(integer.MaxWidth) {
		return Error.Wrap(numeral.UnsupportedPrecision.New("%d bits exceed %d", p.Width(), integer.MaxWidth))
	}

	return nil
}

func (p Profile) String() string {
	return fmt.Sprintf("%d (%d/%d)", p.Width(), p.ExponentBits, p.SignificandBits)
}

// Registry maps a width to the profile used for it. It is safe for
// concurrent use.
type Registry struct {
	mu       sync.RWMutex
	profiles map[uint]Profile
}

// NewRegistry returns a registry holding the IEEE 754 interchange formats.
func NewRegistry() *Registry {
	r := &Registry{profiles: map[uint]Profile{}}
	for _, p := range names {
		r.profiles[p.Width()] = p
	}

	return r
}

// Register adds p under width, replacing any previous profile of that width.
func (r *Registry) Register(width uint, p Profile) (err error) {
	defer Error.WrapP(&err)

	err = p.Validate()
	if err != nil {
		return err
	}
	if p.Width() != width {
		return numeral.UnsupportedPrecision.New("profile %s is not %d bits wide", p, width)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.profiles[width] = p

	return nil
}

// Lookup returns the profile registered for width.
func (r *Registry) Lookup(width uint) (Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.profiles[width]
	if !ok {
		return Profile{}, Error.Wrap(numeral.UnsupportedPrecision.New("no profile for %d bits", width))
	}

	return p, nil
}

// Named resolves a profile name ("half", "single", "double", "quadruple",
// "octuple") or a registered width such as "80".
func (r *Registry) Named(name string) (Profile, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if p, ok := names[key]; ok {
		return p, nil
	}

	width, err := strconv.ParseUint(key, 10, 32)
	if err != nil {
		return Profile{}, Error.Wrap(numeral.UnsupportedPrecision.New("profile %q", name))
	}

	return r.Lookup(uint(width))
}

// Widths returns the registered widths in increasing order.
func (r *Registry) Widths() []uint {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ws := make([]uint, 0, len(r.profiles))
	for w := range r.profiles {
		ws = append(ws, w)
	}
	sort.Slice(ws, func(i, j int) bool { return ws[i] < ws[j] })

	return ws
}
