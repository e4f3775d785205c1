package float

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/calebcase/numeral"
	"github.com/calebcase/numeral/rational"
)

// Parse reads s in radix and rounds it into p.
//
// A plain numeral may carry an exponent: "1.5e-3" in radix 10, "1.8p-1" in
// the other radixes, where "p" scales by a power of two. With normalized set
// s must be in the form Normalise writes: a single leading digit of 0 or 1
// and a "p" exponent in every radix. "NaN", "Inf" and "Infinity" are
// accepted with an optional sign.
func Parse(p Profile, s string, radix numeral.Radix, normalized bool) (_ Float, err error) {
	defer Error.WrapP(&err)

	err = p.Validate()
	if err != nil {
		return Float{}, err
	}
	if !radix.Valid() {
		return Float{}, numeral.UnsupportedPrecision.New("radix %d", int(radix))
	}

	s = strings.TrimSpace(s)

	body, neg := s, false
	switch {
	case strings.HasPrefix(body, "-"):
		body, neg = body[1:], true
	case strings.HasPrefix(body, "+"):
		body = body[1:]
	}

	switch strings.ToLower(body) {
	case "nan":
		return NaN(p), nil
	case "inf", "infinity":
		return Inf(p, signOf(neg)), nil
	}

	marker := radix.ExponentMarker()
	if normalized {
		marker = 'p'
	}

	mant, exp, hasExp := cutExponent(body, marker)
	if strings.HasPrefix(mant, "-") || strings.HasPrefix(mant, "+") {
		return Float{}, numeral.MalformedNumber.New("sign in %q", s)
	}
	if normalized {
		if !hasExp {
			return Float{}, numeral.MalformedNumber.New("%q has no binary exponent", s)
		}
		lead, _, _ := strings.Cut(mant, ".")
		if lead != "0" && lead != "1" {
			return Float{}, numeral.MalformedNumber.New("%q is not normalised", s)
		}
	}

	r, err := rational.ParseRecurring(mant, radix)
	if err != nil {
		return Float{}, err
	}

	scale := 0
	if hasExp {
		scale, err = strconv.Atoi(exp)
		if err != nil {
			return Float{}, numeral.MalformedNumber.New("exponent %q", exp)
		}
	}

	if r.IsZero() {
		return Zero(p, neg), nil
	}

	base := int64(2)
	if marker == 'e' {
		base = 10
	}

	// Past this bound the result is an infinity or a zero whatever the
	// digits, so larger exponents are clamped instead of computed.
	limit := 2*(p.Bias()+int(p.Precision())) + 4*len(mant) + 64
	if scale > limit {
		scale = limit
	} else if scale < -limit {
		scale = -limit
	}

	r, err = scaleBy(r, base, scale)
	if err != nil {
		return Float{}, err
	}
	if neg {
		r = r.Neg()
	}

	return WideRat(r).round(p), nil
}

// MustParse is like Parse for radix 10 but panics on error.
func MustParse(p Profile, s string) Float {
	f, err := Parse(p, s, numeral.Dec, false)
	if err != nil {
		panic(err)
	}

	return f
}

// cutExponent splits s at the exponent marker, in either case.
func cutExponent(s string, marker byte) (mant, exp string, ok bool) {
	i := strings.IndexAny(s, string([]byte{marker, marker - 'a' + 'A'}))
	if i < 0 {
		return s, "", false
	}

	return s[:i], s[i+1:], true
}

// scaleBy returns r * base^n.
func scaleBy(r rational.Rat, base int64, n int) (rational.Rat, error) {
	if n == 0 {
		return r, nil
	}

	k := n
	if k < 0 {
		k = -k
	}

	f := rational.FromInt(new(big.Int).Exp(big.NewInt(base), big.NewInt(int64(k)), nil))
	if n > 0 {
		return r.Mul(f), nil
	}

	return r.Quo(f)
}

// specialText returns the text of NaN and the infinities.
func (f Float) specialText() string {
	if f.IsNaN() {
		return "NaN"
	}
	if f.Signbit() {
		return "-Inf"
	}

	return "+Inf"
}

// Text returns the exact value of f in radix without an exponent. Binary
// fractions terminate in every supported radix, so no digits are lost.
func (f Float) Text(radix numeral.Radix) string {
	if !f.IsFinite() {
		return f.specialText()
	}
	if f.IsZero() {
		if f.Signbit() {
			return "-0"
		}

		return "0"
	}

	r, _ := f.Value()
	digits := r.Den().BitLen() - 1

	return r.Expand(radix, digits).String()
}

// String returns the exact decimal value of f.
func (f Float) String() string {
	return f.Text(numeral.Dec)
}

// Normalise returns f as a significand with one leading digit and a signed
// binary exponent: 1.01p+3 in radix 2, 1.4p+3 in radix 16 and 1.25p+3 in
// radix 10 for the value 10. Subnormals keep their leading zero and the
// MinExponent of the profile, e.g. 0.0000000000001p-1022.
func (f Float) Normalise(radix numeral.Radix) string {
	if !f.IsFinite() {
		return f.specialText()
	}

	sign := ""
	if f.Signbit() {
		sign = "-"
	}
	if f.IsZero() {
		return sign + "0.0p+0"
	}

	m, k := f.significand()
	top := int(f.prof().SignificandBits)

	// m / 2^top is in [1, 2), or [0, 1) for a subnormal, and has top
	// fraction bits.
	e := ldexp(m, -top).Expand(radix, top)

	frac := strings.TrimRight(e.Fraction, "0")
	if frac == "" {
		frac = "0"
	}

	return sign + e.Integer + "." + frac + "p" + exponent(k+top)
}

// exponent writes k with an explicit sign.
func exponent(k int) string {
	if k >= 0 {
		return "+" + strconv.Itoa(k)
	}

	return strconv.Itoa(k)
}

// Pair returns the pretty form in radix, normalised or plain, and the exact
// decimal value as the canonical form.
func (f Float) Pair(radix numeral.Radix, normalized bool) numeral.Pair {
	pretty := f.Text(radix)
	if normalized {
		pretty = f.Normalise(radix)
	}

	return numeral.Pair{
		Pretty:    pretty,
		Canonical: f.String(),
	}
}
