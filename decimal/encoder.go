package decimal

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/apd/v3"

	"github.com/calebcase/numeral"
	"github.com/calebcase/numeral/rational"
)

const (
	// DefaultScale is the default fraction digit budget when looking for a
	// recurring cycle. 1/97 has a period of 96.
	DefaultScale = 100

	// MaxScale bounds Schema.Scale.
	MaxScale = 1 << 16

	// MaxPrecision bounds Schema.Precision.
	MaxPrecision = 1 << 16

	// MaxExponent bounds the exponents Parse accepts.
	MaxExponent = 1 << 20

	// CanonicalScale is the fraction digit budget of canonical strings. A
	// cycle that does not close within it is written as the exact fraction
	// p/q instead.
	CanonicalScale = 1 << 12
)

// Schema is a formatting configuration.
type Schema struct {
	// Point separates the integer and fraction digits.
	Point string

	// IntegerGroup digits are grouped from the point leftwards and joined
	// by IntegerSeparator. Zero disables grouping.
	IntegerGroup     int
	IntegerSeparator string

	// FractionGroup digits are grouped from the point rightwards and joined
	// by FractionSeparator. Zero disables grouping.
	FractionGroup     int
	FractionSeparator string

	// Recurring encloses the recurring cycle in RecurringOpen and
	// RecurringClose. When false the cycle is repeated up to Scale digits
	// instead.
	Recurring      bool
	RecurringOpen  string
	RecurringClose string

	// Scale is the fraction digit budget; zero means DefaultScale.
	Scale int

	// Precision rounds to this many significant digits; zero keeps the
	// exact value.
	Precision int

	// ExponentMarker separates the mantissa and the exponent.
	ExponentMarker string
}

// DefaultSchema groups integer digits in thousands and marks cycles with
// parentheses.
var DefaultSchema = Schema{
	Point:             ".",
	IntegerGroup:      3,
	IntegerSeparator:  ",",
	FractionGroup:     0,
	FractionSeparator: " ",
	Recurring:         true,
	RecurringOpen:     "(",
	RecurringClose:    ")",
	Scale:             DefaultScale,
	ExponentMarker:    "e",
}

// Validate reports settings the encoder cannot honour.
func (s Schema) Validate() (err error) {
	defer Error.WrapP(&err)

	switch {
	case s.IntegerGroup < 0 || s.FractionGroup < 0:
		return numeral.UnsupportedPrecision.New("negative group size")
	case s.Scale < 0 || s.Scale > MaxScale:
		return numeral.UnsupportedPrecision.New("scale %d outside [0, %d]", s.Scale, MaxScale)
	case s.Precision < 0 || s.Precision > MaxPrecision:
		return numeral.UnsupportedPrecision.New("precision %d outside [0, %d]", s.Precision, MaxPrecision)
	case s.Point == "":
		return numeral.MalformedNumber.New("empty decimal point")
	case strings.ContainsAny(s.Point+s.IntegerSeparator+s.FractionSeparator, "0123456789-"):
		return numeral.MalformedNumber.New("separators must not contain digits or a sign")
	case s.Point == s.IntegerSeparator && s.IntegerGroup > 0:
		return numeral.MalformedNumber.New("point %q is also the group separator", s.Point)
	}

	return nil
}

// Encoder formats rationals under a Schema. It holds no other state and is
// safe for concurrent use.
type Encoder struct {
	schema Schema
}

// NewEncoder returns an encoder for schema. Empty point, brackets and
// exponent marker take their DefaultSchema values, as does a zero Scale.
func NewEncoder(schema Schema) *Encoder {
	if schema.Point == "" {
		schema.Point = DefaultSchema.Point
	}
	if schema.RecurringOpen == "" && schema.RecurringClose == "" {
		schema.RecurringOpen = DefaultSchema.RecurringOpen
		schema.RecurringClose = DefaultSchema.RecurringClose
	}
	if schema.ExponentMarker == "" {
		schema.ExponentMarker = DefaultSchema.ExponentMarker
	}
	if schema.Scale == 0 {
		schema.Scale = DefaultScale
	}

	return &Encoder{
		schema: schema,
	}
}

// Schema returns the schema in use.
func (e *Encoder) Schema() Schema {
	return e.schema
}

// round applies the significant digit precision, half to even.
func (e *Encoder) round(r rational.Rat) (rational.Rat, error) {
	if e.schema.Precision == 0 || r.IsZero() {
		return r, nil
	}

	ctx := apd.BaseContext.WithPrecision(uint32(e.schema.Precision))
	ctx.Rounding = apd.RoundHalfEven

	d, err := r.Decimal(ctx)
	if err != nil {
		return rational.Rat{}, err
	}

	return rational.FromAPD(d), nil
}

// Plain returns r without an exponent.
func (e *Encoder) Plain(r rational.Rat) (_ numeral.Pair, err error) {
	defer Error.WrapP(&err)

	v, err := e.round(r)
	if err != nil {
		return numeral.Pair{}, err
	}

	x := v.Expand(numeral.Dec, e.schema.Scale)

	return numeral.Pair{
		Pretty:    e.pretty(x),
		Canonical: canonical(v, x),
	}, nil
}

// Scientific returns r with one nonzero digit before the point.
func (e *Encoder) Scientific(r rational.Rat) (_ numeral.Pair, err error) {
	defer Error.WrapP(&err)

	v, err := e.round(r)
	if err != nil {
		return numeral.Pair{}, err
	}

	return e.exponential(Split(v, 1)), nil
}

// Engineering returns r with an exponent that is a multiple of 3.
func (e *Encoder) Engineering(r rational.Rat) (_ numeral.Pair, err error) {
	defer Error.WrapP(&err)

	v, err := e.round(r)
	if err != nil {
		return numeral.Pair{}, err
	}

	return e.exponential(Split(v, 3)), nil
}

// SI returns the engineering form with the exponent written as an SI
// prefix, e.g. "12.3m". Exponents without a prefix keep the engineering
// form.
func (e *Encoder) SI(r rational.Rat) (_ numeral.Pair, err error) {
	defer Error.WrapP(&err)

	v, err := e.round(r)
	if err != nil {
		return numeral.Pair{}, err
	}

	b := Split(v, 3)

	pair := e.exponential(b)

	prefix, ok := Prefix(b.Exponent)
	if ok {
		pair.Pretty = e.pretty(b.Mantissa.Expand(numeral.Dec, e.schema.Scale)) + prefix
	}

	return pair, nil
}

func (e *Encoder) exponential(b Block) numeral.Pair {
	x := b.Mantissa.Expand(numeral.Dec, e.schema.Scale)
	exp := strconv.Itoa(b.Exponent)

	return numeral.Pair{
		Pretty:    e.pretty(x) + e.schema.ExponentMarker + exp,
		Canonical: canonical(b.Mantissa, x) + "e" + exp,
	}
}

// pretty writes x under the schema.
func (e *Encoder) pretty(x rational.Expansion) string {
	s := e.schema

	var b strings.Builder
	if x.Negative {
		b.WriteByte('-')
	}
	b.WriteString(group(x.Integer, s.IntegerGroup, s.IntegerSeparator))

	frac, cycle := x.Fraction, x.Cycle
	more := !x.Complete
	if !s.Recurring && cycle != "" {
		frac, cycle = x.Digits(s.Scale), ""
		more = true
	}

	if frac == "" && cycle == "" {
		if more {
			b.WriteString("…")
		}

		return b.String()
	}

	b.WriteString(s.Point)

	digits := frac + cycle
	for i := 0; i < len(digits); i++ {
		if i > 0 && s.FractionGroup > 0 && i%s.FractionGroup == 0 {
			b.WriteString(s.FractionSeparator)
		}
		if i == len(frac) && cycle != "" {
			b.WriteString(s.RecurringOpen)
		}
		b.WriteByte(digits[i])
	}
	if cycle != "" {
		b.WriteString(s.RecurringClose)
	}
	if more {
		b.WriteString("…")
	}

	return b.String()
}

// group joins the digits of s in groups of size from the right.
func group(s string, size int, sep string) string {
	if size <= 0 || len(s) <= size {
		return s
	}

	var b strings.Builder
	head := len(s) % size
	if head > 0 {
		b.WriteString(s[:head])
	}
	for i := head; i < len(s); i += size {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(s[i : i+size])
	}

	return b.String()
}
