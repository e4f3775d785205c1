package integer

import (
	"math/big"
	"strings"

	"github.com/calebcase/numeral"
)

// Int is a register value: a bit pattern together with the schema it is
// read under. Int is immutable; every operation returns a new value.
//
// The zero Int is 0 under the Unbounded encoding with an Unlimited width.
type Int struct {
	schema Schema
	bits   *big.Int
}

func (i Int) pattern() *big.Int {
	if i.bits == nil {
		return zero
	}

	return i.bits
}

func (i Int) width() uint {
	return uint(i.schema.Width)
}

func (i Int) rule() rule {
	return ruleFor(i.schema.Encoding)
}

// New returns v stored under schema. Values outside the range wrap the way
// the encoding wraps; under Unbounded they are an Overflow error.
func New(schema Schema, v *big.Int) (_ Int, err error) {
	defer Error.WrapP(&err)

	err = schema.Validate()
	if err != nil {
		return Int{}, err
	}

	return encode(schema, v)
}

// NewInt64 is New for a machine integer.
func NewInt64(schema Schema, v int64) (Int, error) {
	return New(schema, big.NewInt(v))
}

// FromBits returns the Int whose raw pattern is bits. The pattern must be
// non-negative and fit the width. With an Unlimited width the pattern is the
// signed value itself.
func FromBits(schema Schema, bits *big.Int) (_ Int, err error) {
	defer Error.WrapP(&err)

	err = schema.Validate()
	if err != nil {
		return Int{}, err
	}

	if schema.Width == Unlimited {
		return encode(schema, bits)
	}

	if bits.Sign() < 0 || bits.BitLen() > int(schema.Width) {
		return Int{}, numeral.MalformedNumber.New("pattern %s is wider than %d bits", bits.Text(2), schema.Width)
	}

	return Int{schema: schema, bits: new(big.Int).Set(bits)}, nil
}

// encode assumes a valid schema.
func encode(schema Schema, v *big.Int) (Int, error) {
	p, err := ruleFor(schema.Encoding).encode(v, uint(schema.Width))
	if err != nil {
		return Int{}, err
	}

	return Int{schema: schema, bits: p}, nil
}

// with stores v under the schema of i.
func (i Int) with(v *big.Int) (Int, error) {
	return encode(i.schema, v)
}

// withBits stores a pattern already known to fit.
func (i Int) withBits(p *big.Int) Int {
	return Int{schema: i.schema, bits: p}
}

// Schema returns the schema i is read under.
func (i Int) Schema() Schema {
	return i.schema
}

// Bits returns a copy of the raw pattern.
func (i Int) Bits() *big.Int {
	return new(big.Int).Set(i.pattern())
}

// Value returns the decoded value.
func (i Int) Value() *big.Int {
	return i.rule().decode(i.pattern(), i.width())
}

// Bit returns bit n of the pattern.
func (i Int) Bit(n int) uint {
	return i.pattern().Bit(n)
}

// Sign returns -1, 0 or +1 for the decoded value.
func (i Int) Sign() int {
	return i.Value().Sign()
}

// IsZero reports whether the decoded value is zero. Negative zero patterns
// are zero.
func (i Int) IsZero() bool {
	return i.Sign() == 0
}

// Cast stores the value of i under another schema, wrapping as that schema
// wraps.
func (i Int) Cast(schema Schema) (Int, error) {
	return New(schema, i.Value())
}

// Parse reads a signed numeral in radix and stores it under schema. The value
// wraps like any other result, so "-1" under Unsigned is the all ones
// pattern.
func Parse(schema Schema, s string, radix numeral.Radix) (_ Int, err error) {
	defer Error.WrapP(&err)

	v, err := parseDigits(s, radix, true)
	if err != nil {
		return Int{}, err
	}

	err = schema.Validate()
	if err != nil {
		return Int{}, err
	}

	return encode(schema, v)
}

// ParseBits reads a raw bit pattern written in radix, e.g. "1000_0000" in
// radix 2 for the two's complement minimum of a byte.
func ParseBits(schema Schema, s string, radix numeral.Radix) (_ Int, err error) {
	defer Error.WrapP(&err)

	v, err := parseDigits(s, radix, false)
	if err != nil {
		return Int{}, err
	}

	return FromBits(schema, v)
}

func parseDigits(s string, radix numeral.Radix, signed bool) (*big.Int, error) {
	if !radix.Valid() {
		return nil, numeral.UnsupportedPrecision.New("radix %d", int(radix))
	}

	digits := strings.ReplaceAll(strings.TrimSpace(s), "_", "")
	neg := false
	if signed && len(digits) > 0 {
		switch digits[0] {
		case '-':
			neg = true
			digits = digits[1:]
		case '+':
			digits = digits[1:]
		}
	}

	if digits == "" {
		return nil, numeral.MalformedNumber.New("no digits in %q", s)
	}
	for k := 0; k < len(digits); k++ {
		if _, ok := radix.Digit(digits[k]); !ok {
			return nil, numeral.MalformedNumber.New("%q in %s", s, radix)
		}
	}

	v, ok := new(big.Int).SetString(digits, int(radix))
	if !ok {
		return nil, numeral.MalformedNumber.New("%q in %s", s, radix)
	}
	if neg {
		v.Neg(v)
	}

	return v, nil
}

// Text returns the decoded value in radix with a leading '-' when negative.
// Letters are lower case.
func (i Int) Text(radix numeral.Radix) string {
	return i.Value().Text(int(radix))
}

// String returns the decimal value.
func (i Int) String() string {
	return i.Text(numeral.Dec)
}

// BitText returns the raw pattern in radix, zero padded to the width for
// radix 2, 8 and 16. An Unlimited width has no pattern and returns Text.
func (i Int) BitText(radix numeral.Radix) string {
	if i.schema.Width == Unlimited {
		return i.Text(radix)
	}

	s := i.pattern().Text(int(radix))

	bpd := radix.BitsPerDigit()
	if bpd == 0 {
		return s
	}

	n := (int(i.schema.Width) + int(bpd) - 1) / int(bpd)
	if len(s) < n {
		s = strings.Repeat("0", n-len(s)) + s
	}

	return s
}

// Pair returns the value for display: the pretty string groups the pattern in
// nibbles, the canonical string is the signed value in radix.
func (i Int) Pair(radix numeral.Radix) numeral.Pair {
	pretty := i.Text(radix)
	if radix == numeral.Bin && i.schema.Width != Unlimited {
		pretty = group(i.BitText(radix), 4, ' ')
	}

	return numeral.Pair{
		Pretty:    pretty,
		Canonical: i.Text(radix),
	}
}

// group inserts sep every size digits counting from the right.
func group(s string, size int, sep byte) string {
	var b strings.Builder
	for k := 0; k < len(s); k++ {
		if k > 0 && (len(s)-k)%size == 0 {
			b.WriteByte(sep)
		}
		b.WriteByte(s[k])
	}

	return b.String()
}

// Block is a signed magnitude split into big-endian bytes. It is the wire
// layout for values without a fixed width.
type Block struct {
	Value    []byte
	Negative bool
}

// MarshalBinary implements encoding.BinaryMarshaler. The magnitude is
// shifted up one bit and the sign stored in bit zero, so small values of
// either sign stay small.
func (b Block) MarshalBinary() (data []byte, err error) {
	i := new(big.Int).SetBytes(b.Value)

	i.Lsh(i, 1)
	if b.Negative {
		i.SetBit(i, 0, 1)
	}

	return minBytes(i), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (b *Block) UnmarshalBinary(data []byte) (err error) {
	i := new(big.Int).SetBytes(data)

	b.Negative = i.Bit(0) == 1
	i.Rsh(i, 1)
	b.Value = minBytes(i)

	return nil
}

// minBytes encodes zero as a single zero byte instead of big.Int's empty
// slice.
func minBytes(i *big.Int) []byte {
	data := i.Bytes()
	if len(data) == 0 {
		data = []byte{0}
	}

	return data
}

// Block returns the sign and magnitude of the decoded value.
func (i Int) Block() Block {
	v := i.Value()

	return Block{
		Value:    minBytes(new(big.Int).Abs(v)),
		Negative: v.Sign() < 0,
	}
}

// MarshalBinary implements encoding.BinaryMarshaler. A fixed width register
// is its pattern in ceil(width/8) big-endian bytes; an Unlimited one is its
// Block.
func (i Int) MarshalBinary() ([]byte, error) {
	if i.schema.Width == Unlimited {
		return i.Block().MarshalBinary()
	}

	return i.pattern().FillBytes(make([]byte, (i.width()+7)/8)), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. The schema of i
// selects the layout and is kept.
func (i *Int) UnmarshalBinary(data []byte) (err error) {
	defer Error.WrapP(&err)

	err = i.schema.Validate()
	if err != nil {
		return err
	}

	if i.schema.Width == Unlimited {
		blk := &Block{}
		err = blk.UnmarshalBinary(data)
		if err != nil {
			return err
		}

		v := new(big.Int).SetBytes(blk.Value)
		if blk.Negative {
			v.Neg(v)
		}

		out, err := encode(i.schema, v)
		if err != nil {
			return err
		}
		*i = out

		return nil
	}

	if len(data) != int(i.width()+7)/8 {
		return numeral.MalformedNumber.New("%d bytes for %d bits", len(data), i.schema.Width)
	}

	out, err := FromBits(i.schema, new(big.Int).SetBytes(data))
	if err != nil {
		return err
	}
	*i = out

	return nil
}
