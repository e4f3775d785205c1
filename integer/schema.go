package integer

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/calebcase/numeral"
)

// Width is a register size in bits. Unlimited is the arbitrary precision
// marker used by the Unbounded encoding.
type Width uint

const (
	// Unlimited has no fixed size.
	Unlimited Width = 0

	// MaxWidth bounds the internal register size. Only the Widths table is
	// offered to callers through ParseWidth, but wider registers hold the bit
	// patterns of custom float profiles.
	MaxWidth Width = 1 << 16

	// MaxUnboundedBits bounds the magnitude of Unlimited values. Results
	// needing more bits are an Overflow error.
	MaxUnboundedBits = 1 << 20
)

// Widths is the table of selectable register sizes.
var Widths = []Width{4, 8, 16, 32, 64, 128, 256}

// ParseWidth returns the width for bits, which must be in Widths or 0 for
// Unlimited.
func ParseWidth(bits int) (Width, error) {
	if bits == 0 {
		return Unlimited, nil
	}

	for _, w := range Widths {
		if int(w) == bits {
			return w, nil
		}
	}

	return 0, Error.Wrap(numeral.UnsupportedPrecision.New("width %d", bits))
}

func (w Width) String() string {
	if w == Unlimited {
		return "unlimited"
	}

	return strconv.Itoa(int(w))
}

// Encoding selects how a value is laid out in a register.
type Encoding int

const (
	// Unbounded is plain arithmetic where overflow is an error instead of a
	// wrap. The zero Schema uses it with an Unlimited width.
	Unbounded Encoding = iota
	TwosComplement
	OnesComplement
	SignMagnitude
	ExcessN
	Negabinary
	Unsigned
)

// Encodings lists every encoding.
var Encodings = []Encoding{
	Unbounded,
	TwosComplement,
	OnesComplement,
	SignMagnitude,
	ExcessN,
	Negabinary,
	Unsigned,
}

var encodingNames = map[Encoding]string{
	Unbounded:      "unbounded",
	TwosComplement: "twos-complement",
	OnesComplement: "ones-complement",
	SignMagnitude:  "sign-magnitude",
	ExcessN:        "excess-n",
	Negabinary:     "negabinary",
	Unsigned:       "unsigned",
}

func (e Encoding) String() string {
	if name, ok := encodingNames[e]; ok {
		return name
	}

	return "encoding(" + strconv.Itoa(int(e)) + ")"
}

// ParseEncoding returns the encoding for its name, as printed by String.
func ParseEncoding(name string) (Encoding, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for e, n := range encodingNames {
		if n == name {
			return e, nil
		}
	}

	return 0, Error.Wrap(numeral.UnsupportedPrecision.New("encoding %q", name))
}

// Schema is the (encoding, width) pair every Int carries.
type Schema struct {
	Width    Width
	Encoding Encoding
}

func (s Schema) String() string {
	return s.Encoding.String() + "/" + s.Width.String()
}

// Validate checks that the pair can be used. Only Unbounded accepts an
// Unlimited width; the signed encodings that reserve a bit need at least two.
func (s Schema) Validate() error {
	if _, ok := encodingNames[s.Encoding]; !ok {
		return Error.Wrap(numeral.UnsupportedPrecision.New("encoding %d", int(s.Encoding)))
	}

	if s.Width == Unlimited {
		if s.Encoding != Unbounded {
			return Error.Wrap(numeral.UnsupportedPrecision.New("%s needs a fixed width", s.Encoding))
		}

		return nil
	}

	if s.Width > MaxWidth {
		return Error.Wrap(numeral.UnsupportedPrecision.New("width %d exceeds %d", s.Width, MaxWidth))
	}

	switch s.Encoding {
	case OnesComplement, SignMagnitude, ExcessN:
		if s.Width < 2 {
			return Error.Wrap(numeral.UnsupportedPrecision.New("%s needs at least 2 bits", s.Encoding))
		}
	}

	return nil
}

// Min returns the smallest representable value, or nil for an Unlimited
// width.
func (s Schema) Min() *big.Int {
	if s.Width == Unlimited {
		return nil
	}

	return ruleFor(s.Encoding).min(uint(s.Width))
}

// Max returns the largest representable value, or nil for an Unlimited
// width.
func (s Schema) Max() *big.Int {
	if s.Width == Unlimited {
		return nil
	}

	return ruleFor(s.Encoding).max(uint(s.Width))
}

// Fits reports whether v is representable without wrapping.
func (s Schema) Fits(v *big.Int) bool {
	if s.Width == Unlimited {
		return v.BitLen() <= MaxUnboundedBits
	}

	return v.Cmp(s.Min()) >= 0 && v.Cmp(s.Max()) <= 0
}

// mask returns 2^w - 1.
func mask(w uint) *big.Int {
	m := new(big.Int).Lsh(one, w)

	return m.Sub(m, one)
}

// modulus returns 2^w.
func modulus(w uint) *big.Int {
	return new(big.Int).Lsh(one, w)
}
