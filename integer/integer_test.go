package integer

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebcase/numeral"
)

var (
	twos8 = Schema{Width: 8, Encoding: TwosComplement}
	uns8  = Schema{Width: 8, Encoding: Unsigned}
	ones8 = Schema{Width: 8, Encoding: OnesComplement}
	sm8   = Schema{Width: 8, Encoding: SignMagnitude}
	ex8   = Schema{Width: 8, Encoding: ExcessN}
	nb8   = Schema{Width: 8, Encoding: Negabinary}
	unb8  = Schema{Width: 8, Encoding: Unbounded}
	unb   = Schema{Width: Unlimited, Encoding: Unbounded}
)

func mustInt(t testing.TB, schema Schema, v int64) Int {
	t.Helper()

	i, err := NewInt64(schema, v)
	require.NoError(t, err)

	return i
}

func TestMarshalUnmarshal(t *testing.T) {
	type TC struct {
		name string
		blk  *Block
		data []byte
	}

	tcs := []TC{
		{
			name: "+0",
			blk: &Block{
				Value: []byte{
					0b0000_0000,
				},
				Negative: false,
			},
			data: []byte{
				0b0000_0000,
			},
		},
		{
			name: "+1",
			blk: &Block{
				Value: []byte{
					0b0000_0001,
				},
				Negative: false,
			},
			data: []byte{
				0b0000_0010,
			},
		},
		{
			name: "-1",
			blk: &Block{
				Value: []byte{
					0b0000_0001,
				},
				Negative: true,
			},
			data: []byte{
				0b0000_0011,
			},
		},
		{
			name: "-127",
			blk: &Block{
				Value: []byte{
					0b0111_1111,
				},
				Negative: true,
			},
			data: []byte{
				0b1111_1111,
			},
		},
		{
			name: "+32767",
			blk: &Block{
				Value: []byte{
					0b0111_1111,
					0b1111_1111,
				},
				Negative: false,
			},
			data: []byte{
				0b1111_1111,
				0b1111_1110,
			},
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			// These checks ensure that our test case name matches the value.
			v := new(big.Int)
			err := v.UnmarshalText([]byte(tc.name))
			require.NoError(t, err)

			t.Run("block", func(t *testing.T) {
				data, err := tc.blk.MarshalBinary()
				require.NoError(t, err)
				require.Equal(t, tc.data, data)

				blk := &Block{}
				err = blk.UnmarshalBinary(tc.data)
				require.NoError(t, err)
				require.Equal(t, tc.blk, blk)
			})

			t.Run("unlimited", func(t *testing.T) {
				x, err := New(unb, v)
				require.NoError(t, err)

				blk := x.Block()
				require.Equal(t, tc.blk, &blk)

				data, err := x.MarshalBinary()
				require.NoError(t, err)
				require.Equal(t, tc.data, data)

				y := Int{schema: unb}
				err = y.UnmarshalBinary(data)
				require.NoError(t, err)
				require.Equal(t, 0, v.Cmp(y.Value()))
			})
		})
	}
}

func TestMarshalFixedWidth(t *testing.T) {
	type TC struct {
		name   string
		schema Schema
		value  int64
		data   []byte
	}

	tcs := []TC{
		{name: "-1", schema: twos8, value: -1, data: []byte{0b1111_1111}},
		{name: "-128", schema: twos8, value: -128, data: []byte{0b1000_0000}},
		{name: "+5", schema: Schema{Width: 4, Encoding: TwosComplement}, value: 5, data: []byte{0b0000_0101}},
		{name: "-2", schema: Schema{Width: 16, Encoding: TwosComplement}, value: -2, data: []byte{0b1111_1111, 0b1111_1110}},
		{name: "-5", schema: nb8, value: -5, data: []byte{0b0000_1111}},
		{name: "0", schema: ex8, value: 0, data: []byte{0b1000_0000}},
		{name: "-1", schema: sm8, value: -1, data: []byte{0b1000_0001}},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s/%s", i, tc.name, tc.schema), func(t *testing.T) {
			x := mustInt(t, tc.schema, tc.value)

			data, err := x.MarshalBinary()
			require.NoError(t, err)
			require.Equal(t, tc.data, data)

			y := Int{schema: tc.schema}
			err = y.UnmarshalBinary(data)
			require.NoError(t, err)
			require.Equal(t, x.Schema(), y.Schema())
			require.Equal(t, 0, x.Bits().Cmp(y.Bits()))
		})
	}

	t.Run("length", func(t *testing.T) {
		y := Int{schema: twos8}
		err := y.UnmarshalBinary([]byte{0, 0})
		require.Error(t, err)
		require.True(t, numeral.MalformedNumber.Has(err))
	})
}

func TestParse(t *testing.T) {
	type TC struct {
		name   string
		schema Schema
		input  string
		radix  numeral.Radix
		bits   bool
		value  int64
	}

	tcs := []TC{
		{name: "min", schema: twos8, input: "-128", radix: numeral.Dec, value: -128},
		{name: "wraps", schema: twos8, input: "255", radix: numeral.Dec, value: -1},
		{name: "unsigned underflow", schema: uns8, input: "-1", radix: numeral.Dec, value: 255},
		{name: "hex", schema: twos8, input: "-7f", radix: numeral.Hex, value: -127},
		{name: "octal", schema: uns8, input: "+17", radix: numeral.Oct, value: 15},
		{name: "pattern", schema: twos8, input: "1000_0000", radix: numeral.Bin, bits: true, value: -128},
		{name: "negabinary pattern", schema: nb8, input: "1111", radix: numeral.Bin, bits: true, value: -5},
		{name: "ones negative zero", schema: ones8, input: "ff", radix: numeral.Hex, bits: true, value: 0},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			parse := Parse
			if tc.bits {
				parse = ParseBits
			}

			x, err := parse(tc.schema, tc.input, tc.radix)
			require.NoError(t, err)
			require.Equal(t, tc.value, x.Value().Int64())
		})
	}

	t.Run("errors", func(t *testing.T) {
		_, err := ParseBits(twos8, "1_0000_0000", numeral.Bin)
		require.True(t, numeral.MalformedNumber.Has(err))
		require.True(t, Error.Has(err))

		_, err = Parse(twos8, "12g", numeral.Dec)
		require.True(t, numeral.MalformedNumber.Has(err))

		_, err = Parse(twos8, "-", numeral.Dec)
		require.True(t, numeral.MalformedNumber.Has(err))

		_, err = ParseBits(twos8, "-1", numeral.Dec)
		require.True(t, numeral.MalformedNumber.Has(err))

		_, err = Parse(twos8, "1", numeral.Radix(7))
		require.True(t, numeral.UnsupportedPrecision.Has(err))

		_, err = Parse(unb8, "128", numeral.Dec)
		require.True(t, numeral.Overflow.Has(err))
	})
}

func TestText(t *testing.T) {
	x := mustInt(t, twos8, -1)
	require.Equal(t, "-1", x.String())
	require.Equal(t, "ff", x.BitText(numeral.Hex))
	require.Equal(t, "11111111", x.BitText(numeral.Bin))
	require.Equal(t, "377", x.BitText(numeral.Oct))
	require.Equal(t, "255", x.BitText(numeral.Dec))
	require.Equal(t, "1111 1111", x.Pair(numeral.Bin).Pretty)
	require.Equal(t, "-1", x.Pair(numeral.Bin).Canonical)

	y := mustInt(t, Schema{Width: 4, Encoding: Unsigned}, 5)
	require.Equal(t, "05", y.BitText(numeral.Oct))
	require.Equal(t, "0101", y.BitText(numeral.Bin))

	z := mustInt(t, Schema{Width: 16, Encoding: TwosComplement}, 10)
	require.Equal(t, "000a", z.BitText(numeral.Hex))
	require.Equal(t, "0000 0000 0000 1010", z.Pair(numeral.Bin).Pretty)

	u := mustInt(t, unb, -10)
	require.Equal(t, "-a", u.BitText(numeral.Hex))
}

func TestSchema(t *testing.T) {
	w, err := ParseWidth(0)
	require.NoError(t, err)
	require.Equal(t, Unlimited, w)

	w, err = ParseWidth(64)
	require.NoError(t, err)
	require.Equal(t, Width(64), w)

	_, err = ParseWidth(12)
	require.True(t, numeral.UnsupportedPrecision.Has(err))

	e, err := ParseEncoding("Negabinary")
	require.NoError(t, err)
	require.Equal(t, Negabinary, e)

	_, err = ParseEncoding("bcd")
	require.True(t, numeral.UnsupportedPrecision.Has(err))

	for _, e := range Encodings {
		e2, err := ParseEncoding(e.String())
		require.NoError(t, err)
		require.Equal(t, e, e2)
	}

	require.NoError(t, unb.Validate())
	require.NoError(t, Schema{}.Validate())
	require.True(t, numeral.UnsupportedPrecision.Has(Schema{Encoding: TwosComplement}.Validate()))
	require.True(t, numeral.UnsupportedPrecision.Has(Schema{Width: 1, Encoding: SignMagnitude}.Validate()))
	require.True(t, numeral.UnsupportedPrecision.Has(Schema{Width: MaxWidth + 1, Encoding: Unsigned}.Validate()))
	require.True(t, numeral.UnsupportedPrecision.Has(Schema{Width: 8, Encoding: Encoding(42)}.Validate()))

	var zero Int
	require.True(t, zero.IsZero())
	require.Equal(t, "0", zero.String())
}

func BenchmarkAdd(b *testing.B) {
	x := mustInt(b, Schema{Width: 64, Encoding: TwosComplement}, -524287)
	y := mustInt(b, Schema{Width: 64, Encoding: TwosComplement}, 4095)

	for n := 0; n < b.N; n++ {
		_, err := x.Add(y)
		if err != nil {
			b.Fatalf("%+v", err)
		}
	}
}

func BenchmarkMarshal(b *testing.B) {
	x := mustInt(b, unb, -524287)

	for n := 0; n < b.N; n++ {
		_, err := x.MarshalBinary()
		if err != nil {
			b.Fatalf("%+v", err)
		}
	}
}
