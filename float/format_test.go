package float_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebcase/numeral"
	"github.com/calebcase/numeral/float"
	"github.com/calebcase/oops"
)

func TestNormalise(t *testing.T) {
	type TC struct {
		name  string
		f     float.Float
		radix numeral.Radix
		want  string
		Mark  error
	}

	ten := float.FromFloat64(10)

	tcs := []TC{
		{name: "10", f: ten, radix: numeral.Bin, want: "1.01p+3", Mark: oops.New("unexpected")},
		{name: "10", f: ten, radix: numeral.Oct, want: "1.2p+3", Mark: oops.New("unexpected")},
		{name: "10", f: ten, radix: numeral.Dec, want: "1.25p+3", Mark: oops.New("unexpected")},
		{name: "10", f: ten, radix: numeral.Hex, want: "1.4p+3", Mark: oops.New("unexpected")},
		{name: "0.1", f: float.FromFloat64(0.1), radix: numeral.Hex, want: "1.999999999999ap-4", Mark: oops.New("unexpected")},
		{name: "1", f: float.FromFloat64(1), radix: numeral.Dec, want: "1.0p+0", Mark: oops.New("unexpected")},
		{name: "-0.75", f: float.FromFloat64(-0.75), radix: numeral.Bin, want: "-1.1p-1", Mark: oops.New("unexpected")},
		{name: "-0", f: float.FromFloat64(math.Copysign(0, -1)), radix: numeral.Hex, want: "-0.0p+0", Mark: oops.New("unexpected")},
		{name: "smallest", f: float.SmallestNonzero(float.Double), radix: numeral.Hex, want: "0.0000000000001p-1022", Mark: oops.New("unexpected")},
		{name: "subnormal", f: float.FromFloat64(3 * math.SmallestNonzeroFloat64), radix: numeral.Bin, want: "0.0000000000000000000000000000000000000000000000000011p-1022", Mark: oops.New("unexpected")},
		{name: "nan", f: float.NaN(float.Half), radix: numeral.Hex, want: "NaN", Mark: oops.New("unexpected")},
		{name: "-inf", f: float.Inf(float.Half, -1), radix: numeral.Bin, want: "-Inf", Mark: oops.New("unexpected")},
		{name: "half max", f: float.MaxValue(float.Half), radix: numeral.Bin, want: "1.1111111111p+15", Mark: oops.New("unexpected")},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s/%s", i, tc.name, tc.radix), func(t *testing.T) {
			got := tc.f.Normalise(tc.radix)
			require.Equal(t, tc.want, got, tc.Mark)

			// The normalised form reads back to the same bits.
			back, err := float.Parse(tc.f.Profile(), got, tc.radix, true)
			require.NoError(t, err, tc.Mark)
			if tc.f.IsNaN() {
				require.True(t, back.IsNaN(), tc.Mark)

				return
			}
			require.Equal(t, bitsOf(tc.f), bitsOf(back), tc.Mark)
		})
	}
}

func TestText(t *testing.T) {
	type TC struct {
		name  string
		f     float.Float
		radix numeral.Radix
		want  string
		Mark  error
	}

	tcs := []TC{
		{name: "0.1", f: float.FromFloat64(0.1), radix: numeral.Dec, want: "0.1000000000000000055511151231257827021181583404541015625", Mark: oops.New("unexpected")},
		{name: "10", f: float.FromFloat64(10), radix: numeral.Bin, want: "1010", Mark: oops.New("unexpected")},
		{name: "0.5", f: float.FromFloat64(0.5), radix: numeral.Hex, want: "0.8", Mark: oops.New("unexpected")},
		{name: "-2.5", f: float.FromFloat64(-2.5), radix: numeral.Oct, want: "-2.4", Mark: oops.New("unexpected")},
		{name: "255.75", f: float.FromFloat64(255.75), radix: numeral.Hex, want: "ff.c", Mark: oops.New("unexpected")},
		{name: "1e21", f: float.FromFloat64(1e21), radix: numeral.Dec, want: "1000000000000000000000", Mark: oops.New("unexpected")},
		{name: "half 0.1", f: float.MustParse(float.Half, "0.1"), radix: numeral.Dec, want: "0.0999755859375", Mark: oops.New("unexpected")},
		{name: "+inf", f: float.Inf(float.Single, 1), radix: numeral.Dec, want: "+Inf", Mark: oops.New("unexpected")},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s/%s", i, tc.name, tc.radix), func(t *testing.T) {
			require.Equal(t, tc.want, tc.f.Text(tc.radix), tc.Mark)

			// The plain form is exact, so it parses back to the same bits.
			back, err := float.Parse(tc.f.Profile(), tc.want, tc.radix, false)
			require.NoError(t, err, tc.Mark)
			require.Equal(t, bitsOf(tc.f), bitsOf(back), tc.Mark)
		})
	}

	pair := float.FromFloat64(10).Pair(numeral.Hex, true)
	require.Equal(t, "1.4p+3", pair.Pretty)
	require.Equal(t, "10", pair.Canonical)

	pair = float.FromFloat64(10).Pair(numeral.Hex, false)
	require.Equal(t, "a", pair.Pretty)

	// The smallest quadruple subnormal is 2^-16494: 16494 fraction digits
	// ending in 5.
	text := float.SmallestNonzero(float.Quadruple).Text(numeral.Dec)
	require.Len(t, text, len("0.")+16494)
	require.Equal(t, byte('5'), text[len(text)-1])
}

func TestParse(t *testing.T) {
	type TC struct {
		name       string
		profile    float.Profile
		input      string
		radix      numeral.Radix
		normalized bool
		want       float64
		Mark       error
	}

	tcs := []TC{
		{name: "hex exponent", profile: float.Double, input: "1.8p-1", radix: numeral.Hex, want: 0.75, Mark: oops.New("unexpected")},
		{name: "binary exponent", profile: float.Double, input: "101.1p2", radix: numeral.Bin, want: 22, Mark: oops.New("unexpected")},
		{name: "octal", profile: float.Double, input: "-17.4", radix: numeral.Oct, want: -15.5, Mark: oops.New("unexpected")},
		{name: "decimal exponent", profile: float.Double, input: "2.5e-3", radix: numeral.Dec, want: 0.0025, Mark: oops.New("unexpected")},
		{name: "signed exponent", profile: float.Double, input: "+4E+2", radix: numeral.Dec, want: 400, Mark: oops.New("unexpected")},
		{name: "recurring", profile: float.Double, input: "0.(3)", radix: numeral.Dec, want: 1.0 / 3, Mark: oops.New("unexpected")},
		{name: "normalised hex", profile: float.Double, input: "1.999999999999ap-4", radix: numeral.Hex, normalized: true, want: 0.1, Mark: oops.New("unexpected")},
		{name: "normalised dec", profile: float.Double, input: "1.25p3", radix: numeral.Dec, normalized: true, want: 10, Mark: oops.New("unexpected")},
		{name: "normalised subnormal", profile: float.Double, input: "0.0000000000001p-1022", radix: numeral.Hex, normalized: true, want: math.SmallestNonzeroFloat64, Mark: oops.New("unexpected")},
		{name: "octuple", profile: float.Octuple, input: "0.1", radix: numeral.Dec, want: 0.1, Mark: oops.New("unexpected")},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			f, err := float.Parse(tc.profile, tc.input, tc.radix, tc.normalized)
			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.want, f.Float64(), tc.Mark)
		})
	}

	t.Run("errors", func(t *testing.T) {
		type TC struct {
			input      string
			radix      numeral.Radix
			normalized bool
			class      interface{ Has(error) bool }
		}

		tcs := []TC{
			{input: "1.2.3", radix: numeral.Dec, class: &numeral.MalformedNumber},
			{input: "abc", radix: numeral.Dec, class: &numeral.MalformedNumber},
			{input: "12", radix: numeral.Bin, class: &numeral.MalformedNumber},
			{input: "--1", radix: numeral.Dec, class: &numeral.MalformedNumber},
			{input: "1e", radix: numeral.Dec, class: &numeral.MalformedNumber},
			{input: "1ex", radix: numeral.Dec, class: &numeral.MalformedNumber},
			{input: "", radix: numeral.Dec, class: &numeral.MalformedNumber},
			{input: "10.1p3", radix: numeral.Bin, normalized: true, class: &numeral.MalformedNumber},
			{input: "1.5", radix: numeral.Dec, normalized: true, class: &numeral.MalformedNumber},
			{input: "1", radix: numeral.Radix(7), class: &numeral.UnsupportedPrecision},
		}

		for i, tc := range tcs {
			t.Run(fmt.Sprintf("[%d]%q", i, tc.input), func(t *testing.T) {
				_, err := float.Parse(float.Double, tc.input, tc.radix, tc.normalized)
				require.Error(t, err)
				require.True(t, tc.class.Has(err), "%+v", err)
				require.True(t, float.Error.Has(err))
			})
		}
	})
}

func ExampleFloat_Normalise() {
	f := float.MustParse(float.Single, "0.15625")

	fmt.Println(f.Normalise(numeral.Bin))
	fmt.Println(f.Normalise(numeral.Hex))
	fmt.Println(f.Bits().BitText(numeral.Bin))
	// Output:
	// 1.01p-3
	// 1.4p-3
	// 00111110001000000000000000000000
}
