package integer

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebcase/numeral"
	"github.com/calebcase/oops"
)

func bits8(t *testing.T, schema Schema, p int64) Int {
	t.Helper()

	x, err := FromBits(schema, big.NewInt(p))
	require.NoError(t, err)

	return x
}

func TestLogic(t *testing.T) {
	a := bits8(t, twos8, 0b1100_1010)
	b := bits8(t, twos8, 0b1010_0110)

	type TC struct {
		name string
		got  Int
		want int64
	}

	tcs := []TC{
		{name: "not", got: a.Not(), want: 0b0011_0101},
		{name: "and", got: a.And(b), want: 0b1000_0010},
		{name: "or", got: a.Or(b), want: 0b1110_1110},
		{name: "xor", got: a.Xor(b), want: 0b0110_1100},
		{name: "nand", got: a.Nand(b), want: 0b0111_1101},
		{name: "nor", got: a.Nor(b), want: 0b0001_0001},
		{name: "xnor", got: a.Xnor(b), want: 0b1001_0011},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			require.Equal(t, tc.want, tc.got.Bits().Int64())
			require.Equal(t, twos8, tc.got.Schema())
		})
	}

	t.Run("not zero", func(t *testing.T) {
		require.Equal(t, int64(-1), mustInt(t, twos8, 0).Not().Value().Int64())
		require.Equal(t, int64(0), mustInt(t, ones8, 0).Not().Value().Int64())
		require.Equal(t, int64(255), mustInt(t, uns8, 0).Not().Value().Int64())
	})

	t.Run("unlimited", func(t *testing.T) {
		require.Equal(t, "-6", mustInt(t, unb, 5).Not().String())
		require.Equal(t, "12", mustInt(t, unb, -1).And(mustInt(t, unb, 12)).String())
		require.Equal(t, "-1", mustInt(t, unb, -4).Or(mustInt(t, unb, 3)).String())
	})

	t.Run("mixed schemas", func(t *testing.T) {
		x := mustInt(t, uns8, 0b1111_0000)
		y := mustInt(t, Schema{Width: 16, Encoding: TwosComplement}, -1)
		require.Equal(t, int64(0b1111_0000), x.And(y).Bits().Int64())
	})
}

func TestShift(t *testing.T) {
	type TC struct {
		name   string
		schema Schema
		value  int64
		n      int
		left   bool
		want   int64
		Mark   error
	}

	tcs := []TC{
		{name: "64<<1", schema: twos8, value: 64, n: 1, left: true, want: -128, Mark: oops.New("unexpected")},
		{name: "-1<<7", schema: twos8, value: -1, n: 7, left: true, want: -128, Mark: oops.New("unexpected")},
		{name: "-8>>1", schema: twos8, value: -8, n: 1, want: -4, Mark: oops.New("unexpected")},
		{name: "-7>>1", schema: twos8, value: -7, n: 1, want: -4, Mark: oops.New("unexpected")},
		{name: "-7>>1", schema: ones8, value: -7, n: 1, want: -3, Mark: oops.New("unexpected")},
		{name: "-7>>1", schema: sm8, value: -7, n: 1, want: -3, Mark: oops.New("unexpected")},
		{name: "-7<<2", schema: sm8, value: -7, n: 2, left: true, want: -28, Mark: oops.New("unexpected")},
		{name: "-7>>1", schema: ex8, value: -7, n: 1, want: -68, Mark: oops.New("unexpected")},
		{name: "128>>1", schema: uns8, value: 128, n: 1, want: 64, Mark: oops.New("unexpected")},
		{name: "200<<1", schema: uns8, value: 200, n: 1, left: true, want: 144, Mark: oops.New("unexpected")},
		{name: "5<<1", schema: nb8, value: 5, n: 1, left: true, want: -10, Mark: oops.New("unexpected")},
		{name: "-10>>1", schema: nb8, value: -10, n: 1, want: 5, Mark: oops.New("unexpected")},
		{name: "1<<100", schema: unb, value: 1, n: 100, left: true, want: 0, Mark: oops.New("unexpected")},
		{name: "-9>>2", schema: unb, value: -9, n: 2, want: -3, Mark: oops.New("unexpected")},
		{name: "3<<-1", schema: twos8, value: 3, n: -1, left: true, want: 1, Mark: oops.New("unexpected")},
		{name: "3>>-1", schema: twos8, value: 3, n: -1, want: 6, Mark: oops.New("unexpected")},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s/%s", i, tc.name, tc.schema), func(t *testing.T) {
			x := mustInt(t, tc.schema, tc.value)

			shift := x.ShiftRight
			if tc.left {
				shift = x.ShiftLeft
			}

			got, err := shift(tc.n)
			require.NoError(t, err, tc.Mark)

			if tc.schema.Width == Unlimited && tc.left {
				want := new(big.Int).Lsh(big.NewInt(tc.value), uint(tc.n))
				require.Equal(t, 0, want.Cmp(got.Value()), tc.Mark)

				return
			}

			require.Equal(t, tc.want, got.Value().Int64(), tc.Mark)
		})
	}

	t.Run("logical", func(t *testing.T) {
		x, err := mustInt(t, twos8, -1).ShiftRightLogical(1)
		require.NoError(t, err)
		require.Equal(t, int64(127), x.Value().Int64())

		x, err = mustInt(t, unb8, -128).ShiftRightLogical(7)
		require.NoError(t, err)
		require.Equal(t, int64(1), x.Value().Int64())

		_, err = mustInt(t, unb, -1).ShiftRightLogical(1)
		require.True(t, numeral.UnsupportedPrecision.Has(err))
	})

	t.Run("overflow", func(t *testing.T) {
		_, err := mustInt(t, unb8, 64).ShiftLeft(1)
		require.True(t, numeral.Overflow.Has(err))

		_, err = mustInt(t, unb, 1).ShiftLeft(MaxUnboundedBits + 1)
		require.True(t, numeral.Overflow.Has(err))

		x, err := mustInt(t, unb, 0).ShiftLeft(MaxUnboundedBits + 1)
		require.NoError(t, err)
		require.True(t, x.IsZero())
	})
}

// Amounts at or beyond the width wrap around the width instead of clearing
// the register.
func TestShiftAmountModuloWidth(t *testing.T) {
	for _, schema := range fixedSchemas(4, 8, 16) {
		t.Run(schema.String(), func(t *testing.T) {
			w := int(schema.Width)

			for _, v := range []int64{1, 3, -2, -3} {
				x, err := NewInt64(schema, v)
				require.NoError(t, err)

				ops := map[string]func(int) (Int, error){
					"shl":  x.ShiftLeft,
					"shr":  x.ShiftRight,
					"shrl": x.ShiftRightLogical,
					"rotl": x.RotateLeft,
					"rotr": x.RotateRight,
				}

				for name, op := range ops {
					same, err := op(0)
					require.NoError(t, err, name)
					require.Equal(t, 0, x.Bits().Cmp(same.Bits()), "%s by 0", name)

					full, err := op(w)
					require.NoError(t, err, name)
					require.Equal(t, 0, x.Bits().Cmp(full.Bits()), "%s by w", name)

					one, err := op(1)
					require.NoError(t, err, name)

					wrapped, err := op(w + 1)
					require.NoError(t, err, name)
					require.Equal(t, 0, one.Bits().Cmp(wrapped.Bits()), "%s by w+1", name)
				}
			}
		})
	}
}

func TestRotate(t *testing.T) {
	x := bits8(t, uns8, 0b1000_0001)

	l, err := x.RotateLeft(1)
	require.NoError(t, err)
	require.Equal(t, int64(0b0000_0011), l.Bits().Int64())

	r, err := x.RotateRight(1)
	require.NoError(t, err)
	require.Equal(t, int64(0b1100_0000), r.Bits().Int64())

	r2, err := x.RotateLeft(-1)
	require.NoError(t, err)
	require.Equal(t, 0, r.Bits().Cmp(r2.Bits()))

	l3, err := x.RotateLeft(3)
	require.NoError(t, err)
	require.Equal(t, int64(0b0000_1100), l3.Bits().Int64())

	// Rotations move the pattern whatever the encoding.
	s := bits8(t, sm8, 0b1000_0001)
	l, err = s.RotateLeft1()
	require.NoError(t, err)
	require.Equal(t, int64(3), l.Value().Int64())

	_, err = mustInt(t, unb, 1).RotateLeft(1)
	require.True(t, numeral.UnsupportedPrecision.Has(err))

	t.Run("single steps", func(t *testing.T) {
		y := mustInt(t, twos8, 3)

		a, err := y.ShiftLeft1()
		require.NoError(t, err)
		require.Equal(t, int64(6), a.Value().Int64())

		b, err := y.ShiftRight1()
		require.NoError(t, err)
		require.Equal(t, int64(1), b.Value().Int64())

		c, err := y.RotateRight1()
		require.NoError(t, err)
		require.Equal(t, int64(0b1000_0001), c.Bits().Int64())
	})
}
