package dispatch

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/numeric/internal/num"
)

func TestRoundingFamilyFromToFloat(t *testing.T) {
	d := New()

	tests := []struct {
		f                           float64
		floor, ceil, round, trunc int64
	}{
		{1.5, 1, 2, 2, 1},
		{1.4, 1, 2, 1, 1},
		{-1.5, -2, -1, -2, -1},
	}
	for _, tt := range tests {
		x := user("ToF", floatCaps{caps{toFloat: constFloat(tt.f)}})

		got, err := d.Floor(x)
		require.NoError(t, err)
		assert.Equal(t, num.Int(tt.floor), got, "floor %v", tt.f)

		got, err = d.Ceil(x)
		require.NoError(t, err)
		assert.Equal(t, num.Int(tt.ceil), got, "ceil %v", tt.f)

		got, err = d.Round(x)
		require.NoError(t, err)
		assert.Equal(t, num.Int(tt.round), got, "round %v", tt.f)

		got, err = d.Truncate(x)
		require.NoError(t, err)
		assert.Equal(t, num.Int(tt.trunc), got, "truncate %v", tt.f)
	}
}

func TestRoundingFamilyBuiltins(t *testing.T) {
	d := New()

	got, err := d.Round(num.Float(2.5))
	require.NoError(t, err)
	assert.Equal(t, num.Int(3), got)

	got, err = d.Floor(num.Int(7))
	require.NoError(t, err)
	assert.Equal(t, num.Int(7), got)

	got, err = d.Floor(num.Float(1e20))
	require.NoError(t, err)
	assert.Equal(t, "100000000000000000000", got.(*num.BigInt).String())

	_, err = d.Floor(num.Float(math.Inf(1)))
	assert.True(t, num.IsFloatDomainError(err))
	assert.EqualError(t, err, "Infinity")

	_, err = d.Round(num.Float(math.NaN()))
	assert.True(t, num.IsFloatDomainError(err))

	_, err = d.Ceil(user("Abstract", nil))
	assert.True(t, num.IsUnsupportedOperationError(err))
}

func TestToInt(t *testing.T) {
	d := New()

	ok := user("ToI", intCaps{caps{toInt: func() (num.Value, error) { return num.Symbol("ok"), nil }}})
	got, err := d.ToInt(ok)
	require.NoError(t, err)
	assert.Equal(t, num.Symbol("ok"), got)

	got, err = d.ToInt(num.Float(-3.9))
	require.NoError(t, err)
	assert.Equal(t, num.Int(-3), got)

	_, err = d.ToInt(user("Abstract", nil))
	assert.True(t, num.IsUnsupportedOperationError(err))
}

func TestDivMod(t *testing.T) {
	d := New()

	q, m, err := d.DivMod(num.Int(11), num.Float(3.5))
	require.NoError(t, err)
	assert.Equal(t, num.Int(3), q)
	assert.Equal(t, num.Float(0.5), m)

	q, m, err = d.DivMod(num.Int(-7), num.Int(2))
	require.NoError(t, err)
	assert.Equal(t, num.Int(-4), q)
	assert.Equal(t, num.Int(1), m)

	q, m, err = d.DivMod(num.Float(-7), num.Int(2))
	require.NoError(t, err)
	assert.Equal(t, num.Int(-4), q)
	assert.Equal(t, num.Float(1), m)

	_, _, err = d.DivMod(num.Float(1), num.Float(0))
	assert.True(t, num.IsZeroDivisionError(err))

	_, _, err = d.DivMod(num.Int(1), num.Int(0))
	assert.True(t, num.IsZeroDivisionError(err))
}

func TestIntDivAndModulo(t *testing.T) {
	d := New()

	got, err := d.IntDiv(num.Float(7.5), num.Int(2))
	require.NoError(t, err)
	assert.Equal(t, num.Int(3), got)

	got, err = d.IntDiv(num.Int(-7), num.Int(2))
	require.NoError(t, err)
	assert.Equal(t, num.Int(-4), got)

	_, err = d.IntDiv(num.Float(1), num.Float(0))
	assert.True(t, num.IsZeroDivisionError(err))

	got, err = d.Modulo(num.Int(-7), num.Int(3))
	require.NoError(t, err)
	assert.Equal(t, num.Int(2), got)
}

func TestRemainder(t *testing.T) {
	d := New()

	tests := []struct {
		x, y, want num.Value
	}{
		{num.Int(7), num.Int(3), num.Int(1)},
		{num.Int(-7), num.Int(3), num.Int(-1)},
		{num.Int(7), num.Int(-3), num.Int(1)},
		{num.Float(-7.5), num.Int(2), num.Float(-1.5)},
		{num.Float(5), num.Float(math.Inf(1)), num.Float(5)},
	}
	for _, tt := range tests {
		got, err := d.Remainder(tt.x, tt.y)
		require.NoError(t, err)
		assert.True(t, num.Eql(tt.want, got), "%s remainder %s = %s", d.Inspect(tt.x), d.Inspect(tt.y), d.Inspect(got))
	}

	_, err := d.Remainder(num.Int(1), num.Int(0))
	assert.True(t, num.IsZeroDivisionError(err))
}

func TestRemainderCoercedIncomparable(t *testing.T) {
	d := New()

	_, err := d.Remainder(num.Int(1), newSelfOperand())
	require.Error(t, err)
	assert.True(t, num.IsComparisonError(err))
}
