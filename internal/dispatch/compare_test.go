package dispatch

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/numeric/internal/num"
)

func TestCompareBuiltin(t *testing.T) {
	huge := num.NewBigInt(bigPow2(70))
	nan := num.Float(math.NaN())

	tests := []struct {
		name        string
		left, right num.Value
		want        num.Ordering
	}{
		{"int less", num.Int(1), num.Int(2), num.Less},
		{"int equal float", num.Int(1), num.Float(1.0), num.Equal},
		{"float greater int", num.Float(2.5), num.Int(2), num.Greater},
		{"big vs int", huge, num.Int(math.MaxInt64), num.Greater},
		{"int vs big", num.Int(-1), huge, num.Less},
		{"big vs float", huge, num.Float(math.Ldexp(1, 70)), num.Equal},
		{"int vs +inf", num.Int(5), num.Float(math.Inf(1)), num.Less},
		{"nan left", nan, num.Int(1), num.Unordered},
		{"nan right", num.Int(1), nan, num.Unordered},
		{"nan both", nan, nan, num.Unordered},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compare(tt.left, tt.right))
		})
	}
}

func TestCompareIncomparableNeverFails(t *testing.T) {
	for _, u := range []*num.User{nilCoerce(), raising(), panicking(), atom(), user("Plain", nil)} {
		assert.Equal(t, num.Unordered, Compare(num.Int(1), u), num.KindName(u))
	}
	assert.Equal(t, num.Unordered, Compare(num.Int(1), num.Symbol("foo")))
}

func TestCompareUserPanicIsUnordered(t *testing.T) {
	u := panickingOrder()
	require.NotPanics(t, func() {
		assert.Equal(t, num.Unordered, Compare(num.Int(1), u))
		assert.Equal(t, num.Unordered, Compare(u, num.Int(1)))
	})
}

func TestCompareThroughCoercion(t *testing.T) {
	assert.Equal(t, num.Equal, Compare(num.Int(1), delegating()))
	assert.Equal(t, num.Less, Compare(num.Int(1), newMoney(150)))
}

func TestCompareIdentity(t *testing.T) {
	a := user("Abstract", nil)
	assert.Equal(t, num.Equal, Compare(a, a))
	assert.Equal(t, num.Unordered, Compare(a, num.Symbol("foo")))
	assert.Equal(t, num.Unordered, Compare(a, user("Abstract", nil)))

	assert.Equal(t, num.Less, Compare(num.Symbol("a"), num.Symbol("b")))
	assert.Equal(t, num.Equal, Compare(num.String("x"), num.String("x")))
}

func TestRelationalBuiltin(t *testing.T) {
	ok, err := Relational(num.OpLe, num.Int(1), num.Float(1.0))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Relational(num.OpGt, num.NewBigInt(bigPow2(64)), num.Float(1e10))
	require.NoError(t, err)
	assert.True(t, ok)

	for _, op := range []num.Op{num.OpLt, num.OpLe, num.OpGt, num.OpGe} {
		ok, err = Relational(op, num.Float(math.NaN()), num.Int(1))
		require.NoError(t, err)
		assert.False(t, ok, op.String())
	}
}

func TestRelationalIncomparableRaises(t *testing.T) {
	for _, u := range []*num.User{nilCoerce(), raising(), atom(), user("Plain", nil)} {
		_, err := Relational(num.OpLe, num.Int(1), u)
		require.Error(t, err, num.KindName(u))
		assert.True(t, num.IsComparisonError(err))
		assert.Equal(t, num.Unordered, Compare(num.Int(1), u))
	}

	_, err := Relational(num.OpLt, num.Int(1), num.Symbol("foo"))
	require.Error(t, err)
	assert.EqualError(t, err, "comparison of Integer with Symbol failed")
}

func TestRelationalThroughCoercion(t *testing.T) {
	ok, err := Relational(num.OpLe, num.Int(1), delegating())
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Relational(num.OpGe, num.Int(3), newMoney(250))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRelationalUserCapabilities(t *testing.T) {
	lt := user("Lt", ltCaps{caps{less: constBool(true)}})
	ok, err := Relational(num.OpLt, lt, num.Int(0))
	require.NoError(t, err)
	assert.True(t, ok)

	gt := user("Gt", gtCaps{caps{greater: constBool(false)}})
	ok, err = Relational(num.OpGt, gt, num.Int(0))
	require.NoError(t, err)
	assert.False(t, ok)

	// No <= capability and no ordering: identity only.
	_, err = Relational(num.OpLe, lt, num.Int(0))
	assert.True(t, num.IsComparisonError(err))

	ok, err = Relational(num.OpLe, lt, lt)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRelationalRejectsOtherOps(t *testing.T) {
	_, err := Relational(num.OpAdd, num.Int(1), num.Int(2))
	assert.True(t, num.IsArgumentError(err))
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal(num.Int(1), num.Float(1.0)))
	assert.False(t, num.Eql(num.Int(1), num.Float(1.0)))
	assert.False(t, Equal(num.Int(1), num.Int(2)))
	assert.False(t, Equal(num.Float(math.NaN()), num.Float(math.NaN())))
	assert.False(t, Equal(num.Int(1), num.Symbol("a")))
	assert.True(t, Equal(num.Symbol("a"), num.Symbol("a")))

	always := user("Always", eqCaps{caps{equal: func(num.Value) bool { return true }}})
	assert.True(t, Equal(always, num.Int(0)))
	assert.True(t, Equal(num.Int(0), always))

	a := user("Abstract", nil)
	assert.True(t, Equal(a, a))
	assert.False(t, Equal(num.Int(0), a))

	assert.True(t, Equal(newMoney(300), num.Int(3)))
}
