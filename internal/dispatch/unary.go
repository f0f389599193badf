package dispatch

import (
	"math"
	"math/big"

	"github.com/roach88/numeric/internal/num"
)

// Negate returns -x. Built-ins negate directly; a user-defined value uses its
// num.Negator, otherwise 0 - x through coercion.
func (d *Dispatcher) Negate(x num.Value) (num.Value, error) {
	switch v := x.(type) {
	case num.Int:
		if v == math.MinInt64 {
			return num.Normalize(new(big.Int).Neg(big.NewInt(int64(v)))), nil
		}
		return -v, nil
	case *num.BigInt:
		return num.Normalize(new(big.Int).Neg(v.Big())), nil
	case num.Float:
		return -v, nil
	case *num.User:
		if n, ok := v.Impl.(num.Negator); ok {
			return n.Negate()
		}
		return d.apply(num.OpSub, num.Int(0), x, true)
	}
	return nil, num.NewUnsupportedOperationError("-@", x)
}

// Abs returns x when x < 0 is false, otherwise -x.
func (d *Dispatcher) Abs(x num.Value) (num.Value, error) {
	neg, err := d.IsNegative(x)
	if err != nil {
		return nil, err
	}
	if !neg {
		return x, nil
	}
	return d.Negate(x)
}

// IsZero reports x == 0, or the value's own num.ZeroTester answer.
func (d *Dispatcher) IsZero(x num.Value) bool {
	if u, ok := x.(*num.User); ok {
		if z, ok := u.Impl.(num.ZeroTester); ok {
			return z.IsZero()
		}
	}
	return d.Equal(x, num.Int(0))
}

// NonZero returns x, or Nil when x is zero.
func (d *Dispatcher) NonZero(x num.Value) num.Value {
	if d.IsZero(x) {
		return num.Nil{}
	}
	return x
}

// IsPositive reports x > 0.
func (d *Dispatcher) IsPositive(x num.Value) (bool, error) {
	return d.Relational(num.OpGt, x, num.Int(0))
}

// IsNegative reports x < 0.
func (d *Dispatcher) IsNegative(x num.Value) (bool, error) {
	return d.Relational(num.OpLt, x, num.Int(0))
}

// IsReal is true for every numeric kind unless a user value says otherwise.
func (d *Dispatcher) IsReal(x num.Value) bool {
	if u, ok := x.(*num.User); ok {
		if r, ok := u.Impl.(num.RealTester); ok {
			return r.IsReal()
		}
		return true
	}
	return num.IsBuiltin(x)
}

// IsInteger is true for integral kinds and for user values that say so.
func (d *Dispatcher) IsInteger(x num.Value) bool {
	if u, ok := x.(*num.User); ok {
		if it, ok := u.Impl.(num.IntegerTester); ok {
			return it.IsInteger()
		}
		return false
	}
	return num.IsIntegral(x)
}
