package dispatch

import (
	"math"
	"math/big"

	"github.com/roach88/numeric/internal/num"
)

// ToFloat converts x to float64. User values need num.FloatConverter.
func (d *Dispatcher) ToFloat(x num.Value) (float64, error) {
	if f, ok := num.Float64Of(x); ok {
		return f, nil
	}
	if u, ok := x.(*num.User); ok {
		if fc, ok := u.Impl.(num.FloatConverter); ok {
			return fc.ToFloat()
		}
	}
	return 0, num.NewUnsupportedOperationError("to_f", x)
}

// ToInt converts x to an integer, truncating floats. A user value's
// num.IntConverter result is returned as is.
func (d *Dispatcher) ToInt(x num.Value) (num.Value, error) {
	switch v := x.(type) {
	case num.Int, *num.BigInt:
		return x, nil
	case num.Float:
		return num.IntegerOfFloat(float64(v))
	case *num.User:
		if ic, ok := v.Impl.(num.IntConverter); ok {
			return ic.ToInt()
		}
	}
	return nil, num.NewUnsupportedOperationError("to_int", x)
}

// Floor rounds x toward negative infinity.
func (d *Dispatcher) Floor(x num.Value) (num.Value, error) {
	return d.round(x, math.Floor)
}

// Ceil rounds x toward positive infinity.
func (d *Dispatcher) Ceil(x num.Value) (num.Value, error) {
	return d.round(x, math.Ceil)
}

// Round rounds x to the nearest integer, ties away from zero.
func (d *Dispatcher) Round(x num.Value) (num.Value, error) {
	return d.round(x, math.Round)
}

// Truncate rounds x toward zero.
func (d *Dispatcher) Truncate(x num.Value) (num.Value, error) {
	return d.round(x, math.Trunc)
}

// round leaves integers alone and converts everything else through ToFloat.
// NaN and infinities fail with FLOAT_DOMAIN.
func (d *Dispatcher) round(x num.Value, fn func(float64) float64) (num.Value, error) {
	if num.IsIntegral(x) {
		return x, nil
	}
	f, err := d.ToFloat(x)
	if err != nil {
		return nil, err
	}
	return num.IntegerOfFloat(fn(f))
}

// IntDiv is floor(x / y) as an integer.
func (d *Dispatcher) IntDiv(x, y num.Value) (num.Value, error) {
	if isBuiltinZero(y) {
		return nil, zeroDivision()
	}
	q, err := d.Apply(num.OpDiv, x, y)
	if err != nil {
		return nil, err
	}
	return d.Floor(q)
}

// Modulo is x % y: the result takes the sign of y.
func (d *Dispatcher) Modulo(x, y num.Value) (num.Value, error) {
	return d.Apply(num.OpMod, x, y)
}

// DivMod returns the floored quotient and the modulus. The quotient is
// integral even for Float operands: DivMod(11, 3.5) = (3, 0.5).
func (d *Dispatcher) DivMod(x, y num.Value) (num.Value, num.Value, error) {
	if num.IsBuiltin(x) && num.IsBuiltin(y) {
		if isBuiltinZero(y) {
			return nil, nil, zeroDivision()
		}
		bx, xok := num.BigOf(x)
		by, yok := num.BigOf(y)
		if xok && yok {
			q, m := floorDivMod(bx, by)
			return num.Normalize(q), num.Normalize(m), nil
		}
		fx, _ := num.Float64Of(x)
		fy, _ := num.Float64Of(y)
		div, mod := floatDivMod(fx, fy)
		q, err := num.IntegerOfFloat(div)
		if err != nil {
			return nil, nil, err
		}
		return q, num.Float(mod), nil
	}
	q, err := d.IntDiv(x, y)
	if err != nil {
		return nil, nil, err
	}
	m, err := d.Modulo(x, y)
	if err != nil {
		return nil, nil, err
	}
	return q, m, nil
}

// Remainder is x % y adjusted to take the sign of x:
//
//	z = x % y; if z != 0 and x, y have opposite signs then z - y
//
// Sign tests go through Relational, so incomparable operands fail with
// COMPARISON.
func (d *Dispatcher) Remainder(x, y num.Value) (num.Value, error) {
	if num.IsBuiltin(x) && num.IsBuiltin(y) {
		return builtinRemainder(x, y)
	}
	z, err := d.Modulo(x, y)
	if err != nil {
		return nil, err
	}
	if d.IsZero(z) {
		return z, nil
	}
	xNeg, err := d.IsNegative(x)
	if err != nil {
		return nil, err
	}
	xPos, err := d.IsPositive(x)
	if err != nil {
		return nil, err
	}
	yNeg, err := d.IsNegative(y)
	if err != nil {
		return nil, err
	}
	yPos, err := d.IsPositive(y)
	if err != nil {
		return nil, err
	}
	if (xNeg && yPos) || (xPos && yNeg) {
		if f, ok := y.(num.Float); ok && math.IsInf(float64(f), 0) {
			return x, nil
		}
		return d.Apply(num.OpSub, z, y)
	}
	return z, nil
}

// builtinRemainder truncates toward zero, so the result takes x's sign.
func builtinRemainder(x, y num.Value) (num.Value, error) {
	bx, xok := num.BigOf(x)
	by, yok := num.BigOf(y)
	if xok && yok {
		if by.Sign() == 0 {
			return nil, zeroDivision()
		}
		return num.Normalize(new(big.Int).Rem(bx, by)), nil
	}
	fx, _ := num.Float64Of(x)
	fy, _ := num.Float64Of(y)
	if math.IsInf(fy, 0) && !math.IsInf(fx, 0) {
		return num.Float(fx), nil
	}
	return num.Float(math.Mod(fx, fy)), nil
}

func isBuiltinZero(v num.Value) bool {
	switch x := v.(type) {
	case num.Int:
		return x == 0
	case num.Float:
		return x == 0
	}
	return false
}
