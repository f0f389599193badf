package dispatch

import (
	"math"
	"math/big"

	"github.com/roach88/numeric/internal/num"
)

// maxPowBits bounds the estimated bit length of an exact integer power.
// Larger results fall back to Float, which overflows to Infinity.
const maxPowBits = 1 << 24

// Apply evaluates an arithmetic or bitwise operator.
//
// Built-in pairs use the direct rules. A built-in left operand with any other
// right operand is coerced through the right operand's capability. A
// user-defined left operand handles the operator itself via num.Operator.
func (d *Dispatcher) Apply(op num.Op, left, right num.Value) (num.Value, error) {
	if !op.IsArithmetic() && !op.IsBitwise() {
		return nil, num.Errorf(num.ErrCodeArgument, "%s is not an arithmetic operator", op)
	}
	return d.apply(op, left, right, true)
}

func (d *Dispatcher) apply(op num.Op, left, right num.Value, coerce bool) (num.Value, error) {
	switch l := left.(type) {
	case num.Int, *num.BigInt, num.Float:
		if num.IsBuiltin(right) {
			return d.direct(op, left, right)
		}
		if !coerce {
			return nil, num.NewCoerceUnsupportedError(d.Inspect(right), left, nil)
		}
		a, b, err := d.coercePair(left, right)
		if err != nil {
			return nil, err
		}
		return d.apply(op, a, b, false)
	case *num.User:
		if o, ok := l.Impl.(num.Operator); ok {
			return o.Operate(op, right)
		}
	}
	return nil, num.NewUnsupportedOperationError(op.String(), left)
}

// direct applies op to two built-in operands.
func (d *Dispatcher) direct(op num.Op, left, right num.Value) (num.Value, error) {
	if op.IsBitwise() {
		return d.bitwise(op, left, right)
	}
	x, xok := num.BigOf(left)
	y, yok := num.BigOf(right)
	if xok && yok {
		return intOp(op, x, y)
	}
	fx, _ := num.Float64Of(left)
	fy, _ := num.Float64Of(right)
	return floatOp(op, fx, fy), nil
}

func (d *Dispatcher) bitwise(op num.Op, left, right num.Value) (num.Value, error) {
	x, ok := num.BigOf(left)
	if !ok {
		return nil, num.NewUnsupportedOperationError(op.String(), left)
	}
	y, ok := num.BigOf(right)
	if !ok {
		return nil, num.NewCoerceUnsupportedError(d.Inspect(right), left, nil)
	}
	z := new(big.Int)
	switch op {
	case num.OpBitAnd:
		z.And(x, y)
	case num.OpBitOr:
		z.Or(x, y)
	case num.OpBitXor:
		z.Xor(x, y)
	}
	return num.Normalize(z), nil
}

func intOp(op num.Op, x, y *big.Int) (num.Value, error) {
	z := new(big.Int)
	switch op {
	case num.OpAdd:
		z.Add(x, y)
	case num.OpSub:
		z.Sub(x, y)
	case num.OpMul:
		z.Mul(x, y)
	case num.OpDiv:
		if y.Sign() == 0 {
			return nil, zeroDivision()
		}
		z, _ = floorDivMod(x, y)
	case num.OpMod:
		if y.Sign() == 0 {
			return nil, zeroDivision()
		}
		_, z = floorDivMod(x, y)
	case num.OpPow:
		return intPow(x, y), nil
	}
	return num.Normalize(z), nil
}

// floorDivMod returns the quotient rounded toward negative infinity and the
// matching modulus, which takes the sign of y.
func floorDivMod(x, y *big.Int) (*big.Int, *big.Int) {
	q, m := new(big.Int).QuoRem(x, y, new(big.Int))
	if m.Sign() != 0 && m.Sign() != y.Sign() {
		q.Sub(q, big.NewInt(1))
		m.Add(m, y)
	}
	return q, m
}

func intPow(x, y *big.Int) num.Value {
	if y.Sign() < 0 {
		fx, _ := new(big.Float).SetInt(x).Float64()
		fy, _ := new(big.Float).SetInt(y).Float64()
		return num.Float(math.Pow(fx, fy))
	}
	if y.Sign() == 0 {
		return num.Int(1)
	}
	if x.CmpAbs(big.NewInt(1)) <= 0 {
		// 0, 1 and -1 stay small for any exponent.
		if x.Sign() < 0 && y.Bit(0) == 0 {
			return num.Int(1)
		}
		return num.Normalize(x)
	}
	if !y.IsInt64() || int64(x.BitLen())*y.Int64() > maxPowBits {
		fx, _ := new(big.Float).SetInt(x).Float64()
		fy, _ := new(big.Float).SetInt(y).Float64()
		return num.Float(math.Pow(fx, fy))
	}
	return num.Normalize(new(big.Int).Exp(x, y, nil))
}

func floatOp(op num.Op, x, y float64) num.Value {
	switch op {
	case num.OpAdd:
		return num.Float(x + y)
	case num.OpSub:
		return num.Float(x - y)
	case num.OpMul:
		return num.Float(x * y)
	case num.OpDiv:
		return num.Float(x / y)
	case num.OpMod:
		if y == 0 {
			return num.Float(math.NaN())
		}
		_, m := floatDivMod(x, y)
		return num.Float(m)
	case num.OpPow:
		return num.Float(math.Pow(x, y))
	}
	return num.Float(math.NaN())
}

// floatDivMod mirrors integer floor division for floats: the modulus takes
// the sign of y, and the quotient is integral.
func floatDivMod(x, y float64) (float64, float64) {
	var mod float64
	if x == 0 || (math.IsInf(y, 0) && !math.IsInf(x, 0)) {
		mod = x
	} else {
		mod = math.Mod(x, y)
	}
	var div float64
	if math.IsInf(x, 0) && !math.IsInf(y, 0) {
		div = x
	} else {
		div = math.Round((x - mod) / y)
	}
	if y*mod < 0 {
		mod += y
		div -= 1
	}
	return div, mod
}

func zeroDivision() error {
	return num.Errorf(num.ErrCodeZeroDivision, "divided by 0")
}
