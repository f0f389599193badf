package dispatch

import (
	"math"
	"strings"

	"github.com/roach88/numeric/internal/num"
)

// Compare is the three-way comparison. It never fails: coercion failures and
// incomparable operands yield num.Unordered.
func (d *Dispatcher) Compare(left, right num.Value) num.Ordering {
	if num.IsBuiltin(left) {
		if num.IsBuiltin(right) {
			return compareBuiltin(left, right)
		}
		res, ok := d.coerceWith(left, right)
		if !ok {
			return num.Unordered
		}
		a, b, ok := res.Values()
		if !ok {
			return num.Unordered
		}
		return d.comparePair(a, b)
	}
	return d.comparePair(left, right)
}

// comparePair compares a coerced pair without coercing again.
func (d *Dispatcher) comparePair(left, right num.Value) num.Ordering {
	switch l := left.(type) {
	case num.Int, *num.BigInt, num.Float:
		if num.IsBuiltin(right) {
			return compareBuiltin(left, right)
		}
		return num.Unordered
	case *num.User:
		if o, ok := l.Impl.(num.Ordered); ok {
			return d.callCompare(o, right)
		}
	case num.Symbol:
		if r, ok := right.(num.Symbol); ok {
			return num.OrderingOf(strings.Compare(string(l), string(r)))
		}
	case num.String:
		if r, ok := right.(num.String); ok {
			return num.OrderingOf(strings.Compare(string(l), string(r)))
		}
	}
	// Identity ordering: a value is equal to itself and incomparable to
	// anything else.
	if num.Eql(left, right) {
		return num.Equal
	}
	return num.Unordered
}

// callCompare runs a user Compare. A panic is Unordered.
func (d *Dispatcher) callCompare(o num.Ordered, right num.Value) (ord num.Ordering) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Debug("compare panicked", "right", d.Inspect(right), "panic", r)
			ord = num.Unordered
		}
	}()
	return o.Compare(right)
}

// compareBuiltin orders two built-in numerics exactly. NaN is Unordered.
func compareBuiltin(left, right num.Value) num.Ordering {
	x, xok := num.BigOf(left)
	y, yok := num.BigOf(right)
	switch {
	case xok && yok:
		return num.OrderingOf(x.Cmp(y))
	case xok:
		return num.CompareIntFloat(x, float64(right.(num.Float)))
	case yok:
		o := num.CompareIntFloat(y, float64(left.(num.Float)))
		if o == num.Unordered {
			return o
		}
		return -o
	}
	fx, fy := float64(left.(num.Float)), float64(right.(num.Float))
	switch {
	case math.IsNaN(fx) || math.IsNaN(fy):
		return num.Unordered
	case fx < fy:
		return num.Less
	case fx > fy:
		return num.Greater
	}
	return num.Equal
}

// Relational evaluates <, <=, > or >=. Unlike Compare it fails with a
// COMPARISON error when the operands cannot be ordered. Built-in operands
// involving NaN compare false without error.
func (d *Dispatcher) Relational(op num.Op, left, right num.Value) (bool, error) {
	if !op.IsRelational() {
		return false, num.Errorf(num.ErrCodeArgument, "%s is not a relational operator", op)
	}
	if num.IsBuiltin(left) {
		if num.IsBuiltin(right) {
			return compareBuiltin(left, right).Holds(op), nil
		}
		res, ok := d.coerceWith(left, right)
		if !ok {
			return false, num.NewComparisonError(left, right, nil)
		}
		a, b, ok := res.Values()
		if !ok {
			return false, num.NewComparisonError(left, right, res.Cause())
		}
		if num.IsBuiltin(a) && num.IsBuiltin(b) {
			return compareBuiltin(a, b).Holds(op), nil
		}
		return d.relationalPair(op, a, b)
	}
	return d.relationalPair(op, left, right)
}

func (d *Dispatcher) relationalPair(op num.Op, left, right num.Value) (bool, error) {
	if u, ok := left.(*num.User); ok {
		switch op {
		case num.OpLt:
			if lt, ok := u.Impl.(num.LessThaner); ok {
				return lt.LessThan(right)
			}
		case num.OpGt:
			if gt, ok := u.Impl.(num.GreaterThaner); ok {
				return gt.GreaterThan(right)
			}
		}
	}
	o := d.comparePair(left, right)
	if o == num.Unordered {
		return false, num.NewComparisonError(left, right, nil)
	}
	return o.Holds(op), nil
}

// Equal reports numeric equality: 1 == 1.0 holds. A built-in left operand with
// a user-defined right operand defers to the right operand's num.Equaler.
func (d *Dispatcher) Equal(left, right num.Value) bool {
	if num.IsBuiltin(left) {
		if num.IsBuiltin(right) {
			return compareBuiltin(left, right) == num.Equal
		}
		if u, ok := right.(*num.User); ok {
			if eq, ok := u.Impl.(num.Equaler); ok {
				return eq.Equal(left)
			}
		}
		return false
	}
	if u, ok := left.(*num.User); ok {
		if eq, ok := u.Impl.(num.Equaler); ok {
			return eq.Equal(right)
		}
	}
	return d.comparePair(left, right) == num.Equal
}
