package dispatch

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/roach88/numeric/internal/num"
)

// Coerce is the built-in coercion of receiver with arg, returning the pair in
// (arg, receiver) order:
//
//	Coerce(1, 2)   = Pair(2, 1)
//	Coerce(1, 2.0) = Pair(2.0, 1.0)
//
// Two integers stay integers. Any other numeric combination converts both to
// Float; a String arg is parsed as a float literal. Everything else fails.
// User Coerce implementations may delegate here.
func (d *Dispatcher) Coerce(receiver, arg num.Value) num.CoercionResult {
	if u, ok := receiver.(*num.User); ok {
		if c, ok := u.Impl.(num.Coercible); ok {
			return d.callCoerce(c, arg)
		}
		return num.Failed(num.NewCoerceUnsupportedError(d.Inspect(arg), receiver, nil))
	}
	if num.IsIntegral(receiver) && num.IsIntegral(arg) {
		return num.Pair(arg, receiver)
	}
	x, err := d.coerceFloat(arg)
	if err != nil {
		return num.Failed(err)
	}
	y, err := d.coerceFloat(receiver)
	if err != nil {
		return num.Failed(err)
	}
	return num.Pair(num.Float(x), num.Float(y))
}

// coerceFloat converts v for the Float side of a built-in coercion.
func (d *Dispatcher) coerceFloat(v num.Value) (float64, error) {
	switch x := v.(type) {
	case num.String:
		s := strings.TrimSpace(string(x))
		f, err := strconv.ParseFloat(strings.ReplaceAll(s, "_", ""), 64)
		if err != nil || s == "" {
			return 0, num.Errorf(num.ErrCodeArgument, "invalid value for Float(): %s", d.Inspect(v))
		}
		return f, nil
	case num.Nil:
		return 0, num.Errorf(num.ErrCodeType, "can't convert nil into Float")
	}
	if f, ok := num.Float64Of(v); ok {
		return f, nil
	}
	if u, ok := v.(*num.User); ok {
		if fc, ok := u.Impl.(num.FloatConverter); ok {
			return fc.ToFloat()
		}
	}
	if v == nil {
		return 0, num.Errorf(num.ErrCodeType, "can't convert nil into Float")
	}
	return 0, num.Errorf(num.ErrCodeType, "can't convert %s into Float", num.KindName(v))
}

// coercePair asks right to coerce left. It returns the pair to re-dispatch, or
// the error the failure maps to.
func (d *Dispatcher) coercePair(left, right num.Value) (num.Value, num.Value, error) {
	res, ok := d.coerceWith(left, right)
	if !ok {
		return nil, nil, num.NewCoerceUnsupportedError(d.Inspect(right), left, nil)
	}
	switch res.Kind() {
	case num.CoercedPair:
		a, b, _ := res.Values()
		return a, b, nil
	case num.CoercedFailed:
		return nil, nil, num.NewCoerceUnsupportedError(d.Inspect(right), left, res.Cause())
	}
	return nil, nil, num.NewCoerceShapeError()
}

// coerceWith invokes right's coercion capability on left. ok is false when
// right has none.
func (d *Dispatcher) coerceWith(left, right num.Value) (num.CoercionResult, bool) {
	u, ok := right.(*num.User)
	if !ok {
		return num.CoercionResult{}, false
	}
	c, ok := u.Impl.(num.Coercible)
	if !ok {
		return num.CoercionResult{}, false
	}
	res := d.callCoerce(c, left)
	d.logger.Debug("coerced",
		"left", d.Inspect(left),
		"right", d.Inspect(right),
		"result", coercionKindName(res.Kind()),
	)
	return res, true
}

// callCoerce runs a user Coerce. A panic is a failed coercion.
func (d *Dispatcher) callCoerce(c num.Coercible, arg num.Value) (res num.CoercionResult) {
	defer func() {
		if r := recover(); r != nil {
			res = num.Failed(fmt.Errorf("coerce panicked: %v", r))
		}
	}()
	return c.Coerce(arg)
}

func coercionKindName(k num.CoercionKind) string {
	switch k {
	case num.CoercedPair:
		return "pair"
	case num.CoercedFailed:
		return "failed"
	}
	return "malformed"
}
