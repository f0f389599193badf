package dispatch

import (
	"errors"

	"github.com/roach88/numeric/internal/num"
)

// coerceFunc adapts a function to num.Coercible.
type coerceFunc func(other num.Value) num.CoercionResult

func (f coerceFunc) Coerce(other num.Value) num.CoercionResult { return f(other) }

func user(name string, impl any) *num.User {
	return num.NewUser(name, impl)
}

// nilCoerce returns nothing useful from Coerce.
func nilCoerce() *num.User {
	return user("NilCoerce", coerceFunc(func(num.Value) num.CoercionResult {
		return num.FromSlice(nil)
	}))
}

// panicOrder coerces into itself and panics when ordered.
type panicOrder struct{ self *num.User }

func (p *panicOrder) Coerce(other num.Value) num.CoercionResult { return num.Pair(p.self, other) }

func (p *panicOrder) Compare(num.Value) num.Ordering { panic("boom") }

func panickingOrder() *num.User {
	impl := &panicOrder{}
	u := user("PanicOrder", impl)
	impl.self = u
	return u
}

// delegating coerces the way the integer 1 would.
func delegating() *num.User {
	return user("Delegating", coerceFunc(func(other num.Value) num.CoercionResult {
		return Default.Coerce(num.Int(1), other)
	}))
}

// pairWithOne coerces x into [x, 1].
func pairWithOne() *num.User {
	return user("PairWithOne", coerceFunc(func(other num.Value) num.CoercionResult {
		return num.Pair(other, num.Int(1))
	}))
}

// raising fails every coercion.
func raising() *num.User {
	return user("Raising", coerceFunc(func(num.Value) num.CoercionResult {
		return num.Failed(errors.New("standard error"))
	}))
}

// panicking panics inside Coerce.
func panicking() *num.User {
	return user("Panicking", coerceFunc(func(num.Value) num.CoercionResult {
		panic("boom")
	}))
}

// atom returns a single value instead of a pair.
func atom() *num.User {
	return user("Atom", coerceFunc(func(num.Value) num.CoercionResult {
		return num.FromSlice([]num.Value{num.Symbol("bad_return_value")})
	}))
}

// caps is a user kind whose capabilities are chosen per test.
type caps struct {
	negate  func() (num.Value, error)
	less    func(num.Value) (bool, error)
	greater func(num.Value) (bool, error)
	equal   func(num.Value) bool
	zero    func() bool
	toFloat func() (float64, error)
	toInt   func() (num.Value, error)
}

type negCaps struct{ caps }

func (c negCaps) Negate() (num.Value, error) { return c.negate() }

type ltCaps struct{ caps }

func (c ltCaps) LessThan(o num.Value) (bool, error) { return c.less(o) }

type negLtCaps struct{ caps }

func (c negLtCaps) Negate() (num.Value, error)        { return c.negate() }
func (c negLtCaps) LessThan(o num.Value) (bool, error) { return c.less(o) }

type gtCaps struct{ caps }

func (c gtCaps) GreaterThan(o num.Value) (bool, error) { return c.greater(o) }

type eqCaps struct{ caps }

func (c eqCaps) Equal(o num.Value) bool { return c.equal(o) }

type zeroCaps struct{ caps }

func (c zeroCaps) IsZero() bool { return c.zero() }

type floatCaps struct{ caps }

func (c floatCaps) ToFloat() (float64, error) { return c.toFloat() }

type intCaps struct{ caps }

func (c intCaps) ToInt() (num.Value, error) { return c.toInt() }

func constBool(b bool) func(num.Value) (bool, error) {
	return func(num.Value) (bool, error) { return b, nil }
}

func constFloat(f float64) func() (float64, error) {
	return func() (float64, error) { return f, nil }
}

// selfOperand coerces into [self, x] and answers every operator with itself.
type selfOperand struct{ self *num.User }

func (s *selfOperand) Coerce(other num.Value) num.CoercionResult {
	return num.Pair(s.self, other)
}

func (s *selfOperand) Operate(num.Op, num.Value) (num.Value, error) {
	return s.self, nil
}

func newSelfOperand() *num.User {
	impl := &selfOperand{}
	u := user("SelfOperand", impl)
	impl.self = u
	return u
}

// money is a fixed-point user kind with full arithmetic support.
type money struct{ cents int64 }

func newMoney(cents int64) *num.User { return user("Money", money{cents}) }

func (m money) Coerce(other num.Value) num.CoercionResult {
	switch o := other.(type) {
	case num.Int:
		return num.Pair(newMoney(int64(o)*100), newMoney(m.cents))
	}
	return num.Failed(errors.New("unsupported"))
}

func (m money) Operate(op num.Op, other num.Value) (num.Value, error) {
	o, ok := other.(*num.User)
	if !ok {
		return nil, num.NewCoerceUnsupportedError(Default.Inspect(other), newMoney(m.cents), nil)
	}
	om := o.Impl.(money)
	switch op {
	case num.OpAdd:
		return newMoney(m.cents + om.cents), nil
	case num.OpSub:
		return newMoney(m.cents - om.cents), nil
	}
	return nil, num.NewUnsupportedOperationError(op.String(), newMoney(m.cents))
}

func (m money) Compare(other num.Value) num.Ordering {
	var theirs int64
	switch o := other.(type) {
	case *num.User:
		om, ok := o.Impl.(money)
		if !ok {
			return num.Unordered
		}
		theirs = om.cents
	case num.Int:
		theirs = int64(o) * 100
	default:
		return num.Unordered
	}
	switch {
	case m.cents < theirs:
		return num.Less
	case m.cents > theirs:
		return num.Greater
	}
	return num.Equal
}

func (m money) Inspect() string { return "#<Money>" }

func cents(v num.Value) int64 {
	return v.(*num.User).Impl.(money).cents
}
