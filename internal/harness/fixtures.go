package harness

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/roach88/numeric/internal/dispatch"
	"github.com/roach88/numeric/internal/num"
)

// Fixture literals name user-defined kinds: "#name" or "#name(arg)".
// Within one step, the same literal resolves to the same instance, so
// identity comparisons can be expressed.
const fixturePrefix = "#"

// fixture builds a user value. arg is the parenthesized integer argument,
// zero when absent.
type fixture func(d *dispatch.Dispatcher, arg int64) *num.User

var fixtures = map[string]fixture{
	// coercion
	"nil_coerce": func(*dispatch.Dispatcher, int64) *num.User {
		return num.NewUser("NilCoerce", coerceFunc(func(num.Value) num.CoercionResult {
			return num.FromSlice(nil)
		}))
	},
	"int_coerce": func(d *dispatch.Dispatcher, _ int64) *num.User {
		return num.NewUser("IntCoerce", coerceFunc(func(other num.Value) num.CoercionResult {
			return d.Coerce(num.Int(1), other)
		}))
	},
	"pair_x_1": func(*dispatch.Dispatcher, int64) *num.User {
		return num.NewUser("PairX1", coerceFunc(func(other num.Value) num.CoercionResult {
			return num.Pair(other, num.Int(1))
		}))
	},
	"raise_coerce": func(*dispatch.Dispatcher, int64) *num.User {
		return num.NewUser("RaiseCoerce", coerceFunc(func(num.Value) num.CoercionResult {
			return num.Failed(errors.New("coerce raised"))
		}))
	},
	"atom_coerce": func(*dispatch.Dispatcher, int64) *num.User {
		return num.NewUser("AtomCoerce", coerceFunc(func(num.Value) num.CoercionResult {
			return num.FromSlice([]num.Value{num.Symbol("bad_return_value")})
		}))
	},
	"self_operand": func(*dispatch.Dispatcher, int64) *num.User {
		impl := &selfOperand{}
		u := num.NewUser("SelfOperand", impl)
		impl.self = u
		return u
	},

	// capabilities
	"abstract": func(*dispatch.Dispatcher, int64) *num.User {
		return num.NewUser("Abstract", nil)
	},
	"neg_ok": func(*dispatch.Dispatcher, int64) *num.User {
		return num.NewUser("NegOk", negOk{})
	},
	"lt_true":    predicateFixture("LtTrue", lessThan(true)),
	"lt_false":   predicateFixture("LtFalse", lessThan(false)),
	"gt_true":    predicateFixture("GtTrue", greaterThan(true)),
	"gt_false":   predicateFixture("GtFalse", greaterThan(false)),
	"eq_true":    predicateFixture("EqTrue", equalTo(true)),
	"zero_true":  predicateFixture("ZeroTrue", zeroIs(true)),
	"zero_false": predicateFixture("ZeroFalse", zeroIs(false)),
	"to_f_1_5":   predicateFixture("ToF", floatOf(1.5)),
	"to_f_1_4":   predicateFixture("ToF", floatOf(1.4)),
	"to_f_m1_5":  predicateFixture("ToF", floatOf(-1.5)),
	"to_i_ok": func(*dispatch.Dispatcher, int64) *num.User {
		return num.NewUser("ToI", intOf{7})
	},

	// arithmetic kinds
	"money": func(d *dispatch.Dispatcher, cents int64) *num.User {
		return newMoney(d, cents)
	},
	"counter": func(_ *dispatch.Dispatcher, n int64) *num.User {
		return newCounter(n)
	},
}

// FixtureNames lists the registered fixture names, sorted.
func FixtureNames() []string {
	names := make([]string, 0, len(fixtures))
	for name := range fixtures {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// resolver turns literals into values for one step.
type resolver struct {
	d     *dispatch.Dispatcher
	cache map[string]num.Value
}

func newResolver(d *dispatch.Dispatcher) *resolver {
	return &resolver{d: d, cache: make(map[string]num.Value)}
}

func (r *resolver) resolve(lit string) (num.Value, error) {
	lit = strings.TrimSpace(lit)
	if !strings.HasPrefix(lit, fixturePrefix) {
		return num.Parse(lit)
	}
	if v, ok := r.cache[lit]; ok {
		return v, nil
	}

	name, arg, err := splitFixture(strings.TrimPrefix(lit, fixturePrefix))
	if err != nil {
		return nil, fmt.Errorf("fixture %s: %w", lit, err)
	}
	build, ok := fixtures[name]
	if !ok {
		return nil, fmt.Errorf("unknown fixture %s", lit)
	}
	v := build(r.d, arg)
	r.cache[lit] = v
	return v, nil
}

func (r *resolver) resolveAll(lits []string) ([]num.Value, error) {
	out := make([]num.Value, len(lits))
	for i, lit := range lits {
		v, err := r.resolve(lit)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// splitFixture parses "name" or "name(arg)".
func splitFixture(s string) (string, int64, error) {
	name, rest, found := strings.Cut(s, "(")
	if !found {
		return s, 0, nil
	}
	body, ok := strings.CutSuffix(rest, ")")
	if !ok {
		return "", 0, errors.New("missing )")
	}
	arg, err := strconv.ParseInt(strings.ReplaceAll(body, "_", ""), 0, 64)
	if err != nil {
		return "", 0, fmt.Errorf("bad argument: %w", err)
	}
	return name, arg, nil
}

type coerceFunc func(other num.Value) num.CoercionResult

func (f coerceFunc) Coerce(other num.Value) num.CoercionResult { return f(other) }

// selfOperand coerces into [self, x] and answers every operator with itself.
type selfOperand struct{ self *num.User }

func (s *selfOperand) Coerce(other num.Value) num.CoercionResult {
	return num.Pair(s.self, other)
}

func (s *selfOperand) Operate(num.Op, num.Value) (num.Value, error) {
	return s.self, nil
}

type negOk struct{}

func (negOk) Negate() (num.Value, error) { return num.Int(-1), nil }

// Single-capability kinds.
type (
	lessThan    bool
	greaterThan bool
	equalTo     bool
	zeroIs      bool
	floatOf     float64
	intOf       struct{ n int64 }
)

func (b lessThan) LessThan(num.Value) (bool, error)       { return bool(b), nil }
func (b greaterThan) GreaterThan(num.Value) (bool, error) { return bool(b), nil }
func (b equalTo) Equal(num.Value) bool                    { return bool(b) }
func (b zeroIs) IsZero() bool                             { return bool(b) }
func (f floatOf) ToFloat() (float64, error)               { return float64(f), nil }
func (i intOf) ToInt() (num.Value, error)                 { return num.Int(i.n), nil }

func predicateFixture(name string, impl any) fixture {
	return func(*dispatch.Dispatcher, int64) *num.User {
		return num.NewUser(name, impl)
	}
}

// money is a fixed-point kind. Integers coerce into whole units.
type money struct {
	d     *dispatch.Dispatcher
	cents int64
}

func newMoney(d *dispatch.Dispatcher, cents int64) *num.User {
	return num.NewUser("Money", money{d: d, cents: cents})
}

func moneyOf(v num.Value) (money, bool) {
	u, ok := v.(*num.User)
	if !ok {
		return money{}, false
	}
	m, ok := u.Impl.(money)
	return m, ok
}

func (m money) Coerce(other num.Value) num.CoercionResult {
	if o, ok := other.(num.Int); ok {
		return num.Pair(newMoney(m.d, int64(o)*100), newMoney(m.d, m.cents))
	}
	return num.Failed(fmt.Errorf("can't convert %s into Money", m.d.Inspect(other)))
}

func (m money) Operate(op num.Op, other num.Value) (num.Value, error) {
	if i, ok := other.(num.Int); ok {
		other = newMoney(m.d, int64(i)*100)
	}
	o, ok := moneyOf(other)
	if !ok {
		return nil, num.NewCoerceUnsupportedError(m.d.Inspect(other), newMoney(m.d, m.cents), nil)
	}
	switch op {
	case num.OpAdd:
		return newMoney(m.d, m.cents+o.cents), nil
	case num.OpSub:
		return newMoney(m.d, m.cents-o.cents), nil
	}
	return nil, num.NewUnsupportedOperationError(op.String(), newMoney(m.d, m.cents))
}

func (m money) Compare(other num.Value) num.Ordering {
	var theirs int64
	if i, ok := other.(num.Int); ok {
		theirs = int64(i) * 100
	} else if o, ok := moneyOf(other); ok {
		theirs = o.cents
	} else {
		return num.Unordered
	}
	return num.OrderingOf(cmpInt(m.cents, theirs))
}

func (m money) Negate() (num.Value, error) { return newMoney(m.d, -m.cents), nil }

func (m money) IsZero() bool { return m.cents == 0 }

func (m money) ToFloat() (float64, error) { return float64(m.cents) / 100, nil }

func (m money) Inspect() string {
	sign := ""
	c := m.cents
	if c < 0 {
		sign, c = "-", -c
	}
	return fmt.Sprintf("#<Money %s%d.%02d>", sign, c/100, c%100)
}

// counter is an integer-like kind with just enough capability for generic
// stepping: + - / and ordering.
type counter struct{ n int64 }

func newCounter(n int64) *num.User { return num.NewUser("Counter", counter{n}) }

func counterOf(v num.Value) (int64, bool) {
	switch x := v.(type) {
	case num.Int:
		return int64(x), true
	case *num.User:
		if c, ok := x.Impl.(counter); ok {
			return c.n, true
		}
	}
	return 0, false
}

func (c counter) Operate(op num.Op, other num.Value) (num.Value, error) {
	o, ok := counterOf(other)
	if !ok {
		return nil, num.NewUnsupportedOperationError(op.String(), newCounter(c.n))
	}
	switch op {
	case num.OpAdd:
		return newCounter(c.n + o), nil
	case num.OpSub:
		return newCounter(c.n - o), nil
	case num.OpDiv:
		if o == 0 {
			return nil, num.Errorf(num.ErrCodeZeroDivision, "divided by 0")
		}
		q := c.n / o
		if c.n%o != 0 && (c.n < 0) != (o < 0) {
			q--
		}
		return newCounter(q), nil
	}
	return nil, num.NewUnsupportedOperationError(op.String(), newCounter(c.n))
}

func (c counter) Compare(other num.Value) num.Ordering {
	o, ok := counterOf(other)
	if !ok {
		return num.Unordered
	}
	return num.OrderingOf(cmpInt(c.n, o))
}

func (c counter) ToFloat() (float64, error) { return float64(c.n), nil }

func (c counter) IsInteger() bool { return true }

func (c counter) Inspect() string { return fmt.Sprintf("#<Counter %d>", c.n) }

func cmpInt(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
