package num

// CoercionKind tags a CoercionResult.
type CoercionKind uint8

const (
	CoercedPair CoercionKind = iota + 1
	CoercedMalformed
	CoercedFailed
)

// CoercionResult is the outcome of a Coerce call: a pair of mutually
// operable values, a malformed return, or a failure with a cause.
// The zero value is Malformed.
type CoercionResult struct {
	kind  CoercionKind
	pair  [2]Value
	cause error
}

// Pair returns a well-formed result. a takes the left operand's place and b
// the right's.
func Pair(a, b Value) CoercionResult {
	return CoercionResult{kind: CoercedPair, pair: [2]Value{a, b}}
}

// Malformed returns a result for a coercion that produced the wrong shape.
func Malformed() CoercionResult {
	return CoercionResult{kind: CoercedMalformed}
}

// Failed returns a result for a coercion that raised cause.
func Failed(cause error) CoercionResult {
	return CoercionResult{kind: CoercedFailed, cause: cause}
}

// FromSlice accepts any ordered result of exactly two non-nil elements as a
// Pair; every other shape is Malformed.
func FromSlice(vals []Value) CoercionResult {
	if len(vals) != 2 || vals[0] == nil || vals[1] == nil {
		return Malformed()
	}
	return Pair(vals[0], vals[1])
}

// Kind returns the result tag; the zero CoercionResult reports Malformed.
func (r CoercionResult) Kind() CoercionKind {
	if r.kind == 0 {
		return CoercedMalformed
	}
	return r.kind
}

// Values returns the pair. ok is false unless Kind is CoercedPair.
func (r CoercionResult) Values() (a, b Value, ok bool) {
	if r.kind != CoercedPair {
		return nil, nil, false
	}
	return r.pair[0], r.pair[1], true
}

// Cause returns the failure cause of a Failed result.
func (r CoercionResult) Cause() error {
	return r.cause
}

// Coercible is the coercion capability. Coerce receives the foreign left
// operand and returns a pair in (left, right) order.
type Coercible interface {
	Coerce(other Value) CoercionResult
}

// Operator lets a user kind act as the left operand of arithmetic and
// bitwise operators.
type Operator interface {
	Operate(op Op, other Value) (Value, error)
}

// Negator overrides unary negation.
type Negator interface {
	Negate() (Value, error)
}

// Ordered is the three-way comparison capability. Return Unordered for
// incomparable operands.
type Ordered interface {
	Compare(other Value) Ordering
}

// LessThaner overrides the < operator.
type LessThaner interface {
	LessThan(other Value) (bool, error)
}

// GreaterThaner overrides the > operator.
type GreaterThaner interface {
	GreaterThan(other Value) (bool, error)
}

// Equaler overrides numeric equality.
type Equaler interface {
	Equal(other Value) bool
}

// ZeroTester overrides the zero predicate.
type ZeroTester interface {
	IsZero() bool
}

// FloatConverter is the toFloatingPoint capability used by the rounding
// family.
type FloatConverter interface {
	ToFloat() (float64, error)
}

// IntConverter is the integer conversion capability.
type IntConverter interface {
	ToInt() (Value, error)
}

// IntegerTester overrides the integer-valued predicate (default false).
type IntegerTester interface {
	IsInteger() bool
}

// RealTester overrides the real-valued predicate (default true).
type RealTester interface {
	IsReal() bool
}

// Inspecter overrides the debug representation.
type Inspecter interface {
	Inspect() string
}
