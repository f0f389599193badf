package num

import "math/big"

// Kind identifies the concrete variant of a Value.
type Kind uint8

const (
	KindInt Kind = iota
	KindBigInt
	KindFloat
	KindUser
	KindSymbol
	KindString
	KindNil
)

var kindNames = [...]string{
	KindInt:    "Integer",
	KindBigInt: "Integer",
	KindFloat:  "Float",
	KindUser:   "Numeric",
	KindSymbol: "Symbol",
	KindString: "String",
	KindNil:    "NilClass",
}

// String returns the kind name used in error messages.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// Value is a sealed interface over every operand the dispatcher accepts.
// Only Int, *BigInt, Float, *User, Symbol, String and Nil implement it.
type Value interface {
	Kind() Kind
	value() // Sealed
}

// Int is a machine-word integer (the SmallInteger variant).
type Int int64

func (Int) Kind() Kind { return KindInt }
func (Int) value()     {}

// Float is an IEEE-754 double.
type Float float64

func (Float) Kind() Kind { return KindFloat }
func (Float) value()     {}

// BigInt is an arbitrary-precision integer that does not fit in an Int.
// Construct with NewBigInt or Normalize; the zero value is 0.
type BigInt struct {
	v big.Int
}

func (*BigInt) Kind() Kind { return KindBigInt }
func (*BigInt) value()     {}

// NewBigInt returns a BigInt holding a copy of x. Unlike Normalize it never
// demotes, which tests use to build BigInt operands explicitly.
func NewBigInt(x *big.Int) *BigInt {
	b := &BigInt{}
	b.v.Set(x)
	return b
}

// Big returns a copy of the integer.
func (b *BigInt) Big() *big.Int {
	return new(big.Int).Set(&b.v)
}

// Sign returns -1, 0 or +1.
func (b *BigInt) Sign() int { return b.v.Sign() }

// String returns the decimal digits.
func (b *BigInt) String() string { return b.v.String() }

// User is the extension point for user-defined numeric kinds. Impl may
// implement any of the capability interfaces in capability.go; the
// dispatcher discovers them with type assertions.
//
// Users compare by pointer identity unless Impl implements Ordered or Equaler.
type User struct {
	Name string
	Impl any
}

// NewUser wraps impl as a user-defined numeric value of the named kind.
func NewUser(name string, impl any) *User {
	return &User{Name: name, Impl: impl}
}

func (*User) Kind() Kind { return KindUser }
func (*User) value()     {}

// Symbol is an interned identifier such as :foo. It is not numeric and has
// no coercion capability.
type Symbol string

func (Symbol) Kind() Kind { return KindSymbol }
func (Symbol) value()     {}

// String is a text value. It is not numeric.
type String string

func (String) Kind() Kind { return KindString }
func (String) value()     {}

// Nil is the absent value.
type Nil struct{}

func (Nil) Kind() Kind { return KindNil }
func (Nil) value()     {}

// IsNil reports whether v is nil or Nil{}.
func IsNil(v Value) bool {
	if v == nil {
		return true
	}
	_, ok := v.(Nil)
	return ok
}

// IsBuiltin reports whether v is one of the built-in numeric kinds that have
// direct operator rules.
func IsBuiltin(v Value) bool {
	switch v.(type) {
	case Int, *BigInt, Float:
		return true
	}
	return false
}

// IsNumeric reports whether v is a built-in numeric or a user numeric.
func IsNumeric(v Value) bool {
	if _, ok := v.(*User); ok {
		return true
	}
	return IsBuiltin(v)
}

// IsIntegral reports whether v is Int or *BigInt.
func IsIntegral(v Value) bool {
	switch v.(type) {
	case Int, *BigInt:
		return true
	}
	return false
}

// KindName returns the class name of v as it appears in error messages.
// User values report their own Name.
func KindName(v Value) string {
	if v == nil {
		return KindNil.String()
	}
	if u, ok := v.(*User); ok && u.Name != "" {
		return u.Name
	}
	return v.Kind().String()
}

// Eql reports exact equality: same concrete kind and same value. Unlike
// numeric equality, Int(1) and Float(1) are not Eql. Float NaN is never Eql
// to itself, matching ==.
func Eql(a, b Value) bool {
	switch x := a.(type) {
	case Int:
		y, ok := b.(Int)
		return ok && x == y
	case *BigInt:
		y, ok := b.(*BigInt)
		return ok && x.v.Cmp(&y.v) == 0
	case Float:
		y, ok := b.(Float)
		return ok && x == y
	case *User:
		y, ok := b.(*User)
		return ok && x == y
	case Symbol:
		y, ok := b.(Symbol)
		return ok && x == y
	case String:
		y, ok := b.(String)
		return ok && x == y
	case Nil:
		return IsNil(b)
	case nil:
		return IsNil(b)
	}
	return false
}
