package num

import "fmt"

// Op is a binary operator understood by the dispatcher.
type Op uint8

const (
	OpAdd Op = iota + 1
	OpSub
	OpMul
	OpDiv
	OpMod
	OpPow
	OpBitAnd
	OpBitOr
	OpBitXor
	OpLt
	OpLe
	OpGt
	OpGe
	OpCmp
	OpEq
)

var opSymbols = map[Op]string{
	OpAdd:    "+",
	OpSub:    "-",
	OpMul:    "*",
	OpDiv:    "/",
	OpMod:    "%",
	OpPow:    "**",
	OpBitAnd: "&",
	OpBitOr:  "|",
	OpBitXor: "^",
	OpLt:     "<",
	OpLe:     "<=",
	OpGt:     ">",
	OpGe:     ">=",
	OpCmp:    "<=>",
	OpEq:     "==",
}

// String returns the operator symbol.
func (op Op) String() string {
	if s, ok := opSymbols[op]; ok {
		return s
	}
	return fmt.Sprintf("Op(%d)", uint8(op))
}

// ParseOp resolves an operator symbol.
func ParseOp(s string) (Op, error) {
	for op, sym := range opSymbols {
		if sym == s {
			return op, nil
		}
	}
	return 0, fmt.Errorf("unknown operator %q", s)
}

// IsArithmetic reports whether op produces a numeric value.
func (op Op) IsArithmetic() bool {
	return op >= OpAdd && op <= OpPow
}

// IsBitwise reports whether op is one of the integer-only bit operators.
func (op Op) IsBitwise() bool {
	return op >= OpBitAnd && op <= OpBitXor
}

// IsRelational reports whether op is <, <=, > or >=.
func (op Op) IsRelational() bool {
	return op >= OpLt && op <= OpGe
}

// Ordering is the outcome of a three-way comparison.
type Ordering int8

const (
	Less      Ordering = -1
	Equal     Ordering = 0
	Greater   Ordering = 1
	Unordered Ordering = 2
)

// OrderingOf converts a Cmp-style integer to an Ordering.
func OrderingOf(c int) Ordering {
	switch {
	case c < 0:
		return Less
	case c > 0:
		return Greater
	}
	return Equal
}

// String returns "-1", "0", "1" or "nil" (incomparable).
func (o Ordering) String() string {
	switch o {
	case Less:
		return "-1"
	case Equal:
		return "0"
	case Greater:
		return "1"
	}
	return "nil"
}

// Holds reports whether the ordering satisfies the relational operator op.
// Unordered satisfies none.
func (o Ordering) Holds(op Op) bool {
	if o == Unordered {
		return false
	}
	switch op {
	case OpLt:
		return o == Less
	case OpLe:
		return o != Greater
	case OpGt:
		return o == Greater
	case OpGe:
		return o != Less
	case OpEq:
		return o == Equal
	}
	return false
}
