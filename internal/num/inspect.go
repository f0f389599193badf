package num

import (
	"math"
	"strconv"
	"strings"

	"github.com/roach88/numeric/internal/textenc"
)

// Inspect returns the debug representation of v. Symbols and strings are
// escaped according to enc; a nil enc means UTF-8.
func Inspect(v Value, enc *textenc.Encoding) string {
	if enc == nil {
		enc = textenc.UTF8
	}
	switch x := v.(type) {
	case nil, Nil:
		return "nil"
	case Int:
		return strconv.FormatInt(int64(x), 10)
	case *BigInt:
		return x.String()
	case Float:
		return FormatFloat(float64(x))
	case Symbol:
		return enc.Symbol(string(x))
	case String:
		return enc.Quote(string(x))
	case *User:
		if in, ok := x.Impl.(Inspecter); ok {
			return in.Inspect()
		}
		return "#<" + KindName(x) + ">"
	}
	return "#<?>"
}

// FormatFloat renders f with the shortest round-tripping digits, always
// showing a fractional part: 1.0, 1.2, 1.0e+20, Infinity, NaN.
// Decimal exponents outside [-4, 16) use scientific notation.
func FormatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		if math.Signbit(f) {
			return "-0.0"
		}
		return "0.0"
	}

	sci := strconv.FormatFloat(f, 'e', -1, 64)
	mant, exp, _ := strings.Cut(sci, "e")
	e, _ := strconv.Atoi(exp)
	if e < -4 || e >= 16 {
		if !strings.Contains(mant, ".") {
			mant += ".0"
		}
		return mant + "e" + exp
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
