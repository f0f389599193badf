package num

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Parse reads a literal:
//
//	nil
//	42  -7  1_000_000  0x1F  123456789012345678901234567890
//	1.5  -2e10  Infinity  -Infinity  NaN
//	:foo  :"any text"
//	"text"
func Parse(s string) (Value, error) {
	s = strings.TrimSpace(s)
	switch s {
	case "":
		return nil, fmt.Errorf("empty literal")
	case "nil":
		return Nil{}, nil
	case "Infinity", "+Infinity":
		return Float(math.Inf(1)), nil
	case "-Infinity":
		return Float(math.Inf(-1)), nil
	case "NaN":
		return Float(math.NaN()), nil
	}

	switch s[0] {
	case ':':
		body := s[1:]
		if strings.HasPrefix(body, `"`) {
			name, err := strconv.Unquote(body)
			if err != nil {
				return nil, fmt.Errorf("invalid symbol literal %s: %w", s, err)
			}
			return Symbol(name), nil
		}
		if body == "" {
			return nil, fmt.Errorf("invalid symbol literal %s", s)
		}
		return Symbol(body), nil
	case '"':
		text, err := strconv.Unquote(s)
		if err != nil {
			return nil, fmt.Errorf("invalid string literal %s: %w", s, err)
		}
		return String(text), nil
	}

	if n, ok := new(big.Int).SetString(s, 0); ok {
		return Normalize(n), nil
	}
	if isDecimalFloat(s) {
		f, err := strconv.ParseFloat(strings.ReplaceAll(s, "_", ""), 64)
		if err != nil && !isRangeError(err) {
			return nil, fmt.Errorf("invalid float literal %s: %w", s, err)
		}
		return Float(f), nil
	}
	return nil, fmt.Errorf("invalid literal %q", s)
}

// MustParse is Parse for literals known to be valid. It panics on error.
func MustParse(s string) Value {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// isDecimalFloat rejects hex floats and the Inf/NaN spellings ParseFloat
// would otherwise accept.
func isDecimalFloat(s string) bool {
	body := strings.TrimLeft(s, "+-")
	if body == "" || body[0] < '0' || body[0] > '9' {
		return false
	}
	return !strings.ContainsAny(body, "xXpP")
}

func isRangeError(err error) bool {
	ne, ok := err.(*strconv.NumError)
	return ok && ne.Err == strconv.ErrRange
}
