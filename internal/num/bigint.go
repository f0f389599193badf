package num

import (
	"math"
	"math/big"
)

// floatMantissaBits is the precision of a float64 significand.
const floatMantissaBits = 53

// Normalize returns x as an Int when it fits in int64, otherwise as a
// *BigInt. x is not retained.
func Normalize(x *big.Int) Value {
	if x.IsInt64() {
		return Int(x.Int64())
	}
	return NewBigInt(x)
}

// BigOf returns a fresh *big.Int for an integral value.
func BigOf(v Value) (*big.Int, bool) {
	switch x := v.(type) {
	case Int:
		return big.NewInt(int64(x)), true
	case *BigInt:
		return x.Big(), true
	}
	return nil, false
}

// FitsFloat reports whether x is exactly representable as a float64, i.e.
// its significant bits fit in the mantissa.
func FitsFloat(x *big.Int) bool {
	if x.Sign() == 0 {
		return true
	}
	abs := new(big.Int).Abs(x)
	significant := abs.BitLen() - int(abs.TrailingZeroBits())
	return significant <= floatMantissaBits && abs.BitLen() <= 1024
}

// Float64Of converts a built-in numeric to float64. Big integers round to
// nearest and overflow to ±Inf.
func Float64Of(v Value) (float64, bool) {
	switch x := v.(type) {
	case Int:
		return float64(x), true
	case Float:
		return float64(x), true
	case *BigInt:
		f, _ := new(big.Float).SetInt(&x.v).Float64()
		return f, true
	}
	return 0, false
}

// IntegerOfFloat converts an integral float64 to an Int or *BigInt without
// losing digits. NaN and ±Inf fail with FLOAT_DOMAIN.
func IntegerOfFloat(f float64) (Value, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, Errorf(ErrCodeFloatDomain, "%s", FormatFloat(f))
	}
	t := math.Trunc(f)
	if t >= math.MinInt64 && t < math.MaxInt64 {
		return Int(int64(t)), nil
	}
	bi, _ := new(big.Float).SetFloat64(t).Int(nil)
	return Normalize(bi), nil
}

// CompareIntFloat compares an integer with a float exactly. NaN is Unordered.
func CompareIntFloat(x *big.Int, f float64) Ordering {
	switch {
	case math.IsNaN(f):
		return Unordered
	case math.IsInf(f, 1):
		return Less
	case math.IsInf(f, -1):
		return Greater
	}
	if FitsFloat(x) {
		xf, _ := new(big.Float).SetInt(x).Float64()
		switch {
		case xf < f:
			return Less
		case xf > f:
			return Greater
		}
		return Equal
	}
	// SetInt picks a precision wide enough for x, so the comparison is exact.
	return OrderingOf(new(big.Float).SetInt(x).Cmp(big.NewFloat(f)))
}
