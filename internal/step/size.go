package step

import (
	"math"
	"math/big"

	"github.com/roach88/numeric/internal/num"
)

// Size is the length of a sequence: a finite count or Infinite.
type Size struct {
	n *big.Int // nil when infinite
}

// Finite returns a finite size. n is copied.
func Finite(n *big.Int) Size {
	return Size{n: new(big.Int).Set(n)}
}

// Infinite returns the size of an unbounded sequence.
func Infinite() Size {
	return Size{}
}

// IsInfinite reports whether the size is unbounded.
func (z Size) IsInfinite() bool {
	return z.n == nil
}

// Count returns a copy of the finite count, or nil when infinite.
func (z Size) Count() *big.Int {
	if z.n == nil {
		return nil
	}
	return new(big.Int).Set(z.n)
}

// String returns the decimal count or "Infinity".
func (z Size) String() string {
	if z.n == nil {
		return "Infinity"
	}
	return z.n.String()
}

// Size computes the number of elements without producing them.
func (s *Spec) Size() (Size, error) {
	if s.inf {
		return Infinite(), nil
	}
	switch s.path {
	case pathInteger:
		return s.integerSize(), nil
	case pathFloat:
		return floatSize(s.beg, s.end, s.unit), nil
	}
	return s.genericSize()
}

// integerSize is floor((limit - start) / stride) + 1, clamped at zero, in
// exact arithmetic.
func (s *Spec) integerSize() Size {
	from, _ := num.BigOf(s.start)
	to, _ := num.BigOf(s.limit)
	diff, _ := num.BigOf(s.stride)

	delta := new(big.Int).Sub(to, from)
	if diff.Sign() < 0 {
		diff.Neg(diff)
		delta.Neg(delta)
	}
	if delta.Sign() < 0 {
		return Size{n: new(big.Int)}
	}
	n := delta.Quo(delta, diff)
	return Size{n: n.Add(n, big.NewInt(1))}
}

// floatSize counts the elements of beg, beg+unit, ... up to end. The error
// term absorbs rounding in (end-beg)/unit so that, for example,
// 1.0 to 2.0 by 0.1 has 11 elements.
func floatSize(beg, end, unit float64) Size {
	n := floatCount(beg, end, unit)
	switch {
	case math.IsInf(n, 1):
		return Infinite()
	case math.IsNaN(n) || n <= 0:
		return Size{n: new(big.Int)}
	}
	count, _ := new(big.Float).SetFloat64(n).Int(nil)
	return Size{n: count}
}

// floatCount is the element count as a float64, +Inf when unbounded.
func floatCount(beg, end, unit float64) float64 {
	if unit == 0 {
		return math.Inf(1)
	}
	if math.IsInf(unit, 0) {
		if unit > 0 && beg <= end || unit < 0 && beg >= end {
			return 1
		}
		return 0
	}
	n := (end - beg) / unit
	err := (math.Abs(beg) + math.Abs(end) + math.Abs(end-beg)) / math.Abs(unit) * epsilon
	if err > 0.5 {
		err = 0.5
	}
	if n < 0 {
		return 0
	}
	return math.Floor(n+err) + 1
}

// epsilon is the gap between 1.0 and the next float64.
var epsilon = math.Nextafter(1, 2) - 1

// genericSize uses the dispatcher:
//
//	from > limit (from < limit descending): 0
//	otherwise: (limit - from).div(stride) + 1
func (s *Spec) genericSize() (Size, error) {
	past, err := s.past(s.start)
	if err != nil {
		return Size{}, err
	}
	if past {
		return Size{n: new(big.Int)}, nil
	}
	delta, err := s.d.Apply(num.OpSub, s.limit, s.start)
	if err != nil {
		return Size{}, err
	}
	q, err := s.d.IntDiv(delta, s.stride)
	if err != nil {
		return Size{}, err
	}
	q, err = s.d.Apply(num.OpAdd, q, num.Int(1))
	if err != nil {
		return Size{}, err
	}
	n, ok := num.BigOf(q)
	if !ok {
		return Size{}, num.Errorf(num.ErrCodeType, "step size must be an Integer, got %s", num.KindName(q))
	}
	if n.Sign() < 0 {
		n.SetInt64(0)
	}
	return Size{n: n}, nil
}

// past reports whether v lies beyond the limit in the stride's direction.
func (s *Spec) past(v num.Value) (bool, error) {
	op := num.OpGt
	if s.desc {
		op = num.OpLt
	}
	return s.d.Relational(op, v, s.limit)
}
