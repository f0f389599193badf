package step

import (
	"iter"
	"math"
	"math/big"

	"github.com/roach88/numeric/internal/num"
)

// Values returns the sequence. Every call starts a fresh traversal, and the
// consumer may stop at any time. A failure in a user-defined operator is
// yielded once as the error and ends the sequence; the built-in paths never
// fail.
func (s *Spec) Values() iter.Seq2[num.Value, error] {
	return func(yield func(num.Value, error) bool) {
		if s.inf {
			s.logger.Debug("infinite step sequence",
				"start", s.d.Inspect(s.start),
				"stride", s.d.Inspect(s.stride),
				"path", s.path.String(),
			)
		}
		switch s.path {
		case pathInteger:
			s.integerValues(yield)
		case pathFloat:
			s.floatValues(yield)
		default:
			s.genericValues(yield)
		}
	}
}

// takePrealloc bounds the capacity reserved up front by Take.
const takePrealloc = 64

// Take collects at most n elements.
func (s *Spec) Take(n int) ([]num.Value, error) {
	out := make([]num.Value, 0, max(0, min(n, takePrealloc)))
	if n <= 0 {
		return out, nil
	}
	for v, err := range s.Values() {
		if err != nil {
			return out, err
		}
		out = append(out, v)
		if len(out) == n {
			break
		}
	}
	return out, nil
}

func (s *Spec) integerValues(yield func(num.Value, error) bool) {
	v, _ := num.BigOf(s.start)
	diff, _ := num.BigOf(s.stride)

	if s.inf {
		for {
			if !yield(num.Normalize(v), nil) {
				return
			}
			v.Add(v, diff)
		}
	}

	size := s.integerSize()
	for i := new(big.Int); i.Cmp(size.n) < 0; i.Add(i, big.NewInt(1)) {
		if !yield(num.Normalize(v), nil) {
			return
		}
		v.Add(v, diff)
	}
}

func (s *Spec) floatValues(yield func(num.Value, error) bool) {
	beg, end, unit := s.beg, s.end, s.unit
	n := floatCount(beg, end, unit)

	switch {
	case math.IsInf(unit, 0):
		// i*unit+beg would be NaN
		if n > 0 {
			yield(num.Float(beg), nil)
		}
	case unit == 0:
		for yield(num.Float(beg), nil) {
		}
	default:
		for i := float64(0); i < n; i++ {
			d := i*unit + beg
			if unit >= 0 && end < d || unit < 0 && d < end {
				d = end
			}
			if !yield(num.Float(d), nil) {
				return
			}
		}
	}
}

func (s *Spec) genericValues(yield func(num.Value, error) bool) {
	v := s.start
	for {
		if !s.inf {
			past, err := s.past(v)
			if err != nil {
				yield(nil, err)
				return
			}
			if past {
				return
			}
		}
		if !yield(v, nil) {
			return
		}
		next, err := s.d.Apply(num.OpAdd, v, s.stride)
		if err != nil {
			yield(nil, err)
			return
		}
		v = next
	}
}
