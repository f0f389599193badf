package step

import (
	"io"
	"log/slog"
	"math"
	"sort"
	"strings"

	"github.com/roach88/numeric/internal/dispatch"
	"github.com/roach88/numeric/internal/num"
)

// Option keys accepted in Arguments.Options.
const (
	OptionTo = "to"
	OptionBy = "by"
)

// Arguments is the call-site form of a step request: up to two positional
// values (limit, stride) and the named options "to" and "by".
type Arguments struct {
	Positional []num.Value
	Options    map[string]num.Value
}

type path uint8

const (
	pathInteger path = iota + 1
	pathFloat
	pathGeneric
)

func (p path) String() string {
	switch p {
	case pathInteger:
		return "integer"
	case pathFloat:
		return "float"
	}
	return "generic"
}

// Spec is a validated, immutable step request.
type Spec struct {
	start  num.Value
	limit  num.Value // nil when absent
	stride num.Value

	desc bool
	inf  bool
	path path

	// float path operands
	beg, end, unit float64

	d      *dispatch.Dispatcher
	logger *slog.Logger
}

// SpecOption configures a Spec.
type SpecOption func(*Spec)

// WithDispatcher sets the dispatcher used for generic stepping, sign tests
// and zero detection.
//
// Default: dispatch.Default
func WithDispatcher(d *dispatch.Dispatcher) SpecOption {
	return func(s *Spec) {
		if d != nil {
			s.d = d
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) SpecOption {
	return func(s *Spec) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New builds a Spec from an explicit limit and stride, either of which may
// be nil for absent. It behaves like the named-option form: a zero stride is
// accepted and means an infinite sequence.
func New(start, limit, stride num.Value, opts ...SpecOption) (*Spec, error) {
	options := map[string]num.Value{}
	if limit != nil {
		options[OptionTo] = limit
	}
	if stride != nil {
		options[OptionBy] = stride
	}
	return NewSpec(start, Arguments{Options: options}, opts...)
}

// NewSpec validates args against start and builds a Spec. All argument
// errors are reported here:
//
//   - more than two positional values, an unknown option, or the same
//     argument given both positionally and by name: ARGUMENT
//   - a positional nil stride, or a non-numeric stride or limit: TYPE
//   - a positional zero stride of a non-Float kind with a finite limit:
//     ARGUMENT, "step can't be 0"
func NewSpec(start num.Value, args Arguments, opts ...SpecOption) (*Spec, error) {
	s := &Spec{
		d:      dispatch.Default,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}

	if !num.IsNumeric(start) {
		return nil, num.NewUnsupportedOperationError("step", start)
	}
	s.start = start

	if err := s.scan(args); err != nil {
		return nil, err
	}
	if err := s.classify(); err != nil {
		return nil, err
	}
	return s, nil
}

// scan resolves limit and stride from positional and named arguments.
func (s *Spec) scan(args Arguments) error {
	n := len(args.Positional)
	if n > 2 {
		return num.Errorf(num.ErrCodeArgument, "wrong number of arguments (given %d, expected 0..2)", n)
	}
	if err := checkOptions(args.Options); err != nil {
		return err
	}

	var limit, stride num.Value
	positionalStride := false
	if n > 0 {
		limit = args.Positional[0]
	}
	if n > 1 {
		stride = args.Positional[1]
		positionalStride = true
	}
	if v, ok := args.Options[OptionTo]; ok {
		if n > 0 {
			return num.Errorf(num.ErrCodeArgument, "to is given twice")
		}
		limit = v
	}
	if v, ok := args.Options[OptionBy]; ok {
		if n > 1 {
			return num.Errorf(num.ErrCodeArgument, "step is given twice")
		}
		stride = v
	}

	if positionalStride && num.IsNil(stride) {
		return num.Errorf(num.ErrCodeType, "step must be numeric")
	}
	if num.IsNil(stride) {
		stride = s.defaultStride()
	}
	if !num.IsNumeric(stride) {
		return num.Errorf(num.ErrCodeType, "step must be numeric")
	}
	if num.IsNil(limit) {
		limit = nil
	} else if !num.IsNumeric(limit) {
		return num.Errorf(num.ErrCodeType, "limit must be numeric")
	}

	if positionalStride && limit != nil && !isFloat(stride) && !isInfinite(limit) && s.d.IsZero(stride) {
		return num.Errorf(num.ErrCodeArgument, "step can't be 0")
	}

	s.limit = limit
	s.stride = stride
	return nil
}

// defaultStride is 1 in start's kind.
func (s *Spec) defaultStride() num.Value {
	if isFloat(s.start) {
		return num.Float(1)
	}
	return num.Int(1)
}

func checkOptions(opts map[string]num.Value) error {
	var unknown []string
	for k := range opts {
		if k != OptionTo && k != OptionBy {
			unknown = append(unknown, k)
		}
	}
	switch len(unknown) {
	case 0:
		return nil
	case 1:
		return num.Errorf(num.ErrCodeArgument, "unknown keyword: %s", unknown[0])
	}
	sort.Strings(unknown)
	return num.Errorf(num.ErrCodeArgument, "unknown keywords: %s", strings.Join(unknown, ", "))
}

// classify derives direction, infiniteness and the element path.
func (s *Spec) classify() error {
	desc, err := s.descending()
	if err != nil {
		return err
	}
	s.desc = desc

	zero := s.d.IsZero(s.stride)
	switch {
	case zero, s.limit == nil:
		s.inf = true
	default:
		if f, ok := s.limit.(num.Float); ok && math.IsInf(float64(f), 0) {
			s.inf = math.Signbit(float64(f)) == desc
		}
	}

	switch {
	case num.IsIntegral(s.start) && num.IsIntegral(s.stride) && (s.inf || num.IsIntegral(s.limit)):
		s.path = pathInteger
	case isFloat(s.start) || isFloat(s.stride) || isFloat(s.limit):
		s.path = pathFloat
		return s.floatOperands()
	default:
		s.path = pathGeneric
	}
	return nil
}

// descending reports whether the stride is negative. User strides count as
// descending unless stride > 0 holds.
func (s *Spec) descending() (bool, error) {
	switch v := s.stride.(type) {
	case num.Int:
		return v < 0, nil
	case *num.BigInt:
		return v.Sign() < 0, nil
	case num.Float:
		return v < 0, nil
	}
	pos, err := s.d.IsPositive(s.stride)
	if err != nil {
		return false, err
	}
	return !pos, nil
}

func (s *Spec) floatOperands() error {
	var err error
	if s.unit, err = s.toFloat(s.stride); err != nil {
		return err
	}
	if s.beg, err = s.toFloat(s.start); err != nil {
		return err
	}
	if s.limit == nil {
		s.end = math.Inf(1)
		if s.unit < 0 {
			s.end = math.Inf(-1)
		}
		return nil
	}
	s.end, err = s.toFloat(s.limit)
	return err
}

func (s *Spec) toFloat(v num.Value) (float64, error) {
	f, err := s.d.ToFloat(v)
	if err != nil {
		return 0, num.Errorf(num.ErrCodeType, "can't convert %s into Float", num.KindName(v))
	}
	return f, nil
}

// Start returns the first element.
func (s *Spec) Start() num.Value { return s.start }

// Limit returns the bound, or nil when the sequence is unbounded.
func (s *Spec) Limit() num.Value { return s.limit }

// Stride returns the step between elements.
func (s *Spec) Stride() num.Value { return s.stride }

// Descending reports whether elements decrease.
func (s *Spec) Descending() bool { return s.desc }

// Infinite reports whether the sequence never ends.
func (s *Spec) Infinite() bool { return s.inf }

// Path names the element path: "integer", "float" or "generic".
func (s *Spec) Path() string { return s.path.String() }

func isFloat(v num.Value) bool {
	_, ok := v.(num.Float)
	return ok
}

func isInfinite(v num.Value) bool {
	f, ok := v.(num.Float)
	return ok && math.IsInf(float64(f), 0)
}
