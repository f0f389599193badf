package harness

import (
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/roach88/numeric/internal/dispatch"
	"github.com/roach88/numeric/internal/num"
	"github.com/roach88/numeric/internal/step"
)

// outcome is what one call produced.
type outcome struct {
	kind  string
	input string

	value    string // inspected value, or rendered bool/ordering
	hasValue bool
	ordering *num.Ordering
	boolean  *bool

	// step calls
	size   *step.Size
	values []string

	err error
}

func (o *outcome) setValue(s string) {
	o.value, o.hasValue = s, true
}

func (o *outcome) setBool(b bool) {
	o.boolean = &b
	o.setValue(strconv.FormatBool(b))
}

// event renders the outcome as a trace event.
func (o *outcome) event(seq int64) TraceEvent {
	ev := TraceEvent{Seq: seq, Kind: o.kind, Input: o.input}
	switch {
	case o.kind == KindStep:
		ev.Outcome = "[" + strings.Join(o.values, ", ") + "]"
	case o.err != nil:
		ev.Outcome = "error"
	default:
		ev.Outcome = o.value
	}
	if o.size != nil {
		ev.Size = o.size.String()
	}
	if o.err != nil {
		ev.Error = string(num.CodeOf(o.err))
		if ev.Error == "" {
			ev.Error = "ERROR"
		}
		ev.Message = o.err.Error()
	}
	return ev
}

type evaluator struct {
	d      *dispatch.Dispatcher
	r      *resolver
	logger *slog.Logger
	take   int
}

// evaluate runs the step's call. The returned error is a scenario error;
// call failures are carried in the outcome.
func (e *evaluator) evaluate(st *Step) (*outcome, error) {
	switch {
	case st.Apply != nil:
		return e.apply(st.Apply)
	case st.Compare != nil:
		return e.compare(st.Compare)
	case st.Relational != nil:
		return e.relational(st.Relational)
	case st.Binary != nil:
		return e.binary(st.Binary)
	case st.Unary != nil:
		return e.unary(st.Unary)
	case st.Step != nil:
		return e.step(st.Step, st.Expect)
	}
	return nil, fmt.Errorf("empty step")
}

func (e *evaluator) operands(left, right string) (num.Value, num.Value, error) {
	l, err := e.r.resolve(left)
	if err != nil {
		return nil, nil, err
	}
	r, err := e.r.resolve(right)
	if err != nil {
		return nil, nil, err
	}
	return l, r, nil
}

func (e *evaluator) apply(c *BinaryCall) (*outcome, error) {
	op, err := num.ParseOp(c.Op)
	if err != nil {
		return nil, err
	}
	l, r, err := e.operands(c.Left, c.Right)
	if err != nil {
		return nil, err
	}
	out := &outcome{kind: KindApply, input: fmt.Sprintf("%s %s %s", c.Left, c.Op, c.Right)}
	v, err := e.d.Apply(op, l, r)
	if err != nil {
		out.err = err
		return out, nil
	}
	out.setValue(e.d.Inspect(v))
	return out, nil
}

func (e *evaluator) compare(c *BinaryCall) (*outcome, error) {
	l, r, err := e.operands(c.Left, c.Right)
	if err != nil {
		return nil, err
	}
	out := &outcome{kind: KindCompare, input: fmt.Sprintf("%s <=> %s", c.Left, c.Right)}
	ord := e.d.Compare(l, r)
	out.ordering = &ord
	out.setValue(ord.String())
	return out, nil
}

func (e *evaluator) relational(c *BinaryCall) (*outcome, error) {
	op, err := num.ParseOp(c.Op)
	if err != nil {
		return nil, err
	}
	l, r, err := e.operands(c.Left, c.Right)
	if err != nil {
		return nil, err
	}
	out := &outcome{kind: KindRelational, input: fmt.Sprintf("%s %s %s", c.Left, c.Op, c.Right)}
	ok, err := e.d.Relational(op, l, r)
	if err != nil {
		out.err = err
		return out, nil
	}
	out.setBool(ok)
	return out, nil
}

func (e *evaluator) binary(c *FnCall) (*outcome, error) {
	l, r, err := e.operands(c.Left, c.Right)
	if err != nil {
		return nil, err
	}
	out := &outcome{kind: KindBinary, input: fmt.Sprintf("%s(%s, %s)", c.Fn, c.Left, c.Right)}

	var v num.Value
	switch c.Fn {
	case "coerce":
		res := e.d.Coerce(l, r)
		switch res.Kind() {
		case num.CoercedPair:
			a, b, _ := res.Values()
			out.setValue(e.pair(a, b))
		case num.CoercedMalformed:
			out.err = num.NewCoerceShapeError()
		default:
			if cause := res.Cause(); cause != nil {
				out.err = cause
			} else {
				out.err = num.NewCoerceUnsupportedError(e.d.Inspect(r), l, nil)
			}
		}
		return out, nil
	case "equal":
		out.setBool(e.d.Equal(l, r))
		return out, nil
	case "divmod":
		q, m, err := e.d.DivMod(l, r)
		if err != nil {
			out.err = err
			return out, nil
		}
		out.setValue(e.pair(q, m))
		return out, nil
	case "div":
		v, err = e.d.IntDiv(l, r)
	case "modulo":
		v, err = e.d.Modulo(l, r)
	case "remainder":
		v, err = e.d.Remainder(l, r)
	default:
		return nil, fmt.Errorf("unknown binary fn %q", c.Fn)
	}
	if err != nil {
		out.err = err
		return out, nil
	}
	out.setValue(e.d.Inspect(v))
	return out, nil
}

func (e *evaluator) unary(c *FnCall) (*outcome, error) {
	x, err := e.r.resolve(c.Value)
	if err != nil {
		return nil, err
	}
	out := &outcome{kind: KindUnary, input: fmt.Sprintf("%s(%s)", c.Fn, c.Value)}

	var v num.Value
	switch c.Fn {
	case "zero":
		out.setBool(e.d.IsZero(x))
		return out, nil
	case "integer":
		out.setBool(e.d.IsInteger(x))
		return out, nil
	case "real":
		out.setBool(e.d.IsReal(x))
		return out, nil
	case "positive", "negative":
		var ok bool
		if c.Fn == "positive" {
			ok, err = e.d.IsPositive(x)
		} else {
			ok, err = e.d.IsNegative(x)
		}
		if err != nil {
			out.err = err
			return out, nil
		}
		out.setBool(ok)
		return out, nil
	case "nonzero":
		v = e.d.NonZero(x)
	case "neg":
		v, err = e.d.Negate(x)
	case "abs":
		v, err = e.d.Abs(x)
	case "floor":
		v, err = e.d.Floor(x)
	case "ceil":
		v, err = e.d.Ceil(x)
	case "round":
		v, err = e.d.Round(x)
	case "truncate":
		v, err = e.d.Truncate(x)
	case "to_int":
		v, err = e.d.ToInt(x)
	case "to_f":
		var f float64
		f, err = e.d.ToFloat(x)
		v = num.Float(f)
	default:
		return nil, fmt.Errorf("unknown unary fn %q", c.Fn)
	}
	if err != nil {
		out.err = err
		return out, nil
	}
	out.setValue(e.d.Inspect(v))
	return out, nil
}

func (e *evaluator) step(c *StepCall, expect *Expect) (*outcome, error) {
	start, err := e.r.resolve(c.Start)
	if err != nil {
		return nil, err
	}
	positional, err := e.r.resolveAll(c.Args)
	if err != nil {
		return nil, err
	}
	args := step.Arguments{Positional: positional}
	keys := make([]string, 0, len(c.Options))
	for k := range c.Options {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	if len(keys) > 0 {
		args.Options = make(map[string]num.Value, len(keys))
		for _, k := range keys {
			v, err := e.r.resolve(c.Options[k])
			if err != nil {
				return nil, err
			}
			args.Options[k] = v
		}
	}

	out := &outcome{kind: KindStep, input: stepInput(c, keys), values: []string{}}
	spec, err := step.NewSpec(start, args, step.WithDispatcher(e.d), step.WithLogger(e.logger))
	if err != nil {
		out.err = err
		return out, nil
	}

	size, err := spec.Size()
	if err != nil {
		out.err = err
		return out, nil
	}
	out.size = &size

	vals, err := spec.Take(e.bound(size, expect))
	for _, v := range vals {
		out.values = append(out.values, e.d.Inspect(v))
	}
	out.err = err
	return out, nil
}

// bound picks how many elements to produce. Listed values without take are
// produced one past their length so a longer sequence is caught.
func (e *evaluator) bound(size step.Size, expect *Expect) int {
	if expect != nil {
		if expect.Take > 0 {
			return expect.Take
		}
		if len(expect.Values) > 0 {
			return len(expect.Values) + 1
		}
	}
	if !size.IsInfinite() && size.Count().IsInt64() && size.Count().Int64() < int64(e.take) {
		return int(size.Count().Int64())
	}
	return e.take
}

func (e *evaluator) pair(a, b num.Value) string {
	return "[" + e.d.Inspect(a) + ", " + e.d.Inspect(b) + "]"
}

// stepInput renders a step call as start.step(args, key: value).
func stepInput(c *StepCall, keys []string) string {
	parts := slices.Clone(c.Args)
	for _, k := range keys {
		parts = append(parts, k+": "+c.Options[k])
	}
	return c.Start + ".step(" + strings.Join(parts, ", ") + ")"
}
