package dispatch

import (
	"strconv"

	"github.com/roach88/numeric/internal/num"
)

// Eval applies any binary operator and renders the outcome:
//
//	arithmetic, bitwise  inspected value
//	< <= > >=            true or false
//	<=>                  -1, 0, 1 or nil
//	==                   true or false
func (d *Dispatcher) Eval(op num.Op, left, right num.Value) (string, error) {
	switch {
	case op.IsArithmetic(), op.IsBitwise():
		v, err := d.Apply(op, left, right)
		if err != nil {
			return "", err
		}
		return d.Inspect(v), nil
	case op.IsRelational():
		ok, err := d.Relational(op, left, right)
		if err != nil {
			return "", err
		}
		return strconv.FormatBool(ok), nil
	case op == num.OpCmp:
		return d.Compare(left, right).String(), nil
	case op == num.OpEq:
		return strconv.FormatBool(d.Equal(left, right)), nil
	}
	return "", num.Errorf(num.ErrCodeArgument, "unknown operator %s", op)
}
