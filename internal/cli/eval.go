package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/numeric/internal/num"
)

// EvalResult is the JSON payload of the eval command.
type EvalResult struct {
	Left   string `json:"left"`
	Op     string `json:"op"`
	Right  string `json:"right"`
	Result string `json:"result"`
}

// NewEvalCommand creates the eval command.
func NewEvalCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval <left> <op> <right>",
		Short: "Apply a binary operator",
		Long: `Apply a binary operator to two literals, coercing the right operand
when the kinds differ.

Arithmetic and bitwise operators print the result, relational operators
print true or false, <=> prints -1, 0, 1 or nil and == prints true or false.

Literals: integers of any size (1_000, 0x1f), floats (1.5, 2e10, Infinity,
NaN), symbols (:foo, :"a b"), strings ("x") and nil. Put -- before the
arguments when the left operand is negative.

Exit codes:
  0 - Evaluated
  1 - Evaluation raised an error
  2 - Command error (bad literal, unknown operator)

Examples:
  numeric eval 1 + 2.5
  numeric eval 1 '<=>' :foo
  numeric eval -- -7 % 2
  numeric eval 1 + :foo --format json`,
		Args:          cobra.ExactArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(rootOpts, cmd, args[0], args[1], args[2])
		},
	}
	return cmd
}

func runEval(opts *RootOptions, cmd *cobra.Command, leftLit, opLit, rightLit string) error {
	op, err := num.ParseOp(opLit)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid operator", err)
	}
	left, right, err := parseOperands(leftLit, rightLit)
	if err != nil {
		return err
	}
	d, err := opts.dispatcher()
	if err != nil {
		return err
	}

	out := opts.formatter(cmd)
	out.VerboseLog("eval %s %s %s (%s, %s)", leftLit, opLit, rightLit, num.KindName(left), num.KindName(right))

	result, err := d.Eval(op, left, right)
	if err != nil {
		return out.EvalError(err)
	}
	return out.Success(EvalResult{Left: leftLit, Op: opLit, Right: rightLit, Result: result}, result)
}

// CmpResult is the JSON payload of the cmp command.
type CmpResult struct {
	Left     string `json:"left"`
	Right    string `json:"right"`
	Ordering string `json:"ordering"`
	Equal    bool   `json:"equal"`
}

// NewCmpCommand creates the cmp command.
func NewCmpCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cmp <left> <right>",
		Short: "Three-way compare two values",
		Long: `Compare two literals. Prints -1, 0 or 1, or nil when the values are
incomparable. Comparison never fails.

With --verbose the equality result is printed as well.

Examples:
  numeric cmp 1 2
  numeric cmp 2.0 2
  numeric cmp NaN 1`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCmp(rootOpts, cmd, args[0], args[1])
		},
	}
	return cmd
}

func runCmp(opts *RootOptions, cmd *cobra.Command, leftLit, rightLit string) error {
	left, right, err := parseOperands(leftLit, rightLit)
	if err != nil {
		return err
	}
	d, err := opts.dispatcher()
	if err != nil {
		return err
	}

	out := opts.formatter(cmd)
	ord := d.Compare(left, right)
	equal := d.Equal(left, right)
	out.VerboseLog("equal: %t", equal)

	return out.Success(CmpResult{
		Left:     leftLit,
		Right:    rightLit,
		Ordering: ord.String(),
		Equal:    equal,
	}, ord.String())
}

func parseOperands(leftLit, rightLit string) (num.Value, num.Value, error) {
	left, err := num.Parse(leftLit)
	if err != nil {
		return nil, nil, WrapExitError(ExitCommandError, fmt.Sprintf("invalid left operand %q", leftLit), err)
	}
	right, err := num.Parse(rightLit)
	if err != nil {
		return nil, nil, WrapExitError(ExitCommandError, fmt.Sprintf("invalid right operand %q", rightLit), err)
	}
	return left, right, nil
}
