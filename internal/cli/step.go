package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/numeric/internal/config"
	"github.com/roach88/numeric/internal/num"
	"github.com/roach88/numeric/internal/step"
)

// StepOptions holds flags for the step command.
type StepOptions struct {
	*RootOptions
	To   string
	By   string
	Take int // 0 means the configured take
}

// StepResult is the JSON payload of the step command.
type StepResult struct {
	Start     string   `json:"start"`
	Path      string   `json:"path"`
	Size      string   `json:"size"`
	Values    []string `json:"values"`
	Truncated bool     `json:"truncated"`
}

// NewStepCommand creates the step command.
func NewStepCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &StepOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "step <start> [limit [stride]]",
		Short: "Produce an arithmetic step sequence",
		Long: `Produce the sequence start, start+stride, ... up to limit.

The limit and stride are given positionally or with --to and --by, not
both. Without a limit the sequence is infinite; without a stride it is 1.
A zero stride given with --by is an infinite constant sequence.

The size is printed first, then the elements: all of them when the
sequence is finite and no longer than --take, otherwise the first --take.

Exit codes:
  0 - Sequence produced
  1 - Invalid step arguments
  2 - Command error (bad literal)

Examples:
  numeric step 1 10 2
  numeric step 1 --to 10 --by 2
  numeric step 1.0 2.0 0.25
  numeric step 1 --take 5
  numeric step -- 10 1 -3`,
		Args:          cobra.RangeArgs(1, 3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStep(opts, cmd, args)
		},
	}

	cmd.Flags().StringVar(&opts.To, "to", "", "limit (same as the first positional argument)")
	cmd.Flags().StringVar(&opts.By, "by", "", "stride (same as the second positional argument)")
	cmd.Flags().IntVar(&opts.Take, "take", 0, "maximum number of elements to print (default from config)")

	return cmd
}

func runStep(opts *StepOptions, cmd *cobra.Command, args []string) error {
	start, err := num.Parse(args[0])
	if err != nil {
		return WrapExitError(ExitCommandError, fmt.Sprintf("invalid start %q", args[0]), err)
	}

	var stepArgs step.Arguments
	for _, lit := range args[1:] {
		v, err := num.Parse(lit)
		if err != nil {
			return WrapExitError(ExitCommandError, fmt.Sprintf("invalid argument %q", lit), err)
		}
		stepArgs.Positional = append(stepArgs.Positional, v)
	}
	for _, o := range []struct{ key, flag, lit string }{
		{step.OptionTo, "to", opts.To},
		{step.OptionBy, "by", opts.By},
	} {
		if !cmd.Flags().Changed(o.flag) {
			continue
		}
		v, err := num.Parse(o.lit)
		if err != nil {
			return WrapExitError(ExitCommandError, fmt.Sprintf("invalid --%s %q", o.flag, o.lit), err)
		}
		if stepArgs.Options == nil {
			stepArgs.Options = make(map[string]num.Value)
		}
		stepArgs.Options[o.key] = v
	}

	take := opts.Take
	if take < 0 {
		return NewExitError(ExitCommandError, "--take must be non-negative")
	}
	if take > config.MaxTake {
		return NewExitError(ExitCommandError, fmt.Sprintf("--take must be at most %d", config.MaxTake))
	}
	if take == 0 {
		take = opts.config().Take
	}

	d, err := opts.dispatcher()
	if err != nil {
		return err
	}
	out := opts.formatter(cmd)

	spec, err := step.NewSpec(start, stepArgs, step.WithDispatcher(d), step.WithLogger(opts.logger()))
	if err != nil {
		return out.EvalError(err)
	}
	size, err := spec.Size()
	if err != nil {
		return out.EvalError(err)
	}

	n, truncated := take, true
	if !size.IsInfinite() && size.Count().IsInt64() && size.Count().Int64() <= int64(take) {
		n, truncated = int(size.Count().Int64()), false
	}
	out.VerboseLog("path: %s, descending: %t, producing %d", spec.Path(), spec.Descending(), n)

	vals, err := spec.Take(n)
	if err != nil {
		return out.EvalError(err)
	}

	result := StepResult{
		Start:     args[0],
		Path:      spec.Path(),
		Size:      size.String(),
		Values:    make([]string, len(vals)),
		Truncated: truncated,
	}
	for i, v := range vals {
		result.Values[i] = d.Inspect(v)
	}

	var text strings.Builder
	fmt.Fprintf(&text, "size: %s\n", result.Size)
	fmt.Fprintf(&text, "values: [%s", strings.Join(result.Values, ", "))
	if truncated {
		text.WriteString(", ...")
	}
	text.WriteString("]")
	return out.Success(result, text.String())
}
