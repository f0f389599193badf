package cli

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/roach88/numeric/internal/store"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	Database string
	Limit    int
	RunID    string // optional - show one run's evaluations
}

// RunSummary is one recorded run in history output.
type RunSummary struct {
	ID       string `json:"id"`
	Scenario string `json:"scenario"`
	Pass     bool   `json:"pass"`
	Steps    int    `json:"steps"`
	Errors   int    `json:"errors"`
}

// EvaluationRecord is one recorded call in history output.
type EvaluationRecord struct {
	Seq       int64  `json:"seq"`
	Kind      string `json:"kind"`
	Input     string `json:"input"`
	Outcome   string `json:"outcome"`
	ErrorCode string `json:"error_code,omitempty"`
}

// RunDetail is a run together with its evaluations.
type RunDetail struct {
	Run         RunSummary         `json:"run"`
	Evaluations []EvaluationRecord `json:"evaluations"`
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded scenario runs",
		Long: `List scenario runs recorded by "numeric test", newest first.

With --run, show the evaluations of one run in order.

Examples:
  numeric history --db runs.db
  numeric history --db runs.db --limit 5
  numeric history --db runs.db --run 0192f4c4-...
  numeric history --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(cmd.Context(), opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (default from config)")
	cmd.Flags().IntVar(&opts.Limit, "limit", 20, "maximum number of runs to list (0 for all)")
	cmd.Flags().StringVar(&opts.RunID, "run", "", "show the evaluations of this run")

	return cmd
}

func runHistory(ctx context.Context, opts *HistoryOptions, cmd *cobra.Command) error {
	if ctx == nil {
		ctx = context.Background()
	}
	dbPath := opts.Database
	if dbPath == "" {
		dbPath = opts.config().Store
	}
	if dbPath == "" {
		return NewExitError(ExitCommandError, "no database: pass --db or set store in the config")
	}
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		return NewExitError(ExitCommandError, fmt.Sprintf("database not found: %s", dbPath))
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer st.Close()

	out := opts.formatter(cmd)
	if opts.RunID != "" {
		return showRun(ctx, st, out, opts.RunID)
	}

	runs, err := st.ListRuns(ctx, opts.Limit)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to list runs", err)
	}
	summaries := make([]RunSummary, len(runs))
	for i, r := range runs {
		summaries[i] = summarize(r)
	}

	if out.Format == "json" {
		return out.Success(summaries, "")
	}
	if len(summaries) == 0 {
		fmt.Fprintln(out.Writer, "No runs recorded.")
		return nil
	}
	return writeRunsText(out.Writer, marksFor(out.Writer), summaries)
}

func showRun(ctx context.Context, st *store.Store, out *OutputFormatter, runID string) error {
	run, err := st.ReadRun(ctx, runID)
	if errors.Is(err, sql.ErrNoRows) {
		return NewExitError(ExitCommandError, fmt.Sprintf("run not found: %s", runID))
	}
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read run", err)
	}
	evals, err := st.Evaluations(ctx, runID)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read evaluations", err)
	}

	detail := RunDetail{Run: summarize(run), Evaluations: make([]EvaluationRecord, len(evals))}
	for i, e := range evals {
		detail.Evaluations[i] = EvaluationRecord{
			Seq:       e.Seq,
			Kind:      e.Kind,
			Input:     e.Input,
			Outcome:   e.Outcome,
			ErrorCode: e.ErrorCode,
		}
	}

	if out.Format == "json" {
		return out.Success(detail, "")
	}

	w := out.Writer
	marks := marksFor(w)
	fmt.Fprintf(w, "Run: %s\n", detail.Run.ID)
	fmt.Fprintf(w, "Scenario: %s\n", detail.Run.Scenario)
	fmt.Fprintf(w, "Status: %s\n", marks.of(detail.Run.Pass))
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SEQ\tKIND\tINPUT\tOUTCOME\tERROR")
	for _, e := range detail.Evaluations {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", e.Seq, e.Kind, e.Input, e.Outcome, e.ErrorCode)
	}
	return tw.Flush()
}

func summarize(r store.Run) RunSummary {
	return RunSummary{ID: r.ID, Scenario: r.Scenario, Pass: r.Pass, Steps: r.Steps, Errors: r.Errors}
}

func writeRunsText(w io.Writer, marks Marks, runs []RunSummary) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSCENARIO\tSTATUS\tSTEPS\tERRORS")
	for _, r := range runs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\n", r.ID, r.Scenario, marks.of(r.Pass), r.Steps, r.Errors)
	}
	return tw.Flush()
}
