package store

import (
	"context"
	"fmt"
)

// Run is one recorded scenario execution.
type Run struct {
	ID       string
	Scenario string
	Pass     bool
	Steps    int
	Errors   int
}

// Evaluation is one traced call within a run.
type Evaluation struct {
	RunID     string
	Seq       int64
	Kind      string
	Input     string
	Outcome   string
	ErrorCode string
}

// WriteRunAtomic writes a run and its evaluations in one transaction, so a
// crash never leaves a run without its trace. Evaluations are keyed by
// run.ID; their RunID field is ignored. A run id that already exists, or a
// repeated seq, is silently skipped.
func (s *Store) WriteRunAtomic(ctx context.Context, run Run, evals []Evaluation) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("write run: begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO runs
		(id, scenario, pass, steps, errors)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`, run.ID, run.Scenario, boolToInt(run.Pass), run.Steps, run.Errors); err != nil {
		return fmt.Errorf("write run: insert run: %w", err)
	}

	for _, ev := range evals {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO evaluations
			(run_id, seq, kind, input, outcome, error_code)
			VALUES (?, ?, ?, ?, ?, ?)
			ON CONFLICT(run_id, seq) DO NOTHING
		`, run.ID, ev.Seq, ev.Kind, ev.Input, ev.Outcome, ev.ErrorCode); err != nil {
			return fmt.Errorf("write run: insert evaluation %d: %w", ev.Seq, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("write run: commit: %w", err)
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
