package store

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_CreatesNewDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()

	_, err = os.Stat(path)
	assert.NoError(t, err, "database file was not created")
}

func TestOpen_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	for i := 0; i < 3; i++ {
		s, err := Open(path)
		require.NoError(t, err, "Open() iteration %d", i)
		s.Close()
	}

	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()

	for _, table := range []string{"runs", "evaluations"} {
		var name string
		err := s.db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?",
			table,
		).Scan(&name)
		assert.NoError(t, err, "table %q not found after idempotent opens", table)
	}
}

func TestOpen_InvalidPath(t *testing.T) {
	_, err := Open("/nonexistent/dir/test.db")
	assert.Error(t, err)
}

func TestClose_NilDB(t *testing.T) {
	s := &Store{db: nil}
	assert.NoError(t, s.Close())
}

func TestPragmas(t *testing.T) {
	s := createTestStore(t)

	tests := []struct {
		name, want string
	}{
		{"journal_mode", "wal"},
		{"synchronous", "1"}, // NORMAL
		{"busy_timeout", "5000"},
		{"foreign_keys", "1"},
		{"user_version", "1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NoError(t, s.verifyPragma(tt.name, tt.want))
		})
	}
}

func TestMigration_ErrorCodeIndex(t *testing.T) {
	s := createTestStore(t)

	var name string
	err := s.db.QueryRow(
		"SELECT name FROM sqlite_master WHERE type='index' AND name='idx_evaluations_error_code'",
	).Scan(&name)
	assert.NoError(t, err)
}

func TestWriteRunAtomic_Idempotent(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	run := Run{ID: "run-1", Scenario: "coerce_errors", Pass: false, Steps: 4, Errors: 1}
	require.NoError(t, s.WriteRunAtomic(ctx, run, []Evaluation{
		{Seq: 1, Kind: "apply", Input: "1 + :foo", Outcome: "error", ErrorCode: "COERCE_UNSUPPORTED"},
	}))
	require.NoError(t, s.WriteRunAtomic(ctx, Run{ID: "run-1", Scenario: "other", Pass: true}, []Evaluation{
		{Seq: 1, Kind: "compare", Input: "1 <=> 2", Outcome: "-1"},
	}))

	got, err := s.ReadRun(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, run, got)

	evals, err := s.Evaluations(ctx, "run-1")
	require.NoError(t, err)
	require.Len(t, evals, 1)
	assert.Equal(t, "apply", evals[0].Kind)
}

func TestReadRun_NotFound(t *testing.T) {
	s := createTestStore(t)

	_, err := s.ReadRun(context.Background(), "missing")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestWriteRunAtomic_CancelledContext(t *testing.T) {
	s := createTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.WriteRunAtomic(ctx, Run{ID: "run-1", Scenario: "arith", Pass: true}, nil)
	require.Error(t, err)

	_, err = s.ReadRun(context.Background(), "run-1")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestEvaluations_Ordered(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	var evals []Evaluation
	for _, seq := range []int64{3, 1, 2} {
		evals = append(evals, Evaluation{Seq: seq, Kind: "apply", Input: "1 + 2", Outcome: "3"})
	}
	// duplicate (run_id, seq) is ignored
	evals = append(evals, Evaluation{Seq: 1, Kind: "compare", Input: "x", Outcome: "y"})
	require.NoError(t, s.WriteRunAtomic(ctx, Run{ID: "run-1", Scenario: "arith", Pass: true, Steps: 3}, evals))

	got, err := s.Evaluations(ctx, "run-1")
	require.NoError(t, err)
	require.Len(t, got, 3)
	for i, ev := range got {
		assert.Equal(t, int64(i+1), ev.Seq)
		assert.Equal(t, "apply", ev.Kind)
	}
}

func TestEvaluations_Empty(t *testing.T) {
	s := createTestStore(t)

	evals, err := s.Evaluations(context.Background(), "none")
	require.NoError(t, err)
	assert.NotNil(t, evals)
	assert.Empty(t, evals)
}

func TestListRuns(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	createTestRun(t, s, "0190a000-0000-7000-8000-000000000001", "a")
	createTestRun(t, s, "0190a000-0000-7000-8000-000000000003", "c")
	createTestRun(t, s, "0190a000-0000-7000-8000-000000000002", "b")

	runs, err := s.ListRuns(ctx, 0)
	require.NoError(t, err)
	require.Len(t, runs, 3)
	assert.Equal(t, []string{"c", "b", "a"}, []string{runs[0].Scenario, runs[1].Scenario, runs[2].Scenario})

	runs, err = s.ListRuns(ctx, 2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "c", runs[0].Scenario)
}

func TestListRuns_Empty(t *testing.T) {
	s := createTestStore(t)

	runs, err := s.ListRuns(context.Background(), 10)
	require.NoError(t, err)
	assert.NotNil(t, runs)
	assert.Empty(t, runs)
}

func TestWriteRunAtomic(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	run := Run{ID: "run-1", Scenario: "step", Pass: true, Steps: 2}
	evals := []Evaluation{
		{Seq: 1, Kind: "step", Input: "1.step(3)", Outcome: "[1, 2, 3]"},
		{Seq: 2, Kind: "apply", Input: "1 / 0", Outcome: "error", ErrorCode: "ZERO_DIVISION"},
	}
	require.NoError(t, s.WriteRunAtomic(ctx, run, evals))

	got, err := s.Evaluations(ctx, "run-1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "run-1", got[1].RunID)
	assert.Equal(t, "ZERO_DIVISION", got[1].ErrorCode)
}

func TestDeleteRunCascades(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.WriteRunAtomic(ctx, Run{ID: "run-1", Scenario: "arith", Pass: true, Steps: 1},
		[]Evaluation{{Seq: 1, Kind: "apply", Input: "1 + 1", Outcome: "2"}}))

	_, err := s.db.Exec("DELETE FROM runs WHERE id = ?", "run-1")
	require.NoError(t, err)

	evals, err := s.Evaluations(ctx, "run-1")
	require.NoError(t, err)
	assert.Empty(t, evals)
}
