package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// createTestStore opens a fresh store under t.TempDir.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

// createTestRun writes a passing run with the given id.
func createTestRun(t *testing.T, s *Store, id, scenario string) Run {
	t.Helper()
	run := Run{ID: id, Scenario: scenario, Pass: true, Steps: 2}
	require.NoError(t, s.WriteRunAtomic(context.Background(), run, nil))
	return run
}
