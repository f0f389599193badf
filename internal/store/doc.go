// Package store keeps a SQLite history of harness runs.
//
// Each run records one scenario execution: its UUIDv7 id, the scenario
// name, whether every expectation held, and the step and error counts.
// Each evaluation records one traced dispatcher or sequencer call within
// a run, keyed by (run_id, seq) where seq is the harness's logical clock.
//
// Writes are idempotent: replaying the same run id is a no-op.
//
// # Ordering
//
//   - Runs are listed newest first by id; UUIDv7 ids sort by creation time.
//   - Evaluations are read in seq order.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
package store
