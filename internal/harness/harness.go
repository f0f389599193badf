package harness

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/roach88/numeric/internal/dispatch"
	"github.com/roach88/numeric/internal/store"
	"github.com/roach88/numeric/internal/testutil"
	"github.com/roach88/numeric/internal/textenc"
)

// DefaultTake bounds how many elements a step call produces when the
// expectation does not say.
const DefaultTake = 10

// RunIDGenerator produces run ids.
type RunIDGenerator interface {
	Generate() string
}

// UUIDv7Generator generates time-sortable UUIDv7 run ids.
type UUIDv7Generator struct{}

// Generate returns a new hyphenated UUIDv7.
//
// Panics if UUID generation fails (should never happen in practice).
func (UUIDv7Generator) Generate() string {
	return uuid.Must(uuid.NewV7()).String()
}

// Harness runs scenarios against a dispatcher and step sequencer.
type Harness struct {
	store  *store.Store
	clock  *testutil.SeqClock
	runIDs RunIDGenerator
	logger *slog.Logger
	take   int
}

// Option configures a run.
type Option func(*Harness)

// WithStore records each run and its trace to st.
func WithStore(st *store.Store) Option {
	return func(h *Harness) {
		h.store = st
	}
}

// WithRunIDs sets the run id generator.
//
// Default: UUIDv7Generator
func WithRunIDs(gen RunIDGenerator) Option {
	return func(h *Harness) {
		if gen != nil {
			h.runIDs = gen
		}
	}
}

// WithLogger sets the logger for per-step records. The same logger is
// handed to the dispatcher and sequencer.
//
// Default: discard
func WithLogger(logger *slog.Logger) Option {
	return func(h *Harness) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// WithTake sets the default element bound for step calls.
//
// Default: DefaultTake
func WithTake(n int) Option {
	return func(h *Harness) {
		if n > 0 {
			h.take = n
		}
	}
}

// Run executes a scenario and returns its result.
//
// Every run starts a fresh logical clock, so the same scenario always
// produces the same trace. Expectation failures are reported in the result;
// an error means the scenario itself could not be executed (bad literal,
// unknown operator or fixture, unknown encoding, store failure).
func Run(ctx context.Context, scenario *Scenario, opts ...Option) (*Result, error) {
	h := &Harness{
		clock:  testutil.NewSeqClock(),
		runIDs: UUIDv7Generator{},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		take:   DefaultTake,
	}
	for _, opt := range opts {
		opt(h)
	}

	enc, err := textenc.Lookup(scenario.Encoding)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", scenario.Name, err)
	}
	d := dispatch.New(dispatch.WithEncoding(enc), dispatch.WithLogger(h.logger))

	result := NewResult(h.runIDs.Generate())
	for i := range scenario.Steps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := h.executeStep(d, i, &scenario.Steps[i], result); err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
	}

	if h.store != nil {
		if err := h.record(ctx, scenario, result); err != nil {
			return nil, err
		}
	}

	h.logger.Info("scenario completed",
		"scenario", scenario.Name,
		"run_id", result.RunID,
		"pass", result.Pass,
		"steps", len(result.Trace),
	)
	return result, nil
}

// executeStep evaluates one step, appends its trace event and checks its
// expectation.
func (h *Harness) executeStep(d *dispatch.Dispatcher, i int, st *Step, result *Result) error {
	ev := &evaluator{d: d, r: newResolver(d), logger: h.logger, take: h.take}
	out, err := ev.evaluate(st)
	if err != nil {
		return err
	}

	seq := h.clock.Next()
	event := out.event(seq)
	result.Trace = append(result.Trace, event)

	h.logger.Info("step evaluated",
		"step", i,
		"seq", seq,
		"kind", event.Kind,
		"input", event.Input,
		"outcome", event.Outcome,
		"error", event.Error,
	)

	if st.Expect != nil {
		for _, msg := range checkExpect(ev.r, st.Expect, out) {
			result.AddError(fmt.Sprintf("step %d (%s %s): %s", i, event.Kind, event.Input, msg))
		}
	} else if out.err != nil {
		result.AddError(fmt.Sprintf("step %d (%s %s): unexpected error: %v", i, event.Kind, event.Input, out.err))
	}
	return nil
}

// record writes the run and its trace in one transaction.
func (h *Harness) record(ctx context.Context, scenario *Scenario, result *Result) error {
	run := store.Run{
		ID:       result.RunID,
		Scenario: scenario.Name,
		Pass:     result.Pass,
		Steps:    len(result.Trace),
		Errors:   len(result.Errors),
	}
	evals := make([]store.Evaluation, len(result.Trace))
	for i, event := range result.Trace {
		evals[i] = store.Evaluation{
			RunID:     result.RunID,
			Seq:       event.Seq,
			Kind:      event.Kind,
			Input:     event.Input,
			Outcome:   event.Outcome,
			ErrorCode: event.Error,
		}
	}
	if err := h.store.WriteRunAtomic(ctx, run, evals); err != nil {
		return fmt.Errorf("record run %s: %w", result.RunID, err)
	}
	return nil
}
