package harness

// TraceEvent records one evaluated step.
type TraceEvent struct {
	Seq     int64  `json:"seq"`
	Kind    string `json:"kind"`
	Input   string `json:"input"`
	Outcome string `json:"outcome"`

	// Error is the error code when the call failed.
	Error string `json:"error,omitempty"`

	// Message is the error message when the call failed.
	Message string `json:"message,omitempty"`

	// Size is set for step calls.
	Size string `json:"size,omitempty"`
}

// Result is the outcome of a scenario execution.
type Result struct {
	// RunID identifies this execution in the run history.
	RunID string `json:"run_id"`

	// Pass is true when every expectation held.
	Pass bool `json:"pass"`

	// Trace holds one event per step, in order.
	Trace []TraceEvent `json:"trace"`

	// Errors contains expectation failures. Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
func NewResult(runID string) *Result {
	return &Result{
		RunID:  runID,
		Pass:   true,
		Trace:  []TraceEvent{},
		Errors: []string{},
	}
}

// AddError adds an expectation failure and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// ErrorCount counts trace events whose call failed.
func (r *Result) ErrorCount() int {
	n := 0
	for _, ev := range r.Trace {
		if ev.Error != "" {
			n++
		}
	}
	return n
}
