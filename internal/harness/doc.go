// Package harness runs YAML conformance scenarios against the coercion
// dispatcher and the step sequencer.
//
// # Scenario Format
//
//	name: coerce_errors
//	description: "Coercion failures surface as typed errors"
//	encoding: US-ASCII
//	steps:
//	  - apply: {op: "+", left: "1", right: ":foo"}
//	    expect: {error: COERCE_UNSUPPORTED, message: ":foo can't be coerced into Integer"}
//	  - compare: {left: "1", right: "#nil_coerce"}
//	    expect: {ordering: unordered}
//	  - unary: {fn: floor, value: "#to_f_1_5"}
//	    expect: {value: "1"}
//	  - binary: {fn: divmod, left: "11", right: "3.5"}
//	    expect: {value: "[3, 0.5]"}
//	  - step: {start: "1", args: ["10"], options: {by: "2"}}
//	    expect: {size: "5", values: ["1", "3", "5", "7", "9"]}
//
// Operands are literals (see num.Parse) or fixture kinds written "#name"
// or "#name(arg)"; FixtureNames lists them. Unknown YAML fields are
// rejected.
//
// # Calls
//
//   - apply: arithmetic and bitwise operators
//   - compare: three-way comparison, never fails
//   - relational: < <= > >=
//   - binary: coerce, equal, divmod, div, modulo, remainder
//   - unary: neg, abs, zero, nonzero, positive, negative, floor, ceil,
//     round, truncate, to_int, to_f, integer, real
//   - step: start, positional (limit, stride) and to/by options
//
// # Expectations
//
// value, ordering, bool, error (code), message (substring), size (decimal
// or "infinite"), values and take. A step without an expectation must not
// fail.
//
// # Deterministic Testing
//
// Each run uses a fresh logical clock, so the trace of a scenario is
// identical across runs and can be compared against golden files. Run ids
// are UUIDv7 by default; tests substitute testutil.RunIDs.
package harness
