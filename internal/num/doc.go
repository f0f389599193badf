// Package num provides the numeric value model shared by the dispatcher and
// the step sequencer.
//
// This package contains the value types, the operator and ordering
// enumerations, the coercion capability, and the error taxonomy. Other
// internal packages import num; num imports only textenc. This keeps the
// value model the foundational layer with no circular dependencies.
//
// Key design constraints:
//   - Value is sealed: built-in kinds are a closed set and everything else
//     enters through *User, which carries an arbitrary implementation.
//   - Values are immutable. BigInt never exposes its internal *big.Int.
//   - Integer results are normalized: a BigInt that fits in int64 is an Int.
//   - Capabilities of user kinds are optional interfaces discovered with a
//     type assertion, the same way io.WriterTo is discovered by io.Copy.
package num
