// Package step enumerates arithmetic sequences: start, start+stride,
// start+2*stride, ... up to an optional limit.
//
// A Spec is validated once, when it is built, so size queries and traversal
// never fail on bad arguments. Each Spec picks one of three element paths:
//
//   - integer: start and stride integral, limit integral or unreachable.
//     Exact big-integer arithmetic; the size has no precision loss.
//   - float: any of start, limit or stride is a Float. Elements are
//     start + i*stride, the last one clamped to the limit, and the size uses
//     an epsilon-corrected floor so accumulated rounding does not drop the
//     final element.
//   - generic: user-defined values, stepped with the dispatcher's + and
//     relational operators.
//
// A zero stride, an absent limit, or an infinite Float limit in the stride's
// direction makes the sequence infinite. Sequences are restartable: every
// call to Values begins a fresh traversal.
package step
