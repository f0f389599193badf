// Package dispatch implements binary operators over num.Value.
//
// Operands of built-in kinds (Int, BigInt, Float) are combined by direct
// rules: integer arithmetic stays exact and promotes to BigInt on overflow,
// and any Float operand promotes the pair to Float.
//
// Every other combination goes through coercion. When the left operand is
// built-in and the right is not, the right operand's num.Coercible is asked
// to coerce the left one; a well-formed pair is re-dispatched exactly once.
//
//	1 + x  =>  x.Coerce(1) = Pair(a, b)  =>  a + b
//
// Failures map onto the num error taxonomy:
//
//   - Malformed result: COERCE_SHAPE, "coerce must return [x, y]"
//   - No capability, or it failed: COERCE_UNSUPPORTED,
//     "<inspect(right)> can't be coerced into <kind(left)>"
//   - Relational operators on incomparable operands: COMPARISON
//
// Three-way Compare never fails; it reports num.Unordered instead.
//
// User-defined left operands are never coerced. They handle operators
// themselves through the optional capability interfaces in package num.
package dispatch
