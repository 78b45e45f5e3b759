// Package evaluator computes a single binary matrix operation together with a
// human-readable derivation of every result cell.
//
// What & Why:
//
//	A student checking homework needs more than the answer: for A + B each
//	cell shows "3 + 4", for A x B each cell shows the dot product that
//	produced it, "(2 x 5) + (1 x 6)". Elementwise and Product return both
//	the numeric matrix and a StepMatrix of those derivations.
//
// Operations form a closed set (Add, Subtract, Multiply); Apply maps each
// of them to its evaluator, Multiply to Product. Element-wise derivations
// print operands as typed; product derivations print them with two decimals,
// trailing zeros trimmed. Each Step also keeps its operand pairs (Terms) so a
// caller can re-render with a different number format.
//
// Usage:
//
//	res, err := evaluator.Apply(evaluator.Multiply, a, b)
//	if err != nil {
//		// errors.Is(err, matrix.ErrDimensionMismatch)
//	}
//	fmt.Println(res.Steps[0][0].Text) // "(1 x 5) + (2 x 7)"
//
// All functions are pure: inputs are never mutated and nothing is shared
// between calls.
package evaluator
