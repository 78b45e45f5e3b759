// Package chain evaluates multi-operand matrix expressions such as "A+B-C" or
// "AxBxC" strictly left to right, keeping every intermediate stage.
//
// What & Why:
//
//	A chain of n operands produces n-1 stages. Stage i combines the value
//	accumulated so far with operand i using the operator between them, and
//	carries its own label ("(A+B) - C"), derivation steps and result. There
//	is no operator precedence: "A+BxC" means "(A+B) x C".
//
// Errors:
//
//	Emptiness is checked before shape at each stage. A failing stage aborts
//	the chain; no partial result is returned. *OperandError and
//	*DimensionError name the stage and labels involved, and DimensionError
//	matches matrix.ErrDimensionMismatch as well as its own sentinel.
//
// Usage:
//
//	res, err := chain.EvaluateString("A+B-C", map[string]matrix.Matrix{"A": a, "B": b, "C": c})
//	for _, st := range res.Stages {
//		fmt.Println(st.Label, st.Result)
//	}
package chain
