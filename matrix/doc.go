// Package matrix provides the dense float64 matrix used by the step-by-step
// evaluators.
//
// The matrix package provides:
//
//   - Dense, a row-major rectangular matrix with bounds-checked At/Set.
//   - FromRows / ToRows to cross the boundary with nested [][]float64 input
//     (form fields, pasted text, workbook files). FromRows is where empty and
//     ragged input is rejected.
//   - Add, Sub and Mul kernels with strict shape validation.
//   - FormatFixed / FormatRaw, the number renderings used in derivation strings
//     and reports.
//   - A numeric policy (NaN/Inf rejection, epsilon) configured with Option.
//
// Quick example:
//
//	a, _ := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
//	b, _ := matrix.FromRows([][]float64{{5, 6}, {7, 8}})
//	c, _ := matrix.Mul(a, b) // [[19, 22], [43, 50]]
//
// All errors are package sentinels (see errors.go) wrapped with an operation
// tag; match them with errors.Is.
package matrix
