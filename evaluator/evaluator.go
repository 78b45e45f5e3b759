// SPDX-License-Identifier: MIT

package evaluator

import (
	"fmt"

	"github.com/rmns82839-rgb/Matrices/matrix"
)

// Operation tags for error wrapping.
const (
	opElementwise = "Elementwise"
	opProduct     = "Product"
	opApply       = "Apply"
)

// Result is the outcome of one binary operation: the numeric matrix and a
// parallel matrix of derivations.
type Result struct {
	Op    Operation
	Value *matrix.Dense
	Steps StepMatrix
}

// Elementwise computes A + B or A - B cell by cell and records "a <sym> b"
// per cell with the operands as typed.
//
// Implementation:
//   - Stage 1: reject non-additive op; compute the value via matrix.Add/Sub,
//     which validates nil and shape.
//   - Stage 2: walk i→j and build one single-Term Step per cell.
//
// Errors:
//   - ErrUnknownOperation, matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Elementwise(a, b matrix.Matrix, op Operation) (*Result, error) {
	var (
		value *matrix.Dense
		err   error
	)
	switch op {
	case Add:
		value, err = matrix.Add(a, b)
	case Subtract:
		value, err = matrix.Sub(a, b)
	default:
		return nil, evaluatorErrorf(opElementwise, fmt.Errorf("%v: %w", op, ErrUnknownOperation))
	}
	if err != nil {
		return nil, evaluatorErrorf(opElementwise, err)
	}

	ar, err := matrix.ToRowsOf(a)
	if err != nil {
		return nil, evaluatorErrorf(opElementwise, err)
	}
	br, err := matrix.ToRowsOf(b)
	if err != nil {
		return nil, evaluatorErrorf(opElementwise, err)
	}

	rows, cols := value.Shape()
	steps := newStepMatrix(rows, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			s := Step{Op: op, Terms: []Term{{Left: ar[i][j], Right: br[i][j]}}}
			s.Text = s.Format(RawNumbers)
			steps[i][j] = s
		}
	}

	return &Result{Op: op, Value: value, Steps: steps}, nil
}

// Product computes the matrix product A x B and records, per output cell, the
// summation "(a_i0 x b_0j) + (a_i1 x b_1j) + ..." with operands rendered by
// TermNumbers.
//
// Implementation:
//   - Stage 1: compute the value via matrix.Mul (validates a.Cols == b.Rows).
//   - Stage 2: for each (i,j) collect Terms for k = 0..n-1 in order.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*n*c) for the term lists.
func Product(a, b matrix.Matrix) (*Result, error) {
	value, err := matrix.Mul(a, b)
	if err != nil {
		return nil, evaluatorErrorf(opProduct, err)
	}

	ar, err := matrix.ToRowsOf(a)
	if err != nil {
		return nil, evaluatorErrorf(opProduct, err)
	}
	br, err := matrix.ToRowsOf(b)
	if err != nil {
		return nil, evaluatorErrorf(opProduct, err)
	}

	rows, cols := value.Shape()
	inner := len(br)
	steps := newStepMatrix(rows, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			terms := make([]Term, inner)
			for k := 0; k < inner; k++ {
				terms[k] = Term{Left: ar[i][k], Right: br[k][j]}
			}
			s := Step{Op: Multiply, Terms: terms}
			s.Text = s.Format(TermNumbers)
			steps[i][j] = s
		}
	}

	return &Result{Op: Multiply, Value: value, Steps: steps}, nil
}

// Apply dispatches op to Elementwise or Product. Every valid Operation maps
// to exactly one evaluator.
//
// Errors:
//   - ErrUnknownOperation for OpInvalid or out-of-range values, plus the
//     errors of the selected evaluator.
func Apply(op Operation, a, b matrix.Matrix) (*Result, error) {
	switch op {
	case Add, Subtract:
		return Elementwise(a, b, op)
	case Multiply:
		return Product(a, b)
	}

	return nil, evaluatorErrorf(opApply, fmt.Errorf("%v: %w", op, ErrUnknownOperation))
}
