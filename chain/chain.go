// SPDX-License-Identifier: MIT

package chain

import (
	"errors"
	"fmt"

	"github.com/rmns82839-rgb/Matrices/evaluator"
	"github.com/rmns82839-rgb/Matrices/matrix"
)

const (
	opEvaluate       = "Evaluate"
	opEvaluateNamed  = "EvaluateNamed"
	opEvaluateString = "EvaluateString"
)

// Stage is one binary step of a chain: the accumulated value so far combined
// with the next operand.
type Stage struct {
	// Index is the 1-based stage number.
	Index int
	// Label renders the step, e.g. "(A+B) - C".
	Label string
	Op    evaluator.Operation
	// Left is the label of the accumulated prefix, Right the incoming operand.
	Left  string
	Right string
	Steps evaluator.StepMatrix
	// Result is the accumulated value after this stage.
	Result *matrix.Dense
}

// Result is a fully evaluated chain. Value equals the last stage's Result.
type Result struct {
	Value  *matrix.Dense
	Stages []Stage
	Label  string
}

// Evaluate folds expr over operands left to right: ((o0 op1 o1) op2 o2) ...
// with no precedence between operators.
//
// Implementation:
//   - Stage 1: check len(operands) == expr.Len() and expr invariants.
//   - Stage 2: for i = 1..n-1 check emptiness then shape, apply Ops[i-1]
//     through evaluator.Apply and record a Stage.
//
// Any failure aborts the whole chain; no partial Result is returned and no
// later stage is attempted.
//
// Errors:
//   - ErrOperandCount, ErrSyntax (invalid expr).
//   - *OperandError (ErrEmptyOperand).
//   - *DimensionError (ErrAdditiveMismatch or ErrMultiplicativeMismatch, and
//     matrix.ErrDimensionMismatch).
//
// Complexity: sum of the per-stage evaluator costs.
func Evaluate(expr Expression, operands []matrix.Matrix) (*Result, error) {
	if err := expr.Validate(); err != nil {
		return nil, chainErrorf(opEvaluate, err)
	}
	if len(operands) != expr.Len() {
		return nil, chainErrorf(opEvaluate, fmt.Errorf("%d matrices for %d operands: %w", len(operands), expr.Len(), ErrOperandCount))
	}

	var (
		current   matrix.Matrix = operands[0]
		leftLabel               = expr.Operands[0]
		stages                  = make([]Stage, 0, expr.Len()-1)
	)
	for i := 1; i < expr.Len(); i++ {
		next, op := operands[i], expr.Ops[i-1]
		if matrix.IsEmpty(current) || matrix.IsEmpty(next) {
			return nil, chainErrorf(opEvaluate, &OperandError{Stage: i, Left: leftLabel, Right: expr.Operands[i]})
		}
		if err := checkShapes(i, expr.Operands[i], op, current, next); err != nil {
			return nil, chainErrorf(opEvaluate, err)
		}

		res, err := evaluator.Apply(op, current, next)
		if err != nil {
			return nil, chainErrorf(opEvaluate, fmt.Errorf("stage %d: %w", i, err))
		}
		stages = append(stages, Stage{
			Index:  i,
			Label:  expr.stageLabel(i),
			Op:     op,
			Left:   leftLabel,
			Right:  expr.Operands[i],
			Steps:  res.Steps,
			Result: res.Value,
		})
		current = res.Value
		leftLabel = prefixLabel(expr, i)
	}

	return &Result{Value: stages[len(stages)-1].Result, Stages: stages, Label: expr.String()}, nil
}

// EvaluateNamed resolves each operand label in named and calls Evaluate.
// Labels may repeat ("A+A"). A label missing from named is reported as an
// *OperandError at the stage that first needs it.
func EvaluateNamed(expr Expression, named map[string]matrix.Matrix) (*Result, error) {
	if err := expr.Validate(); err != nil {
		return nil, chainErrorf(opEvaluateNamed, err)
	}
	operands := make([]matrix.Matrix, expr.Len())
	for i, l := range expr.Operands {
		m, ok := named[l]
		if !ok || matrix.IsEmpty(m) {
			stage := max(i, 1)

			return nil, chainErrorf(opEvaluateNamed, &OperandError{
				Stage: stage,
				Left:  prefixLabel(expr, stage-1),
				Right: expr.Operands[stage],
			})
		}
		operands[i] = m
	}

	return Evaluate(expr, operands)
}

// EvaluateString parses s and evaluates it against named.
func EvaluateString(s string, named map[string]matrix.Matrix) (*Result, error) {
	expr, err := ParseExpression(s)
	if err != nil {
		return nil, chainErrorf(opEvaluateString, err)
	}

	return EvaluateNamed(expr, named)
}

// IsDimensionError reports whether err carries a *DimensionError and returns it.
func IsDimensionError(err error) (*DimensionError, bool) {
	var de *DimensionError
	if errors.As(err, &de) {
		return de, true
	}

	return nil, false
}

func checkShapes(stage int, label string, op evaluator.Operation, left, right matrix.Matrix) error {
	de := &DimensionError{
		Stage:     stage,
		Label:     label,
		LeftRows:  left.Rows(),
		LeftCols:  left.Cols(),
		RightRows: right.Rows(),
		RightCols: right.Cols(),
	}
	switch {
	case op.IsElementwise():
		if de.LeftRows != de.RightRows || de.LeftCols != de.RightCols {
			de.Kind = Additive
			return de
		}
	case op == evaluator.Multiply:
		if de.LeftCols != de.RightRows {
			de.Kind = Multiplicative
			return de
		}
	}

	return nil
}

// prefixLabel returns the compact label of operands[0..i], e.g. "A+B".
func prefixLabel(expr Expression, i int) string {
	return Expression{Operands: expr.Operands[:i+1], Ops: expr.Ops[:i]}.String()
}
