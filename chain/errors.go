// SPDX-License-Identifier: MIT

package chain

import (
	"errors"
	"fmt"

	"github.com/rmns82839-rgb/Matrices/matrix"
)

// Sentinel errors. Typed errors below wrap them for errors.Is matching.
var (
	// ErrSyntax is returned by ParseExpression for malformed expressions.
	ErrSyntax = errors.New("chain: syntax error")
	// ErrOperandCount is returned when the operand list does not match the expression.
	ErrOperandCount = errors.New("chain: operand count mismatch")
	// ErrEmptyOperand marks a missing, nil or 0x0 operand at some stage.
	ErrEmptyOperand = errors.New("chain: empty operand")
	// ErrAdditiveMismatch marks a shape mismatch in an Add/Subtract stage.
	ErrAdditiveMismatch = errors.New("chain: additive dimension mismatch")
	// ErrMultiplicativeMismatch marks cols(left) != rows(right) in a Multiply stage.
	ErrMultiplicativeMismatch = errors.New("chain: multiplicative dimension mismatch")
)

// chainErrorf wraps err with an operation tag, preserving it for errors.Is.
func chainErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// SyntaxError reports the byte offset of a parse failure. It wraps ErrSyntax.
type SyntaxError struct {
	Offset int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%v at offset %d: %s", ErrSyntax, e.Offset, e.Msg)
}

func (e *SyntaxError) Unwrap() error { return ErrSyntax }

// OperandError reports an empty operand at a stage. Left is the label of the
// accumulated value (or the first operand), Right the label of the incoming one.
type OperandError struct {
	Stage int
	Left  string
	Right string
}

func (e *OperandError) Error() string {
	return fmt.Sprintf("%v at stage %d: %s and %s must both be non-empty", ErrEmptyOperand, e.Stage, e.Left, e.Right)
}

func (e *OperandError) Unwrap() error { return ErrEmptyOperand }

// DimensionKind distinguishes the two shape rules a stage can violate.
type DimensionKind int

const (
	// Additive stages need identical shapes.
	Additive DimensionKind = iota + 1
	// Multiplicative stages need cols(left) == rows(right).
	Multiplicative
)

func (k DimensionKind) String() string {
	switch k {
	case Additive:
		return "additive"
	case Multiplicative:
		return "multiplicative"
	}

	return fmt.Sprintf("DimensionKind(%d)", int(k))
}

// DimensionError reports a shape violation at a stage. It matches both its
// kind sentinel and matrix.ErrDimensionMismatch.
type DimensionError struct {
	Kind  DimensionKind
	Stage int
	Label string // label of the incoming operand

	LeftRows, LeftCols   int
	RightRows, RightCols int
}

// Expected returns the row count the incoming operand needed: the left
// column count for Multiplicative, the left row count for Additive.
func (e *DimensionError) Expected() int {
	if e.Kind == Multiplicative {
		return e.LeftCols
	}

	return e.LeftRows
}

// Actual returns the row count the incoming operand had.
func (e *DimensionError) Actual() int { return e.RightRows }

func (e *DimensionError) Error() string {
	if e.Kind == Multiplicative {
		return fmt.Sprintf("%v at stage %d (%s): left has %d columns, %s has %d rows",
			e.sentinel(), e.Stage, e.Label, e.LeftCols, e.Label, e.RightRows)
	}

	return fmt.Sprintf("%v at stage %d (%s): left is %dx%d, %s is %dx%d",
		e.sentinel(), e.Stage, e.Label, e.LeftRows, e.LeftCols, e.Label, e.RightRows, e.RightCols)
}

func (e *DimensionError) sentinel() error {
	if e.Kind == Multiplicative {
		return ErrMultiplicativeMismatch
	}

	return ErrAdditiveMismatch
}

func (e *DimensionError) Unwrap() []error {
	return []error{e.sentinel(), matrix.ErrDimensionMismatch}
}
