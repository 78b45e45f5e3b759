// SPDX-License-Identifier: MIT

package evaluator

import (
	"fmt"
	"strings"
)

// Operation is the closed set of binary matrix operations.
// The zero value OpInvalid is never accepted by an evaluator.
type Operation int

const (
	// OpInvalid is the zero value; every entry point rejects it.
	OpInvalid Operation = iota
	// Add is element-wise addition (A + B).
	Add
	// Subtract is element-wise subtraction (A - B).
	Subtract
	// Multiply is the matrix product (A x B).
	Multiply
)

// Canonical symbols used in derivations and labels.
const (
	SymbolAdd      = "+"
	SymbolSubtract = "-"
	SymbolMultiply = "x"
)

// Operations lists every valid operation in declaration order.
func Operations() []Operation { return []Operation{Add, Subtract, Multiply} }

// Valid reports whether op is one of Add, Subtract, Multiply.
func (op Operation) Valid() bool { return op >= Add && op <= Multiply }

// IsElementwise reports whether op combines matrices cell by cell.
func (op Operation) IsElementwise() bool { return op == Add || op == Subtract }

// Symbol returns the canonical one-character symbol ("+", "-", "x"), or "?"
// for an invalid operation.
func (op Operation) Symbol() string {
	switch op {
	case Add:
		return SymbolAdd
	case Subtract:
		return SymbolSubtract
	case Multiply:
		return SymbolMultiply
	}

	return "?"
}

// Name returns the English operation name ("Addition", "Subtraction",
// "Multiplication"), or "" for an invalid operation.
func (op Operation) Name() string {
	switch op {
	case Add:
		return "Addition"
	case Subtract:
		return "Subtraction"
	case Multiply:
		return "Multiplication"
	}

	return ""
}

// String implements fmt.Stringer.
func (op Operation) String() string {
	if n := op.Name(); n != "" {
		return n
	}

	return fmt.Sprintf("Operation(%d)", int(op))
}

// ParseOperation maps a symbol to its Operation. Accepted spellings:
// "+", "-", "x", "X", "*" and "×". Surrounding whitespace is ignored.
func ParseOperation(s string) (Operation, error) {
	switch strings.TrimSpace(s) {
	case SymbolAdd:
		return Add, nil
	case SymbolSubtract:
		return Subtract, nil
	case SymbolMultiply, "X", "*", "×":
		return Multiply, nil
	}

	return OpInvalid, evaluatorErrorf("ParseOperation", fmt.Errorf("%q: %w", s, ErrUnknownOperation))
}

// OperationOf maps a single rune to its Operation; ok is false for any other rune.
func OperationOf(r rune) (op Operation, ok bool) {
	switch r {
	case '+':
		return Add, true
	case '-':
		return Subtract, true
	case 'x', 'X', '*', '×':
		return Multiply, true
	}

	return OpInvalid, false
}
