// SPDX-License-Identifier: MIT

package report

import (
	"github.com/google/uuid"
	"golang.org/x/text/message"

	"github.com/rmns82839-rgb/Matrices/chain"
	"github.com/rmns82839-rgb/Matrices/evaluator"
	"github.com/rmns82839-rgb/Matrices/matrix"
)

// Kind classifies an exercise for its display name.
type Kind int

const (
	KindAddition Kind = iota + 1
	KindSubtraction
	KindMultiplication
	// KindChain is any exercise with three or more operands.
	KindChain
)

func kindOf(expr chain.Expression) Kind {
	if expr.Len() > chain.MinOperands {
		return KindChain
	}
	switch expr.Ops[0] {
	case evaluator.Add:
		return KindAddition
	case evaluator.Subtract:
		return KindSubtraction
	}

	return KindMultiplication
}

func (k Kind) messageKey() string {
	switch k {
	case KindAddition:
		return keyOpAddition
	case KindSubtraction:
		return keyOpSubtraction
	case KindMultiplication:
		return keyOpMultiplication
	}

	return keyOpChain
}

// Operand is one named input of an exercise.
type Operand struct {
	Label string
	Value *matrix.Dense
}

// Exercise is one evaluated expression in a report.
type Exercise struct {
	ID uuid.UUID
	// Number is the 1-based position in the report; Remove renumbers.
	Number int
	Kind   Kind
	// Name is the localized operation name ("Suma", "Cadena de Operaciones").
	Name string
	// Label is the compact expression ("A+B-C").
	Label string
	// Operands lists every operand position, repeats included.
	Operands []Operand
	Stages   []chain.Stage
	Result   *matrix.Dense

	printer *message.Printer
}

// Title renders "Exercise n: <name> (<label> = RxC)" in the report language.
func (e Exercise) Title() string {
	return e.printer.Sprintf(keyExerciseTitle, e.Number, e.Name, e.Label, e.Result.Rows(), e.Result.Cols())
}
