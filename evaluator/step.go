// SPDX-License-Identifier: MIT

package evaluator

import (
	"strings"

	"github.com/rmns82839-rgb/Matrices/matrix"
)

// Term is one scalar operand pair of a derivation: Left <op> Right.
// An element-wise step has exactly one Term; a product step has one Term per
// summation index k, in ascending k.
type Term struct {
	Left  float64 `json:"left"`
	Right float64 `json:"right"`
}

// Step describes how one result cell was produced.
//
// Text is the rendered derivation ("3 + 4", "(2 x 5) + (1 x 6)"). Terms keeps
// the operand pairs so callers can re-render with another number format
// through Format without parsing Text.
type Step struct {
	Op    Operation `json:"-"`
	Terms []Term    `json:"terms"`
	Text  string    `json:"text"`
}

// NumberFormat renders a single operand inside a derivation.
type NumberFormat func(float64) string

// Term separators for product derivations.
const (
	productTermSep = " + "
	termOpen       = "("
	termClose      = ")"
)

// RawNumbers renders operands as typed (shortest round-trip form).
func RawNumbers(v float64) string { return matrix.FormatRaw(v) }

// TermNumbers renders operands with matrix.TermDecimals decimals, trailing zeros trimmed.
func TermNumbers(v float64) string { return matrix.FormatFixed(v, matrix.TermDecimals) }

// Format renders the step with the given number format.
//
// Layout:
//   - element-wise: "<l> <sym> <r>"
//   - product:      "(<l0> x <r0>) + (<l1> x <r1>) + ..." with no trailing separator
func (s Step) Format(num NumberFormat) string {
	var b strings.Builder
	if s.Op.IsElementwise() {
		for _, t := range s.Terms {
			b.WriteString(num(t.Left))
			b.WriteString(" ")
			b.WriteString(s.Op.Symbol())
			b.WriteString(" ")
			b.WriteString(num(t.Right))
		}

		return b.String()
	}

	for k, t := range s.Terms {
		if k > 0 {
			b.WriteString(productTermSep)
		}
		b.WriteString(termOpen)
		b.WriteString(num(t.Left))
		b.WriteString(" ")
		b.WriteString(SymbolMultiply)
		b.WriteString(" ")
		b.WriteString(num(t.Right))
		b.WriteString(termClose)
	}

	return b.String()
}

// StepMatrix holds one Step per result cell, shaped like the result.
type StepMatrix [][]Step

// Rows returns the number of rows.
func (sm StepMatrix) Rows() int { return len(sm) }

// Cols returns the number of columns (0 for an empty StepMatrix).
func (sm StepMatrix) Cols() int {
	if len(sm) == 0 {
		return 0
	}

	return len(sm[0])
}

// Texts returns the rendered derivations as nested strings.
func (sm StepMatrix) Texts() [][]string {
	out := make([][]string, len(sm))
	for i, row := range sm {
		out[i] = make([]string, len(row))
		for j, s := range row {
			out[i][j] = s.Text
		}
	}

	return out
}

// Reformat returns a copy of the derivations rendered with num.
func (sm StepMatrix) Reformat(num NumberFormat) [][]string {
	out := make([][]string, len(sm))
	for i, row := range sm {
		out[i] = make([]string, len(row))
		for j, s := range row {
			out[i][j] = s.Format(num)
		}
	}

	return out
}

func newStepMatrix(rows, cols int) StepMatrix {
	sm := make(StepMatrix, rows)
	for i := range sm {
		sm[i] = make([]Step, cols)
	}

	return sm
}
