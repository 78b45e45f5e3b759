// SPDX-License-Identifier: MIT

package chain

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rmns82839-rgb/Matrices/evaluator"
)

// MinOperands is the smallest operand count an Expression may hold.
const MinOperands = 2

// Expression is an ordered operand/operator sequence evaluated strictly left
// to right. Invariant: len(Ops) == len(Operands)-1 and len(Operands) >= 2.
type Expression struct {
	Operands []string
	Ops      []evaluator.Operation
}

// NewExpression builds an Expression from already tokenized parts and checks
// its invariants.
func NewExpression(operands []string, ops []evaluator.Operation) (Expression, error) {
	e := Expression{Operands: append([]string(nil), operands...), Ops: append([]evaluator.Operation(nil), ops...)}
	if err := e.Validate(); err != nil {
		return Expression{}, err
	}

	return e, nil
}

// Validate checks the operand/operator invariants.
func (e Expression) Validate() error {
	if len(e.Operands) < MinOperands {
		return chainErrorf("Validate", fmt.Errorf("%d operands, want at least %d: %w", len(e.Operands), MinOperands, ErrSyntax))
	}
	if len(e.Ops) != len(e.Operands)-1 {
		return chainErrorf("Validate", fmt.Errorf("%d operators for %d operands: %w", len(e.Ops), len(e.Operands), ErrSyntax))
	}
	for i, l := range e.Operands {
		if !validLabel(l) {
			return chainErrorf("Validate", fmt.Errorf("operand %d: invalid label %q: %w", i, l, ErrSyntax))
		}
	}
	for i, op := range e.Ops {
		if !op.Valid() {
			return chainErrorf("Validate", fmt.Errorf("operator %d: %w", i, evaluator.ErrUnknownOperation))
		}
	}

	return nil
}

// Len returns the number of operands.
func (e Expression) Len() int { return len(e.Operands) }

// String returns the compact label: operands joined by their symbols with no
// spaces, e.g. "A+B-C" or "AxBxC".
func (e Expression) String() string {
	var b strings.Builder
	for i, l := range e.Operands {
		if i > 0 && i-1 < len(e.Ops) {
			b.WriteString(e.Ops[i-1].Symbol())
		}
		b.WriteString(l)
	}

	return b.String()
}

// Labels returns the distinct operand labels in first-appearance order.
func (e Expression) Labels() []string {
	seen := make(map[string]struct{}, len(e.Operands))
	out := make([]string, 0, len(e.Operands))
	for _, l := range e.Operands {
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}

	return out
}

// stageLabel renders the label of stage i (1-based operand index): the
// accumulated prefix in parentheses, then the operator and the new operand.
// Additive operators inside the prefix are written without spaces, products
// with spaces: "(A) + B", "(A+B) - C", "(A x B) x C", "(A+B) x C".
func (e Expression) stageLabel(i int) string {
	var b strings.Builder
	b.WriteString("(")
	b.WriteString(e.Operands[0])
	for k := 1; k < i; k++ {
		op := e.Ops[k-1]
		if op.IsElementwise() {
			b.WriteString(op.Symbol())
		} else {
			b.WriteString(" " + op.Symbol() + " ")
		}
		b.WriteString(e.Operands[k])
	}
	b.WriteString(") ")
	b.WriteString(e.Ops[i-1].Symbol())
	b.WriteString(" ")
	b.WriteString(e.Operands[i])

	return b.String()
}

// ParseExpression tokenizes s into an Expression.
//
// Grammar:
//   - operand: an upper-case label [A-Z][A-Z0-9_]*
//   - operator: + - x X * ×
//   - whitespace anywhere is ignored
//
// Operands and operators must alternate, starting and ending with an operand.
// Labels are scanned greedily, so "AXB" is the single label AXB while "AxB"
// and "A X B" are products.
//
// Errors: *SyntaxError (wraps ErrSyntax) carrying the byte offset.
func ParseExpression(s string) (Expression, error) {
	var (
		e          Expression
		wantLabel  = true
		lastOffset int
	)
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if unicode.IsSpace(r) {
			i += size
			continue
		}
		lastOffset = i
		if wantLabel {
			if !isLabelStart(r) {
				return Expression{}, &SyntaxError{Offset: i, Msg: fmt.Sprintf("expected operand, found %q", r)}
			}
			j := i + size
			for j < len(s) {
				rr, sz := utf8.DecodeRuneInString(s[j:])
				if !isLabelPart(rr) {
					break
				}
				j += sz
			}
			e.Operands = append(e.Operands, s[i:j])
			wantLabel = false
			i = j
			continue
		}

		op, ok := evaluator.OperationOf(r)
		if !ok {
			return Expression{}, &SyntaxError{Offset: i, Msg: fmt.Sprintf("expected operator, found %q", r)}
		}
		e.Ops = append(e.Ops, op)
		wantLabel = true
		i += size
	}

	switch {
	case len(e.Operands) == 0:
		return Expression{}, &SyntaxError{Offset: 0, Msg: "empty expression"}
	case wantLabel:
		return Expression{}, &SyntaxError{Offset: lastOffset, Msg: "expression ends with an operator"}
	case len(e.Operands) < MinOperands:
		return Expression{}, &SyntaxError{Offset: len(s), Msg: fmt.Sprintf("need at least %d operands", MinOperands)}
	}

	return e, nil
}

// MustParseExpression is ParseExpression that panics on error.
func MustParseExpression(s string) Expression {
	e, err := ParseExpression(s)
	if err != nil {
		panic(err)
	}

	return e
}

func isLabelStart(r rune) bool { return r >= 'A' && r <= 'Z' }

func isLabelPart(r rune) bool {
	return isLabelStart(r) || (r >= '0' && r <= '9') || r == '_'
}

func validLabel(l string) bool {
	if l == "" || !isLabelStart(rune(l[0])) {
		return false
	}
	for _, r := range l[1:] {
		if !isLabelPart(r) {
			return false
		}
	}

	return true
}
