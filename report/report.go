// SPDX-License-Identifier: MIT

package report

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/rmns82839-rgb/Matrices/chain"
	"github.com/rmns82839-rgb/Matrices/matrix"
)

const (
	opNew    = "New"
	opAdd    = "Add"
	opRemove = "Remove"
)

// Report is an ordered list of exercises under one header. Numbering is
// owned by the Report: exercises are numbered 1..Len() in insertion order.
//
// A Report is not safe for concurrent mutation.
type Report struct {
	header    Header
	exercises []Exercise
	opts      options
	printer   *message.Printer
}

// New returns an empty report.
func New(header Header, opts ...Option) (*Report, error) {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	p, err := newPrinter(o.lang)
	if err != nil {
		return nil, reportErrorf(opNew, err)
	}

	return &Report{header: header, opts: o, printer: p}, nil
}

// Header returns the report header as set.
func (r *Report) Header() Header { return r.header }

// SetHeader replaces the header.
func (r *Report) SetHeader(h Header) { r.header = h }

// HeaderFields returns the header resolved for display.
func (r *Report) HeaderFields() HeaderFields { return r.header.Resolve(r.opts.clock()) }

// Language returns the report language.
func (r *Report) Language() language.Tag { return r.opts.lang }

// Len returns the number of exercises.
func (r *Report) Len() int { return len(r.exercises) }

// Add evaluates expression against named and appends it as the next
// exercise.
//
// Every label in the expression must name a non-empty matrix in named,
// otherwise the error wraps chain.ErrEmptyOperand. Evaluation errors
// (chain.DimensionError, ...) are returned unchanged in the chain and
// nothing is appended.
//
// A two-operand exercise has a single stage labelled with the expression
// itself ("AxB"); longer ones keep the chain stage labels.
func (r *Report) Add(expression string, named map[string]matrix.Matrix) (*Exercise, error) {
	expr, err := chain.ParseExpression(expression)
	if err != nil {
		return nil, reportErrorf(opAdd, err)
	}
	operands := make([]Operand, expr.Len())
	values := make([]matrix.Matrix, expr.Len())
	for i, l := range expr.Operands {
		m, ok := named[l]
		if !ok || matrix.IsEmpty(m) {
			return nil, reportErrorf(opAdd, fmt.Errorf("matrix %s is required and is undefined or empty: %w", l, chain.ErrEmptyOperand))
		}
		rows, err := matrix.ToRowsOf(m)
		if err != nil {
			return nil, reportErrorf(opAdd, err)
		}
		snapshot, err := matrix.FromRows(rows, matrix.WithNoValidateNaNInf())
		if err != nil {
			return nil, reportErrorf(opAdd, err)
		}
		operands[i] = Operand{Label: l, Value: snapshot}
		values[i] = snapshot
	}

	res, err := chain.Evaluate(expr, values)
	if err != nil {
		return nil, reportErrorf(opAdd, err)
	}
	kind := kindOf(expr)
	if kind != KindChain {
		res.Stages[0].Label = expr.String()
	}

	r.exercises = append(r.exercises, Exercise{
		ID:       r.opts.newID(),
		Number:   len(r.exercises) + 1,
		Kind:     kind,
		Name:     r.printer.Sprintf(kind.messageKey()),
		Label:    res.Label,
		Operands: operands,
		Stages:   res.Stages,
		Result:   res.Value,
		printer:  r.printer,
	})
	ex := r.exercises[len(r.exercises)-1]

	return &ex, nil
}

// Remove deletes exercise number n and renumbers the rest 1..Len().
func (r *Report) Remove(n int) error {
	if n < 1 || n > len(r.exercises) {
		return reportErrorf(opRemove, fmt.Errorf("exercise %d of %d: %w", n, len(r.exercises), ErrNoSuchExercise))
	}
	r.exercises = append(r.exercises[:n-1], r.exercises[n:]...)
	for i := range r.exercises {
		r.exercises[i].Number = i + 1
	}

	return nil
}

// Clear removes every exercise.
func (r *Report) Clear() { r.exercises = nil }

// Exercises returns a copy of the exercise list.
func (r *Report) Exercises() []Exercise {
	out := make([]Exercise, len(r.exercises))
	for i, ex := range r.exercises {
		ex.Operands = append([]Operand(nil), ex.Operands...)
		ex.Stages = append([]chain.Stage(nil), ex.Stages...)
		out[i] = ex
	}

	return out
}

// Exercise returns exercise number n.
func (r *Report) Exercise(n int) (Exercise, bool) {
	if n < 1 || n > len(r.exercises) {
		return Exercise{}, false
	}

	return r.Exercises()[n-1], true
}

// Printable reports whether the report has anything to print.
func (r *Report) Printable() error {
	if len(r.exercises) == 0 {
		return ErrNoExercises
	}

	return nil
}

// text returns a localized message.
func (r *Report) text(key string, args ...any) string { return r.printer.Sprintf(key, args...) }
