// SPDX-License-Identifier: MIT

package report

import (
	"strconv"

	"github.com/rmns82839-rgb/Matrices/matrix"
)

// document is the render-ready form of a Report shared by the text and HTML
// renderers. All numbers are already formatted.
type document struct {
	Title       string
	Placeholder string
	Labels      headerLabels
	Header      HeaderFields
	Exercises   []exerciseView
}

type headerLabels struct {
	Subject, Program, Author, Campus, Shift, Date string
}

type exerciseView struct {
	Number       int
	Title        string
	Operands     []gridView
	StepsHeading string
	Stages       []gridView
	ResultTitle  string
	Result       gridView
}

type gridView struct {
	Heading string
	Rows    [][]cellView
}

type cellView struct {
	// Text is the step derivation; empty for plain value cells.
	Text  string
	Value string
	Color int
}

// Class returns the HTML color class of the cell.
func (c cellView) Class() string { return colorClassPrefix + strconv.Itoa(c.Color) }

func (r *Report) document() document {
	d := document{
		Title:       r.text(keyReportTitle),
		Placeholder: r.text(keyReportPlaceholder),
		Labels: headerLabels{
			Subject: r.text(keyHeaderSubject),
			Program: r.text(keyHeaderProgram),
			Author:  r.text(keyHeaderAuthor),
			Campus:  r.text(keyHeaderCampus),
			Shift:   r.text(keyHeaderShift),
			Date:    r.text(keyHeaderDate),
		},
		Header:    r.HeaderFields(),
		Exercises: make([]exerciseView, 0, len(r.exercises)),
	}
	for _, ex := range r.exercises {
		d.Exercises = append(d.Exercises, r.exerciseView(ex))
	}

	return d
}

func (r *Report) exerciseView(ex Exercise) exerciseView {
	finalCols := ex.Result.Cols()
	v := exerciseView{
		Number:       ex.Number,
		Title:        ex.Title(),
		StepsHeading: r.text(keyExerciseSteps),
		ResultTitle:  r.text(keyExerciseResult),
		Result:       valueGrid("", ex.Result, matrix.ResultDecimals, finalCols),
	}
	for _, op := range ex.Operands {
		// inputs share the final result's color layout
		v.Operands = append(v.Operands, valueGrid(r.text(keyExerciseMatrix, op.Label), op.Value, matrix.TermDecimals, finalCols))
	}
	for _, st := range ex.Stages {
		cols := st.Result.Cols()
		g := valueGrid(r.text(keyExerciseStage, st.Index, st.Label), st.Result, matrix.ResultDecimals, cols)
		for i := range g.Rows {
			for j := range g.Rows[i] {
				g.Rows[i][j].Text = st.Steps[i][j].Text
			}
		}
		v.Stages = append(v.Stages, g)
	}

	return v
}

func valueGrid(heading string, m *matrix.Dense, decimals, colorCols int) gridView {
	rows := m.ToRows()
	g := gridView{Heading: heading, Rows: make([][]cellView, len(rows))}
	for i, row := range rows {
		g.Rows[i] = make([]cellView, len(row))
		for j, v := range row {
			g.Rows[i][j] = cellView{Value: matrix.FormatFixed(v, decimals), Color: ColorIndex(i, j, colorCols)}
		}
	}

	return g
}
