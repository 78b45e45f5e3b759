// SPDX-License-Identifier: MIT

// Package workbook reads YAML workbook files: a report header, named
// matrices and a list of exercise expressions.
//
//	header: {subject: Álgebra, author: Ana, date: 2026-10-17}
//	matrices:
//	  A: [[1, 2], [3, 4]]
//	  B: "5 6\n7 8"
//	exercises: ["A+B", "AxB", "A+B-A"]
//
// Files are checked against an embedded CUE schema before decoding.
package workbook

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"time"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/rmns82839-rgb/Matrices/matrix"
	"github.com/rmns82839-rgb/Matrices/report"
	"github.com/rmns82839-rgb/Matrices/textimport"
)

// ErrMatrix is wrapped when a matrix entry cannot be built.
var ErrMatrix = errors.New("workbook: invalid matrix")

// file is the YAML document layout.
type file struct {
	Header    headerSpec            `yaml:"header"`
	Language  string                `yaml:"language"`
	Matrices  map[string]matrixSpec `yaml:"matrices"`
	Exercises []string              `yaml:"exercises"`
}

type headerSpec struct {
	Subject string `yaml:"subject"`
	Author  string `yaml:"author"`
	Program string `yaml:"program"`
	Campus  string `yaml:"campus"`
	Shift   string `yaml:"shift"`
	Date    string `yaml:"date"`
}

// matrixSpec holds either nested rows or pasted text.
type matrixSpec struct {
	Rows [][]float64
	Text string
}

func (m *matrixSpec) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.ScalarNode {
		return n.Decode(&m.Text)
	}

	return n.Decode(&m.Rows)
}

// Workbook is a decoded, validated workbook file.
type Workbook struct {
	Name      string
	Header    report.Header
	Language  language.Tag // language.Und when the file sets none
	Matrices  map[string]*matrix.Dense
	Exercises []string
}

// ExerciseError reports one exercise that could not be added.
type ExerciseError struct {
	Index      int // 1-based position in the exercises list
	Expression string
	Err        error
}

func (e *ExerciseError) Error() string {
	return fmt.Sprintf("exercise %d (%s): %v", e.Index, e.Expression, e.Err)
}

func (e *ExerciseError) Unwrap() error { return e.Err }

// Load reads and parses the workbook at path.
func Load(path string) (*Workbook, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("workbook: %w", err)
	}

	return Parse(path, data)
}

// Parse validates data against the schema, decodes it and builds every
// matrix. name is used in error messages.
func Parse(name string, data []byte) (*Workbook, error) {
	if err := validateSchema(name, data); err != nil {
		return nil, err
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("workbook: %s: %w", name, err)
	}

	wb := &Workbook{
		Name:      name,
		Matrices:  make(map[string]*matrix.Dense, len(f.Matrices)),
		Exercises: f.Exercises,
		Header: report.Header{
			Subject: f.Header.Subject,
			Author:  f.Header.Author,
			Program: f.Header.Program,
			Campus:  f.Header.Campus,
			Shift:   f.Header.Shift,
		},
	}
	if f.Header.Date != "" {
		d, err := time.Parse(report.DateLayout, f.Header.Date)
		if err != nil {
			return nil, fmt.Errorf("workbook: %s: header.date: %w", name, err)
		}
		wb.Header.Date = d
	}
	if f.Language != "" {
		tag, err := report.ParseLanguage(f.Language)
		if err != nil {
			return nil, fmt.Errorf("workbook: %s: %w", name, err)
		}
		wb.Language = tag
	}

	for label, src := range f.Matrices {
		m, err := src.build()
		if err != nil {
			return nil, fmt.Errorf("workbook: %s: matrix %s: %w: %w", name, label, err, ErrMatrix)
		}
		wb.Matrices[label] = m
	}

	return wb, nil
}

func (m matrixSpec) build() (*matrix.Dense, error) {
	if m.Rows != nil {
		return matrix.FromRows(m.Rows)
	}

	return textimport.Parse(m.Text)
}

// Labels returns the matrix labels in sorted order.
func (wb *Workbook) Labels() []string {
	out := make([]string, 0, len(wb.Matrices))
	for l := range wb.Matrices {
		out = append(out, l)
	}
	sort.Strings(out)

	return out
}

// Named returns the matrices keyed by label for report.Report.Add.
func (wb *Workbook) Named() map[string]matrix.Matrix {
	out := make(map[string]matrix.Matrix, len(wb.Matrices))
	for l, m := range wb.Matrices {
		out[l] = m
	}

	return out
}

// Build creates a report and adds every exercise in order. Exercises that
// fail are skipped and returned as *ExerciseError; the rest keep their
// relative order. opts are applied after the workbook's own header and
// language, so they win.
func (wb *Workbook) Build(opts ...report.Option) (*report.Report, []error) {
	var base []report.Option
	if wb.Language != language.Und {
		base = append(base, report.WithLanguage(wb.Language))
	}
	r, err := report.New(wb.Header, append(base, opts...)...)
	if err != nil {
		return nil, []error{err}
	}

	var errs []error
	named := wb.Named()
	for i, expr := range wb.Exercises {
		if _, err := r.Add(expr, named); err != nil {
			errs = append(errs, &ExerciseError{Index: i + 1, Expression: expr, Err: err})
		}
	}

	return r, errs
}
