// SPDX-License-Identifier: MIT

package workbook_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/rmns82839-rgb/Matrices/chain"
	"github.com/rmns82839-rgb/Matrices/internal/workbook"
	"github.com/rmns82839-rgb/Matrices/report"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	wb, err := workbook.Load(filepath.Join("testdata", "algebra.yaml"))
	require.NoError(t, err)
	require.Equal(t, "Álgebra Lineal", wb.Header.Subject)
	require.Equal(t, "Ingeniería", wb.Header.Program)
	require.Equal(t, time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC), wb.Header.Date)
	require.Equal(t, language.Spanish, wb.Language)
	require.Equal(t, []string{"A", "B", "C"}, wb.Labels())
	require.Equal(t, [][]float64{{5, 6}, {7, 8}}, wb.Matrices["B"].ToRows())
	require.Equal(t, [][]float64{{1, 0}, {0, 1}}, wb.Matrices["C"].ToRows())
	require.Equal(t, []string{"A+B", "AxB", "A+B-C"}, wb.Exercises)

	r, errs := wb.Build()
	require.Empty(t, errs)
	require.Equal(t, 3, r.Len())
	ex, _ := r.Exercise(3)
	require.Equal(t, [][]float64{{5, 8}, {10, 11}}, ex.Result.ToRows())
	require.Equal(t, "2026-10-17", r.HeaderFields().Date)
}

func TestBuild_CollectsExerciseErrors(t *testing.T) {
	t.Parallel()

	wb, err := workbook.Parse("mixed.yaml", []byte(`
matrices:
  A: [[1, 2]]
  B: [[1], [2]]
exercises: ["A+B", "AxB", "A+Z", "BxA"]
`))
	require.NoError(t, err)
	require.Equal(t, language.Und, wb.Language)

	r, _ := wb.Build()
	require.Equal(t, report.DefaultLanguage, r.Language())

	r, errs := wb.Build(report.WithLanguage(language.English))
	require.Equal(t, language.English, r.Language())
	require.Len(t, errs, 2)

	var ee *workbook.ExerciseError
	require.ErrorAs(t, errs[0], &ee)
	require.Equal(t, 1, ee.Index)
	require.Equal(t, "A+B", ee.Expression)
	require.ErrorIs(t, errs[0], chain.ErrAdditiveMismatch)

	require.ErrorAs(t, errs[1], &ee)
	require.Equal(t, 3, ee.Index)
	require.ErrorIs(t, errs[1], chain.ErrEmptyOperand)

	require.Equal(t, 2, r.Len())
	exs := r.Exercises()
	require.Equal(t, "AxB", exs[0].Label)
	require.Equal(t, "BxA", exs[1].Label)
}

func TestParse_SchemaErrors(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"no exercises":    "matrices: {A: [[1]]}\nexercises: []\n",
		"missing section": "exercises: [A+B]\n",
		"lowercase label": "matrices: {a: [[1]]}\nexercises: [a+a]\n",
		"bad cell":        "matrices: {A: [[1, x]]}\nexercises: [A+A]\n",
		"bad date":        "header: {date: yesterday}\nmatrices: {A: [[1]]}\nexercises: [A+A]\n",
		"unknown field":   "matrices: {A: [[1]]}\nexercises: [A+A]\ncolour: red\n",
		"empty matrix":    "matrices: {A: []}\nexercises: [A+A]\n",
	}
	for name, body := range cases {
		_, err := workbook.Parse(name+".yaml", []byte(body))
		require.ErrorIs(t, err, workbook.ErrSchema, name)
		var se *workbook.SchemaError
		require.ErrorAs(t, err, &se, name)
		require.NotEmpty(t, se.Issues, name)
		require.Equal(t, workbook.CodeSchema, se.Issues[0].Code, name)
	}

	_, err := workbook.Parse("broken.yaml", []byte("matrices: [\n"))
	var se *workbook.SchemaError
	require.ErrorAs(t, err, &se)
	require.Equal(t, workbook.CodeSyntax, se.Issues[0].Code)
}

func TestParse_MatrixErrors(t *testing.T) {
	t.Parallel()

	_, err := workbook.Parse("ragged.yaml", []byte("matrices: {A: [[1, 2], [3]]}\nexercises: [A+A]\n"))
	require.ErrorIs(t, err, workbook.ErrMatrix)

	_, err = workbook.Parse("text.yaml", []byte("matrices: {A: \"  \"}\nexercises: [A+A]\n"))
	require.ErrorIs(t, err, workbook.ErrMatrix)

	_, err = workbook.Parse("lang.yaml", []byte("language: fr\nmatrices: {A: [[1]]}\nexercises: [A+A]\n"))
	require.ErrorIs(t, err, report.ErrUnsupportedLanguage)

	_, err = workbook.Load(filepath.Join("testdata", "missing.yaml"))
	require.Error(t, err)
}

func TestIssue_String(t *testing.T) {
	t.Parallel()

	require.Equal(t, "[W002] line 3: matrices.a: field not allowed",
		workbook.Issue{Field: "matrices.a", Message: "field not allowed", Code: workbook.CodeSchema, Line: 3}.String())
	require.Equal(t, "[W001] workbook: bad", workbook.Issue{Field: "workbook", Message: "bad", Code: workbook.CodeSyntax}.String())
}
