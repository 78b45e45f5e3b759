// SPDX-License-Identifier: MIT

package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/rmns82839-rgb/Matrices/internal/workbook"
	"github.com/rmns82839-rgb/Matrices/report"
)

// ValidationResult is the validate command's JSON output.
type ValidationResult struct {
	Valid     bool              `json:"valid"`
	Issues    []workbook.Issue  `json:"issues,omitempty"`
	Exercises []ExerciseOutcome `json:"exercises,omitempty"`
}

// ExerciseOutcome is the dry-run result of one exercise.
type ExerciseOutcome struct {
	Index      int    `json:"index"`
	Expression string `json:"expression"`
	OK         bool   `json:"ok"`
	Error      string `json:"error,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <workbook.yaml>",
		Short: "Check a workbook without rendering it",
		Long: `Check a workbook against its schema, build every matrix and
evaluate every exercise without rendering a report.

Exits 2 when the file cannot be loaded or breaks the schema, 1 when some
exercise fails to evaluate.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, rootOpts, args[0])
		},
	}

	return cmd
}

func runValidate(cmd *cobra.Command, rootOpts *RootOptions, path string) error {
	w := cmd.OutOrStdout()
	asJSON := rootOpts.format == report.FormatJSON

	wb, err := workbook.Load(path)
	if err != nil {
		var se *workbook.SchemaError
		if errors.As(err, &se) {
			res := ValidationResult{Issues: se.Issues}
			if werr := writeValidation(w, asJSON, res); werr != nil {
				return werr
			}
			return NewExitError(ExitCommandError, fmt.Sprintf("validation failed with %d issue(s)", len(se.Issues)))
		}
		return WrapExitError(ExitCommandError, "failed to load workbook", err)
	}

	_, errs := wb.Build()
	failed := make(map[int]error, len(errs))
	for _, e := range errs {
		var ee *workbook.ExerciseError
		if errors.As(e, &ee) {
			failed[ee.Index] = ee.Err
		}
	}

	res := ValidationResult{Valid: len(errs) == 0}
	for i, expr := range wb.Exercises {
		out := ExerciseOutcome{Index: i + 1, Expression: expr, OK: true}
		if err, ok := failed[i+1]; ok {
			out.OK = false
			out.Error = err.Error()
		}
		res.Exercises = append(res.Exercises, out)
	}
	rootOpts.logger.Debug("workbook validated", "path", path, "exercises", len(wb.Exercises), "failed", len(errs))

	if err := writeValidation(w, asJSON, res); err != nil {
		return err
	}
	if !res.Valid {
		return NewExitError(ExitFailure, fmt.Sprintf("%d exercise(s) failed", len(errs)))
	}

	return nil
}

func writeValidation(w io.Writer, asJSON bool, res ValidationResult) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			return WrapExitError(ExitCommandError, "failed to write result", err)
		}
		return nil
	}

	for _, is := range res.Issues {
		fmt.Fprintln(w, is.String())
	}
	for _, ex := range res.Exercises {
		if ex.OK {
			fmt.Fprintf(w, "ok    %d %s\n", ex.Index, ex.Expression)
			continue
		}
		fmt.Fprintf(w, "FAIL  %d %s: %s\n", ex.Index, ex.Expression, ex.Error)
	}
	if res.Valid {
		fmt.Fprintf(w, "valid: %d exercise(s)\n", len(res.Exercises))
	}

	return nil
}
