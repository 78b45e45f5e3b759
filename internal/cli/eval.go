// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rmns82839-rgb/Matrices/matrix"
	"github.com/rmns82839-rgb/Matrices/report"
	"github.com/rmns82839-rgb/Matrices/textimport"
)

// EvalOptions holds flags for the eval command.
type EvalOptions struct {
	Matrices []string
	Output   string
}

// NewEvalCommand creates the eval command.
func NewEvalCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EvalOptions{}

	cmd := &cobra.Command{
		Use:   "eval <expression>",
		Short: "Evaluate one expression and print its report",
		Long: `Evaluate one expression such as A+B, AxB or A+B-C and print a
one-exercise report with every intermediate stage.

Matrices are given as LABEL=TEXT, rows separated by ';' or newlines and
cells by spaces or commas:

  matrices eval "AxB" -m A="1 2; 3 4" -m B="5 6; 7 8"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(cmd, rootOpts, opts, args[0])
		},
	}

	cmd.Flags().StringArrayVarP(&opts.Matrices, "matrix", "m", nil, "matrix as LABEL=TEXT (repeatable)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "write the report to a file instead of stdout")

	return cmd
}

func runEval(cmd *cobra.Command, rootOpts *RootOptions, opts *EvalOptions, expression string) error {
	log := rootOpts.logger
	named, err := parseMatrixFlags(opts.Matrices)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid --matrix", err)
	}

	ropts, err := rootOpts.reportOptions()
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid options", err)
	}
	r, err := report.New(rootOpts.Config.ReportHeader(), ropts...)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to create report", err)
	}

	log.Debug("evaluating", "expression", expression, "matrices", len(named))
	ex, err := r.Add(expression, named)
	if err != nil {
		return WrapExitError(ExitFailure, "evaluation failed", err)
	}
	log.Info("exercise evaluated", "label", ex.Label, "stages", len(ex.Stages), "rows", ex.Result.Rows(), "cols", ex.Result.Cols())

	return writeOutput(cmd, rootOpts, opts.Output, r)
}

// parseMatrixFlags turns LABEL=TEXT pairs into named matrices.
func parseMatrixFlags(values []string) (map[string]matrix.Matrix, error) {
	named := make(map[string]matrix.Matrix, len(values))
	for _, v := range values {
		label, text, ok := strings.Cut(v, "=")
		label = strings.TrimSpace(label)
		if !ok || label == "" {
			return nil, fmt.Errorf("%q: want LABEL=TEXT", v)
		}
		if _, dup := named[label]; dup {
			return nil, fmt.Errorf("matrix %s given twice", label)
		}
		m, err := textimport.Parse(text)
		if err != nil {
			return nil, fmt.Errorf("matrix %s: %w", label, err)
		}
		named[label] = m
	}

	return named, nil
}
