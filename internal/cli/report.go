// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/rmns82839-rgb/Matrices/internal/workbook"
	"github.com/rmns82839-rgb/Matrices/report"
)

// ReportOptions holds flags for the report command.
type ReportOptions struct {
	Output string
}

// NewReportCommand creates the report command.
func NewReportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ReportOptions{}

	cmd := &cobra.Command{
		Use:   "report <workbook.yaml>",
		Short: "Render every exercise of a workbook",
		Long: `Load a YAML workbook, evaluate all of its exercises and render the
report. Exercises that fail are reported on stderr and left out; the
command then exits with status 1.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, rootOpts, opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "write the report to a file instead of stdout")

	return cmd
}

func runReport(cmd *cobra.Command, rootOpts *RootOptions, opts *ReportOptions, path string) error {
	log := rootOpts.logger
	log.Info("loading workbook", "path", path)
	wb, err := workbook.Load(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load workbook", err)
	}

	wb.Header = mergeHeader(wb.Header, rootOpts.Config.ReportHeader())

	// --lang beats the workbook's language, which beats the config's
	var ropts []report.Option
	if rootOpts.Language != "" || wb.Language == language.Und {
		if ropts, err = rootOpts.reportOptions(); err != nil {
			return WrapExitError(ExitCommandError, "invalid options", err)
		}
	}
	r, errs := wb.Build(ropts...)
	if r == nil {
		return WrapExitError(ExitCommandError, "failed to create report", errs[0])
	}
	for _, e := range errs {
		log.Error("exercise failed", "error", e)
	}
	log.Info("workbook evaluated", "exercises", r.Len(), "failed", len(errs))

	if err := r.Printable(); err != nil {
		return WrapExitError(ExitFailure, "nothing to report", err)
	}
	if err := writeOutput(cmd, rootOpts, opts.Output, r); err != nil {
		return err
	}
	if len(errs) > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d exercise(s) failed", len(errs)))
	}

	return nil
}

// writeOutput renders r to path, or to the command's stdout when path is empty.
func writeOutput(cmd *cobra.Command, rootOpts *RootOptions, path string, r *report.Report) error {
	if path == "" {
		return rootOpts.render(cmd.OutOrStdout(), r)
	}

	f, err := os.Create(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to create output", err)
	}
	if err := rootOpts.render(f, r); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return WrapExitError(ExitCommandError, "failed to write output", err)
	}
	rootOpts.logger.Info("report written", "path", path, "format", rootOpts.format)

	return nil
}

// mergeHeader fills blank fields of h from defaults.
func mergeHeader(h, defaults report.Header) report.Header {
	pick := func(v, d string) string {
		if v != "" {
			return v
		}
		return d
	}
	h.Subject = pick(h.Subject, defaults.Subject)
	h.Author = pick(h.Author, defaults.Author)
	h.Program = pick(h.Program, defaults.Program)
	h.Campus = pick(h.Campus, defaults.Campus)
	h.Shift = pick(h.Shift, defaults.Shift)

	return h
}
