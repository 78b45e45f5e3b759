// SPDX-License-Identifier: MIT

// Package cli implements the matrices command line.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/rmns82839-rgb/Matrices/internal/config"
	"github.com/rmns82839-rgb/Matrices/report"
)

// RootOptions holds global flags and the configuration they resolve to.
type RootOptions struct {
	ConfigPath string
	Format     string
	Language   string
	Verbose    bool
	NoColor    bool

	// Resolved in PersistentPreRunE.
	Config *config.Config
	format report.Format
	logger *slog.Logger
}

// NewRootCommand creates the root command.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "matrices",
		Short: "Step-by-step matrix arithmetic reports",
		Long: `Evaluate matrix additions, subtractions, products and left-to-right
chains such as A+B-C or AxBxC, showing how every result cell was computed.

Reports render as terminal text, printable HTML or JSON.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "config file (default $"+config.EnvConfig+" or ./"+config.DefaultFile+")")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "", "output format (text|html|json), overrides config")
	cmd.PersistentFlags().StringVar(&opts.Language, "lang", "", "report language (es|en), overrides config")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "debug logging")
	cmd.PersistentFlags().BoolVar(&opts.NoColor, "no-color", false, "disable cell colors in text output")

	cmd.AddCommand(NewEvalCommand(opts))
	cmd.AddCommand(NewReportCommand(opts))
	cmd.AddCommand(NewValidateCommand(opts))

	return cmd
}

// resolve loads the config, applies flag overrides and installs the logger.
func (o *RootOptions) resolve(cmd *cobra.Command) error {
	cfg, path, err := config.Discover(o.ConfigPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load config", err)
	}
	if o.Format != "" {
		cfg.General.Format = o.Format
	}
	if o.Language != "" {
		cfg.General.Language = o.Language
	}
	if o.Verbose {
		cfg.General.LogLevel = "debug"
	}
	if o.NoColor {
		off := false
		cfg.General.Color = &off
	}
	if err := cfg.Validate(); err != nil {
		return WrapExitError(ExitCommandError, "invalid options", err)
	}

	o.Config = cfg
	o.format, _ = report.ParseFormat(cfg.General.Format)
	level, _ := config.ParseLevel(cfg.General.LogLevel)
	o.logger = newLogger(cmd.ErrOrStderr(), level)
	o.logger.Debug("configuration loaded", "path", path, "format", o.format, "language", cfg.General.Language)

	return nil
}

// reportOptions returns the report options implied by the configuration.
func (o *RootOptions) reportOptions() ([]report.Option, error) {
	tag, err := report.ParseLanguage(o.Config.General.Language)
	if err != nil {
		return nil, err
	}

	return []report.Option{report.WithLanguage(tag)}, nil
}

func (o *RootOptions) render(w io.Writer, r *report.Report) error {
	if err := report.Render(w, r, o.format, report.TextOptions{Color: o.Config.ColorEnabled()}); err != nil {
		return WrapExitError(ExitCommandError, "failed to render report", err)
	}

	return nil
}

// newLogger builds the stderr text logger and makes it the default.
func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})
	logger := slog.New(handler)
	slog.SetDefault(logger)

	return logger
}

// Execute runs the CLI with args and returns the process exit code. Errors
// are printed to stderr.
func Execute(args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err != nil {
		// cobra's own argument and flag errors are usage errors
		var exitErr *ExitError
		if !errors.As(err, &exitErr) {
			err = WrapExitError(ExitCommandError, "invalid usage", err)
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}

	return GetExitCode(err)
}
