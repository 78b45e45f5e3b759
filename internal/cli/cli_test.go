// SPDX-License-Identifier: MIT

package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmns82839-rgb/Matrices/internal/config"
)

// run executes the CLI without picking up a config from the environment.
func run(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	t.Setenv(config.EnvConfig, "")

	var out, errOut bytes.Buffer
	code = Execute(args, &out, &errOut)

	return code, out.String(), errOut.String()
}

func testdata(t *testing.T, name string) string {
	t.Helper()
	p, err := filepath.Abs(filepath.Join("testdata", name))
	require.NoError(t, err)

	return p
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "matrices", cmd.Use)

	for _, name := range []string{"eval", "report", "validate"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, sub.Name())
	}

	for flag, def := range map[string]string{"config": "", "format": "", "lang": "", "verbose": "false", "no-color": "false"} {
		f := cmd.PersistentFlags().Lookup(flag)
		require.NotNil(t, f, flag)
		assert.Equal(t, def, f.DefValue, flag)
	}
	assert.Equal(t, "v", cmd.PersistentFlags().Lookup("verbose").Shorthand)
}

func TestEval_Text(t *testing.T) {
	code, out, _ := run(t, "eval", "AxB", "-m", "A=1 2; 3 4", "-m", "B=5,6;7,8", "--no-color")
	require.Equal(t, ExitSuccess, code)
	assert.Contains(t, out, "Ejercicio 1: Multiplicación (AxB = 2x2)")
	assert.Contains(t, out, "(1 x 5) + (2 x 7) = 19")
	assert.Contains(t, out, "Materia: N/A")
}

func TestEval_JSONEnglish(t *testing.T) {
	code, out, _ := run(t, "eval", "A+B-A", "-m", "A=1 2", "-m", "B=3 4", "--format", "json", "--lang", "en")
	require.Equal(t, ExitSuccess, code)

	var doc struct {
		Language  string `json:"language"`
		Exercises []struct {
			Name   string      `json:"name"`
			Result [][]float64 `json:"result"`
		} `json:"exercises"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "en", doc.Language)
	require.Len(t, doc.Exercises, 1)
	assert.Equal(t, "Operation chain", doc.Exercises[0].Name)
	assert.Equal(t, [][]float64{{3, 4}}, doc.Exercises[0].Result)
}

func TestEval_Errors(t *testing.T) {
	code, _, errOut := run(t, "eval", "AxB", "-m", "A=1 2", "-m", "B=1 2")
	assert.Equal(t, ExitFailure, code)
	assert.Contains(t, errOut, "multiplicative dimension mismatch")

	code, _, errOut = run(t, "eval", "A+B", "-m", "A1 2")
	assert.Equal(t, ExitCommandError, code)
	assert.Contains(t, errOut, "want LABEL=TEXT")

	code, _, _ = run(t, "eval", "A+B", "-m", "A=1", "-m", "A=2")
	assert.Equal(t, ExitCommandError, code)

	code, _, errOut = run(t, "eval", "A+B", "-m", "A=1 2\n3")
	assert.Equal(t, ExitCommandError, code)
	assert.Contains(t, errOut, "rows have different lengths")

	code, _, _ = run(t, "eval", "A+B", "--format", "pdf")
	assert.Equal(t, ExitCommandError, code)

	code, _, _ = run(t, "eval")
	assert.Equal(t, ExitCommandError, code)

	code, _, _ = run(t, "eval", "A+B", "--bogus")
	assert.Equal(t, ExitCommandError, code)
}

func TestEval_OutputFile(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "out.html")
	code, out, _ := run(t, "eval", "A-B", "-m", "A=1", "-m", "B=2", "--format", "html", "-o", dest)
	require.Equal(t, ExitSuccess, code)
	assert.Empty(t, out)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<!DOCTYPE html>")
	assert.Contains(t, string(data), "Ejercicio 1: Resta (A-B = 1x1)")
}

func TestEval_ConfigHeader(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "m.toml")
	require.NoError(t, os.WriteFile(cfg, []byte("[general]\nlanguage = \"en\"\n[header]\nauthor = \"Ana\"\n"), 0o600))

	code, out, _ := run(t, "--config", cfg, "eval", "A+B", "-m", "A=1", "-m", "B=2")
	require.Equal(t, ExitSuccess, code)
	assert.Contains(t, out, "Done by: Ana")

	code, _, errOut := run(t, "--config", filepath.Join(t.TempDir(), "none.toml"), "eval", "A+B")
	assert.Equal(t, ExitCommandError, code)
	assert.Contains(t, errOut, "failed to load config")
}

func TestReport(t *testing.T) {
	code, out, _ := run(t, "report", testdata(t, "ok.yaml"))
	require.Equal(t, ExitSuccess, code)
	assert.Contains(t, out, "Materia: Álgebra")
	assert.Contains(t, out, "Fecha: 2026-10-17")
	assert.Contains(t, out, "Ejercicio 2: Multiplicación (AxB = 2x2)")

	code, out, errOut := run(t, "report", testdata(t, "partial.yaml"), "--lang", "en", "-v")
	assert.Equal(t, ExitFailure, code)
	assert.Contains(t, out, "Exercise 1: Multiplication (AxB = 1x1)")
	assert.NotContains(t, out, "Exercise 2")
	assert.Contains(t, errOut, "exercise failed")
	assert.Contains(t, errOut, "1 exercise(s) failed")

	code, _, _ = run(t, "report", testdata(t, "schema.yaml"))
	assert.Equal(t, ExitCommandError, code)

	code, _, _ = run(t, "report", testdata(t, "missing.yaml"))
	assert.Equal(t, ExitCommandError, code)
}

func TestReport_LanguagePrecedence(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "m.toml")
	require.NoError(t, os.WriteFile(cfg, []byte("[general]\nlanguage = \"en\"\n"), 0o600))

	language := func(out string) string {
		var doc struct {
			Language string `json:"language"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &doc))
		return doc.Language
	}

	// workbook without a language: config decides
	code, out, _ := run(t, "--config", cfg, "report", testdata(t, "ok.yaml"), "--format", "json")
	require.Equal(t, ExitSuccess, code)
	assert.Equal(t, "en", language(out))

	code, out, _ = run(t, "--config", cfg, "report", testdata(t, "ok.yaml"))
	require.Equal(t, ExitSuccess, code)
	assert.Contains(t, out, "Exercise 2: Multiplication (AxB = 2x2)")

	// workbook language beats config
	code, out, _ = run(t, "--config", cfg, "report", testdata(t, "spanish.yaml"), "--format", "json")
	require.Equal(t, ExitSuccess, code)
	assert.Equal(t, "es", language(out))

	// --lang beats both
	code, out, _ = run(t, "--config", cfg, "report", testdata(t, "spanish.yaml"), "--format", "json", "--lang", "en")
	require.Equal(t, ExitSuccess, code)
	assert.Equal(t, "en", language(out))
}

func TestValidate(t *testing.T) {
	code, out, _ := run(t, "validate", testdata(t, "ok.yaml"))
	require.Equal(t, ExitSuccess, code)
	assert.Contains(t, out, "ok    1 A+B")
	assert.Contains(t, out, "valid: 2 exercise(s)")

	code, out, _ = run(t, "validate", testdata(t, "partial.yaml"), "--format", "json")
	assert.Equal(t, ExitFailure, code)
	var res ValidationResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.False(t, res.Valid)
	require.Len(t, res.Exercises, 2)
	assert.True(t, res.Exercises[0].OK)
	assert.False(t, res.Exercises[1].OK)
	assert.Contains(t, res.Exercises[1].Error, "additive dimension mismatch")

	code, out, _ = run(t, "validate", testdata(t, "schema.yaml"))
	assert.Equal(t, ExitCommandError, code)
	assert.Contains(t, out, "[W002]")
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitFailure, GetExitCode(assert.AnError))
	assert.Equal(t, ExitCommandError, GetExitCode(WrapExitError(ExitCommandError, "x", assert.AnError)))

	e := WrapExitError(ExitFailure, "outer", assert.AnError)
	assert.ErrorIs(t, e, assert.AnError)
	assert.Equal(t, "outer: "+assert.AnError.Error(), e.Error())
	assert.Equal(t, "plain", NewExitError(ExitFailure, "plain").Error())
}
