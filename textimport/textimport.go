// SPDX-License-Identifier: MIT

// Package textimport builds matrices from pasted plain text: one row per line,
// cells separated by whitespace or commas.
//
//	1, 2, 3
//	4  5  6
//
// Each cell is read like a browser's parseFloat: the longest leading numeric
// prefix counts ("2.5kg" is 2.5) and a cell with no numeric prefix is 0. Lines
// with no cells are skipped. A semicolon also ends a row, so "1 2; 3 4" works
// on a command line.
package textimport

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/rmns82839-rgb/Matrices/matrix"
)

// ErrEmptyInput is returned when the text holds no cells at all.
var ErrEmptyInput = errors.New("textimport: empty input")

// Row separators. '\r' is dropped as cell whitespace.
const (
	lineSep = '\n'
	rowSep  = ';'
)

// Parse converts text into a *matrix.Dense. opts are passed to matrix.FromRows,
// so the default policy rejects cells that read as ±Infinity.
//
// Errors:
//   - ErrEmptyInput when text is blank or has no cells.
//   - matrix.ErrRagged when rows differ in length.
//   - matrix.ErrNaNInf under the default numeric policy.
func Parse(text string, opts ...matrix.Option) (*matrix.Dense, error) {
	rows, err := ParseRows(text)
	if err != nil {
		return nil, err
	}
	m, err := matrix.FromRows(rows, opts...)
	if err != nil {
		return nil, fmt.Errorf("textimport: %w", err)
	}

	return m, nil
}

// ParseRows splits text into numeric rows without checking that they are
// rectangular.
func ParseRows(text string) ([][]float64, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyInput
	}

	lines := strings.FieldsFunc(text, func(r rune) bool { return r == lineSep || r == rowSep })
	rows := make([][]float64, 0, len(lines))
	for _, line := range lines {
		cells := strings.FieldsFunc(line, isCellSep)
		if len(cells) == 0 {
			continue
		}
		row := make([]float64, len(cells))
		for j, c := range cells {
			row[j] = ParseNumber(c)
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyInput
	}

	return rows, nil
}

// ParseNumber reads the longest numeric prefix of s, returning 0 when there
// is none. "Infinity" with an optional sign reads as ±Inf.
func ParseNumber(s string) float64 {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	n := numericPrefix(s)
	if n == 0 {
		if v, ok := infinityPrefix(s); ok {
			return v
		}

		return 0
	}
	v, err := strconv.ParseFloat(s[:n], 64)
	if (err != nil && !errors.Is(err, strconv.ErrRange)) || v == 0 {
		return 0 // also folds -0
	}

	return v
}

func isCellSep(r rune) bool { return r == ',' || unicode.IsSpace(r) }

// numericPrefix returns the byte length of the decimal literal at the start of
// s: [+-]? (digits [. digits?] | . digits) ([eE] [+-]? digits)?
// It returns 0 when s does not start with one.
func numericPrefix(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	intStart := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	digits := i - intStart
	if i < len(s) && s[i] == '.' {
		fracStart := i + 1
		j := fracStart
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		if digits > 0 || j > fracStart {
			digits += j - fracStart
			i = j
		}
	}
	if digits == 0 {
		return 0
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		expStart := j
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		if j > expStart {
			i = j
		}
	}

	return i
}

func infinityPrefix(s string) (float64, bool) {
	sign := 1.0
	switch {
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	case strings.HasPrefix(s, "-"):
		sign, s = -1, s[1:]
	}
	if strings.HasPrefix(s, "Infinity") {
		return math.Inf(int(sign)), true
	}

	return 0, false
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
