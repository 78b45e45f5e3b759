// SPDX-License-Identifier: MIT

package report

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSuchExercise is returned by Remove for a number outside 1..Len().
	ErrNoSuchExercise = errors.New("report: no such exercise")
	// ErrNoExercises is returned by Printable for an empty report.
	ErrNoExercises = errors.New("report: no exercises")
	// ErrUnsupportedLanguage is returned for a language with no locale.
	ErrUnsupportedLanguage = errors.New("report: unsupported language")
	// ErrUnknownFormat is returned by Render for an unknown output format.
	ErrUnknownFormat = errors.New("report: unknown format")
)

// reportErrorf wraps err with an operation tag, preserving it for errors.Is.
func reportErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
