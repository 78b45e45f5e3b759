// SPDX-License-Identifier: MIT

package evaluator

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownOperation is returned for OpInvalid, out-of-range values, an
	// unparseable symbol, or an additive-only entry point given Multiply.
	ErrUnknownOperation = errors.New("evaluator: unknown operation")
)

// evaluatorErrorf wraps err with an operation tag, preserving it for errors.Is.
func evaluatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
