// SPDX-License-Identifier: MIT

package textio

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput indicates an input without a single value.
	ErrEmptyInput = errors.New("textio: empty input")

	// ErrEmptyLine indicates an empty line that is not the trailing newline.
	ErrEmptyLine = errors.New("textio: empty line")

	// ErrParse indicates a token that is not a floating-point number.
	ErrParse = errors.New("textio: cannot parse value")
)

// lineErrorf wraps err with the 1-based line number it was detected on.
func lineErrorf(op string, line int, err error) error {
	return fmt.Errorf("%s: line %d: %w", op, line, err)
}
