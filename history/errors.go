// SPDX-License-Identifier: MIT

package history

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidShape indicates a non-positive depth or width.
	ErrInvalidShape = errors.New("history: depth and width must be > 0")

	// ErrUnknownKind indicates a Kind or kind name with no implementation.
	ErrUnknownKind = errors.New("history: unknown kind")

	// ErrOutOfRange indicates an iteration or row index outside the table.
	ErrOutOfRange = errors.New("history: index out of range")

	// ErrAlreadyResolved indicates a second write to a write-once cell,
	// or any write to row 0.
	ErrAlreadyResolved = errors.New("history: cell already resolved")

	// ErrInitialGuess indicates an initial guess whose length differs from the width.
	ErrInitialGuess = errors.New("history: initial guess length mismatch")
)

// cellErrorf wraps err with the operation and the cell coordinates.
func cellErrorf(op string, k, i int, err error) error {
	return fmt.Errorf("%s(%d,%d): %w", op, k, i, err)
}
