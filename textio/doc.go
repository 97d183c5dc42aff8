// SPDX-License-Identifier: MIT

// Package textio reads linear systems from plain-text files and writes
// solution vectors back.
//
// Input format:
//
//	4 1
//	2 3
//
// One matrix row per line, values separated by whitespace. Every row has the
// same number of values. A single trailing newline is accepted; any other
// empty line is rejected with ErrEmptyLine. The right-hand side uses the same
// format with exactly one value per line.
//
// Output format: WriteVector puts one value per line, WriteMatrix one row per
// line in the input format. Values use the shortest
// representation that parses back to the same float64.
//
// Errors:
//
//	ErrEmptyInput          - the input holds no data at all.
//	ErrEmptyLine           - an empty line before the end of the input.
//	ErrParse               - a token is not a number.
//	matrix.ErrRaggedRows   - rows of different lengths.
//	matrix.ErrNonSquare    - coefficients are not n×n.
//	matrix.ErrZeroDiagonal - a zero pivot in the coefficients.
//	matrix.ErrDimensionMismatch - right-hand side length or shape is wrong.
package textio
