// SPDX-License-Identifier: MIT

package textio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/relax/matrix"
)

const (
	opReadRows = "ReadRows"

	// maxLineBytes bounds a single row; a 100k×100k row at full precision fits.
	maxLineBytes = 64 << 20
)

// ReadRows parses whitespace-separated rows of float64 values.
//
// Implementation:
//   - Stage 1: scan lines; remember an empty line and fail on the next
//     non-empty one (only the final newline may leave an empty tail).
//   - Stage 2: strings.Fields + strconv.ParseFloat per token.
//   - Stage 3: enforce equal row lengths against the first row.
//
// Errors: ErrEmptyInput, ErrEmptyLine, ErrParse, matrix.ErrRaggedRows, and
// read errors from r.
// Complexity: O(total tokens).
func ReadRows(r io.Reader) ([][]float64, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var (
		rows      [][]float64
		line      int
		emptyLine int // first empty line seen, 0 if none
		width     int
	)
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			if emptyLine == 0 {
				emptyLine = line
			}
			continue
		}
		if emptyLine != 0 {
			return nil, lineErrorf(opReadRows, emptyLine, ErrEmptyLine)
		}

		row := make([]float64, len(fields))
		for j, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, lineErrorf(opReadRows, line, fmt.Errorf("%w: column %d %q", ErrParse, j+1, f))
			}
			row[j] = v
		}
		if len(rows) == 0 {
			width = len(row)
		} else if len(row) != width {
			return nil, lineErrorf(opReadRows, line,
				fmt.Errorf("%w: got %d values, want %d", matrix.ErrRaggedRows, len(row), width))
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", opReadRows, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: %w", opReadRows, ErrEmptyInput)
	}
	// A trailing newline never yields an empty token line; a blank line at
	// the end of the file does.
	if emptyLine != 0 {
		return nil, lineErrorf(opReadRows, emptyLine, ErrEmptyLine)
	}

	return rows, nil
}

// ReadRowsFile opens path and parses it with ReadRows.
// The path is part of every returned error.
func ReadRowsFile(path string) ([][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := ReadRows(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return rows, nil
}
