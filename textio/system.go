// SPDX-License-Identifier: MIT

package textio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/relax/matrix"
)

// LoadSystem reads and validates the coefficient and right-hand side files.
// The returned matrix uses the strict finite-value policy, so NaN or Inf in
// the coefficients is rejected with matrix.ErrNaNInf.
func LoadSystem(coefficientsPath, rhsPath string) (*matrix.Dense, []float64, error) {
	rows, err := ReadRowsFile(coefficientsPath)
	if err != nil {
		return nil, nil, err
	}
	a, err := matrix.NewDenseFromRows(rows, matrix.WithValidateNaNInf())
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", coefficientsPath, err)
	}
	if err = ValidateCoefficients(a); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", coefficientsPath, err)
	}

	rhs, err := ReadRowsFile(rhsPath)
	if err != nil {
		return nil, nil, err
	}
	if err = ValidateRHS(a.Rows(), rhs); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", rhsPath, err)
	}
	b := make([]float64, len(rhs))
	for i, r := range rhs {
		b[i] = r[0]
	}

	return a, b, nil
}

// WriteVector writes x one value per line using the shortest round-trip
// representation.
func WriteVector(w io.Writer, x []float64) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 32)
	for _, v := range x {
		buf = strconv.AppendFloat(buf[:0], v, 'g', -1, 64)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return fmt.Errorf("WriteVector: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("WriteVector: %w", err)
	}

	return nil
}

// WriteVectorFile creates or truncates path and writes x into it.
func WriteVectorFile(path string, x []float64) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()

	if err = WriteVector(f, x); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	return nil
}

// WriteMatrix writes m one row per line, values separated by a single space,
// in the format ReadRows accepts.
func WriteMatrix(w io.Writer, m matrix.Matrix) error {
	rows, err := matrix.ToRows(m)
	if err != nil {
		return fmt.Errorf("WriteMatrix: %w", err)
	}
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 256)
	for _, row := range rows {
		buf = buf[:0]
		for j, v := range row {
			if j > 0 {
				buf = append(buf, ' ')
			}
			buf = strconv.AppendFloat(buf, v, 'g', -1, 64)
		}
		buf = append(buf, '\n')
		if _, err = bw.Write(buf); err != nil {
			return fmt.Errorf("WriteMatrix: %w", err)
		}
	}
	if err = bw.Flush(); err != nil {
		return fmt.Errorf("WriteMatrix: %w", err)
	}

	return nil
}

// WriteMatrixFile creates or truncates path and writes m into it.
func WriteMatrixFile(path string, m matrix.Matrix) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()

	if err = WriteMatrix(f, m); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	return nil
}
