// SPDX-License-Identifier: MIT

// Package builder defines shared constants used by system builders, ensuring
// consistent defaults and validation across all constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodTridiagonal is the canonical name for the Tridiagonal constructor.
	MethodTridiagonal = "Tridiagonal"
	// MethodDiagonallyDominant is the canonical name for the DiagonallyDominant constructor.
	MethodDiagonallyDominant = "DiagonallyDominant"
	// MethodFromSolution is the canonical name for the FromSolution constructor.
	MethodFromSolution = "FromSolution"
)

//-----------------------------------------------------------------------------
// Minimum Sizes
//-----------------------------------------------------------------------------

// MinSystemSize is the smallest system any constructor accepts (a 1×1 system).
const MinSystemSize = 1

// MinTridiagonalSize is the smallest tridiagonal band with an off-diagonal.
const MinTridiagonalSize = 2

//-----------------------------------------------------------------------------
// Defaults
//-----------------------------------------------------------------------------

// DefaultDominance is the default strict-dominance factor d:
// |A[i][i]| = d · Σ_{j≠i} |A[i][j]|.
const DefaultDominance = 2.0

// MinDominance is the exclusive lower bound for WithDominance.
const MinDominance = 1.0

// DefaultValue is the constant produced by DefaultValueFn and the default
// entry of the exact solution for deterministic constructors.
const DefaultValue = 1.0

// tridiagonalOff is the sub- and super-diagonal entry of Tridiagonal.
const tridiagonalOff = -1.0

// emptyRowDiagonal is the diagonal used when a row has no off-diagonal mass.
const emptyRowDiagonal = 1.0
