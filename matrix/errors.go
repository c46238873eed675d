// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All algorithms MUST return these sentinels and tests MUST check them
// via errors.Is. No algorithm should panic on user-triggered error conditions.
// Panics are reserved for invalid option arguments (programmer error).

package matrix

import "errors"

// NOTE ON ERROR CLASSES
// ---------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Two classes are kept apart:
//
//   - Recoverable (ErrDimensionMismatch): Add/Sub/Mul/Determinant still return
//     a well-defined zero value next to the error, so an interactive caller can
//     print it and keep going.
//   - Fatal (ErrNotInvertible): Inverse/Divide return a nil matrix.
//
// Use IsRecoverable to branch on the class instead of matching messages.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are negative.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub different shapes, or Mul where a.Cols != b.Rows.
	// This is the recoverable class: the call also returns a zero result.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned when an exact zero pivot survives partial pivoting.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNotInvertible marks the fatal class: inversion could not produce a result.
	// It is always joined with the concrete cause (ErrNonSquare or ErrSingular).
	ErrNotInvertible = errors.New("matrix: matrix is not invertible")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy (Set, constructors, decoding).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrRaggedRows indicates row slices of unequal length in NewDenseFromRows
	// or in a YAML document.
	ErrRaggedRows = errors.New("matrix: rows have unequal length")

	// ErrMalformedInput indicates a text or YAML payload that cannot be decoded
	// into a matrix (bad token, truncated element list, shape/data disagreement).
	ErrMalformedInput = errors.New("matrix: malformed input")
)

// IsRecoverable reports whether err belongs to the recoverable shape-mismatch
// class. A nil error is not recoverable (there is nothing to recover from).
func IsRecoverable(err error) bool {
	return err != nil && errors.Is(err, ErrDimensionMismatch) && !errors.Is(err, ErrNotInvertible)
}
