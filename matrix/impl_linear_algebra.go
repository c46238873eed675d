// SPDX-License-Identifier: MIT
// Package matrix provides the arithmetic kernels on any Matrix implementation:
// element-wise addition and subtraction, matrix multiplication and
// "division" (A · B⁻¹).
//
// Purpose:
//   - Keep the recoverable policy in one place: a shape mismatch returns a
//     zero matrix of a documented shape together with ErrDimensionMismatch,
//     and is reported to the configured logger.
//   - Define operation tags and shared constants for error reporting.
//
// Notes:
//   - Elimination kernels (Determinant, Inverse) live in impl_elimination.go.
//   - Inputs are never mutated; every result is a freshly allocated *Dense.

package matrix

import (
	"fmt"
	"strings"
)

// zeroPivot is the exact-zero sentinel for pivot checks.
const zeroPivot = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd         = "Add"
	opSub         = "Sub"
	opMul         = "Mul"
	opDivide      = "Divide"
	opDeterminant = "Determinant"
	opInverse     = "Inverse"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// reportMismatch logs a recoverable shape mismatch at Warn level.
// The caller still returns err; logging is a side channel for interactive use.
func reportMismatch(o Options, op string, err error, operands ...Matrix) {
	shapes := make([]string, len(operands))
	for i, m := range operands {
		shapes[i] = fmt.Sprintf("%dx%d", m.Rows(), m.Cols())
	}
	o.logger.Warn("recoverable shape mismatch",
		"op", op,
		"shapes", strings.Join(shapes, ","),
		"error", err,
	)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Internal helper for Add/Sub to share validation, allocation, and the
// recoverable mismatch policy.
//
// Implementation:
//   - Stage 1: ValidateBinaryNotNil(a, b) (nil operands are not recoverable).
//   - Stage 2: ValidateSameShape; on mismatch return zero a.Rows×a.Cols + error.
//   - Stage 3: Materialize operands as *Dense and run one flat loop 0..n-1.
//
// Behavior highlights:
//   - Deterministic loop order; one allocation for the result.
//   - Inputs remain immutable.
//
// Errors:
//   - ErrNilMatrix         (nil result).
//   - ErrDimensionMismatch (zero result, recoverable).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub(a, b Matrix, sign float64, opTag string, o Options) (*Dense, error) {
	if err := ValidateBinaryNotNil(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	rows, cols := a.Rows(), a.Cols()
	if err := ValidateSameShape(a, b); err != nil {
		err = matrixErrorf(opTag, err)
		reportMismatch(o, opTag, err, a, b)

		return zeroDense(rows, cols), err
	}

	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	res := zeroDense(rows, cols)
	for idx := range res.data { // deterministic 0..n-1
		res.data[idx] = da.data[idx] + sign*db.data[idx]
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
//
// Behavior highlights:
//   - Shapes must match. On mismatch the result is a zero matrix shaped
//     like A and the error wraps ErrDimensionMismatch (IsRecoverable == true).
//
// Inputs:
//   - a, b: non-nil matrices.
//   - opts: WithLogger routes the mismatch diagnostic.
//
// Returns:
//   - *Dense: C[i,j] = A[i,j] + B[i,j], or zeros on mismatch.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b Matrix, opts ...Option) (*Dense, error) {
	return addSub(a, b, +1, opAdd, gatherOptions(opts...))
}

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
// Mismatch policy is identical to Add: zero matrix shaped like A plus
// ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Sub(a, b Matrix, opts ...Option) (*Dense, error) {
	return addSub(a, b, -1, opSub, gatherOptions(opts...))
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//     On mismatch return a zero A.Rows×B.Cols matrix and ErrDimensionMismatch.
//   - Stage 2: i→k→j over row-major strides; each C[i,j] accumulates its
//     products in ascending k, the same order as the textbook i→j→k loop.
//
// Behavior highlights:
//   - No zero-skipping: 0·Inf still yields NaN as the plain sum would.
//   - One allocation for C; no temporary tiles.
//
// Inputs:
//   - A: left matrix with shape (r × n).
//   - B: right matrix with shape (n × c).
//
// Returns:
//   - *Dense: new C with shape (r × c).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch, recoverable).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix, opts ...Option) (*Dense, error) {
	return mul(a, b, opMul, gatherOptions(opts...))
}

func mul(a, b Matrix, opTag string, o Options) (*Dense, error) {
	if err := ValidateBinaryNotNil(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	if err := ValidateMulCompatible(a, b); err != nil {
		err = matrixErrorf(opTag, err)
		reportMismatch(o, opTag, err, a, b)

		return zeroDense(aRows, bCols), err
	}

	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	res := zeroDense(aRows, bCols)
	var (
		i, k, j                            int
		av                                 float64
		rowOffsetA, rowOffsetB, rowOffsetR int
	)
	// da.data layout: i*aCols + k ; db.data layout: k*bCols + j
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = da.data[rowOffsetA+k]
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// Divide computes A · B⁻¹ ("A divided by B").
// Implementation:
//   - Stage 1: Inverse(B). Any failure is fatal: nil result, error wraps ErrNotInvertible.
//   - Stage 2: Mul(A, B⁻¹) with the recoverable mismatch policy (zero A.Rows×B.Rows).
//
// Errors:
//   - ErrNilMatrix, ErrNotInvertible (+ ErrNonSquare/ErrSingular), ErrDimensionMismatch.
//
// Complexity:
//   - Time O(n³ + r*n*n), Space O(n² + r*n).
func Divide(a, b Matrix, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	if err := ValidateBinaryNotNil(a, b); err != nil {
		return nil, matrixErrorf(opDivide, err)
	}
	inv, err := inverse(b, o)
	if err != nil {
		return nil, matrixErrorf(opDivide, err)
	}

	return mul(a, inv, opDivide, o)
}
