// SPDX-License-Identifier: MIT
// Package matrix: elimination kernels.
//
// Purpose:
//   - Determinant via Gaussian elimination to row-echelon form.
//   - Inverse via Gauss-Jordan elimination on an augmented identity.
//
// Both kernels use partial pivoting (largest |value| in the pivot column among
// the remaining rows, first one wins on ties) and work on a private copy of
// the input, so the caller's matrix is never mutated. Row swaps exchange
// slice headers from rowViews, which keeps a swap O(1).
//
// Zero pivots are detected through Options.isZeroPivot: exact equality by
// default, |p| <= tol under WithPivotTolerance.

package matrix

import (
	"fmt"
	"math"
)

// Determinant returns det(m).
// MAIN DESCRIPTION:
//   - Gaussian elimination with partial pivoting on a working copy; the
//     determinant is the product of the pivots times the swap sign.
//
// Implementation:
//   - Stage 1: ValidateNotNil; non-square input is the recoverable class:
//     return 0 and an error wrapping ErrDimensionMismatch and ErrNonSquare.
//   - Stage 2: for each column i select the pivot row, swap (flip sign),
//     stop with 0 on a zero pivot, multiply the pivot into det, eliminate
//     rows below over columns i+1..n-1.
//
// Behavior highlights:
//   - A zero pivot after maximal-magnitude selection means the matrix is
//     singular; the result is exactly 0.0 with a nil error.
//   - det of the 0×0 matrix is the empty product 1.0.
//
// Inputs:
//   - m: square matrix (n×n).
//   - opts: WithPivotTolerance, WithLogger.
//
// Returns:
//   - float64: determinant, or 0 on error.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch+ErrNonSquare (recoverable).
//
// Complexity:
//   - Time O(n³), Space O(n²) for the working copy.
func Determinant(m Matrix, opts ...Option) (float64, error) {
	o := gatherOptions(opts...)
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	if err := ValidateSquare(m); err != nil {
		err = fmt.Errorf("%s: %w: %w", opDeterminant, ErrDimensionMismatch, err)
		reportMismatch(o, opDeterminant, err, m)

		return 0, err
	}

	d, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return determinant(d.clone(), o), nil
}

// determinant eliminates work in place and returns the determinant.
// work must be square; it is scratch space after the call.
func determinant(work *Dense, o Options) float64 {
	n := work.r
	rows := rowViews(work)
	det := 1.0

	var i, j, k, p int
	var pivot, factor float64
	for i = 0; i < n; i++ {
		p = pivotRow(rows, i)
		if p != i {
			rows[i], rows[p] = rows[p], rows[i]
			det = -det
		}
		pivot = rows[i][i]
		if o.isZeroPivot(pivot) {
			return 0.0
		}
		det *= pivot
		for j = i + 1; j < n; j++ {
			factor = rows[j][i] / pivot
			rows[j][i] = 0 // mathematically zero; never read again
			for k = i + 1; k < n; k++ {
				rows[j][k] -= factor * rows[i][k]
			}
		}
	}

	return det
}

// pivotRow returns the row index in [col, len(rows)) with the largest
// |rows[r][col]|. Ties keep the earliest row.
func pivotRow(rows [][]float64, col int) int {
	best := col
	for r := col + 1; r < len(rows); r++ {
		if math.Abs(rows[r][col]) > math.Abs(rows[best][col]) {
			best = r
		}
	}

	return best
}

// Inverse computes m⁻¹ by Gauss-Jordan elimination with partial pivoting.
// MAIN DESCRIPTION:
//   - Reduce a working copy of m to the identity while applying the same
//     row operations to an identity matrix, which then holds m⁻¹.
//
// Implementation:
//   - Stage 1: ValidateNotNil, ValidateSquare. Non-square is fatal.
//   - Stage 2 (forward): per column select pivot, swap in both matrices,
//     fail on a zero pivot, scale the pivot row to 1, zero the entries below.
//   - Stage 3 (backward): for pivots n-1..1 zero the entries above.
//
// Behavior highlights:
//   - Never returns a placeholder: every failure yields a nil matrix and an
//     error wrapping ErrNotInvertible (IsRecoverable == false).
//   - Inverse of the 0×0 matrix is the 0×0 matrix.
//
// Inputs:
//   - m: non-nil square matrix.
//   - opts: WithPivotTolerance.
//
// Returns:
//   - *Dense: n×n inverse.
//
// Errors:
//   - ErrNilMatrix, ErrNotInvertible+ErrNonSquare, ErrNotInvertible+ErrSingular.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Inverse(m Matrix, opts ...Option) (*Dense, error) {
	return inverse(m, gatherOptions(opts...))
}

func inverse(m Matrix, o Options) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", opInverse, ErrNotInvertible, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	_, inv, err := gaussJordan(d.clone(), o)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", opInverse, ErrNotInvertible, err)
	}

	return inv, nil
}

// gaussJordan reduces work (square, owned by the caller) to the identity and
// returns it in row order together with the inverse.
// Returns ErrSingular (wrapped with the column) when a zero pivot is selected.
func gaussJordan(work *Dense, o Options) (reduced, inv *Dense, err error) {
	n := work.r
	id, _ := Identity(n) // n >= 0 is guaranteed by work's shape
	wr := rowViews(work)
	ir := rowViews(id)

	var i, j, k, p int
	var pivot, factor float64

	// Forward phase: upper triangular with unit diagonal.
	for i = 0; i < n; i++ {
		p = pivotRow(wr, i)
		if p != i {
			wr[i], wr[p] = wr[p], wr[i]
			ir[i], ir[p] = ir[p], ir[i]
		}
		pivot = wr[i][i]
		if o.isZeroPivot(pivot) {
			return nil, nil, fmt.Errorf("pivot column %d: %w", i, ErrSingular)
		}
		for j = 0; j < n; j++ {
			wr[i][j] /= pivot
			ir[i][j] /= pivot
		}
		for j = i + 1; j < n; j++ {
			factor = wr[j][i]
			for k = 0; k < n; k++ {
				wr[j][k] -= factor * wr[i][k]
				ir[j][k] -= factor * ir[i][k]
			}
		}
	}

	// Backward phase: clear above each pivot.
	for i = n - 1; i > 0; i-- {
		for j = i - 1; j >= 0; j-- {
			factor = wr[j][i]
			for k = 0; k < n; k++ {
				wr[j][k] -= factor * wr[i][k]
				ir[j][k] -= factor * ir[i][k]
			}
		}
	}

	return fromRowViews(wr, n), fromRowViews(ir, n), nil
}

// fromRowViews copies (possibly permuted) row headers into a fresh n-column Dense.
func fromRowViews(rows [][]float64, cols int) *Dense {
	out := zeroDense(len(rows), cols)
	for i, row := range rows {
		copy(out.data[i*cols:(i+1)*cols], row)
	}

	return out
}
