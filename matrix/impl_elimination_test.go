// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for Determinant and Inverse.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/densecalc/matrix"
	"github.com/stretchr/testify/require"
)

func TestDeterminant_Scenario(t *testing.T) {
	a, _ := scenario(t)
	det, err := matrix.Determinant(a)
	require.NoError(t, err)
	require.InDelta(t, -6.0, det, tol)
}

func TestDeterminant_Identity(t *testing.T) {
	for n := 0; n <= 6; n++ {
		det, err := matrix.Determinant(MustIdentity(t, n))
		require.NoError(t, err)
		require.Equalf(t, 1.0, det, "det(I_%d)", n)
	}
}

func TestDeterminant_ZeroRowIsExactlyZero(t *testing.T) {
	for _, rows := range [][][]float64{
		{{0, 0}, {1, 2}},
		{{1, 2, 3}, {0, 0, 0}, {4, 5, 6}},
		{{5, 1, 7}, {2, 3, 9}, {0, 0, 0}},
	} {
		det, err := matrix.Determinant(FromRows(t, rows))
		require.NoError(t, err)
		require.Equal(t, 0.0, det)
	}
}

func TestDeterminant_SingularExactZero(t *testing.T) {
	det, err := matrix.Determinant(FromRows(t, [][]float64{{1, 2}, {2, 4}}))
	require.NoError(t, err)
	require.Equal(t, 0.0, det)
}

func TestDeterminant_KnownValues(t *testing.T) {
	tests := []struct {
		name string
		rows [][]float64
		want float64
	}{
		{"1x1", [][]float64{{-7}}, -7},
		{"swap sign", [][]float64{{0, 1}, {1, 0}}, -1},
		{"3x3", [][]float64{{2, -3, 1}, {2, 0, -1}, {1, 4, 5}}, 49},
		{"upper triangular", [][]float64{{2, 5, 7}, {0, 3, 1}, {0, 0, 4}}, 24},
		{"needs pivot", [][]float64{{0, 2, 1}, {1, 1, 1}, {2, 1, 0}}, 3},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			det, err := matrix.Determinant(FromRows(t, tc.rows))
			require.NoError(t, err)
			require.InDelta(t, tc.want, det, tol)
		})
	}
}

func TestDeterminant_DoesNotMutateInput(t *testing.T) {
	rows := [][]float64{{0, 2, 1}, {1, 1, 1}, {2, 1, 0}}
	m := FromRows(t, rows)
	_, err := matrix.Determinant(m)
	require.NoError(t, err)
	RequireClose(t, rows, m, 0)
}

func TestDeterminant_NonSquareIsRecoverable(t *testing.T) {
	logger, buf := captureLogger()
	det, err := matrix.Determinant(MustDense(t, 2, 3), matrix.WithLogger(logger))
	require.Equal(t, 0.0, det)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	require.True(t, matrix.IsRecoverable(err))
	require.Contains(t, buf.String(), "op=Determinant")
}

func TestDeterminant_PivotTolerance(t *testing.T) {
	// Second pivot is 1e-14 after elimination: exact policy keeps it,
	// a tolerance of 1e-12 treats the matrix as singular.
	m := FromRows(t, [][]float64{{1, 1}, {1, 1 + 1e-14}})

	det, err := matrix.Determinant(m)
	require.NoError(t, err)
	require.NotEqual(t, 0.0, det)

	det, err = matrix.Determinant(m, matrix.WithPivotTolerance(1e-12))
	require.NoError(t, err)
	require.Equal(t, 0.0, det)
}

func TestDeterminant_Fallback(t *testing.T) {
	m := RandomInvertible(t, 4, 7)
	fast, err := matrix.Determinant(m)
	require.NoError(t, err)
	slow, err := matrix.Determinant(hide{m})
	require.NoError(t, err)
	require.Equal(t, fast, slow)
}

func TestInverse_Scenario(t *testing.T) {
	a, b := scenario(t)

	inv, err := matrix.Inverse(a)
	require.NoError(t, err)
	RequireClose(t, [][]float64{{-0.5, 0.5}, {1, -0.6666666666666667}}, inv, tol)

	prod, err := matrix.Mul(a, inv)
	require.NoError(t, err)
	require.True(t, prod.AllClose(MustIdentity(t, 2), tol))

	invB, err := matrix.Inverse(b)
	require.NoError(t, err)
	require.True(t, invB.Equal(b), "I⁻¹ == I")
}

func TestInverse_RandomProductIsIdentity(t *testing.T) {
	for n := 1; n <= 8; n++ {
		a := RandomInvertible(t, n, int64(40+n))
		inv, err := matrix.Inverse(a)
		require.NoError(t, err)

		left, err := matrix.Mul(a, inv)
		require.NoError(t, err)
		right, err := matrix.Mul(inv, a)
		require.NoError(t, err)
		id := MustIdentity(t, n)
		require.Truef(t, left.AllClose(id, tol), "A·A⁻¹ ≈ I for n=%d", n)
		require.Truef(t, right.AllClose(id, tol), "A⁻¹·A ≈ I for n=%d", n)
	}
}

func TestInverse_RequiresPivoting(t *testing.T) {
	// Zero in the top-left corner: only works with row swaps.
	a := FromRows(t, [][]float64{{0, 1}, {1, 0}})
	inv, err := matrix.Inverse(a)
	require.NoError(t, err)
	RequireClose(t, [][]float64{{0, 1}, {1, 0}}, inv, 0)
}

func TestInverse_Singular(t *testing.T) {
	inv, err := matrix.Inverse(FromRows(t, [][]float64{{1, 2}, {2, 4}}))
	require.Nil(t, inv, "a singular inverse must never return a placeholder")
	require.ErrorIs(t, err, matrix.ErrNotInvertible)
	require.ErrorIs(t, err, matrix.ErrSingular)
	require.False(t, matrix.IsRecoverable(err))
}

func TestInverse_NonSquareIsFatal(t *testing.T) {
	inv, err := matrix.Inverse(MustDense(t, 2, 3))
	require.Nil(t, inv)
	require.ErrorIs(t, err, matrix.ErrNotInvertible)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	require.NotErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.False(t, matrix.IsRecoverable(err))
}

func TestInverse_Nil(t *testing.T) {
	_, err := matrix.Inverse(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestInverse_Empty(t *testing.T) {
	inv, err := matrix.Inverse(MustDense(t, 0, 0))
	require.NoError(t, err)
	require.Equal(t, 0, inv.Rows())
	require.Equal(t, 0, inv.Cols())
}

func TestInverse_DoesNotMutateInput(t *testing.T) {
	rows := [][]float64{{0, 2, 1}, {1, 1, 1}, {2, 1, 0}}
	m := FromRows(t, rows)
	_, err := matrix.Inverse(m)
	require.NoError(t, err)
	RequireClose(t, rows, m, 0)
}

func TestInverse_PivotTolerance(t *testing.T) {
	m := FromRows(t, [][]float64{{1, 1}, {1, 1 + 1e-14}})
	_, err := matrix.Inverse(m)
	require.NoError(t, err)

	_, err = matrix.Inverse(m, matrix.WithPivotTolerance(1e-12))
	require.ErrorIs(t, err, matrix.ErrSingular)
}

func TestGaussJordan_WorkingCopyEndsAsIdentity(t *testing.T) {
	for n := 1; n <= 5; n++ {
		a := RandomInvertible(t, n, int64(90+n))
		reduced, inv, err := matrix.GaussJordan_TestOnly(a)
		require.NoError(t, err)
		require.Truef(t, reduced.AllClose(MustIdentity(t, n), tol), "reduced ≈ I for n=%d", n)

		viaFacade, err := matrix.Inverse(a)
		require.NoError(t, err)
		require.True(t, inv.Equal(viaFacade))
	}
}
