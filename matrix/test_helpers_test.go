// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"bytes"
	"log/slog"
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/densecalc/matrix"
	"github.com/stretchr/testify/require"
)

// tol is the default comparison tolerance for floating-point results.
const tol = matrix.DefaultEpsilon

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the materialize-once path in kernels.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)

	return m
}

// FromRows builds a *Dense from literal rows or fails the test.
func FromRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// MustIdentity returns I_n or fails the test.
func MustIdentity(t testing.TB, n int) *matrix.Dense {
	t.Helper()
	m, err := matrix.Identity(n)
	require.NoError(t, err)

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// RandomDense fills an r×c matrix with values in [-10, 10) from a seeded source.
func RandomDense(t testing.TB, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := MustDense(t, r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			require.NoError(t, m.Set(i, j, rng.Float64()*20-10))
		}
	}

	return m
}

// RandomInvertible returns a strictly diagonally dominant (hence invertible) n×n matrix.
func RandomInvertible(t testing.TB, n int, seed int64) *matrix.Dense {
	t.Helper()
	m := RandomDense(t, n, n, seed)
	for i := 0; i < n; i++ {
		var sum float64
		for j := 0; j < n; j++ {
			sum += math.Abs(MustAt(t, m, i, j))
		}
		require.NoError(t, m.Set(i, i, sum+1))
	}

	return m
}

// RequireClose asserts equal shapes and element-wise closeness within eps.
func RequireClose(t testing.TB, want [][]float64, got matrix.Matrix, eps float64) {
	t.Helper()
	require.NotNil(t, got)
	require.Equal(t, len(want), got.Rows(), "rows")
	for i := range want {
		require.Equal(t, len(want[i]), got.Cols(), "cols")
		for j := range want[i] {
			require.InDeltaf(t, want[i][j], MustAt(t, got, i, j), eps, "element [%d,%d]", i, j)
		}
	}
}

// RequireZero asserts shape r×c and all elements exactly 0.
func RequireZero(t testing.TB, got *matrix.Dense, r, c int) {
	t.Helper()
	require.NotNil(t, got)
	require.Equal(t, r, got.Rows(), "rows")
	require.Equal(t, c, got.Cols(), "cols")
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			require.Zerof(t, MustAt(t, got, i, j), "element [%d,%d]", i, j)
		}
	}
}

// captureLogger returns a text slog.Logger writing into the returned buffer.
func captureLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer

	return slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}
