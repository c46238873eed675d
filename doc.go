// Package densecalc is a small dense-matrix calculator: a float64 matrix
// type with arithmetic, determinant and inverse, plus a command-line driver.
//
// What is inside?
//
//	• Dense matrices: row-major storage, bounds-checked access, deep copies
//	• Arithmetic: Add, Sub, Mul and Divide (A·B⁻¹)
//	• Elimination: Determinant (Gaussian, partial pivoting) and Inverse
//	  (Gauss-Jordan, partial pivoting)
//	• Codecs: whitespace text stream, YAML documents, gonum interop
//
// Error policy:
//
//   - Shape mismatches in Add, Sub, Mul and Determinant are recoverable:
//     the call returns a zero-filled result of the documented shape together
//     with an error wrapping matrix.ErrDimensionMismatch, and logs a warning.
//   - Inversion failures (non-square or singular) are fatal: no result, an
//     error wrapping matrix.ErrNotInvertible.
//   - matrix.IsRecoverable tells the two apart.
//
// Layout:
//
//	matrix/            — Dense, kernels, options, codecs
//	internal/config/   — YAML configuration with env overrides
//	internal/logging/  — slog setup shared by all components
//	internal/session/  — the two-operand calculator flow
//	cmd/matcalc/       — command-line entry point
//
// Quick start:
//
//	a, _ := matrix.NewDenseFromRows([][]float64{{4, 3}, {6, 3}})
//	inv, err := matrix.Inverse(a)
//	if err != nil {
//		// errors.Is(err, matrix.ErrSingular) for singular input
//	}
//	fmt.Print(inv)
package densecalc
