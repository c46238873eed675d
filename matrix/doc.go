// Package matrix offers a dense, row-major float64 matrix and the classic
// direct algorithms on it.
//
// The matrix package provides:
//
//   - Dense: fixed-shape, mutable-content storage with bounds-checked
//     accessors, deep Clone and whole-value CopyFrom.
//   - Add, Sub, Mul: element-wise and O(n³) products.
//   - Determinant: Gaussian elimination with partial pivoting.
//   - Inverse, Divide: Gauss-Jordan elimination on an augmented identity;
//     Divide(A, B) is A · B⁻¹.
//   - Text and YAML codecs (Decoder, Encoder, WriteTo, yaml.v3 hooks).
//   - gonum interop: Gonum views, ToGonum, FromGonum.
//
// Two error classes are kept apart. Shape mismatches in Add/Sub/Mul and a
// non-square Determinant are recoverable: the call returns a zero value of a
// documented shape together with ErrDimensionMismatch. Inversion failures are
// fatal: the result is nil and the error wraps ErrNotInvertible. Use
// IsRecoverable to tell them apart.
//
// Zero pivots are tested with exact equality unless WithPivotTolerance is
// given.
//
// See the examples in this package for usage patterns.
package matrix
