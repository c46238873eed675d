// Package session runs the two-matrix calculator flow.
//
// Given matrices A and B it prints both operands and then, in order:
// A+B, A−B, A·B, det(A), A⁻¹, B⁻¹, A/B (= A·B⁻¹) and B/A (= B·A⁻¹).
//
// Failures never abort the run:
//   - Recoverable shape mismatches print the zero-shaped result the matrix
//     package returns; the matrix package logs the warning.
//   - Fatal inversion failures print a diagnostic line instead of a result
//     and are logged at error level.
//
// Run returns a Report with the step and failure counts. Inputs come from a
// whitespace separated text stream (DecodeInput) or a YAML document with
// keys "a" and "b" (LoadInput).
package session
