// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for private kernels and the options snapshot.
//
// Purpose:
//   - Expose unexported helpers to matrix_test ONLY (file ends in _test.go,
//     so it never ships in production builds).

// GaussJordan_TestOnly runs the private Gauss-Jordan kernel on a copy of m and
// returns the reduced working matrix together with the inverse.
func GaussJordan_TestOnly(m *Dense, opts ...Option) (reduced, inv *Dense, err error) {
	return gaussJordan(m.clone(), gatherOptions(opts...))
}

// OptionsSnapshot is a read-only view of the resolved Options.
type OptionsSnapshot struct {
	PivotTol       float64
	ValidateNaNInf bool
	HasLogger      bool
}

// GatherOptionsSnapshot_TestOnly resolves opts like the kernels do.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{
		PivotTol:       o.pivotTol,
		ValidateNaNInf: o.validateNaNInf,
		HasLogger:      o.logger != nil && o.logger != discardLogger,
	}
}

// ValidateShape_TestOnly exposes the constructor shape check.
func ValidateShape_TestOnly(rows, cols int) error { return validateShape(rows, cols) }

// IsZeroPivot_TestOnly exposes the pivot policy.
func IsZeroPivot_TestOnly(p float64, opts ...Option) bool {
	return gatherOptions(opts...).isZeroPivot(p)
}

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicPivotToleranceInvalid_TestOnly = panicPivotToleranceInvalid
	PanicLoggerNil_TestOnly             = panicLoggerNil
)
