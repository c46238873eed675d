// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep shape immutable after construction; CopyFrom is the only way to
//     replace it and always swaps shape and storage together.
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone/CopyFrom: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"       // method tag used in error wrappers
	ctxSet      = "Set"      // method tag used in error wrappers
	ctxRow      = "Row"      // method tag used in error wrappers
	ctxCopyFrom = "CopyFrom" // method tag used in error wrappers
	ctxFromRows = "NewDenseFromRows"
	ctxFromFlat = "NewDenseFromSlice"
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Format: "Dense.<method>(row,col): %w"; the sentinel stays reachable via errors.Is.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols); either may be zero.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables optional NaN/Inf rejection in Set.
type Dense struct {
	r, c           int       // row and column counts (>=0)
	data           []float64 // contiguous row-major storage (len == r*c)
	validateNaNInf bool      // numeric guard: reject NaN/Inf in Set when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with shape validation and default numeric policy.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer and initialize policy.
//
// Behavior highlights:
//   - 0×N, N×0 and 0×0 are legal empty matrices.
//   - No panics on user errors; returns sentinel errors.
//
// Inputs:
//   - rows: non-negative number of rows
//   - cols: non-negative number of columns
//
// Returns:
//   - *Dense: newly allocated matrix with every element 0.0.
//
// Errors:
//   - ErrInvalidDimensions (negative dimension, or rows*cols overflows int).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if err := validateShape(rows, cols); err != nil {
		return nil, err
	}
	// make() zero-fills the buffer deterministically.
	buf := make([]float64, rows*cols)

	return &Dense{
		r:              rows,
		c:              cols,
		data:           buf,
		validateNaNInf: DefaultValidateNaNInf,
	}, nil
}

// zeroDense allocates an r×c zero matrix for kernel results.
// Kernels only call it with dimensions taken from existing matrices, so a
// negative shape is impossible; clamp anyway to keep the helper total.
func zeroDense(rows, cols int) *Dense {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols), validateNaNInf: DefaultValidateNaNInf}
}

// Identity returns the n×n identity matrix. Identity(0) is the empty matrix.
// Errors: ErrInvalidDimensions when n < 0.
// Complexity: O(n²).
func Identity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1.0
	}

	return m, nil
}

// NewDenseFromRows builds a matrix from nested row slices (copied).
// MAIN DESCRIPTION:
//   - rows[i][j] becomes element (i, j); values are entered top-to-bottom,
//     left-to-right within a row.
//
// Behavior highlights:
//   - An empty outer slice yields 0×0. A single empty row yields 1×0.
//   - The input is never aliased.
//
// Errors:
//   - ErrRaggedRows when rows have unequal length.
//   - ErrNaNInf when a value is not finite (default numeric policy).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFromRows(rows [][]float64) (*Dense, error) {
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	m := zeroDense(r, c)
	var i, j int
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("%s: row %d has %d values, want %d: %w", ctxFromRows, i, len(rows[i]), c, ErrRaggedRows)
		}
		for j = 0; j < c; j++ {
			if m.validateNaNInf && isNonFinite(rows[i][j]) {
				return nil, denseErrorf(ctxFromRows, i, j, ErrNaNInf)
			}
			m.data[i*c+j] = rows[i][j]
		}
	}

	return m, nil
}

// NewDenseFromSlice builds an rows×cols matrix from a flat row-major slice (copied).
//
// Errors:
//   - ErrInvalidDimensions for negative dimensions.
//   - ErrDimensionMismatch when len(values) != rows*cols.
//   - ErrNaNInf when a value is not finite (default numeric policy).
func NewDenseFromSlice(rows, cols int, values []float64) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxFromFlat, err)
	}
	if len(values) != rows*cols {
		return nil, fmt.Errorf("%s: got %d values for %dx%d: %w", ctxFromFlat, len(values), rows, cols, ErrDimensionMismatch)
	}
	for k, v := range values {
		if m.validateNaNInf && isNonFinite(v) {
			return nil, denseErrorf(ctxFromFlat, k/cols, k%cols, ErrNaNInf)
		}
	}
	copy(m.data, values)

	return m, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// IsSquare reports Rows() == Cols().
func (m *Dense) IsSquare() bool { return m.r == m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods (At/Set) wrap the sentinel with coordinates and method name.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range; returns a wrapped sentinel error.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
// MAIN DESCRIPTION:
//   - Safe element write with optional finite-only policy.
//
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: enforce numeric policy (reject NaN/±Inf when enabled).
//   - Stage 3: write into flat buffer.
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for invalid numbers.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && isNonFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Row returns a copy of row i.
// Errors: ErrOutOfRange.
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// RawRows returns a nested copy of the elements, one slice per row.
// Useful for table-style assertions and for YAML encoding.
func (m *Dense) RawRows() [][]float64 {
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = make([]float64, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// Clone returns a deep copy (new buffer, same numeric policy).
// Independence: mutations do not affect the original.
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	return m.clone()
}

// clone is the typed variant of Clone used by kernels.
func (m *Dense) clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           cp,
		validateNaNInf: m.validateNaNInf,
	}
}

// CopyFrom replaces m's dimensions and storage with a deep copy of src.
// MAIN DESCRIPTION:
//   - Assignment: shape and elements are replaced wholesale.
//
// Behavior highlights:
//   - m.CopyFrom(m) is a no-op; storage is neither cleared nor corrupted.
//   - After the call m and src never share storage.
//   - The receiver keeps its own numeric policy.
//
// Errors:
//   - ErrNilMatrix when m or src is nil.
//   - Propagated At errors for non-Dense sources.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense) CopyFrom(src Matrix) error {
	if m == nil {
		return fmt.Errorf("Dense.%s: %w", ctxCopyFrom, ErrNilMatrix)
	}
	if err := ValidateNotNil(src); err != nil {
		return fmt.Errorf("Dense.%s: %w", ctxCopyFrom, err)
	}
	if d, ok := src.(*Dense); ok && d == m {
		return nil // self-assignment
	}
	d, err := asDense(src)
	if err != nil {
		return fmt.Errorf("Dense.%s: %w", ctxCopyFrom, err)
	}
	buf := make([]float64, len(d.data))
	copy(buf, d.data)
	m.r, m.c, m.data = d.r, d.c, buf

	return nil
}

// Equal reports exact shape and element equality.
func (m *Dense) Equal(b Matrix) bool {
	return m.AllClose(b, 0)
}

// AllClose reports equal shapes and |m[i,j] - b[i,j]| <= tol for all elements.
// A nil b is never close.
func (m *Dense) AllClose(b Matrix, tol float64) bool {
	if ValidateNotNil(b) != nil || m.r != b.Rows() || m.c != b.Cols() {
		return false
	}
	d, err := asDense(b)
	if err != nil {
		return false
	}
	var diff float64
	for k := range m.data {
		if m.data[k] == d.data[k] {
			continue // also covers equal infinities
		}
		diff = math.Abs(m.data[k] - d.data[k])
		if !(diff <= tol) { // NaN diff is never close
			return false
		}
	}

	return true
}

// String provides a readable row-wise dump for diagnostics.
// Implementation:
//   - Stage 1: iterate rows/cols deterministically.
//   - Stage 2: write values into strings.Builder with standard delimiters.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for formatting.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// asDense returns m itself when it is a *Dense, otherwise a materialized copy.
// Kernels use it once per operand so the hot loops only see flat slices.
func asDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	rows, cols := m.Rows(), m.Cols()
	if err := validateShape(rows, cols); err != nil {
		return nil, err
	}
	out := zeroDense(rows, cols)
	var i, j int
	var v float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			out.data[i*cols+j] = v
		}
	}

	return out, nil
}

// rowViews returns per-row slice headers over d.data. Swapping two headers
// swaps rows in O(1); d itself is left in its original order.
func rowViews(d *Dense) [][]float64 {
	out := make([][]float64, d.r)
	for i := 0; i < d.r; i++ {
		out[i] = d.data[i*d.c : (i+1)*d.c : (i+1)*d.c]
	}

	return out
}
