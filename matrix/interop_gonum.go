// SPDX-License-Identifier: MIT

// Package matrix: gonum interoperability.
//
// Purpose:
//   - Hand a *Dense to gonum routines without copying (Gonum view).
//   - Convert between *Dense and gonum's *mat.Dense in both directions.
//
// gonum cannot represent empty matrices (mat.NewDense panics with
// mat.ErrZeroLength), so ToGonum rejects 0-row or 0-column inputs with
// ErrInvalidDimensions instead of panicking.
package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const (
	ctxToGonum   = "ToGonum"
	ctxFromGonum = "FromGonum"
)

// gonumView exposes a *Dense through the mat.Matrix interface.
// At panics on out-of-range indices, matching gonum's own types.
type gonumView struct{ d *Dense }

var _ mat.Matrix = gonumView{}

func (v gonumView) Dims() (r, c int) { return v.d.r, v.d.c }

func (v gonumView) At(i, j int) float64 {
	if uint(i) >= uint(v.d.r) {
		panic(mat.ErrRowAccess)
	}
	if uint(j) >= uint(v.d.c) {
		panic(mat.ErrColAccess)
	}

	return v.d.data[i*v.d.c+j]
}

func (v gonumView) T() mat.Matrix { return mat.Transpose{Matrix: v} }

// Gonum returns a read-only mat.Matrix view sharing m's storage.
// Later writes through Set are visible in the view.
func (m *Dense) Gonum() mat.Matrix { return gonumView{d: m} }

// ToGonum copies m into a new gonum *mat.Dense.
//
// Errors:
//   - ErrInvalidDimensions when m has zero rows or zero columns.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense) ToGonum() (*mat.Dense, error) {
	if m.r == 0 || m.c == 0 {
		return nil, fmt.Errorf("Dense.%s: %dx%d: %w", ctxToGonum, m.r, m.c, ErrInvalidDimensions)
	}
	data := make([]float64, len(m.data))
	copy(data, m.data)

	return mat.NewDense(m.r, m.c, data), nil
}

// FromGonum copies any gonum matrix into a new *Dense.
// A *mat.Dense source is copied row by row from its raw storage; other
// implementations are read through At.
//
// Errors:
//   - ErrNilMatrix for a nil source.
//   - ErrNaNInf for non-finite elements under the default numeric policy.
func FromGonum(src mat.Matrix, opts ...Option) (*Dense, error) {
	if src == nil {
		return nil, fmt.Errorf("%s: %w", ctxFromGonum, ErrNilMatrix)
	}
	o := gatherOptions(opts...)
	r, c := src.Dims()
	out := zeroDense(r, c)
	out.validateNaNInf = o.validateNaNInf

	var i, j int
	if gd, ok := src.(*mat.Dense); ok {
		raw := gd.RawMatrix()
		for i = 0; i < r; i++ {
			copy(out.data[i*c:(i+1)*c], raw.Data[i*raw.Stride:i*raw.Stride+c])
		}
	} else {
		for i = 0; i < r; i++ {
			for j = 0; j < c; j++ {
				out.data[i*c+j] = src.At(i, j)
			}
		}
	}

	if o.validateNaNInf {
		for k, v := range out.data {
			if isNonFinite(v) {
				return nil, denseErrorf(ctxFromGonum, k/c, k%c, ErrNaNInf)
			}
		}
	}

	return out, nil
}
