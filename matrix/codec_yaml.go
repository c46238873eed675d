// SPDX-License-Identifier: MIT

// Package matrix: YAML codec for Dense.
//
// Document shape:
//
//	rows: 2
//	cols: 2
//	data: [[4, 3], [6, 3]]
//
// rows/cols may be omitted when data is present; they are then inferred.
package matrix

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

const (
	ctxYAML       = "Dense.UnmarshalYAML"
	ctxDecodeYAML = "DecodeYAML"
)

// denseDoc is the on-wire representation.
type denseDoc struct {
	Rows *int        `yaml:"rows,omitempty"`
	Cols *int        `yaml:"cols,omitempty"`
	Data [][]float64 `yaml:"data,flow"`
}

// Compile-time assertions for the yaml.v3 hooks.
var (
	_ yaml.Marshaler   = (*Dense)(nil)
	_ yaml.Unmarshaler = (*Dense)(nil)
)

// MarshalYAML implements yaml.Marshaler.
func (m *Dense) MarshalYAML() (interface{}, error) {
	r, c := m.r, m.c

	return denseDoc{Rows: &r, Cols: &c, Data: m.RawRows()}, nil
}

// UnmarshalYAML implements yaml.Unmarshaler under the default numeric
// policy. Use DecodeYAML to pass options.
func (m *Dense) UnmarshalYAML(value *yaml.Node) error {
	out, err := decodeYAML(value, gatherOptions())
	if err != nil {
		return err
	}
	m.r, m.c, m.data, m.validateNaNInf = out.r, out.c, out.data, out.validateNaNInf

	return nil
}

// DecodeYAML builds a Dense from a YAML node, honouring opts (notably
// WithNoValidateNaNInf).
//
// Errors:
//   - ErrNilMatrix for a nil node.
//   - ErrMalformedInput (declared shape disagrees with data, bad node).
//   - ErrRaggedRows, ErrInvalidDimensions, ErrNaNInf.
func DecodeYAML(node *yaml.Node, opts ...Option) (*Dense, error) {
	if node == nil {
		return nil, fmt.Errorf("%s: %w", ctxDecodeYAML, ErrNilMatrix)
	}

	return decodeYAML(node, gatherOptions(opts...))
}

// Implementation:
//   - Stage 1: decode the node into denseDoc.
//   - Stage 2: infer missing rows/cols from data; cross-check declared ones,
//     row lengths included, before anything is allocated.
//   - Stage 3: copy into a fresh buffer, enforcing the finite-value policy.
func decodeYAML(value *yaml.Node, o Options) (*Dense, error) {
	var doc denseDoc
	if err := value.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%s: %v: %w", ctxYAML, err, ErrMalformedInput)
	}

	rows := len(doc.Data)
	if doc.Rows != nil {
		rows = *doc.Rows
	}
	cols := 0
	if len(doc.Data) > 0 {
		cols = len(doc.Data[0])
	}
	if doc.Cols != nil {
		cols = *doc.Cols
	}
	if err := validateShape(rows, cols); err != nil {
		return nil, fmt.Errorf("%s: %dx%d: %w", ctxYAML, rows, cols, err)
	}
	if len(doc.Data) != rows {
		return nil, fmt.Errorf("%s: rows=%d but data has %d rows: %w", ctxYAML, rows, len(doc.Data), ErrMalformedInput)
	}
	var i, j int
	for i = 0; i < rows; i++ {
		if len(doc.Data[i]) != cols {
			return nil, fmt.Errorf("%s: row %d has %d values, want %d: %w", ctxYAML, i, len(doc.Data[i]), cols, ErrRaggedRows)
		}
	}

	out := zeroDense(rows, cols)
	out.validateNaNInf = o.validateNaNInf
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if out.validateNaNInf && isNonFinite(doc.Data[i][j]) {
				return nil, denseErrorf("UnmarshalYAML", i, j, ErrNaNInf)
			}
			out.data[i*cols+j] = doc.Data[i][j]
		}
	}

	return out, nil
}
