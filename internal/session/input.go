package session

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/densecalc/matrix"
	"gopkg.in/yaml.v3"
)

// ErrMissingOperand reports an input without matrix A or matrix B.
var ErrMissingOperand = errors.New("session: missing operand")

// Input holds the two operands of a session.
type Input struct {
	A *matrix.Dense `yaml:"a"`
	B *matrix.Dense `yaml:"b"`
}

// validate checks both operands are present.
func (in Input) validate() error {
	if in.A == nil {
		return fmt.Errorf("matrix A: %w", ErrMissingOperand)
	}
	if in.B == nil {
		return fmt.Errorf("matrix B: %w", ErrMissingOperand)
	}

	return nil
}

// DecodeInput reads A then B from a text stream in the matrix text format
// ("rows cols v00 v01 ..."). Tokens after B are ignored.
//
// Errors:
//   - ErrMissingOperand when the stream ends before A or before B.
//   - Any decoding error from matrix.Decoder (malformed, NaN/Inf, ...).
func DecodeInput(r io.Reader, opts ...matrix.Option) (Input, error) {
	dec := matrix.NewDecoder(r, opts...)

	a, err := dec.Decode()
	if err != nil {
		return Input{}, decodeErr("A", err)
	}
	b, err := dec.Decode()
	if err != nil {
		return Input{}, decodeErr("B", err)
	}

	return Input{A: a, B: b}, nil
}

func decodeErr(name string, err error) error {
	if errors.Is(err, io.EOF) {
		return fmt.Errorf("matrix %s: %w", name, ErrMissingOperand)
	}

	return fmt.Errorf("matrix %s: %w", name, err)
}

// LoadInput reads a YAML input document:
//
//	a:
//	  data: [[4, 3], [6, 3]]
//	b:
//	  rows: 2
//	  cols: 2
//	  data: [[1, 0], [0, 1]]
//
// opts apply to both operands, as in DecodeInput.
func LoadInput(path string, opts ...matrix.Option) (Input, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Input{}, fmt.Errorf("reading input file: %w", err)
	}

	return ParseInput(data, opts...)
}

// inputDoc defers operand decoding so matrix options can reach it.
type inputDoc struct {
	A yaml.Node `yaml:"a"`
	B yaml.Node `yaml:"b"`
}

// ParseInput decodes a YAML input document from memory.
func ParseInput(data []byte, opts ...matrix.Option) (Input, error) {
	var doc inputDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Input{}, fmt.Errorf("parsing input: %w", err)
	}

	a, err := operand("A", &doc.A, opts)
	if err != nil {
		return Input{}, err
	}
	b, err := operand("B", &doc.B, opts)
	if err != nil {
		return Input{}, err
	}

	return Input{A: a, B: b}, nil
}

func operand(name string, node *yaml.Node, opts []matrix.Option) (*matrix.Dense, error) {
	if node.Kind == 0 || (node.Kind == yaml.ScalarNode && node.Tag == "!!null") {
		return nil, fmt.Errorf("matrix %s: %w", name, ErrMissingOperand)
	}
	m, err := matrix.DecodeYAML(node, opts...)
	if err != nil {
		return nil, fmt.Errorf("parsing input: matrix %s: %w", name, err)
	}

	return m, nil
}
