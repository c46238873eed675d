// SPDX-License-Identifier: MIT

// Package matrix: plain-text codec.
//
// Wire shape (whitespace separated, newlines insignificant):
//
//	<rows> <cols>
//	<v00> <v01> ... <v0c-1>
//	...
//
// Rendering uses a header line and one line per row:
//
//	Matrix Size: 2 x 2
//	4 3
//	6 3
//
// Neither side prompts or prints anything else; interactive prompting is the
// caller's business.
package matrix

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	ctxDecode  = "Decode"
	ctxWriteTo = "WriteTo"

	// HeaderPrefix starts the first line written by WriteTo.
	HeaderPrefix = "Matrix Size:"

	// decodePrealloc caps the element buffer reserved before values arrive.
	decodePrealloc = 1 << 16
)

// Decoder reads successive matrices from a text stream.
// It is not safe for concurrent use.
type Decoder struct {
	sc   *bufio.Scanner
	opts Options
}

// NewDecoder returns a Decoder reading whitespace separated tokens from r.
// WithNoValidateNaNInf lets "NaN"/"Inf" tokens through.
func NewDecoder(r io.Reader, opts ...Option) *Decoder {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	return &Decoder{sc: sc, opts: gatherOptions(opts...)}
}

// Decode reads the next matrix: rows, cols, then rows*cols values row-major.
//
// Errors:
//   - io.EOF when the stream ends before the first token (clean end).
//   - ErrMalformedInput for non-numeric tokens or a truncated element list.
//   - ErrInvalidDimensions for negative dimensions or a rows*cols overflow.
//   - ErrNaNInf for non-finite values under the default numeric policy.
func (d *Decoder) Decode() (*Dense, error) {
	rows, err := d.nextInt()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}

		return nil, fmt.Errorf("%s: rows: %w", ctxDecode, err)
	}
	cols, err := d.nextInt()
	if err != nil {
		return nil, fmt.Errorf("%s: cols: %w", ctxDecode, eofAsMalformed(err))
	}
	if err = validateShape(rows, cols); err != nil {
		return nil, fmt.Errorf("%s: %dx%d: %w", ctxDecode, rows, cols, err)
	}

	// Storage grows with the values read; a short stream never reserves rows*cols.
	n := rows * cols
	data := make([]float64, 0, min(n, decodePrealloc))
	var v float64
	for k := 0; k < n; k++ {
		if v, err = d.nextFloat(); err != nil {
			return nil, denseErrorf(ctxDecode, k/cols, k%cols, eofAsMalformed(err))
		}
		if d.opts.validateNaNInf && isNonFinite(v) {
			return nil, denseErrorf(ctxDecode, k/cols, k%cols, ErrNaNInf)
		}
		data = append(data, v)
	}

	return &Dense{r: rows, c: cols, data: data, validateNaNInf: d.opts.validateNaNInf}, nil
}

func (d *Decoder) next() (string, error) {
	if !d.sc.Scan() {
		if err := d.sc.Err(); err != nil {
			return "", err
		}

		return "", io.EOF
	}

	return d.sc.Text(), nil
}

func (d *Decoder) nextInt() (int, error) {
	tok, err := d.next()
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("token %q: %w", tok, ErrMalformedInput)
	}

	return n, nil
}

func (d *Decoder) nextFloat() (float64, error) {
	tok, err := d.next()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, fmt.Errorf("token %q: %w", tok, ErrMalformedInput)
	}

	return v, nil
}

// eofAsMalformed turns a mid-matrix EOF into ErrMalformedInput (truncation).
func eofAsMalformed(err error) error {
	if errors.Is(err, io.EOF) {
		return fmt.Errorf("unexpected end of input: %w", ErrMalformedInput)
	}

	return err
}

// Decode is a convenience wrapper reading one matrix from s.
func Decode(s string, opts ...Option) (*Dense, error) {
	m, err := NewDecoder(strings.NewReader(s), opts...).Decode()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%s: empty input: %w", ctxDecode, ErrMalformedInput)
	}

	return m, err
}

// WriteTo renders m as a header line followed by one line per row with
// space separated values (shortest %g). It implements io.WriterTo.
//
// Complexity:
//   - Time O(r*c).
func (m *Dense) WriteTo(w io.Writer) (int64, error) {
	if m == nil {
		return 0, fmt.Errorf("Dense.%s: %w", ctxWriteTo, ErrNilMatrix)
	}

	return writeText(w, m, ShortestPrecision)
}

// ShortestPrecision selects the shortest representation that round-trips.
const ShortestPrecision = -1

// Encoder writes matrices to a text stream in the WriteTo rendering.
// It is not safe for concurrent use.
type Encoder struct {
	w    io.Writer
	prec int
}

// NewEncoder returns an Encoder writing to w with ShortestPrecision.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w, prec: ShortestPrecision}
}

// SetPrecision sets the number of significant digits for %g rendering.
// Values below 1 restore ShortestPrecision.
func (e *Encoder) SetPrecision(prec int) {
	if prec < 1 {
		prec = ShortestPrecision
	}
	e.prec = prec
}

// Encode writes one matrix in the WriteTo rendering.
func (e *Encoder) Encode(m *Dense) error {
	if m == nil {
		return fmt.Errorf("Encoder.Encode: %w", ErrNilMatrix)
	}
	_, err := writeText(e.w, m, e.prec)

	return err
}

// writeText is the shared renderer behind WriteTo and Encoder.
func writeText(w io.Writer, m *Dense, prec int) (int64, error) {
	bw := bufio.NewWriter(w)
	var total int64
	n, err := fmt.Fprintf(bw, "%s %d x %d\n", HeaderPrefix, m.r, m.c)
	total += int64(n)
	if err != nil {
		return total, fmt.Errorf("Dense.%s: %w", ctxWriteTo, err)
	}
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			if j > 0 {
				n, _ = bw.WriteString(" ")
				total += int64(n)
			}
			n, _ = bw.WriteString(strconv.FormatFloat(m.data[i*m.c+j], 'g', prec, 64))
			total += int64(n)
		}
		n, _ = bw.WriteString("\n")
		total += int64(n)
	}
	if err = bw.Flush(); err != nil {
		return total, fmt.Errorf("Dense.%s: %w", ctxWriteTo, err)
	}

	return total, nil
}

// Render returns the WriteTo rendering as a string.
func (m *Dense) Render() string {
	var b strings.Builder
	_, _ = m.WriteTo(&b) // only a nil m fails; it renders as ""

	return b.String()
}
