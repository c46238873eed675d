package session

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/katalvlaran/densecalc/internal/logging"
	"github.com/katalvlaran/densecalc/matrix"
)

// Output labels, one per step.
const (
	labelA        = "Matrix A is:"
	labelB        = "Matrix B is:"
	labelSum      = "A + B is:"
	labelDiff     = "A - B is:"
	labelProduct  = "A * B is:"
	labelDet      = "The determinant of A is:"
	labelInvA     = "The inverse matrix of A is:"
	labelInvB     = "The inverse matrix of B is:"
	labelADivB    = "Matrix A 'divided' by matrix B is:"
	labelBDivA    = "Matrix B 'divided' by matrix A is:"
	failurePrefix = "error:"
)

// Report summarizes a finished run.
type Report struct {
	Steps       int `yaml:"steps" json:"steps"`
	Recoverable int `yaml:"recoverable" json:"recoverable"`
	Fatal       int `yaml:"fatal" json:"fatal"`
}

// OK reports whether every step produced a genuine result.
func (r Report) OK() bool { return r.Recoverable == 0 && r.Fatal == 0 }

// Option configures Run.
type Option func(*options)

type options struct {
	logger    *logging.Logger
	matrix    []matrix.Option
	precision int
}

// WithLogger sets the logger for step and failure diagnostics. The same
// logger receives the matrix package's recoverable warnings.
func WithLogger(l *logging.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMatrixOptions forwards numeric options (pivot tolerance, NaN/Inf
// policy) to every matrix operation.
func WithMatrixOptions(opts ...matrix.Option) Option {
	return func(o *options) { o.matrix = append(o.matrix, opts...) }
}

// WithPrecision sets the number of significant digits in printed values.
// 0 prints the shortest representation that round-trips.
func WithPrecision(p int) Option {
	return func(o *options) { o.precision = p }
}

func gatherOptions(opts ...Option) options {
	o := options{
		logger: &logging.Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))},
	}
	for _, set := range opts {
		set(&o)
	}

	return o
}

// runner carries the per-run state: the first write error sticks and
// suppresses further output.
type runner struct {
	out    io.Writer
	enc    *matrix.Encoder
	prec   int
	log    *logging.Logger
	report Report
	err    error
}

// Run executes the calculator flow on in and writes the results to out.
//
// Implementation:
//   - Stage 1: validate both operands are present.
//   - Stage 2: print A and B.
//   - Stage 3: run A+B, A−B, A·B, det(A), A⁻¹, B⁻¹, A/B, B/A in order,
//     classifying each failure with matrix.IsRecoverable.
//
// Returns:
//   - Report: counts of steps and of recoverable and fatal failures.
//   - error: ErrMissingOperand, or the first write error on out.
//     Arithmetic failures are reported, not returned.
func Run(in Input, out io.Writer, opts ...Option) (Report, error) {
	if err := in.validate(); err != nil {
		return Report{}, err
	}
	o := gatherOptions(opts...)
	mopts := append([]matrix.Option{matrix.WithLogger(o.logger.Logger)}, o.matrix...)

	r := &runner{
		out:  out,
		enc:  matrix.NewEncoder(out),
		prec: o.precision,
		log:  o.logger.With("component", "session"),
	}
	r.enc.SetPrecision(o.precision)
	r.log.Debug("session started",
		"a_shape", shape(in.A),
		"b_shape", shape(in.B),
	)

	r.show(labelA, in.A)
	r.show(labelB, in.B)

	sum, err := matrix.Add(in.A, in.B, mopts...)
	r.result(labelSum, sum, err)

	diff, err := matrix.Sub(in.A, in.B, mopts...)
	r.result(labelDiff, diff, err)

	prod, err := matrix.Mul(in.A, in.B, mopts...)
	r.result(labelProduct, prod, err)

	det, err := matrix.Determinant(in.A, mopts...)
	r.scalar(labelDet, det, err)

	invA, err := matrix.Inverse(in.A, mopts...)
	r.result(labelInvA, invA, err)

	invB, err := matrix.Inverse(in.B, mopts...)
	r.result(labelInvB, invB, err)

	aDivB, err := matrix.Divide(in.A, in.B, mopts...)
	r.result(labelADivB, aDivB, err)

	bDivA, err := matrix.Divide(in.B, in.A, mopts...)
	r.result(labelBDivA, bDivA, err)

	r.log.Debug("session finished",
		"steps", r.report.Steps,
		"recoverable", r.report.Recoverable,
		"fatal", r.report.Fatal,
	)

	return r.report, r.err
}

// classify counts a step and reports whether its result may be printed.
func (r *runner) classify(label string, err error) bool {
	r.report.Steps++
	if err == nil {
		return true
	}
	if matrix.IsRecoverable(err) {
		r.report.Recoverable++

		return true
	}
	r.report.Fatal++
	r.log.Error("step failed", "step", label, "error", err)
	r.printf("%s %s %v\n\n", label, failurePrefix, err)

	return false
}

func (r *runner) result(label string, m *matrix.Dense, err error) {
	if r.classify(label, err) {
		r.show(label, m)
	}
}

// show prints a labelled matrix followed by a blank line.
func (r *runner) show(label string, m *matrix.Dense) {
	r.printf("%s\n", label)
	if r.err == nil {
		r.err = r.enc.Encode(m)
	}
	r.printf("\n")
}

func (r *runner) scalar(label string, v float64, err error) {
	if !r.classify(label, err) {
		return
	}
	prec := r.prec
	if prec < 1 {
		prec = matrix.ShortestPrecision
	}
	r.printf("%s %s\n\n", label, strconv.FormatFloat(v, 'g', prec, 64))
}

func (r *runner) printf(format string, args ...any) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintf(r.out, format, args...)
}

func shape(m *matrix.Dense) string {
	r, c := m.Shape()

	return fmt.Sprintf("%dx%d", r, c)
}
