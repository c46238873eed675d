package matrix_test

import (
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/densecalc/matrix"
)

// ExampleInverse inverts a 2×2 matrix and checks A·A⁻¹.
func ExampleInverse() {
	a, _ := matrix.NewDenseFromRows([][]float64{{4, 3}, {6, 3}})

	inv, err := matrix.Inverse(a)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(inv)

	id, _ := matrix.Identity(2)
	prod, _ := matrix.Mul(a, inv)
	fmt.Println("A·A⁻¹ ≈ I:", prod.AllClose(id, 1e-12))

	// Output:
	// [-0.5, 0.5]
	// [1, -0.6666666666666666]
	// A·A⁻¹ ≈ I: true
}

// ExampleDeterminant shows the determinant and the singular case.
func ExampleDeterminant() {
	a, _ := matrix.NewDenseFromRows([][]float64{{4, 3}, {6, 3}})
	s, _ := matrix.NewDenseFromRows([][]float64{{1, 2}, {2, 4}})

	det, _ := matrix.Determinant(a)
	zero, _ := matrix.Determinant(s)
	fmt.Println(det, zero)

	// Output:
	// -6 0
}

// ExampleAdd demonstrates the recoverable mismatch policy.
func ExampleAdd() {
	a, _ := matrix.NewDense(2, 3)
	b, _ := matrix.NewDense(3, 2)

	sum, err := matrix.Add(a, b)
	fmt.Println(matrix.IsRecoverable(err), sum.Rows(), sum.Cols())

	// Output:
	// true 2 3
}

// ExampleDivide demonstrates the fatal inversion policy.
func ExampleDivide() {
	a, _ := matrix.Identity(2)
	s, _ := matrix.NewDenseFromRows([][]float64{{1, 2}, {2, 4}})

	q, err := matrix.Divide(a, s)
	fmt.Println(q == nil, errors.Is(err, matrix.ErrSingular), matrix.IsRecoverable(err))

	// Output:
	// true true false
}

// ExampleDense_WriteTo renders a matrix in the text format.
func ExampleDense_WriteTo() {
	a, _ := matrix.NewDenseFromRows([][]float64{{4, 3}, {6, 3}})
	_, _ = a.WriteTo(os.Stdout)

	// Output:
	// Matrix Size: 2 x 2
	// 4 3
	// 6 3
}
