// Package matrix is the dense-matrix glue shared by the regression and
// convolution engines. Matrices are gonum *mat.Dense values; this package adds
// the checked construction, row-block extraction and component-wise reductions
// the engines need, reporting shape problems as errors instead of panics.
package matrix

import (
	"fmt"

	"github.com/YuminosukeSato/numerical/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// New creates a rows×cols matrix from row-major data.
func New(rows, cols int, data []float64) (*mat.Dense, error) {
	if rows <= 0 {
		return nil, errors.NewValidationError("rows", "must be positive", rows)
	}
	if cols <= 0 {
		return nil, errors.NewValidationError("cols", "must be positive", cols)
	}
	if len(data) != rows*cols {
		return nil, errors.NewDimensionError("matrix.New", rows*cols, len(data), 1)
	}
	buf := make([]float64, len(data))
	copy(buf, data)
	return mat.NewDense(rows, cols, buf), nil
}

// Must is New for literal data known to be well formed. It panics on error.
func Must(rows, cols int, data []float64) *mat.Dense {
	m, err := New(rows, cols, data)
	if err != nil {
		panic(err)
	}
	return m
}

// Zeros creates a rows×cols matrix of zeros.
func Zeros(rows, cols int) *mat.Dense {
	return mat.NewDense(rows, cols, nil)
}

// Clone returns a freshly allocated copy of m.
func Clone(m mat.Matrix) *mat.Dense {
	var c mat.Dense
	c.CloneFrom(m)
	return &c
}

// Rows returns the n-row block of m starting at row start. The block is a
// view sharing m's storage and must be treated as read-only.
func Rows(m *mat.Dense, start, n int) (*mat.Dense, error) {
	if n <= 0 {
		return nil, errors.NewValidationError("n", "row block length must be positive", n)
	}
	r, c := m.Dims()
	if start < 0 || start >= r {
		return nil, errors.NewIndexError("matrix.Rows", start, r, 0)
	}
	if start+n > r {
		return nil, errors.NewIndexError("matrix.Rows", start+n-1, r, 0)
	}
	return m.Slice(start, start+n, 0, c).(*mat.Dense), nil
}

// Window returns the h×w sub-block of m whose top-left corner is (i, j), as a
// read-only view.
func Window(m *mat.Dense, i, j, h, w int) (*mat.Dense, error) {
	r, c := m.Dims()
	if i < 0 || i+h > r {
		return nil, errors.NewIndexError("matrix.Window", i+h-1, r, 0)
	}
	if j < 0 || j+w > c {
		return nil, errors.NewIndexError("matrix.Window", j+w-1, c, 1)
	}
	return m.Slice(i, i+h, j, j+w).(*mat.Dense), nil
}

// ComponentSum returns sum(a .* b), the sum of the component-wise product.
// Accumulation runs in row-major order.
func ComponentSum(a, b mat.Matrix) (float64, error) {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ar != br {
		return 0, errors.NewDimensionError("matrix.ComponentSum", ar, br, 0)
	}
	if ac != bc {
		return 0, errors.NewDimensionError("matrix.ComponentSum", ac, bc, 1)
	}
	return componentSum(a, b, ar, ac), nil
}

func componentSum(a, b mat.Matrix, r, c int) float64 {
	var sum float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			sum += a.At(i, j) * b.At(i, j)
		}
	}
	return sum
}

// RowDot returns sum(theta .* x[i]) for a 1×k theta and an n×k x.
// Callers check the shapes once before looping.
func RowDot(theta, x *mat.Dense, i int) float64 {
	return floats.Dot(theta.RawRowView(0), x.RawRowView(i))
}

// Shape renders the dimensions of m as "RxC".
func Shape(m mat.Matrix) string {
	r, c := m.Dims()
	return fmt.Sprintf("%dx%d", r, c)
}
