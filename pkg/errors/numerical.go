package errors

import (
	"math"
)

// CheckScalar reports whether value is NaN or ±Inf.
func CheckScalar(value float64) bool {
	return math.IsNaN(value) || math.IsInf(value, 0)
}

// CheckMatrix reports whether any entry of matrix is NaN or ±Inf.
// It only inspects values and never modifies them.
func CheckMatrix(matrix interface {
	At(int, int) float64
	Dims() (int, int)
}) bool {
	rows, cols := matrix.Dims()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if CheckScalar(matrix.At(i, j)) {
				return true
			}
		}
	}
	return false
}

// WarnIfDiverged emits a DivergenceWarning when theta holds a non-finite value.
func WarnIfDiverged(algorithm string, theta interface {
	At(int, int) float64
	Dims() (int, int)
}, epochs int, alpha float64) {
	if CheckMatrix(theta) {
		Warn(NewDivergenceWarning(algorithm, epochs, alpha))
	}
}
