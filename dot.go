package numerical

import "gonum.org/v1/gonum/floats"

// DotProductAndSum returns Σ a[i]*b[i] over the first min(len(a), len(b))
// elements. It returns 0 when either slice is empty.
func DotProductAndSum(a, b []float64) float64 {
	n := min(len(a), len(b))
	if n == 0 {
		return 0
	}
	return floats.Dot(a[:n], b[:n])
}
