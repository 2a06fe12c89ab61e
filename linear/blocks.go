package linear

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/numerical/core/matrix"
)

// block holds the per-block quantities that stay fixed across epochs.
type block struct {
	x     *mat.Dense // b×k view
	xT    *mat.Dense // k×b
	yT    *mat.Dense // 1×b
	xMean *mat.Dense // x / b
}

// newBlocks splits x and y into contiguous blocks of size rows. size must
// divide the number of rows.
func newBlocks(x, y *mat.Dense, size int) []block {
	n, _ := x.Dims()
	blocks := make([]block, 0, n/size)
	for start := 0; start < n; start += size {
		xb, err := matrix.Rows(x, start, size)
		if err != nil {
			panic(err)
		}
		yb, err := matrix.Rows(y, start, size)
		if err != nil {
			panic(err)
		}
		var xMean mat.Dense
		xMean.Scale(1/float64(size), xb)
		blocks = append(blocks, block{
			x:     xb,
			xT:    matrix.Clone(xb.T()),
			yT:    matrix.Clone(yb.T()),
			xMean: &xMean,
		})
	}
	return blocks
}
