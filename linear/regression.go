// Package linear implements linear and logistic regression trained by
// gradient descent in batch, mini-batch and stochastic variants.
//
// All fits clone the initial theta and never modify their inputs. Rows of x
// are visited in index order and blocks are never shuffled, so a fit is a
// pure function of its arguments.
package linear

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/numerical/core/matrix"
	"github.com/YuminosukeSato/numerical/pkg/errors"
	"github.com/YuminosukeSato/numerical/pkg/log"
)

const linearModelName = "LinearRegression"

// BatchLinearRegression fits theta with full-batch gradient descent on the
// squared error. Each epoch applies
//
//	delta = (θ·Xᵀ − Yᵀ)·(X/n)
//	θ ← θ − α·delta
func BatchLinearRegression(x, y, initialTheta *mat.Dense, alpha float64, epochs int) (theta *mat.Dense, err error) {
	const op = "linear.BatchLinearRegression"
	defer errors.Recover(&err, op)

	if err := checkFitInputs(op, x, y, initialTheta, epochs); err != nil {
		return nil, err
	}
	done := fitTrace(log.GetLoggerWithName(linearModelName), log.StrategyBatch, x, alpha, epochs, 0)
	defer done()

	n, _ := x.Dims()
	return linearBlocks(x, y, initialTheta, alpha, epochs, n), nil
}

// MiniBatchLinearRegression fits theta on contiguous blocks of miniBatchSize
// rows, updating theta after every block. The number of rows must be a
// multiple of miniBatchSize.
func MiniBatchLinearRegression(x, y, initialTheta *mat.Dense, alpha float64, epochs, miniBatchSize int) (theta *mat.Dense, err error) {
	const op = "linear.MiniBatchLinearRegression"
	defer errors.Recover(&err, op)

	if err := checkFitInputs(op, x, y, initialTheta, epochs); err != nil {
		return nil, err
	}
	n, _ := x.Dims()
	if err := checkMiniBatch(op, n, miniBatchSize); err != nil {
		return nil, err
	}
	done := fitTrace(log.GetLoggerWithName(linearModelName), log.StrategyMiniBatch, x, alpha, epochs, miniBatchSize)
	defer done()

	return linearBlocks(x, y, initialTheta, alpha, epochs, miniBatchSize), nil
}

// StochasticLinearRegression updates theta one coordinate at a time for every
// sample. Later coordinates of the same sample see the earlier updates.
func StochasticLinearRegression(x, y, initialTheta *mat.Dense, alpha float64, epochs int) (theta *mat.Dense, err error) {
	const op = "linear.StochasticLinearRegression"
	defer errors.Recover(&err, op)

	if err := checkFitInputs(op, x, y, initialTheta, epochs); err != nil {
		return nil, err
	}
	done := fitTrace(log.GetLoggerWithName(linearModelName), log.StrategyStochastic, x, alpha, epochs, 1)
	defer done()

	n, k := x.Dims()
	theta = matrix.Clone(initialTheta)
	for epoch := 0; epoch < epochs; epoch++ {
		for i := 0; i < n; i++ {
			target := y.At(i, 0)
			for j := 0; j < k; j++ {
				delta := (matrix.RowDot(theta, x, i) - target) * x.At(i, j)
				theta.Set(0, j, theta.At(0, j)-alpha*delta)
			}
		}
	}
	return theta, nil
}

// PredictLinear returns sum(theta .* x) for a 1×k theta and sample.
func PredictLinear(theta, x mat.Matrix) (float64, error) {
	const op = "linear.PredictLinear"
	if err := checkSample(op, theta, x); err != nil {
		return 0, err
	}
	return matrix.ComponentSum(theta, x)
}

// linearBlocks runs the shared block update. A size equal to the number of
// rows is the batch algorithm. The block size must already be validated.
func linearBlocks(x, y, initialTheta *mat.Dense, alpha float64, epochs, size int) *mat.Dense {
	n, _ := x.Dims()
	blocks := newBlocks(x, y, size)

	theta := matrix.Clone(initialTheta)
	for epoch := 0; epoch < epochs; epoch++ {
		for start := 0; start < n; start += size {
			theta = linearStep(theta, blocks[start/size], alpha)
		}
	}
	return theta
}

func linearStep(theta *mat.Dense, b block, alpha float64) *mat.Dense {
	var residual mat.Dense
	residual.Mul(theta, b.xT)
	residual.Sub(&residual, b.yT)

	var delta mat.Dense
	delta.Mul(&residual, b.xMean)
	delta.Scale(alpha, &delta)

	var next mat.Dense
	next.Sub(theta, &delta)
	return &next
}
