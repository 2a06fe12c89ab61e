package linear

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/numerical/core/matrix"
	"github.com/YuminosukeSato/numerical/pkg/errors"
	"github.com/YuminosukeSato/numerical/pkg/log"
)

const logisticModelName = "LogisticRegression"

// Sigmoid returns 1/(1+e^(-z)). Large negative z overflows to +Inf in the
// exponent and yields 0.
func Sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}

// BatchLogisticRegression fits theta for binary labels in {0, 1}. Each epoch
// applies
//
//	g = σ(θ·Xᵀ)
//	delta = ((g − Yᵀ) .* g .* (1 − g))·X / n
//	θ ← θ − α·delta
func BatchLogisticRegression(x, y, initialTheta *mat.Dense, alpha float64, epochs int) (theta *mat.Dense, err error) {
	const op = "linear.BatchLogisticRegression"
	defer errors.Recover(&err, op)

	if err := checkFitInputs(op, x, y, initialTheta, epochs); err != nil {
		return nil, err
	}
	done := fitTrace(log.GetLoggerWithName(logisticModelName), log.StrategyBatch, x, alpha, epochs, 0)
	defer done()

	n, _ := x.Dims()
	return logisticBlocks(x, y, initialTheta, alpha, epochs, n), nil
}

// MiniBatchLogisticRegression is the block variant of BatchLogisticRegression
// with the gradient scaled by 1/miniBatchSize and an update after every block.
func MiniBatchLogisticRegression(x, y, initialTheta *mat.Dense, alpha float64, epochs, miniBatchSize int) (theta *mat.Dense, err error) {
	const op = "linear.MiniBatchLogisticRegression"
	defer errors.Recover(&err, op)

	if err := checkFitInputs(op, x, y, initialTheta, epochs); err != nil {
		return nil, err
	}
	n, _ := x.Dims()
	if err := checkMiniBatch(op, n, miniBatchSize); err != nil {
		return nil, err
	}
	done := fitTrace(log.GetLoggerWithName(logisticModelName), log.StrategyMiniBatch, x, alpha, epochs, miniBatchSize)
	defer done()

	return logisticBlocks(x, y, initialTheta, alpha, epochs, miniBatchSize), nil
}

// StochasticLogisticRegression updates theta coordinate by coordinate. The
// activation is recomputed before each coordinate update.
func StochasticLogisticRegression(x, y, initialTheta *mat.Dense, alpha float64, epochs int) (theta *mat.Dense, err error) {
	const op = "linear.StochasticLogisticRegression"
	defer errors.Recover(&err, op)

	if err := checkFitInputs(op, x, y, initialTheta, epochs); err != nil {
		return nil, err
	}
	done := fitTrace(log.GetLoggerWithName(logisticModelName), log.StrategyStochastic, x, alpha, epochs, 1)
	defer done()

	n, k := x.Dims()
	theta = matrix.Clone(initialTheta)
	for epoch := 0; epoch < epochs; epoch++ {
		for i := 0; i < n; i++ {
			target := y.At(i, 0)
			for j := 0; j < k; j++ {
				g := Sigmoid(matrix.RowDot(theta, x, i))
				delta := (g - target) * g * (1 - g) * x.At(i, j)
				theta.Set(0, j, theta.At(0, j)-alpha*delta)
			}
		}
	}
	return theta, nil
}

// PredictLogistic reports whether σ(sum(theta .* x)) is strictly greater
// than 0.5.
func PredictLogistic(theta, x mat.Matrix) (bool, error) {
	const op = "linear.PredictLogistic"
	if err := checkSample(op, theta, x); err != nil {
		return false, err
	}
	z, err := matrix.ComponentSum(theta, x)
	if err != nil {
		return false, err
	}
	return Sigmoid(z) > 0.5, nil
}

// Probability returns σ(sum(theta .* x)).
func Probability(theta, x mat.Matrix) (float64, error) {
	const op = "linear.Probability"
	if err := checkSample(op, theta, x); err != nil {
		return 0, err
	}
	z, err := matrix.ComponentSum(theta, x)
	if err != nil {
		return 0, err
	}
	return Sigmoid(z), nil
}

func logisticBlocks(x, y, initialTheta *mat.Dense, alpha float64, epochs, size int) *mat.Dense {
	n, _ := x.Dims()
	blocks := newBlocks(x, y, size)
	factor := 1 / float64(size)

	theta := matrix.Clone(initialTheta)
	for epoch := 0; epoch < epochs; epoch++ {
		for start := 0; start < n; start += size {
			theta = logisticStep(theta, blocks[start/size], alpha, factor)
		}
	}
	return theta
}

func logisticStep(theta *mat.Dense, b block, alpha, factor float64) *mat.Dense {
	var g mat.Dense
	g.Mul(theta, b.xT)
	g.Apply(func(_, _ int, v float64) float64 { return Sigmoid(v) }, &g)

	// ((g − Yᵀ) .* g) .* (1 − g)
	var residual mat.Dense
	residual.Sub(&g, b.yT)
	residual.MulElem(&residual, &g)
	residual.Apply(func(i, j int, v float64) float64 { return v * (1 - g.At(i, j)) }, &residual)

	var delta mat.Dense
	delta.Mul(&residual, b.x)
	delta.Scale(factor, &delta)
	delta.Scale(alpha, &delta)

	var next mat.Dense
	next.Sub(theta, &delta)
	return &next
}
