package linear

import (
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/numerical/pkg/errors"
	"github.com/YuminosukeSato/numerical/pkg/log"
)

// checkFitInputs validates x (n×k), y (n×1), theta (1×k) and epochs.
func checkFitInputs(op string, x, y, theta *mat.Dense, epochs int) error {
	if x == nil || y == nil || theta == nil {
		return errors.NewValidationError("x, y, theta", "must not be nil", nil)
	}
	if x.IsEmpty() {
		return errors.NewValidationError("x", "must contain at least one sample and one feature", 0)
	}
	n, k := x.Dims()
	if y.IsEmpty() {
		return errors.NewDimensionError(op, n, 0, 0)
	}
	yr, yc := y.Dims()
	if yr != n {
		return errors.NewDimensionError(op, n, yr, 0)
	}
	if yc != 1 {
		return errors.NewDimensionError(op, 1, yc, 1)
	}
	if theta.IsEmpty() {
		return errors.NewDimensionError(op, k, 0, 1)
	}
	tr, tc := theta.Dims()
	if tr != 1 {
		return errors.NewDimensionError(op, 1, tr, 0)
	}
	if tc != k {
		return errors.NewDimensionError(op, k, tc, 1)
	}
	if epochs < 0 {
		return errors.NewValidationError("epochs", "must be non-negative", epochs)
	}
	return nil
}

// checkMiniBatch rejects a block size that does not tile the n samples.
// The reported index is the last row the trailing partial block would read.
func checkMiniBatch(op string, n, size int) error {
	if size <= 0 {
		return errors.NewValidationError("miniBatchSize", "must be positive", size)
	}
	if n%size != 0 {
		return errors.NewIndexError(op, (n/size+1)*size-1, n, 0)
	}
	return nil
}

// checkSample validates the 1×k theta and sample passed to a predictor.
func checkSample(op string, theta, x mat.Matrix) error {
	if theta == nil || x == nil {
		return errors.NewValidationError("theta, x", "must not be nil", nil)
	}
	tr, tc := theta.Dims()
	if tr != 1 {
		return errors.NewDimensionError(op, 1, tr, 0)
	}
	xr, xc := x.Dims()
	if xr != 1 {
		return errors.NewDimensionError(op, 1, xr, 0)
	}
	if xc != tc {
		return errors.NewDimensionError(op, tc, xc, 1)
	}
	return nil
}

// fitTrace logs the start of a fit and returns a func that logs its end.
func fitTrace(logger log.Logger, strategy string, x *mat.Dense, alpha float64, epochs, batchSize int) func() {
	n, k := x.Dims()
	start := time.Now()
	logger.Debug("fit started",
		log.OperationKey, log.OperationFit,
		log.StrategyKey, strategy,
		log.SamplesKey, n,
		log.FeaturesKey, k,
		log.BatchSizeKey, batchSize,
		log.LearningRateKey, alpha,
		log.EpochKey, epochs,
	)
	return func() {
		logger.Debug("fit finished",
			log.OperationKey, log.OperationFit,
			log.StrategyKey, strategy,
			log.DurationMsKey, time.Since(start).Milliseconds(),
		)
	}
}
