package linear

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/numerical/core/matrix"
	"github.com/YuminosukeSato/numerical/core/model"
	"github.com/YuminosukeSato/numerical/pkg/errors"
	"github.com/YuminosukeSato/numerical/pkg/log"
)

var (
	_ model.Regression[float64] = (*LinearRegression)(nil)
	_ model.Regression[bool]    = (*LogisticRegression)(nil)
	_ model.WeightExporter      = (*LinearRegression)(nil)
	_ model.WeightExporter      = (*LogisticRegression)(nil)
)

type fitFuncs struct {
	batch      func(x, y, theta *mat.Dense, alpha float64, epochs int) (*mat.Dense, error)
	miniBatch  func(x, y, theta *mat.Dense, alpha float64, epochs, size int) (*mat.Dense, error)
	stochastic func(x, y, theta *mat.Dense, alpha float64, epochs int) (*mat.Dense, error)
}

// estimator holds the training inputs and the last fitted theta. The inputs
// are borrowed and never modified.
type estimator struct {
	model.BaseEstimator

	x            *mat.Dense
	y            *mat.Dense
	initialTheta *mat.Dense
	alpha        float64
	epochs       int

	strategy Strategy
	logger   log.Logger
	fits     fitFuncs

	theta *mat.Dense
}

func newEstimator(name string, fits fitFuncs, x, y, initialTheta *mat.Dense, alpha float64, epochs int, opts []Option) *estimator {
	e := &estimator{
		BaseEstimator: model.NewBaseEstimator(name),
		x:             x,
		y:             y,
		initialTheta:  initialTheta,
		alpha:         alpha,
		epochs:        epochs,
		strategy:      MiniBatch,
		fits:          fits,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = log.GetLoggerWithName(name)
	}
	return e
}

// Fit trains with the configured strategy and returns a copy of the fitted
// theta. miniBatchSize is ignored by the Batch and Stochastic strategies.
func (e *estimator) Fit(miniBatchSize int) (*mat.Dense, error) {
	var (
		theta *mat.Dense
		err   error
	)
	switch e.strategy {
	case Batch:
		theta, err = e.fits.batch(e.x, e.y, e.initialTheta, e.alpha, e.epochs)
	case MiniBatch:
		theta, err = e.fits.miniBatch(e.x, e.y, e.initialTheta, e.alpha, e.epochs, miniBatchSize)
	case Stochastic:
		theta, err = e.fits.stochastic(e.x, e.y, e.initialTheta, e.alpha, e.epochs)
	default:
		err = errors.NewValidationError("strategy", "unknown strategy", int(e.strategy))
	}
	if err != nil {
		return nil, err
	}

	n, k := e.x.Dims()
	e.theta = theta
	e.State.SetDimensions(k, n)
	e.State.SetFitted()
	errors.WarnIfDiverged(e.Name()+"."+e.strategy.String(), theta, e.epochs, e.alpha)

	e.logger.Info("fit completed",
		log.ModelNameKey, e.Name(),
		log.StrategyKey, e.strategy.String(),
		log.SamplesKey, n,
		log.FeaturesKey, k,
		log.EpochKey, e.epochs,
	)
	return matrix.Clone(theta), nil
}

// Strategy returns the configured strategy.
func (e *estimator) Strategy() Strategy {
	return e.strategy
}

// Theta returns a copy of the fitted theta.
func (e *estimator) Theta() (*mat.Dense, error) {
	if err := e.RequireFitted("Theta"); err != nil {
		return nil, err
	}
	return matrix.Clone(e.theta), nil
}

// ExportWeights returns the fitted theta with its training hyperparameters.
func (e *estimator) ExportWeights() (*model.ThetaWeights, error) {
	if err := e.RequireFitted("ExportWeights"); err != nil {
		return nil, err
	}
	w := model.NewThetaWeights(e.Name(), e.theta)
	w.Hyperparameters["alpha"] = e.alpha
	w.Hyperparameters["epochs"] = e.epochs
	w.Hyperparameters["strategy"] = e.strategy.String()

	state := e.State.GetState()
	w.Metadata["n_features"] = state.NFeatures
	w.Metadata["n_samples"] = state.NSamples
	return w, nil
}

// ImportWeights restores a fitted theta exported by a model of the same type.
func (e *estimator) ImportWeights(w *model.ThetaWeights) error {
	const op = "ImportWeights"
	if w == nil {
		return errors.NewValidationError("weights", "must not be nil", nil)
	}
	if err := w.Validate(); err != nil {
		return err
	}
	if w.ModelType != e.Name() {
		return errors.NewValidationError("model_type", "does not match "+e.Name(), w.ModelType)
	}
	theta, err := w.Matrix()
	if err != nil {
		return err
	}
	_, k := theta.Dims()
	state := model.ModelState{Fitted: true, NFeatures: k}
	if e.x != nil {
		n, want := e.x.Dims()
		if k != want {
			return errors.NewDimensionError(e.Name()+"."+op, want, k, 1)
		}
		state.NSamples = n
	}
	e.theta = theta
	e.State.SetState(state)
	return nil
}

// LinearRegression fits a linear model by gradient descent on the squared
// error. The zero value is not usable; use NewLinearRegression.
type LinearRegression struct {
	*estimator
}

// NewLinearRegression creates a linear regression over x (n×k) and y (n×1)
// starting from initialTheta (1×k). The default strategy is MiniBatch.
func NewLinearRegression(x, y, initialTheta *mat.Dense, alpha float64, epochs int, opts ...Option) *LinearRegression {
	fits := fitFuncs{
		batch:      BatchLinearRegression,
		miniBatch:  MiniBatchLinearRegression,
		stochastic: StochasticLinearRegression,
	}
	return &LinearRegression{newEstimator(linearModelName, fits, x, y, initialTheta, alpha, epochs, opts)}
}

// Predict returns sum(theta .* x).
func (r *LinearRegression) Predict(theta, x mat.Matrix) (float64, error) {
	return PredictLinear(theta, x)
}

// LogisticRegression fits a binary classifier by gradient descent on the
// squared error of the sigmoid output. Labels must be 0 or 1.
type LogisticRegression struct {
	*estimator
}

// NewLogisticRegression creates a logistic regression over x (n×k) and
// labels y (n×1) starting from initialTheta (1×k). The default strategy is
// MiniBatch.
func NewLogisticRegression(x, y, initialTheta *mat.Dense, alpha float64, epochs int, opts ...Option) *LogisticRegression {
	fits := fitFuncs{
		batch:      BatchLogisticRegression,
		miniBatch:  MiniBatchLogisticRegression,
		stochastic: StochasticLogisticRegression,
	}
	return &LogisticRegression{newEstimator(logisticModelName, fits, x, y, initialTheta, alpha, epochs, opts)}
}

// Predict reports whether σ(sum(theta .* x)) > 0.5.
func (r *LogisticRegression) Predict(theta, x mat.Matrix) (bool, error) {
	return PredictLogistic(theta, x)
}
