// Package gradient implements a coordinate-wise gradient ascent/descent
// loop over an arbitrary list of scalar variables.
package gradient

import (
	"time"

	"github.com/YuminosukeSato/numerical/pkg/errors"
	"github.com/YuminosukeSato/numerical/pkg/log"
)

// Derivative returns the partial derivative of the objective with respect to
// one variable, evaluated at values. It must not retain values.
type Derivative func(values []float64) float64

// Mode selects the update direction.
type Mode int

const (
	// Descend moves each variable against its derivative.
	Descend Mode = iota
	// Ascend moves each variable along its derivative.
	Ascend
)

func (m Mode) String() string {
	switch m {
	case Ascend:
		return "ascend"
	case Descend:
		return "descend"
	default:
		return "unknown"
	}
}

// Gradient runs epochs passes over the variables. Within a pass variable i
// is updated with derivatives[i] evaluated on the current values, so later
// variables see the updates already made to earlier ones in the same pass.
// initialValues is not modified.
func Gradient(initialValues []float64, derivatives []Derivative, alpha float64, epochs int, mode Mode) ([]float64, error) {
	if len(derivatives) != len(initialValues) {
		return nil, errors.NewValidationError("derivatives", "need one derivative per variable", len(derivatives))
	}
	for i, d := range derivatives {
		if d == nil {
			return nil, errors.NewValidationError("derivatives", "derivative must not be nil", i)
		}
	}
	if epochs < 0 {
		return nil, errors.NewValidationError("epochs", "must be non-negative", epochs)
	}

	var sign float64
	switch mode {
	case Ascend:
		sign = 1
	case Descend:
		sign = -1
	default:
		return nil, errors.NewValidationError("mode", "must be Ascend or Descend", int(mode))
	}

	logger := log.GetLoggerWithName("gradient")
	start := time.Now()
	logger.Debug("gradient started",
		log.OperationKey, log.OperationGradient,
		"mode", mode.String(),
		log.FeaturesKey, len(initialValues),
		log.LearningRateKey, alpha,
		log.EpochKey, epochs,
	)

	values := make([]float64, len(initialValues))
	copy(values, initialValues)

	for epoch := 0; epoch < epochs; epoch++ {
		for i, derivative := range derivatives {
			delta := derivative(values)
			values[i] += sign * alpha * delta
		}
	}

	logger.Debug("gradient finished",
		log.OperationKey, log.OperationGradient,
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return values, nil
}
