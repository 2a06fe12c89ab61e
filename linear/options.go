package linear

import (
	"github.com/YuminosukeSato/numerical/pkg/log"
)

// Strategy selects the gradient descent variant an estimator uses in Fit.
type Strategy int

const (
	// MiniBatch updates theta after every contiguous block of rows.
	MiniBatch Strategy = iota
	// Batch updates theta once per epoch over all rows.
	Batch
	// Stochastic updates theta per sample and per coordinate.
	Stochastic
)

func (s Strategy) String() string {
	switch s {
	case Batch:
		return log.StrategyBatch
	case MiniBatch:
		return log.StrategyMiniBatch
	case Stochastic:
		return log.StrategyStochastic
	default:
		return "unknown"
	}
}

// ParseStrategy maps "batch", "minibatch" and "stochastic" to a Strategy.
func ParseStrategy(s string) (Strategy, bool) {
	switch s {
	case log.StrategyBatch:
		return Batch, true
	case log.StrategyMiniBatch, "mini-batch":
		return MiniBatch, true
	case log.StrategyStochastic:
		return Stochastic, true
	}
	return 0, false
}

// Option is a function that configures an estimator
type Option func(*estimator)

// WithStrategy sets the gradient descent variant used by Fit
func WithStrategy(s Strategy) Option {
	return func(e *estimator) {
		e.strategy = s
	}
}

// WithLogger sets the logger used for fit summaries
func WithLogger(l log.Logger) Option {
	return func(e *estimator) {
		e.logger = l
	}
}
