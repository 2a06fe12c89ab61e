// Package model defines the capabilities shared by the regression estimators
// and the fitted-state and weight persistence helpers they are built on.
package model

import (
	"gonum.org/v1/gonum/mat"
)

// Regression is a trainable model that produces a 1×k parameter row.
// T is the prediction type: float64 for linear regression and bool for
// logistic regression.
type Regression[T any] interface {
	// Fit trains the model and returns the fitted theta. miniBatchSize is
	// only consulted by the mini-batch strategy.
	Fit(miniBatchSize int) (*mat.Dense, error)

	// Predict evaluates theta on a single 1×k sample.
	Predict(theta, x mat.Matrix) (T, error)
}

// WeightExporter is implemented by models whose fitted theta can be
// exported and restored.
type WeightExporter interface {
	ExportWeights() (*ThetaWeights, error)
	ImportWeights(w *ThetaWeights) error
}
