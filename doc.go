// Package numerical provides small, dependable numerical building blocks for
// Go: gradient ascent and descent over arbitrary scalar functions, linear and
// logistic regression trained by batch, mini-batch and stochastic gradient
// descent, and multi-channel 2-D convolution.
//
// Every routine is deterministic. Rows are visited in index order, blocks are
// never shuffled and inputs are never modified, so the same arguments always
// produce the same bits.
//
// # Quick Start
//
// Linear regression with mini-batch gradient descent:
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/numerical/linear"
//	    "gonum.org/v1/gonum/mat"
//	)
//
//	func main() {
//	    x := mat.NewDense(3, 2, []float64{1, 50, 1, 60, 1, 100})
//	    y := mat.NewDense(3, 1, []float64{120, 150, 250})
//	    theta := mat.NewDense(1, 2, []float64{1, 1})
//
//	    reg := linear.NewLinearRegression(x, y, theta, 0.0001, 1000)
//	    fitted, err := reg.Fit(1)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    price, _ := reg.Predict(fitted, mat.NewDense(1, 2, []float64{1, 80}))
//	    fmt.Println("Prediction:", price)
//	}
//
// # Packages
//
//   - gradient: coordinate-wise gradient ascent/descent
//   - linear: linear and logistic regression
//   - conv: multi-channel 2-D cross-correlation
//   - metrics: MSE and accuracy
//   - core/matrix: matrix helpers over gonum
//   - core/model: estimator interfaces and weight persistence
//   - core/parallel: parallel processing utilities
//   - pkg/errors, pkg/log: error types and structured logging
//
// # Errors
//
// Shape problems are reported as errors matching ErrDimensionMismatch,
// malformed arguments as ErrInvalidArgument and mini-batch sizes that do not
// tile the data as ErrIndexOutOfRange (see pkg/errors). Nothing is retried.
package numerical
