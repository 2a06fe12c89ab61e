// Command numerical runs the toolkit's worked examples: convolution, linear
// and logistic regression, gradient descent and the dot-product sum.
package main

import (
	"log/slog"
	"os"

	"github.com/YuminosukeSato/numerical/pkg/errors"
	"github.com/YuminosukeSato/numerical/pkg/log"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("command failed",
			log.ErrAttr(err),
			slog.String(log.ErrorCodeKey, errorCode(err)),
		)
		os.Exit(1)
	}
}

// errorCode maps an error to its category code for structured logs.
func errorCode(err error) string {
	switch {
	case errors.Is(err, errors.ErrDimensionMismatch):
		return log.ErrorDimensionMismatch
	case errors.Is(err, errors.ErrIndexOutOfRange):
		return log.ErrorIndexOutOfRange
	case errors.Is(err, errors.ErrInvalidArgument):
		return log.ErrorInvalidArgument
	default:
		return "INTERNAL"
	}
}
