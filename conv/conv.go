// Package conv implements multi-channel 2-D cross-correlation, the
// "convolution" of convolutional networks. Kernels are not flipped.
package conv

import (
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/numerical/core/matrix"
	"github.com/YuminosukeSato/numerical/core/parallel"
	"github.com/YuminosukeSato/numerical/pkg/errors"
	"github.com/YuminosukeSato/numerical/pkg/log"
)

// parallelThreshold is the number of output rows above which rows are
// computed concurrently.
const parallelThreshold = 64

// Convolve slides every kernel over its paired channel and sums the
// per-channel responses. For output cell (i, j):
//
//	out[i][j] = Σ_c sum(kernels[c] .* channels[c][i:i+kh, j:j+kw])
//
// Channels are accumulated in input order. All kernels must share one shape,
// all channels must share one shape, and a channel must be at least as large
// as a kernel in both axes. The output has shape (ch-kh+1)×(cw-kw+1).
func Convolve(kernels, channels []*mat.Dense) (out *mat.Dense, err error) {
	const op = "conv.Convolve"
	defer errors.Recover(&err, op)

	kh, kw, ch, cw, err := checkShapes(op, kernels, channels)
	if err != nil {
		return nil, err
	}

	rows, cols := ch-kh+1, cw-kw+1
	logger := log.GetLoggerWithName("conv")
	start := time.Now()
	logger.Debug("convolve started",
		log.OperationKey, log.OperationConvolve,
		log.ChannelsKey, len(channels),
		log.ShapeKey, matrix.Shape(channels[0]),
	)

	out = matrix.Zeros(rows, cols)
	err = parallel.ParallelizeWithThreshold(rows, parallelThreshold, rowChunk(op, out, kernels, channels, kh, kw))
	if err != nil {
		return nil, err
	}

	logger.Debug("convolve finished",
		log.OperationKey, log.OperationConvolve,
		log.ShapeKey, matrix.Shape(out),
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return out, nil
}

// rowChunk returns the per-chunk worker that fills output rows [begin, end).
// Chunks may run on their own goroutines, so each one recovers its own
// panics.
func rowChunk(op string, out *mat.Dense, kernels, channels []*mat.Dense, kh, kw int) func(begin, end int) error {
	_, cols := out.Dims()
	return func(begin, end int) error {
		return errors.SafeExecute(op, func() error {
			for i := begin; i < end; i++ {
				row := out.RawRowView(i)
				for j := 0; j < cols; j++ {
					for c, kernel := range kernels {
						window, err := matrix.Window(channels[c], i, j, kh, kw)
						if err != nil {
							return err
						}
						row[j] += sumProduct(kernel, window, kh, kw)
					}
				}
			}
			return nil
		})
	}
}

// sumProduct returns sum(kernel .* window) in row-major order.
func sumProduct(kernel, window *mat.Dense, kh, kw int) float64 {
	var sum float64
	for a := 0; a < kh; a++ {
		k := kernel.RawRowView(a)
		w := window.RawRowView(a)
		for b := 0; b < kw; b++ {
			sum += k[b] * w[b]
		}
	}
	return sum
}

func checkShapes(op string, kernels, channels []*mat.Dense) (kh, kw, ch, cw int, err error) {
	if len(kernels) == 0 || len(channels) == 0 {
		return 0, 0, 0, 0, errors.NewValidationError("kernels", "at least one kernel and channel are required", len(kernels))
	}
	if len(kernels) != len(channels) {
		return 0, 0, 0, 0, errors.NewDimensionError(op, len(kernels), len(channels), 0)
	}
	for c := range kernels {
		if kernels[c] == nil || channels[c] == nil {
			return 0, 0, 0, 0, errors.NewValidationError("kernels, channels", "must not contain nil matrices", c)
		}
		if kernels[c].IsEmpty() || channels[c].IsEmpty() {
			return 0, 0, 0, 0, errors.NewValidationError("kernels, channels", "must not contain empty matrices", c)
		}
	}

	kh, kw = kernels[0].Dims()
	ch, cw = channels[0].Dims()
	for c := 1; c < len(kernels); c++ {
		r, w := kernels[c].Dims()
		if r != kh {
			return 0, 0, 0, 0, errors.NewDimensionError(op, kh, r, 0)
		}
		if w != kw {
			return 0, 0, 0, 0, errors.NewDimensionError(op, kw, w, 1)
		}
		r, w = channels[c].Dims()
		if r != ch {
			return 0, 0, 0, 0, errors.NewDimensionError(op, ch, r, 0)
		}
		if w != cw {
			return 0, 0, 0, 0, errors.NewDimensionError(op, cw, w, 1)
		}
	}
	if kh > ch {
		return 0, 0, 0, 0, errors.NewDimensionError(op, ch, kh, 0)
	}
	if kw > cw {
		return 0, 0, 0, 0, errors.NewDimensionError(op, cw, kw, 1)
	}
	return kh, kw, ch, cw, nil
}
