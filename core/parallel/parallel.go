// Package parallel splits an index range into contiguous chunks and runs
// them on a bounded group of goroutines.
package parallel

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Parallelize divides [0, items) into one contiguous chunk per CPU core and
// runs fn on each chunk concurrently. The first error returned by any chunk
// is returned after all chunks finish.
func Parallelize(items int, fn func(start, end int) error) error {
	if items == 0 {
		return nil
	}

	numWorkers := runtime.NumCPU()
	if numWorkers > items {
		numWorkers = items
	}

	// ceiling division
	chunkSize := (items + numWorkers - 1) / numWorkers

	var g errgroup.Group
	g.SetLimit(numWorkers)

	for i := 0; i < numWorkers; i++ {
		start := i * chunkSize
		end := start + chunkSize
		if end > items {
			end = items
		}
		if start >= end {
			continue
		}

		g.Go(func() error {
			return fn(start, end)
		})
	}

	return g.Wait()
}

// ParallelizeWithThreshold runs fn(0, items) on the calling goroutine when
// items <= threshold, and falls back to Parallelize otherwise.
func ParallelizeWithThreshold(items int, threshold int, fn func(start, end int) error) error {
	if items <= threshold {
		return fn(0, items)
	}
	return Parallelize(items, fn)
}
