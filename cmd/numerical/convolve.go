package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/numerical/conv"
)

func newConvolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convolve",
		Short: "Convolve the 3-kernel, 3-channel example",
		Args:  cobra.NoArgs,
		RunE:  ConvolveHandler,
	}
}

// ConvolveHandler runs the multi-channel convolution example.
func ConvolveHandler(cmd *cobra.Command, _ []string) error {
	kernels := []*mat.Dense{
		mat.NewDense(3, 3, []float64{0, 1, 2, 3, 4, 5, 6, 7, 8}),
		mat.NewDense(3, 3, []float64{9, 10, 11, 12, 13, 14, 15, 16, 17}),
		mat.NewDense(3, 3, []float64{18, 19, 20, 21, 22, 23, 24, 25, 26}),
	}
	channels := []*mat.Dense{
		mat.NewDense(4, 4, []float64{
			0, 1, 0, 0,
			1, 1, 1, 1,
			0, 1, 1, 1,
			1, 0, 0, 1,
		}),
		mat.NewDense(4, 4, []float64{
			0, 0, 0, 1,
			0, 1, 0, 1,
			1, 0, 0, 0,
			1, 1, 1, 1,
		}),
		mat.NewDense(4, 4, []float64{
			1, 1, 0, 0,
			0, 1, 1, 0,
			0, 1, 1, 1,
			1, 0, 1, 0,
		}),
	}

	out, err := conv.Convolve(kernels, channels)
	if err != nil {
		return err
	}

	r, c := out.Dims()
	fmt.Fprintf(cmd.OutOrStdout(), "convolution (%dx%d):\n", r, c)
	renderMatrix(cmd.OutOrStdout(), out)
	return nil
}
