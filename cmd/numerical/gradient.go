package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/YuminosukeSato/numerical/gradient"
	"github.com/YuminosukeSato/numerical/pkg/errors"
)

func newGradientCmd() *cobra.Command {
	gradientCmd := &cobra.Command{
		Use:   "gradient [X0 Y0]",
		Short: "Find the optimum of x²+y² by gradient descent or ascent",
		Long: `Find the optimum of a two-variable paraboloid.

With --mode desc the minimum of x²+y² is found by gradient descent; with
--mode asc the maximum of -(x²+y²) is found by gradient ascent. Both end at
the origin. The start point defaults to (5, 8).`,
		Args: cobra.RangeArgs(0, 2),
		RunE: GradientHandler,
	}

	gradientCmd.Flags().String("mode", "desc", "Direction (asc, desc)")
	gradientCmd.Flags().Float64("alpha", 0.1, "Learning rate")
	gradientCmd.Flags().Int("epochs", 1200, "Number of passes over the variables")
	return gradientCmd
}

// GradientHandler runs the paraboloid example.
func GradientHandler(cmd *cobra.Command, args []string) error {
	modeName, _ := cmd.Flags().GetString("mode")
	alpha, _ := cmd.Flags().GetFloat64("alpha")
	epochs, _ := cmd.Flags().GetInt("epochs")

	start := []float64{5, 8}
	if len(args) == 1 {
		return errors.NewValidationError("args", "give both X0 and Y0 or neither", args)
	}
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return errors.NewValidationError("args", "start coordinate is not a number", arg)
		}
		start[i] = v
	}

	var (
		mode        gradient.Mode
		derivatives []gradient.Derivative
		objective   string
	)
	switch modeName {
	case "desc", "descend":
		mode = gradient.Descend
		objective = "x²+y²"
		derivatives = []gradient.Derivative{
			func(v []float64) float64 { return 2 * v[0] },
			func(v []float64) float64 { return 2 * v[1] },
		}
	case "asc", "ascend":
		mode = gradient.Ascend
		objective = "-(x²+y²)"
		derivatives = []gradient.Derivative{
			func(v []float64) float64 { return -2 * v[0] },
			func(v []float64) float64 { return -2 * v[1] },
		}
	default:
		return errors.NewValidationError("mode", "must be asc or desc", modeName)
	}

	values, err := gradient.Gradient(start, derivatives, alpha, epochs, mode)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s of %s from (%s, %s)\n", mode, objective, formatFloat(start[0]), formatFloat(start[1]))
	renderTable(out, []string{"variable", "value"}, [][]string{
		{"x", formatFloat(values[0])},
		{"y", formatFloat(values[1])},
	})
	return nil
}
