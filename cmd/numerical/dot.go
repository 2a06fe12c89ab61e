package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/YuminosukeSato/numerical"
	"github.com/YuminosukeSato/numerical/pkg/errors"
)

func newDotCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "dot A B",
		Short:   "Sum the pairwise products of two comma-separated vectors",
		Long:    "Sum the pairwise products of two comma-separated vectors. Extra elements of the longer vector are ignored.",
		Example: "  numerical dot 1,2,3 1,2",
		Args:    cobra.ExactArgs(2),
		RunE:    DotHandler,
	}
}

// DotHandler prints DotProductAndSum of the two arguments.
func DotHandler(cmd *cobra.Command, args []string) error {
	a, err := parseVector(args[0])
	if err != nil {
		return err
	}
	b, err := parseVector(args[1])
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), formatFloat(numerical.DotProductAndSum(a, b)))
	return nil
}

// parseVector parses "1,2.5,-3". An empty string is the empty vector.
func parseVector(s string) ([]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	values := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, errors.NewValidationError("vector", "element is not a number", p)
		}
		values[i] = v
	}
	return values, nil
}
