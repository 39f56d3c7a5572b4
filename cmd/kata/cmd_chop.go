package main

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"codekata/internal/chop"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newChopCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "chop <target> [values...]",
		Short: "Find a target in an ascending list of numbers",
		Long: `Runs the karate chop search and prints the resulting index.

The index is the position of the target when it is present, otherwise the
position of the largest value below it, or 0 when there is none.
Use -- before negative numbers so they are not read as flags.

Example:
  kata chop 5 1 3 5 7
  kata chop -- -2 -5 -3 0`,
		Args: cobra.MinimumNArgs(1),
		RunE: runChop,
	}
}

func runChop(cmd *cobra.Command, args []string) error {
	numbers, err := parseNumbers(args)
	if err != nil {
		return err
	}
	target, values := numbers[0], numbers[1:]
	if !slices.IsSorted(values) {
		return fmt.Errorf("values must be in ascending order: %s", strings.Join(args[1:], " "))
	}

	index, found := chop.Search(target, values)
	if logger != nil {
		logger.Debug("chop", zap.Float64("target", target), zap.Int("values", len(values)),
			zap.Int("index", index), zap.Bool("found", found))
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "chop(%s, [%s]): %d\n",
		formatNumber(target), joinNumbers(values), index)
	return err
}

func parseNumbers(args []string) ([]float64, error) {
	numbers := make([]float64, 0, len(args))
	for _, arg := range args {
		n, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", arg, err)
		}
		if math.IsNaN(n) {
			return nil, fmt.Errorf("invalid number %q: NaN is not ordered", arg)
		}
		numbers = append(numbers, n)
	}
	return numbers, nil
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

func joinNumbers(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = formatNumber(v)
	}
	return strings.Join(parts, ", ")
}
