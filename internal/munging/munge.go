package munging

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// EmptyInputError is returned when no line of the input parses into a Day.
type EmptyInputError struct {
	// Lines is the number of lines that were inspected.
	Lines int
}

func (e *EmptyInputError) Error() string {
	if e.Lines == 0 {
		return "no valid lines: input is empty"
	}
	return fmt.Sprintf("no valid lines: none of %d lines is a day record", e.Lines)
}

// compareDays orders by spread, then by source line.
func compareDays(a, b Day) int {
	return cmp.Or(
		cmp.Compare(a.Spread(), b.Spread()),
		cmp.Compare(a.Line, b.Line),
	)
}

// MinSpread returns the day with the smallest spread. Among equal spreads the
// day from the earliest source line wins, whatever order days is in.
func MinSpread(days []Day) (Day, error) {
	if len(days) == 0 {
		return Day{}, &EmptyInputError{}
	}
	return slices.MinFunc(days, compareDays), nil
}

// Options controls Munge.
type Options struct {
	Mode Mode
	// Logger receives per-line diagnostics. Nil disables logging.
	Logger *zap.Logger
}

// Result is the outcome of a Munge run.
type Result struct {
	Day    Day
	Spread float64
	// Lines and Parsed count inspected lines and well-formed records.
	Lines  int
	Parsed int
}

// Munge parses text and picks the day with the smallest temperature spread.
func Munge(text string, opts Options) (Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	var (
		days  []Day
		lines int
	)
	for line := range strings.Lines(text) {
		day, ok := ParseDay(line, lines, opts.Mode)
		if ok {
			days = append(days, day)
		} else {
			logger.Debug("skipping line",
				zap.Int("line", lines+1),
				zap.String("text", strings.TrimRight(line, "\r\n")),
			)
		}
		lines++
	}

	if len(days) == 0 {
		logger.Warn("no day records found", zap.Int("lines", lines))
		return Result{}, &EmptyInputError{Lines: lines}
	}

	winner, err := MinSpread(days)
	if err != nil {
		return Result{}, err
	}

	logger.Info("smallest spread found",
		zap.Uint64("day", winner.Number),
		zap.Float64("spread", winner.Spread()),
		zap.Int("line", winner.Line+1),
		zap.Int("parsed", len(days)),
		zap.Int("lines", lines),
		zap.Stringer("mode", opts.Mode),
	)

	return Result{
		Day:    winner,
		Spread: winner.Spread(),
		Lines:  lines,
		Parsed: len(days),
	}, nil
}

// Report renders r as the one-line summary printed by the CLI.
func Report(r Result) string {
	return fmt.Sprintf("Day %d has the smallest temperature spread of %s.",
		r.Day.Number, strconv.FormatFloat(r.Spread, 'f', -1, 64))
}
