// Package munging implements the data munging kata: it reads daily
// temperature records and finds the day with the smallest spread between
// its high and low temperature.
package munging

import (
	"fmt"
	"iter"
	"math"
	"slices"
	"strconv"
	"strings"
)

// Mode selects how temperature fields are parsed.
type Mode int

const (
	// ModeDecimal accepts any finite decimal number ("86", "82.9", "-3.5").
	ModeDecimal Mode = iota
	// ModeInteger accepts base-10 integers only; "82.9" makes the line malformed.
	ModeInteger
)

// String returns the config spelling of the mode.
func (m Mode) String() string {
	switch m {
	case ModeDecimal:
		return "decimal"
	case ModeInteger:
		return "integer"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode maps a config value onto a Mode. The empty string selects
// ModeDecimal.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "decimal":
		return ModeDecimal, nil
	case "integer":
		return ModeInteger, nil
	default:
		return ModeDecimal, fmt.Errorf("unknown temperature mode %q (valid: decimal, integer)", s)
	}
}

// Day is one parsed weather record.
type Day struct {
	Number uint64
	Max    float64
	Min    float64
	// Line is the zero-based index of the source line. It only breaks ties.
	Line int
}

// Spread is Max - Min. It is negative when the record lists a minimum above
// its maximum; such records are not rejected.
func (d Day) Spread() float64 {
	return d.Max - d.Min
}

// ParseDay parses a single line. The line is split on runs of whitespace and
// must yield at least three tokens: an unsigned day number followed by the
// maximum and minimum temperatures. Further tokens are ignored. Lines that
// do not fit return false.
func ParseDay(line string, index int, mode Mode) (Day, bool) {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return Day{}, false
	}

	number, err := strconv.ParseUint(fields[0], 10, 64)
	if err != nil {
		return Day{}, false
	}
	maxTemp, ok := parseTemperature(fields[1], mode)
	if !ok {
		return Day{}, false
	}
	minTemp, ok := parseTemperature(fields[2], mode)
	if !ok {
		return Day{}, false
	}

	return Day{Number: number, Max: maxTemp, Min: minTemp, Line: index}, true
}

func parseTemperature(field string, mode Mode) (float64, bool) {
	if mode == ModeInteger {
		v, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return 0, false
		}
		return float64(v), true
	}

	v, err := strconv.ParseFloat(field, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// Days yields every well-formed record of text in line order. Malformed
// lines are skipped; they still count towards the Line index of later
// records.
func Days(text string, mode Mode) iter.Seq[Day] {
	return func(yield func(Day) bool) {
		index := 0
		for line := range strings.Lines(text) {
			if day, ok := ParseDay(line, index, mode); ok {
				if !yield(day) {
					return
				}
			}
			index++
		}
	}
}

// ParseDays collects Days into a slice.
func ParseDays(text string, mode Mode) []Day {
	return slices.Collect(Days(text, mode))
}
