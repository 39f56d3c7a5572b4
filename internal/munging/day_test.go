package munging

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		input   string
		want    Mode
		wantErr bool
	}{
		{input: "", want: ModeDecimal},
		{input: "decimal", want: ModeDecimal},
		{input: " Integer ", want: ModeInteger},
		{input: "INTEGER", want: ModeInteger},
		{input: "float", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMode(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "unknown temperature mode")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "decimal", ModeDecimal.String())
	assert.Equal(t, "integer", ModeInteger.String())
	assert.Equal(t, "Mode(7)", Mode(7).String())
}

func TestParseDay(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		mode   Mode
		want   Day
		wantOK bool
	}{
		{
			name:   "plain record",
			line:   "1 10 2",
			want:   Day{Number: 1, Max: 10, Min: 2, Line: 4},
			wantOK: true,
		},
		{
			name:   "weather.dat layout with extra columns",
			line:   "   1  88    59    74          53.8       0.00 F       280  9.6 270  17  1.6  93 23 1004.5",
			want:   Day{Number: 1, Max: 88, Min: 59, Line: 4},
			wantOK: true,
		},
		{
			name:   "tabs and trailing newline",
			line:   "\t14\t61\t59\r\n",
			want:   Day{Number: 14, Max: 61, Min: 59, Line: 4},
			wantOK: true,
		},
		{
			name:   "decimal temperatures",
			line:   "3 82.5 80",
			want:   Day{Number: 3, Max: 82.5, Min: 80, Line: 4},
			wantOK: true,
		},
		{
			name:   "negative temperatures",
			line:   "3 -1.5 -4",
			want:   Day{Number: 3, Max: -1.5, Min: -4, Line: 4},
			wantOK: true,
		},
		{
			name:   "integer mode accepts integers",
			line:   "3 -1 -4",
			mode:   ModeInteger,
			want:   Day{Number: 3, Max: -1, Min: -4, Line: 4},
			wantOK: true,
		},
		{name: "integer mode rejects fractions", line: "1 10.5 2", mode: ModeInteger},
		{name: "empty line", line: ""},
		{name: "blank line", line: "   \t "},
		{name: "two tokens", line: "4 10"},
		{name: "header", line: "  Dy MxT   MnT   AvT"},
		{name: "summary row", line: "  mo  82.9  60.5  71.7"},
		{name: "fractional day", line: "1.5 10 2"},
		{name: "negative day", line: "-1 10 2"},
		{name: "starred maximum", line: "26  97*   64    81"},
		{name: "starred minimum", line: "9  86    32*   59"},
		{name: "non-numeric minimum", line: "3 15 x"},
		{name: "NaN temperature", line: "3 NaN 1"},
		{name: "infinite temperature", line: "3 Inf 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDay(tt.line, 4, tt.mode)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestDaySpread(t *testing.T) {
	assert.Equal(t, 8.0, Day{Max: 10, Min: 2}.Spread())
	assert.Equal(t, -3.0, Day{Max: 2, Min: 5}.Spread())
	assert.Equal(t, 2.5, Day{Max: 82.5, Min: 80}.Spread())
}

func TestParseDaysKeepsSourceLineIndex(t *testing.T) {
	text := "  Dy MxT MnT\n\n1 10 2\nbogus\n2 20 19\n3 15 7\n"

	got := ParseDays(text, ModeDecimal)
	want := []Day{
		{Number: 1, Max: 10, Min: 2, Line: 2},
		{Number: 2, Max: 20, Min: 19, Line: 4},
		{Number: 3, Max: 15, Min: 7, Line: 5},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseDays() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseDaysEmpty(t *testing.T) {
	assert.Empty(t, ParseDays("", ModeDecimal))
	assert.Empty(t, ParseDays("\n\n  \n", ModeDecimal))
}

func TestDaysStopsWhenConsumerStops(t *testing.T) {
	var seen []uint64
	for day := range Days("1 1 1\n2 2 2\n3 3 3\n", ModeDecimal) {
		seen = append(seen, day.Number)
		if len(seen) == 2 {
			break
		}
	}
	assert.Equal(t, []uint64{1, 2}, seen)
}
