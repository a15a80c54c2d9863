package stdtime

import (
	"errors"
	"testing"
	"time"

	"github.com/sdhoward/timespan"
)

// equivalence groups: every input in a group must parse to the same value.
func TestParseEquivalences(t *testing.T) {
	groups := []struct {
		name   string
		want   time.Duration
		inputs []string
	}{
		{
			name: "year",
			want: 31556952 * time.Second,
			inputs: []string{
				"1 years", "1 year", "1 yrs", "1 yr", "1 y", "1y",
				"52.1775w", "365d5h49m12s", "365.2425d",
			},
		},
		{
			name: "month",
			want: 2629746 * time.Second,
			inputs: []string{
				"1 months", "1 month", "1 mos", "1 mo", "1 M",
				"30d10h29m6s",
			},
		},
		{
			name: "week",
			want: 7 * 24 * time.Hour,
			inputs: []string{
				"1 weeks", "1 week", "1 wks", "1 wk", "1 w",
				"7d", "168h", "10080m",
			},
		},
		{
			name: "day",
			want: 24 * time.Hour,
			inputs: []string{
				"1 days", "1 day", "1 d",
				"24h", "1440m", "86400s",
			},
		},
		{
			name: "hour",
			want: time.Hour,
			inputs: []string{
				"1 hours", "1 hour", "1 hrs", "1 hr", "1 h",
				"60m", "3600s", "3600000ms",
			},
		},
		{
			name: "minute",
			want: time.Minute,
			inputs: []string{
				"1 minutes", "1 minute", "1 mins", "1 min", "1 m",
				"60s", "60000ms",
			},
		},
		{
			name: "second",
			want: time.Second,
			inputs: []string{
				"1 seconds", "1 second", "1 secs", "1 sec", "1 s",
				"1000ms", "1000000µs", "1000000us", "1000000000ns",
				"1", // bare numbers are seconds
			},
		},
		{
			name: "millisecond",
			want: time.Millisecond,
			inputs: []string{
				"1 milliseconds", "1 millisecond", "1 msecs", "1 msec", "1 ms",
				"1000µs", "1000000ns",
			},
		},
		{
			name: "microsecond",
			want: time.Microsecond,
			inputs: []string{
				"1 microseconds", "1 microsecond",
				"1 µsecs", "1 µsec", "1 µs", "1 µ",
				"1 usecs", "1 usec", "1 us",
				"1000ns",
			},
		},
		{
			name: "nanosecond",
			want: time.Nanosecond,
			inputs: []string{
				"1 nanoseconds", "1 nanosecond", "1 nsecs", "1 nsec", "1 ns",
			},
		},
		{
			name:   "fractional seconds",
			want:   30001 * time.Nanosecond,
			inputs: []string{"30.001µs", "0.000030001s"},
		},
		{
			name:   "negative",
			want:   -(time.Second + time.Nanosecond),
			inputs: []string{"-1s-1ns"},
		},
		{
			name:   "bare fractional",
			want:   3500 * time.Millisecond,
			inputs: []string{"3.5", " 3.5 ", "3.5s", "3500ms"},
		},
	}

	for _, g := range groups {
		t.Run(g.name, func(t *testing.T) {
			for _, input := range g.inputs {
				got, err := Parse(input)
				if err != nil {
					t.Errorf("Parse(%q) error = %v", input, err)
					continue
				}
				if got != g.want {
					t.Errorf("Parse(%q) = %v, want %v", input, got, g.want)
				}
			}
		})
	}
}

func TestParseAdditive(t *testing.T) {
	whole, err := Parse("1d3h")
	if err != nil {
		t.Fatalf("Parse(1d3h) error = %v", err)
	}
	day, err := Parse("1d")
	if err != nil {
		t.Fatalf("Parse(1d) error = %v", err)
	}
	hours, err := Parse("3h")
	if err != nil {
		t.Fatalf("Parse(3h) error = %v", err)
	}
	if whole != day+hours {
		t.Errorf("Parse(1d3h) = %v, want %v", whole, day+hours)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		overflow bool
	}{
		{"empty", "", false},
		{"unknown unit", "30p", false},
		{"bare number then unit", "5 3d", false},
		{"exponent", "1e3", false},
		{"overflow years", "1000000000000y", true},
		{"overflow seconds", "9300000000s", true},
		{"overflow literal", "100000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000s", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			if err == nil {
				t.Fatalf("Parse(%q) succeeded, want error", tt.input)
			}
			if tt.overflow != errors.Is(err, timespan.ErrOverflow) {
				t.Errorf("Parse(%q) error = %v, overflow = %v, want %v",
					tt.input, err, errors.Is(err, timespan.ErrOverflow), tt.overflow)
			}
			if !tt.overflow {
				var perr *timespan.ParseError
				if !errors.As(err, &perr) {
					t.Errorf("Parse(%q) error = %T, want *timespan.ParseError", tt.input, err)
				}
			}
		})
	}
}

func TestParseDeterministic(t *testing.T) {
	const input = "1d3h30.001µs"
	first, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse(%q) error = %v", input, err)
	}
	for i := 0; i < 10; i++ {
		again, err := Parse(input)
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", input, err)
		}
		if again != first {
			t.Fatalf("Parse(%q) = %v, previously %v", input, again, first)
		}
	}
}
