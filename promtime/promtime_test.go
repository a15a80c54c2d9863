package promtime

import (
	"math"
	"testing"
	"time"

	"github.com/prometheus/common/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdhoward/timespan"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  model.Duration
	}{
		{"day", "1d", model.Duration(24 * time.Hour)},
		{"year", "1y", model.Duration(31556952 * time.Second)},
		{"composite", "1h30m", model.Duration(90 * time.Minute)},
		{"bare seconds", "3", model.Duration(3 * time.Second)},
		{"explicit seconds", "3s", model.Duration(3 * time.Second)},
		{"fractional micro", "30.001µs", model.Duration(30001 * time.Nanosecond)},
		{"fractional seconds", "0.000030001s", model.Duration(30001 * time.Nanosecond)},
		{"millisecond", "250ms", model.Duration(250 * time.Millisecond)},
		{"nanosecond", "7ns", model.Duration(7 * time.Nanosecond)},
		{"zero", "0", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Any negative fragment is invalid for this representation, even when
// the total would stay non-negative.
func TestParseRejectsNegative(t *testing.T) {
	inputs := []string{
		"-30d",
		"-1s",
		"-1ns",
		"-0.5ms",
		"2h-30m",
		"-3",
	}
	for _, input := range inputs {
		_, err := Parse(input)
		assert.ErrorIs(t, err, timespan.ErrOverflow, "input %q", input)
	}
}

func TestParseOverflow(t *testing.T) {
	inputs := []string{
		"1000000000000y",
		"9300000000s",
	}
	for _, input := range inputs {
		_, err := Parse(input)
		assert.ErrorIs(t, err, timespan.ErrOverflow, "input %q", input)
	}
}

func TestParseGrammarError(t *testing.T) {
	_, err := Parse("30p")
	var perr *timespan.ParseError
	require.ErrorAs(t, err, &perr)
}

// NaN magnitudes cannot be written in the grammar, but the validation is
// uniform across unit classes all the same.
func TestArithRejectsNaN(t *testing.T) {
	var ar arith
	_, err := ar.FromSeconds(math.NaN())
	assert.ErrorIs(t, err, timespan.ErrOverflow)
	_, err = ar.FromFloatNanos(math.NaN())
	assert.ErrorIs(t, err, timespan.ErrOverflow)
}
