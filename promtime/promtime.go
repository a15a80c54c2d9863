// Package promtime parses systemd-style duration strings into the
// Prometheus model.Duration type. model.Duration represents non-negative
// spans, so a negative magnitude on any fragment fails with
// timespan.ErrOverflow regardless of whether the total would stay
// non-negative. NaN magnitudes are rejected for every unit class.
package promtime

import (
	"math"
	"time"

	"github.com/prometheus/common/model"

	"github.com/sdhoward/timespan"
)

// Parse parses a duration string like "1d3h" or "300" (bare seconds)
// into a model.Duration. It returns a *timespan.ParseError for input
// that does not match the grammar and timespan.ErrOverflow for negative
// or unrepresentable values.
func Parse(s string) (model.Duration, error) {
	list, err := timespan.Parse(s)
	if err != nil {
		return 0, err
	}
	return timespan.Convert[model.Duration](list, arith{})
}

// maxSeconds is the largest whole-second count representable in the
// underlying 64-bit nanosecond value.
const maxSeconds = math.MaxInt64 / int64(time.Second)

type arith struct{}

func (arith) Zero() model.Duration { return 0 }

// Add's operands are non-negative by construction, so a wrapped sum
// always compares below its first operand.
func (arith) Add(a, b model.Duration) (model.Duration, error) {
	sum := a + b
	if sum < a {
		return 0, timespan.ErrOverflow
	}
	return sum, nil
}

func (ar arith) FromSeconds(secs float64) (model.Duration, error) {
	if math.IsNaN(secs) || secs < 0 {
		return 0, timespan.ErrOverflow
	}
	if secs*float64(time.Second) >= math.MaxInt64 {
		return 0, timespan.ErrOverflow
	}
	whole, frac := math.Modf(secs)
	sec := int64(whole)
	if sec > maxSeconds {
		return 0, timespan.ErrOverflow
	}
	return ar.Add(
		model.Duration(sec)*model.Duration(time.Second),
		model.Duration(math.Round(frac*float64(time.Second))),
	)
}

func (arith) FromFloatNanos(nanos float64) (model.Duration, error) {
	if math.IsNaN(nanos) || nanos < 0 {
		return 0, timespan.ErrOverflow
	}
	if nanos >= math.MaxInt64 {
		return 0, timespan.ErrOverflow
	}
	rounded := math.Round(nanos)
	n := int64(rounded)
	// Guard against the float-to-integer conversion silently losing the
	// value: the rounded count must convert back exactly.
	if float64(n) != rounded {
		return 0, timespan.ErrOverflow
	}
	return model.Duration(n), nil
}

func (arith) FromNanos(nanos int64) (model.Duration, error) {
	if nanos < 0 {
		return 0, timespan.ErrOverflow
	}
	return model.Duration(nanos), nil
}
