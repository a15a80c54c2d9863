// Package stdtime parses systemd-style duration strings into the
// standard library's time.Duration, a signed 64-bit nanosecond count.
// Values outside that range fail with timespan.ErrOverflow.
package stdtime

import (
	"math"
	"time"

	"github.com/sdhoward/timespan"
)

// Parse parses a duration string like "1d3h" or "300" (bare seconds)
// into a time.Duration. It returns a *timespan.ParseError for input that
// does not match the grammar and timespan.ErrOverflow for values that do
// not fit in a time.Duration.
func Parse(s string) (time.Duration, error) {
	list, err := timespan.Parse(s)
	if err != nil {
		return 0, err
	}
	return timespan.Convert[time.Duration](list, arith{})
}

// maxSeconds is the largest whole-second count representable in a
// time.Duration.
const maxSeconds = math.MaxInt64 / int64(time.Second)

type arith struct{}

func (arith) Zero() time.Duration { return 0 }

func (arith) Add(a, b time.Duration) (time.Duration, error) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, timespan.ErrOverflow
	}
	return sum, nil
}

func (ar arith) FromSeconds(secs float64) (time.Duration, error) {
	if !representableNanos(secs * float64(time.Second)) {
		return 0, timespan.ErrOverflow
	}
	whole, frac := math.Modf(secs)
	sec := int64(whole)
	if sec > maxSeconds || sec < -maxSeconds {
		return 0, timespan.ErrOverflow
	}
	// The float screen above can pass values within a few nanoseconds of
	// the int64 boundary; the checked add catches those.
	return ar.Add(
		time.Duration(sec)*time.Second,
		time.Duration(math.Round(frac*float64(time.Second))),
	)
}

func (arith) FromFloatNanos(nanos float64) (time.Duration, error) {
	if !representableNanos(nanos) {
		return 0, timespan.ErrOverflow
	}
	return time.Duration(math.Round(nanos)), nil
}

func (arith) FromNanos(nanos int64) (time.Duration, error) {
	return time.Duration(nanos), nil
}

// representableNanos reports whether a float nanosecond count is finite
// and within the signed 64-bit range.
func representableNanos(nanos float64) bool {
	return !math.IsNaN(nanos) && nanos >= math.MinInt64 && nanos < math.MaxInt64
}
