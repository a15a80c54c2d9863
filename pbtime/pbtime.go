// Package pbtime parses systemd-style duration strings into the
// protobuf well-known Duration type, which carries independent
// whole-second and nanosecond fields. Range checking is delegated to the
// type's own validity rules (roughly ±10000 years); results are always
// normalized with both fields sharing a sign.
package pbtime

import (
	"math"

	"google.golang.org/protobuf/types/known/durationpb"

	"github.com/sdhoward/timespan"
)

// Parse parses a duration string like "1d3h" or "300" (bare seconds)
// into a *durationpb.Duration. It returns a *timespan.ParseError for
// input that does not match the grammar and timespan.ErrOverflow for
// values outside the protobuf Duration range.
func Parse(s string) (*durationpb.Duration, error) {
	list, err := timespan.Parse(s)
	if err != nil {
		return nil, err
	}
	return timespan.Convert[*durationpb.Duration](list, arith{})
}

const nanosPerSecond = 1_000_000_000

type arith struct{}

func (arith) Zero() *durationpb.Duration { return &durationpb.Duration{} }

func (arith) Add(a, b *durationpb.Duration) (*durationpb.Duration, error) {
	secs, ok := addInt64(a.GetSeconds(), b.GetSeconds())
	if !ok {
		return nil, timespan.ErrOverflow
	}
	return normalize(secs, int64(a.GetNanos())+int64(b.GetNanos()))
}

func (arith) FromSeconds(secs float64) (*durationpb.Duration, error) {
	if math.IsNaN(secs) || secs < math.MinInt64 || secs >= math.MaxInt64 {
		return nil, timespan.ErrOverflow
	}
	whole, frac := math.Modf(secs)
	return normalize(int64(whole), int64(math.Round(frac*nanosPerSecond)))
}

func (arith) FromFloatNanos(nanos float64) (*durationpb.Duration, error) {
	if math.IsNaN(nanos) || nanos < math.MinInt64 || nanos >= math.MaxInt64 {
		return nil, timespan.ErrOverflow
	}
	n := int64(math.Round(nanos))
	return normalize(n/nanosPerSecond, n%nanosPerSecond)
}

func (arith) FromNanos(nanos int64) (*durationpb.Duration, error) {
	return normalize(nanos/nanosPerSecond, nanos%nanosPerSecond)
}

// normalize carries whole seconds out of nanos, aligns the signs of the
// two fields, and validates the result against the type's documented
// range.
func normalize(secs, nanos int64) (*durationpb.Duration, error) {
	s, ok := addInt64(secs, nanos/nanosPerSecond)
	if !ok {
		return nil, timespan.ErrOverflow
	}
	n := nanos % nanosPerSecond
	if s > 0 && n < 0 {
		s--
		n += nanosPerSecond
	} else if s < 0 && n > 0 {
		s++
		n -= nanosPerSecond
	}
	d := &durationpb.Duration{Seconds: s, Nanos: int32(n)}
	if err := d.CheckValid(); err != nil {
		return nil, timespan.ErrOverflow
	}
	return d, nil
}

func addInt64(a, b int64) (int64, bool) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, false
	}
	return sum, true
}
