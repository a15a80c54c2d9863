// Package timespan parses systemd-style duration strings like "1d3h",
// "52.1775w", or "-1s-1ns" into native duration values. A bare number
// with no unit is a count of seconds.
//
// The package splits the work into two stages: Parse tokenizes the input
// into a list of tagged fragments, and Convert folds that list into a
// target representation through the Arith interface. The stdtime, pbtime,
// and promtime subpackages bind the engine to time.Duration,
// durationpb.Duration, and the Prometheus model.Duration respectively;
// each applies the overflow and sign rules of its own type.
package timespan

// A Unit identifies the time granularity of one duration fragment.
type Unit int

const (
	Year Unit = iota
	Month
	Week
	Day
	Hour
	Minute
	Second
	Millisecond
	Microsecond
	Nanosecond
)

// String returns the singular unit name.
func (u Unit) String() string {
	switch u {
	case Year:
		return "year"
	case Month:
		return "month"
	case Week:
		return "week"
	case Day:
		return "day"
	case Hour:
		return "hour"
	case Minute:
		return "minute"
	case Second:
		return "second"
	case Millisecond:
		return "millisecond"
	case Microsecond:
		return "microsecond"
	case Nanosecond:
		return "nanosecond"
	default:
		return "unknown"
	}
}

// A Fragment is one <number><unit> occurrence from the input. Every unit
// except Nanosecond carries a float64 magnitude in Value; Nanosecond
// carries an exact integer count in Nanos. Sign is unconstrained here:
// negativity is validated during conversion, where the policy depends on
// the target type.
type Fragment struct {
	Unit  Unit
	Value float64
	Nanos int64
}

// A List is the ordered sequence of fragments produced by one parse.
// Summing the fragments yields the total duration; order has no effect
// on the sum and is kept only for diagnostics.
type List []Fragment

// Seconds-per-unit conversion factors. Systemd uses the Julian average
// of 365.25 days per year, which drifts 0.0075 days per year against the
// Gregorian calendar; the Gregorian averages used here are slightly more
// accurate and indistinguishable for realistic inputs.
const (
	secsPerMinute = 60.0
	secsPerHour   = 60 * secsPerMinute
	secsPerDay    = 24 * secsPerHour
	secsPerWeek   = 7 * secsPerDay
	secsPerMonth  = 30.436875 * secsPerDay
	secsPerYear   = 365.2425 * secsPerDay

	nanosPerSec   = 1_000_000_000.0
	nanosPerMilli = nanosPerSec / 1_000
	nanosPerMicro = nanosPerMilli / 1_000
)

// secondsPer returns the length in seconds of one of the given unit.
// Only defined for units of one second and above.
func secondsPer(u Unit) float64 {
	switch u {
	case Year:
		return secsPerYear
	case Month:
		return secsPerMonth
	case Week:
		return secsPerWeek
	case Day:
		return secsPerDay
	case Hour:
		return secsPerHour
	case Minute:
		return secsPerMinute
	default:
		return 1
	}
}

// nanosPer returns the length in nanoseconds of one of the given
// sub-second unit.
func nanosPer(u Unit) float64 {
	if u == Millisecond {
		return nanosPerMilli
	}
	return nanosPerMicro
}
