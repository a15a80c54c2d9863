package timespan

// Arith describes the construction and arithmetic surface the conversion
// engine needs from a native duration type: a zero value, checked
// addition, and checked construction from seconds or nanoseconds. Each
// implementation enforces the overflow and sign rules of its own
// representation; the engine itself never wraps or clamps.
type Arith[T any] interface {
	// Zero returns the additive identity.
	Zero() T

	// Add sums two partial durations, failing with ErrOverflow when the
	// result is not representable.
	Add(a, b T) (T, error)

	// FromSeconds converts a second count for units of one second and
	// above. The unit's conversion factor has already been applied.
	FromSeconds(secs float64) (T, error)

	// FromFloatNanos converts a fractional nanosecond count for the
	// millisecond and microsecond units.
	FromFloatNanos(nanos float64) (T, error)

	// FromNanos converts the exact integer nanosecond fragment.
	FromNanos(nanos int64) (T, error)
}

// Convert folds a fragment list into a native duration value, applying
// each unit's fixed conversion factor. The first failure aborts the
// conversion; no partial result is returned.
func Convert[T any](list List, ar Arith[T]) (T, error) {
	sum := ar.Zero()
	for _, f := range list {
		var (
			v   T
			err error
		)
		switch f.Unit {
		case Nanosecond:
			v, err = ar.FromNanos(f.Nanos)
		case Millisecond, Microsecond:
			v, err = ar.FromFloatNanos(nanosPer(f.Unit) * f.Value)
		default:
			v, err = ar.FromSeconds(secondsPer(f.Unit) * f.Value)
		}
		if err == nil {
			sum, err = ar.Add(sum, v)
		}
		if err != nil {
			var zero T
			return zero, err
		}
	}
	return sum, nil
}
