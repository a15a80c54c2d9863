package timespan

// Recognized unit spellings. Matching is case-sensitive: "M" is a month
// and "m" is a minute.
var units = map[string]Unit{
	"years":  Year,
	"year":   Year,
	"yrs":    Year,
	"yr":     Year,
	"y":      Year,
	"months": Month,
	"month":  Month,
	"mos":    Month,
	"mo":     Month,
	"M":      Month,
	"weeks":  Week,
	"week":   Week,
	"wks":    Week,
	"wk":     Week,
	"w":      Week,
	"days":   Day,
	"day":    Day,
	"d":      Day,
	"hours":  Hour,
	"hour":   Hour,
	"hrs":    Hour,
	"hr":     Hour,
	"h":      Hour,

	"minutes": Minute,
	"minute":  Minute,
	"mins":    Minute,
	"min":     Minute,
	"m":       Minute,
	"seconds": Second,
	"second":  Second,
	"secs":    Second,
	"sec":     Second,
	"s":       Second,

	"milliseconds": Millisecond,
	"millisecond":  Millisecond,
	"msecs":        Millisecond,
	"msec":         Millisecond,
	"ms":           Millisecond,
	"microseconds": Microsecond,
	"microsecond":  Microsecond,
	"µsecs":        Microsecond,
	"µsec":         Microsecond,
	"µs":           Microsecond,
	"µ":            Microsecond,
	"usecs":        Microsecond,
	"usec":         Microsecond,
	"us":           Microsecond,
	"nanoseconds":  Nanosecond,
	"nanosecond":   Nanosecond,
	"nsecs":        Nanosecond,
	"nsec":         Nanosecond,
	"ns":           Nanosecond,
}

// lookupUnit resolves a captured unit word. The whole word must match
// one recognized spelling, so a prefix like "m" can never be taken from
// "mo" leaving a dangling "o".
func lookupUnit(word string) (Unit, bool) {
	u, ok := units[word]
	return u, ok
}
