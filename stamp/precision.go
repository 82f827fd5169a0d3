package stamp

// Precision selects the fractional-second width used by Format.
type Precision int

const (
	Seconds      Precision = iota // no fractional field
	Milliseconds                  // exactly 3 fractional digits
	Microseconds                  // exactly 6 fractional digits
	Nanoseconds                   // exactly 9 fractional digits
)

func (p Precision) digits() int {
	switch p {
	case Seconds:
		return 0
	case Milliseconds:
		return 3
	case Microseconds:
		return 6
	case Nanoseconds:
		return 9
	default:
		return 0
	}
}

func (p Precision) String() string {
	switch p {
	case Seconds:
		return "seconds"
	case Milliseconds:
		return "milliseconds"
	case Microseconds:
		return "microseconds"
	case Nanoseconds:
		return "nanoseconds"
	default:
		return "seconds"
	}
}

// ParsePrecision resolves a precision name (long form or the s/ms/us/ns
// shorthand) for flag and config handling.
func ParsePrecision(s string) (Precision, error) {
	switch s {
	case "s", "sec", "seconds":
		return Seconds, nil
	case "ms", "milli", "milliseconds":
		return Milliseconds, nil
	case "us", "micro", "microseconds":
		return Microseconds, nil
	case "ns", "nano", "nanoseconds":
		return Nanoseconds, nil
	}
	return Seconds, newError(KindMalformed, "UTCS-STR-040", "unknown precision "+s)
}
