package stamp

import "time"

// Instant is an immutable point in time, implicitly UTC.
//
// Invariants:
//   - the wrapped time is always UTC-normalized; an Instant never carries
//     offset state beyond UTC, and arithmetic on it is offset-free.
//   - the year is within 0000-9999, so Format is total: every Instant
//     produced by Parse, Now, or FromTime serializes to a canonical string.
//
// The zero Instant is 0001-01-01T00:00:00Z.
type Instant struct {
	t time.Time
}

// FromTime converts an arbitrary time.Time into an Instant, discarding its
// location. It fails with a FieldRange error when the UTC year falls outside
// 0000-9999, because such a value has no canonical serialization.
func FromTime(t time.Time) (Instant, error) {
	u := t.UTC()
	if y := u.Year(); y < 0 || y > 9999 {
		return Instant{}, newError(KindFieldRange, "UTCS-FLD-100", "year outside 0000-9999")
	}
	return Instant{t: u}, nil
}

// FromUnix builds an Instant from seconds and nanoseconds since the Unix
// epoch, subject to the same year-range check as FromTime.
func FromUnix(sec, nsec int64) (Instant, error) {
	return FromTime(time.Unix(sec, nsec))
}

// Time returns the instant as a UTC time.Time.
func (i Instant) Time() time.Time { return i.t }

// Unix returns the number of whole seconds elapsed since the Unix epoch.
func (i Instant) Unix() int64 { return i.t.Unix() }

// Nanosecond returns the sub-second component in the range [0, 999999999].
func (i Instant) Nanosecond() int { return i.t.Nanosecond() }

func (i Instant) Equal(o Instant) bool  { return i.t.Equal(o.t) }
func (i Instant) Before(o Instant) bool { return i.t.Before(o.t) }
func (i Instant) After(o Instant) bool  { return i.t.After(o.t) }
func (i Instant) IsZero() bool          { return i.t.IsZero() }

// Add returns the instant shifted by d. Offset-free: a duration is the same
// everywhere. It fails with a FieldRange error when the shift leaves the
// 0000-9999 year range, preserving the serialization invariant.
func (i Instant) Add(d time.Duration) (Instant, error) {
	return FromTime(i.t.Add(d))
}

// Sub returns the elapsed duration i - o.
func (i Instant) Sub(o Instant) time.Duration { return i.t.Sub(o.t) }

// String serializes at the minimal precision that loses no sub-second
// information.
func (i Instant) String() string {
	return Format(i, minimalPrecision(i))
}

// MarshalText implements encoding.TextMarshaler using the canonical grammar
// at minimal lossless precision.
func (i Instant) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via strict Parse.
func (i *Instant) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*i = parsed
	return nil
}

func minimalPrecision(i Instant) Precision {
	ns := i.t.Nanosecond()
	switch {
	case ns == 0:
		return Seconds
	case ns%1e6 == 0:
		return Milliseconds
	case ns%1e3 == 0:
		return Microseconds
	default:
		return Nanoseconds
	}
}
