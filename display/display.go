// Package display converts UTC instants into human-readable local readings.
//
// Conversion is strictly one-directional: UTC to local wall clock. Every
// instant maps to exactly one local reading, so DST transitions introduce no
// ambiguity in this direction, and a reading inside a spring-forward gap can
// never be produced. The reverse direction (local wall clock to instant) is
// deliberately not implemented; storage and computation stay in UTC.
package display

import (
	"time"

	"utcs.dev/utcs/stamp"
	"utcs.dev/utcs/tzrule"
)

// CivilTime is a display-only local wall-clock reading. It is produced
// transiently per render request, never persisted, and never fed back into
// the codec.
type CivilTime struct {
	Year       int
	Month      time.Month
	Day        int
	Hour       int
	Minute     int
	Second     int
	Nanosecond int

	OffsetSeconds int    // seconds east of UTC at the instant
	Abbrev        string // zone abbreviation in force, e.g. "EDT"
	Zone          string // the identifier the reading was resolved against
}

// ToLocal resolves the offset rule in force at the instant and applies it.
// It fails with an error satisfying tzrule.IsUnknownZone when the zone
// identifier does not resolve.
func ToLocal(i stamp.Instant, zone string, src tzrule.Source) (CivilTime, error) {
	r, err := src.Rule(zone, i.Time())
	if err != nil {
		return CivilTime{}, err
	}
	lt := i.Time().In(time.FixedZone(r.Abbrev, r.OffsetSeconds))
	year, month, day := lt.Date()
	hour, minute, second := lt.Clock()
	return CivilTime{
		Year:          year,
		Month:         month,
		Day:           day,
		Hour:          hour,
		Minute:        minute,
		Second:        second,
		Nanosecond:    lt.Nanosecond(),
		OffsetSeconds: r.OffsetSeconds,
		Abbrev:        r.Abbrev,
		Zone:          zone,
	}, nil
}

// DefaultPattern renders a reading with the numeric offset and abbreviation.
const DefaultPattern = "2006-01-02 15:04:05 -07:00 MST"

// Render formats an already-resolved reading with a Go reference-time
// layout. Pure: the offset is taken from ct, never recomputed.
func Render(ct CivilTime, pattern string) string {
	t := time.Date(ct.Year, ct.Month, ct.Day, ct.Hour, ct.Minute, ct.Second,
		ct.Nanosecond, time.FixedZone(ct.Abbrev, ct.OffsetSeconds))
	return t.Format(pattern)
}

// OffsetString renders the UTC offset as ±hh:mm.
func (ct CivilTime) OffsetString() string {
	off := ct.OffsetSeconds
	sign := byte('+')
	if off < 0 {
		sign = '-'
		off = -off
	}
	h := off / 3600
	m := (off % 3600) / 60
	return string([]byte{
		sign,
		byte('0' + h/10), byte('0' + h%10),
		':',
		byte('0' + m/10), byte('0' + m%10),
	})
}

func (ct CivilTime) String() string {
	return Render(ct, DefaultPattern)
}
