package stamp

import "time"

// Parse converts a canonical timestamp string into an Instant, enforcing the
// full grammar and calendar rules. Non-canonical inputs are rejected.
//
// Failure taxonomy:
//   - KindMalformed for structural violations (UTCS-STR-0xx)
//   - KindFieldRange for out-of-range calendar/time fields (UTCS-FLD-1xx)
//   - KindPrecision for fractions longer than 9 digits (UTCS-FRAC-001)
//
// Leap seconds are not representable: a seconds field of 60 fails with
// UTCS-FLD-106. Representing it would require lossy clamping, which breaks
// the round-trip invariant.
//
// Parse is a pure function: no I/O, no locale, no timezone lookup. The input
// is UTC by contract.
func Parse(s string) (Instant, error) {
	if err := applyParseRules(s, parseRulesV1()); err != nil {
		return Instant{}, err
	}

	year := atoi4(s, 0)
	month := atoi2(s, 5)
	day := atoi2(s, 8)
	hour := atoi2(s, 11)
	minute := atoi2(s, 14)
	second := atoi2(s, 17)

	if month < 1 || month > 12 {
		return Instant{}, newError(KindFieldRange, "UTCS-FLD-101", "month out of range 1-12")
	}
	if day < 1 || day > daysIn(year, month) {
		return Instant{}, newError(KindFieldRange, "UTCS-FLD-102", "day out of range for month")
	}
	if hour > 23 {
		return Instant{}, newError(KindFieldRange, "UTCS-FLD-103", "hour out of range 0-23")
	}
	if minute > 59 {
		return Instant{}, newError(KindFieldRange, "UTCS-FLD-105", "minute out of range 0-59")
	}
	if second == 60 {
		return Instant{}, newError(KindFieldRange, "UTCS-FLD-106", "leap seconds are not representable")
	}
	if second > 59 {
		return Instant{}, newError(KindFieldRange, "UTCS-FLD-107", "second out of range 0-59")
	}

	nsec := 0
	if len(s) > lenNoFrac {
		frac := s[posFracDot+1 : len(s)-1]
		for i := 0; i < len(frac); i++ {
			nsec = nsec*10 + int(frac[i]-'0')
		}
		for i := len(frac); i < maxFracLen; i++ {
			nsec *= 10
		}
	}

	t := time.Date(year, time.Month(month), day, hour, minute, second, nsec, time.UTC)
	return Instant{t: t}, nil
}

// FractionDigits reports the width of the fractional field of a canonical
// timestamp string, or 0 when none is present. It assumes s already passed
// the structural rules.
func FractionDigits(s string) int {
	if len(s) <= lenNoFrac {
		return 0
	}
	return len(s) - lenNoFrac - 1
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func daysIn(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	default: // February
		if isLeap(year) {
			return 29
		}
		return 28
	}
}

// atoi2 and atoi4 read fixed-width decimal fields whose digits were already
// validated by the rule table.
func atoi2(s string, i int) int {
	return int(s[i]-'0')*10 + int(s[i+1]-'0')
}

func atoi4(s string, i int) int {
	return atoi2(s, i)*100 + atoi2(s, i+2)
}
