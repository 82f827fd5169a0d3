package stamp

import "unicode/utf8"

// Canonical grammar byte positions: yyyy-MM-ddThh:mm:ss[.f{1,9}]Z.
const (
	posDateSep1 = 4
	posDateSep2 = 7
	posTimeDes  = 10
	posTimeSep1 = 13
	posTimeSep2 = 16
	posFracDot  = 19

	lenNoFrac  = 20 // "2006-01-02T15:04:05Z"
	maxFracLen = 9
)

// digitSpans lists the half-open byte ranges that must hold ASCII digits.
var digitSpans = [...][2]int{
	{0, 4},   // year
	{5, 7},   // month
	{8, 10},  // day
	{11, 13}, // hour
	{14, 16}, // minute
	{17, 19}, // second
}

type parseRule struct {
	id    string
	kind  Kind
	apply func(string) error
}

func applyParseRules(input string, rules []parseRule) error {
	for _, r := range rules {
		if r.apply == nil {
			return newError(KindInternal, "UTCS-INTERNAL-010", "nil parse rule")
		}
		if err := r.apply(input); err != nil {
			// Rules return structured errors; preserve them.
			return err
		}
	}
	return nil
}

func parseRulesV1() []parseRule {
	return []parseRule{
		{
			id:   "UTCS-STR-001",
			kind: KindMalformed,
			apply: func(s string) error {
				for i := 0; i < len(s); i++ {
					if s[i] >= utf8.RuneSelf {
						return newError(KindMalformed, "UTCS-STR-001", "timestamp must be ASCII")
					}
				}
				return nil
			},
		},
		{
			id:   "UTCS-STR-002",
			kind: KindMalformed,
			apply: func(s string) error {
				if len(s) < lenNoFrac {
					return newError(KindMalformed, "UTCS-STR-002", "timestamp too short")
				}
				return nil
			},
		},
		{
			id:   "UTCS-STR-010",
			kind: KindMalformed,
			apply: func(s string) error {
				if s[len(s)-1] != 'Z' {
					return newError(KindMalformed, "UTCS-STR-010", "missing Z suffix")
				}
				return nil
			},
		},
		{
			id:   "UTCS-STR-011",
			kind: KindMalformed,
			apply: func(s string) error {
				if s[posTimeDes] != 'T' {
					return newError(KindMalformed, "UTCS-STR-011", "missing T separator")
				}
				return nil
			},
		},
		{
			id:   "UTCS-STR-012",
			kind: KindMalformed,
			apply: func(s string) error {
				if s[posDateSep1] != '-' || s[posDateSep2] != '-' {
					return newError(KindMalformed, "UTCS-STR-012", "date fields must be separated by -")
				}
				return nil
			},
		},
		{
			id:   "UTCS-STR-013",
			kind: KindMalformed,
			apply: func(s string) error {
				if s[posTimeSep1] != ':' || s[posTimeSep2] != ':' {
					return newError(KindMalformed, "UTCS-STR-013", "time fields must be separated by :")
				}
				return nil
			},
		},
		{
			id:   "UTCS-STR-020",
			kind: KindMalformed,
			apply: func(s string) error {
				for _, span := range digitSpans {
					for i := span[0]; i < span[1]; i++ {
						if s[i] < '0' || s[i] > '9' {
							return newError(KindMalformed, "UTCS-STR-020", "expected digit in calendar/time field")
						}
					}
				}
				return nil
			},
		},
		{
			id:   "UTCS-STR-021",
			kind: KindMalformed,
			apply: func(s string) error {
				if len(s) == lenNoFrac {
					return nil
				}
				if s[posFracDot] != '.' {
					return newError(KindMalformed, "UTCS-STR-021", "expected . before fractional seconds")
				}
				frac := s[posFracDot+1 : len(s)-1]
				if len(frac) == 0 {
					return newError(KindMalformed, "UTCS-STR-021", "empty fractional seconds")
				}
				if len(frac) > maxFracLen {
					return newError(KindPrecision, "UTCS-FRAC-001", "fractional seconds exceed 9 digits")
				}
				for i := 0; i < len(frac); i++ {
					if frac[i] < '0' || frac[i] > '9' {
						return newError(KindMalformed, "UTCS-STR-020", "expected digit in fractional seconds")
					}
				}
				return nil
			},
		},
	}
}
