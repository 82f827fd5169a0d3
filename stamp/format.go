package stamp

// Format serializes an Instant at the requested precision. The result always
// carries the trailing Z and a fractional field zero-padded to exactly the
// precision's digit count (none for Seconds).
//
// Sub-second detail finer than the requested precision is truncated toward
// zero, never rounded, so the integer seconds field is never perturbed.
// Format is total over Instants produced by Parse, Now, FromTime, or
// FromUnix.
func Format(i Instant, p Precision) string {
	return string(appendCanonical(nil, i, p.digits()))
}

func appendCanonical(b []byte, i Instant, fracDigits int) []byte {
	t := i.t
	b = t.AppendFormat(b, "2006-01-02T15:04:05")
	if fracDigits > 0 {
		b = append(b, '.')
		b = appendFraction(b, t.Nanosecond(), fracDigits)
	}
	return append(b, 'Z')
}

// appendFraction writes the leading width digits of a nanosecond value,
// zero-padded on the left, truncating the rest.
func appendFraction(b []byte, nsec, width int) []byte {
	scale := 1_000_000_000
	for i := 0; i < width; i++ {
		scale /= 10
		b = append(b, byte('0'+(nsec/scale)%10))
	}
	return b
}
