package stamp

import "bytes"

// Canonicalize is the single mandatory canonicalization choke point for
// stored timestamps. It strictly parses input and re-renders it at the
// precision implied by the input's fractional width, rejecting any
// non-canonical form.
//
// For input already in canonical form the output is byte-identical; the
// re-render-and-compare step enforces that invariant rather than assuming it.
func Canonicalize(input []byte) ([]byte, error) {
	s := string(input)
	i, err := Parse(s)
	if err != nil {
		return nil, err
	}
	canonical := appendCanonical(nil, i, FractionDigits(s))
	if !bytes.Equal(input, canonical) {
		return nil, newError(KindRender, "UTCS-RENDER-001", "canonical re-render mismatch")
	}
	return canonical, nil
}

// Normalize canonicalizes a timestamp while tolerating a small set of
// non-canonical byte-level forms: surrounding ASCII whitespace, lowercase
// 't'/'z' designators, and a space in place of the 'T' separator.
// Anything else (offset suffixes, missing fields, out-of-range values) is
// still rejected under the strict rules.
//
// The output is always strict-canonical: Parse accepts it unchanged.
func Normalize(input []byte) ([]byte, error) {
	b := bytes.TrimFunc(input, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\r' || r == '\n'
	})
	b = append([]byte(nil), b...)

	if len(b) >= lenNoFrac {
		if b[posTimeDes] == 't' || b[posTimeDes] == ' ' {
			b[posTimeDes] = 'T'
		}
		if b[len(b)-1] == 'z' {
			b[len(b)-1] = 'Z'
		}
	}

	s := string(b)
	i, err := Parse(s)
	if err != nil {
		return nil, err
	}
	return appendCanonical(nil, i, FractionDigits(s)), nil
}
