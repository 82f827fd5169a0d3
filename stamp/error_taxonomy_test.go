package stamp

import (
	"errors"
	"testing"
)

func mustStructured(t *testing.T, err error) *Error {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error")
	}
	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("expected structured *stamp.Error, got %T", err)
	}
	return e
}

func TestParse_ErrorTaxonomy_MissingT(t *testing.T) {
	_, err := Parse("2024-12-19 15:30:45Z")
	e := mustStructured(t, err)
	if e.Kind != KindMalformed {
		t.Fatalf("expected KindMalformed, got %s", e.Kind)
	}
	if e.RuleID != "UTCS-STR-011" {
		t.Fatalf("expected RuleID UTCS-STR-011, got %s", e.RuleID)
	}
}

func TestParse_ErrorTaxonomy_MissingZ(t *testing.T) {
	// Long enough to clear the length rule, so the Z-suffix rule fires.
	_, err := Parse("2024-12-19T15:30:45.1")
	e := mustStructured(t, err)
	if e.Kind != KindMalformed {
		t.Fatalf("expected KindMalformed, got %s", e.Kind)
	}
	if e.RuleID != "UTCS-STR-010" {
		t.Fatalf("expected RuleID UTCS-STR-010, got %s", e.RuleID)
	}
}

func TestParse_ErrorTaxonomy_TooShort(t *testing.T) {
	// A 19-byte missing-Z form is caught by the length rule, which runs
	// before the suffix rule does.
	_, err := Parse("2024-12-19T15:30:45")
	e := mustStructured(t, err)
	if e.Kind != KindMalformed {
		t.Fatalf("expected KindMalformed, got %s", e.Kind)
	}
	if e.RuleID != "UTCS-STR-002" {
		t.Fatalf("expected RuleID UTCS-STR-002, got %s", e.RuleID)
	}
}

func TestParse_ErrorTaxonomy_OffsetSuffixRejected(t *testing.T) {
	// Local-offset forms are not part of the grammar.
	_, err := Parse("2024-12-19T15:30:45+05:00")
	e := mustStructured(t, err)
	if e.Kind != KindMalformed {
		t.Fatalf("expected KindMalformed, got %s", e.Kind)
	}
}

func TestParse_ErrorTaxonomy_NonASCII(t *testing.T) {
	_, err := Parse("2024-12-19T15:30:45Z ")
	e := mustStructured(t, err)
	if e.RuleID != "UTCS-STR-001" {
		t.Fatalf("expected RuleID UTCS-STR-001, got %s", e.RuleID)
	}
}

func TestParse_ErrorTaxonomy_MonthOutOfRange(t *testing.T) {
	_, err := Parse("2024-13-01T00:00:00Z")
	e := mustStructured(t, err)
	if e.Kind != KindFieldRange {
		t.Fatalf("expected KindFieldRange, got %s", e.Kind)
	}
	if e.RuleID != "UTCS-FLD-101" {
		t.Fatalf("expected RuleID UTCS-FLD-101, got %s", e.RuleID)
	}
}

func TestParse_ErrorTaxonomy_DayOutOfRange(t *testing.T) {
	cases := []string{
		"2023-02-29T00:00:00Z", // 2023 is not a leap year
		"2100-02-29T00:00:00Z", // century rule
		"2024-04-31T00:00:00Z",
		"2024-01-00T00:00:00Z",
	}
	for _, in := range cases {
		_, err := Parse(in)
		e := mustStructured(t, err)
		if e.RuleID != "UTCS-FLD-102" {
			t.Fatalf("%s: expected RuleID UTCS-FLD-102, got %s", in, e.RuleID)
		}
	}
}

func TestParse_ErrorTaxonomy_TimeFields(t *testing.T) {
	cases := []struct {
		in     string
		ruleID string
	}{
		{"2024-12-19T24:00:00Z", "UTCS-FLD-103"},
		{"2024-12-19T15:60:45Z", "UTCS-FLD-105"},
		{"2024-12-19T15:30:61Z", "UTCS-FLD-107"},
	}
	for _, c := range cases {
		_, err := Parse(c.in)
		e := mustStructured(t, err)
		if e.Kind != KindFieldRange {
			t.Fatalf("%s: expected KindFieldRange, got %s", c.in, e.Kind)
		}
		if e.RuleID != c.ruleID {
			t.Fatalf("%s: expected RuleID %s, got %s", c.in, c.ruleID, e.RuleID)
		}
	}
}

func TestParse_ErrorTaxonomy_LeapSecondRejected(t *testing.T) {
	_, err := Parse("2016-12-31T23:59:60Z")
	e := mustStructured(t, err)
	if e.Kind != KindFieldRange {
		t.Fatalf("expected KindFieldRange, got %s", e.Kind)
	}
	if e.RuleID != "UTCS-FLD-106" {
		t.Fatalf("expected RuleID UTCS-FLD-106, got %s", e.RuleID)
	}
}

func TestParse_ErrorTaxonomy_PrecisionOverflow(t *testing.T) {
	_, err := Parse("2024-12-19T15:30:45.1234567890Z")
	e := mustStructured(t, err)
	if e.Kind != KindPrecision {
		t.Fatalf("expected KindPrecision, got %s", e.Kind)
	}
	if e.RuleID != "UTCS-FRAC-001" {
		t.Fatalf("expected RuleID UTCS-FRAC-001, got %s", e.RuleID)
	}
}

func TestParse_ErrorTaxonomy_EmptyFraction(t *testing.T) {
	_, err := Parse("2024-12-19T15:30:45.Z")
	e := mustStructured(t, err)
	if e.RuleID != "UTCS-STR-021" {
		t.Fatalf("expected RuleID UTCS-STR-021, got %s", e.RuleID)
	}
}

func TestIsKindAndRuleIDHelpers(t *testing.T) {
	_, err := Parse("junk")
	if !IsKind(err, KindMalformed) {
		t.Fatalf("IsKind(KindMalformed) = false")
	}
	if IsKind(err, KindFieldRange) {
		t.Fatalf("IsKind(KindFieldRange) = true")
	}
	if RuleID(err) == "" {
		t.Fatalf("RuleID returned empty for structured error")
	}
	if RuleID(errors.New("plain")) != "" {
		t.Fatalf("RuleID returned non-empty for plain error")
	}
}
