package stamp

import "errors"

// Kind is a stable category for programmatic error handling.
//
// These categories are intended to remain stable across versions.
// Callers should branch on Kind/RuleID rather than matching error strings.
//
// NOTE: Error() strings are intentionally kept human-readable and may evolve.
// Use errors.As to extract *Error for structured handling.
//
// A NonExistentLocalTime category is deliberately absent: conversion from
// local wall-clock readings back to instants is not implemented, so no
// producer for it exists. If reverse conversion is ever added, ambiguous
// readings resolve to the earlier offset and non-existent readings are
// rejected.
type Kind string

const (
	// KindMalformed covers structural grammar violations: wrong field
	// widths, missing separators, missing trailing Z, non-digit bytes.
	KindMalformed Kind = "Malformed"

	// KindFieldRange covers syntactically well-formed input whose calendar
	// or time fields are out of range (month 13, February 30, hour 24, ...).
	KindFieldRange Kind = "FieldRange"

	// KindPrecision covers fractional-second fields longer than 9 digits.
	KindPrecision Kind = "Precision"

	// KindRender covers serialization failures. Format itself is total over
	// valid Instants; this kind exists for the byte-level canonicalization
	// entry points.
	KindRender Kind = "Render"

	KindInternal Kind = "Internal"
)

// Error is the library's structured error type.
//
// RuleID is a stable identifier (e.g., UTCS-STR-011, UTCS-FLD-102) that
// names the violated grammar or range rule.
//
// Message is intended for humans; do not match on it.
//
// Every failure is produced directly by a grammar or range rule, so there
// is no wrapped cause to expose.
type Error struct {
	Kind    Kind
	RuleID  string
	Message string
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.Message
}

func newError(kind Kind, ruleID, msg string) error {
	return &Error{Kind: kind, RuleID: ruleID, Message: msg}
}

// IsKind reports whether err is (or wraps) a *Error with the given Kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}

// RuleID returns the stable RuleID for a structured error, or "" if unknown.
func RuleID(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return ""
	}
	return e.RuleID
}
