// Package stamp implements parsing, validation, and canonical serialization
// for the UTC timestamp string format
//
//	yyyy-MM-ddThh:mm:ss[.f{1,9}]Z
//
// All literal characters are required exactly as shown. The year is exactly
// four digits, month/day/hour/minute/second are exactly two digits each, and
// the optional fractional-second field carries one to nine digits. No other
// form is accepted: no local-offset suffixes, no numeric epoch values, no
// lowercase designators (see Normalize for the tolerant path).
//
// The package is pure except for Now, which reads an injectable clock.
// It never logs and never retries; all failures are returned as structured
// *Error values with a stable Kind and RuleID.
package stamp
