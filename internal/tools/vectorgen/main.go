// vectorgen regenerates the conformance vectors under
// testdata/conformance/stamp. Expected values are produced by the codec
// itself, so the vectors pin current behavior against regressions.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"utcs.dev/utcs/stamp"
)

type validVector struct {
	Input string `toml:"input"`
	Unix  int64  `toml:"unix"`
	Nanos int    `toml:"nanos"`
}

type invalidVector struct {
	Input  string `toml:"input"`
	Kind   string `toml:"kind"`
	RuleID string `toml:"rule_id"`
}

var validInputs = []string{
	"1970-01-01T00:00:00Z",
	"2024-12-19T15:30:45Z",
	"2024-12-19T15:30:45.5Z",
	"2024-12-19T15:30:45.123456789Z",
	"2024-02-29T00:00:00Z",
	"2000-02-29T12:00:00Z",
	"2024-03-10T07:00:00Z",
	"0001-01-01T00:00:00Z",
	"9999-12-31T23:59:59.999999999Z",
}

var invalidInputs = []string{
	"2024-13-01T00:00:00Z",
	"2023-02-29T00:00:00Z",
	"2100-02-29T00:00:00Z",
	"2024-12-19T24:00:00Z",
	"2024-12-19T15:60:45Z",
	"2016-12-31T23:59:60Z",
	"2024-12-19 15:30:45Z",
	"2024-12-19T15:30:45",
	"2024-12-19T15:30:45.1",
	"2024-12-19T15:30:45+05:00",
	"20241219T153045Z",
	"2024-12-19T15:30:45,123Z",
	"2024-12-19T15:30:45.Z",
	"2024-12-19T15:30:45.1234567890Z",
}

func main() {
	outDir := flag.String("out", filepath.Join("testdata", "conformance", "stamp"), "output directory")
	flag.Parse()

	var valid struct {
		Vector []validVector `toml:"vector"`
	}
	for _, in := range validInputs {
		i, err := stamp.Parse(in)
		if err != nil {
			fatal(fmt.Errorf("valid vector %q rejected: %w", in, err))
		}
		if _, err := stamp.Canonicalize([]byte(in)); err != nil {
			fatal(fmt.Errorf("valid vector %q not canonical: %w", in, err))
		}
		valid.Vector = append(valid.Vector, validVector{
			Input: in, Unix: i.Unix(), Nanos: i.Nanosecond(),
		})
	}

	var invalid struct {
		Vector []invalidVector `toml:"vector"`
	}
	for _, in := range invalidInputs {
		_, err := stamp.Parse(in)
		if err == nil {
			fatal(fmt.Errorf("invalid vector %q was accepted", in))
		}
		var e *stamp.Error
		if !errors.As(err, &e) {
			fatal(fmt.Errorf("invalid vector %q: unstructured error %v", in, err))
		}
		invalid.Vector = append(invalid.Vector, invalidVector{
			Input: in, Kind: string(e.Kind), RuleID: e.RuleID,
		})
	}

	write(filepath.Join(*outDir, "valid.toml"), "valid inputs", valid)
	write(filepath.Join(*outDir, "invalid.toml"), "rejected inputs", invalid)
}

func write(path, label string, v any) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "# Canonical timestamp conformance vectors: %s.\n", label)
	buf.WriteString("# Generated by internal/tools/vectorgen; do not edit by hand.\n\n")
	if err := toml.NewEncoder(&buf).Encode(v); err != nil {
		fatal(err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		fatal(err)
	}
	fmt.Printf("wrote %s\n", path)
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
