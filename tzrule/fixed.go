package tzrule

import (
	"fmt"
	"time"
)

// FixedSource serves static rules keyed by zone identifier, one rule per
// zone regardless of instant. It exists for deterministic tests and for
// embedded deployments that pin a handful of offsets.
type FixedSource struct {
	Rules map[string]Rule
}

var _ Source = FixedSource{}

func (f FixedSource) Rule(id string, _ time.Time) (Rule, error) {
	r, ok := f.Rules[id]
	if !ok {
		return Rule{}, fmt.Errorf("%w: %q", ErrUnknownZone, id)
	}
	return r, nil
}
