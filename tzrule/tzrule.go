// Package tzrule supplies timezone offset rules to the display layer.
//
// The rule database itself (IANA zoneinfo) is an external collaborator:
// this package never embeds or updates rule data, it only resolves a zone
// identifier and an instant to the offset in force at that instant.
package tzrule

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

var ErrUnknownZone = errors.New("tzrule: unknown timezone")

// IsUnknownZone reports whether err indicates an unresolvable zone
// identifier.
func IsUnknownZone(err error) bool { return errors.Is(err, ErrUnknownZone) }

// Rule is the offset rule in force in a zone at one instant.
type Rule struct {
	OffsetSeconds int    // seconds east of UTC
	Abbrev        string // zone abbreviation, e.g. "EDT"
	IsDST         bool
}

// Source resolves timezone identifiers against an external rule table.
//
// Contract:
//   - Rule MUST return the offset and abbreviation in force at exactly the
//     given instant, honoring every historical and seasonal transition the
//     underlying table records.
//   - Rule MUST return an error satisfying IsUnknownZone when the
//     identifier does not resolve.
//   - Implementations MUST be safe for unlimited concurrent use.
type Source interface {
	Rule(id string, at time.Time) (Rule, error)
}

// StdSource resolves zones through the process zoneinfo database
// (time.LoadLocation), caching loaded locations. The database is treated as
// an immutable snapshot for the life of the source.
type StdSource struct {
	mu    sync.RWMutex
	cache map[string]*time.Location
}

var _ Source = (*StdSource)(nil)

func NewStdSource() *StdSource {
	return &StdSource{cache: make(map[string]*time.Location)}
}

func (s *StdSource) Rule(id string, at time.Time) (Rule, error) {
	loc, err := s.location(id)
	if err != nil {
		return Rule{}, err
	}
	lt := at.In(loc)
	abbrev, offset := lt.Zone()
	return Rule{OffsetSeconds: offset, Abbrev: abbrev, IsDST: lt.IsDST()}, nil
}

func (s *StdSource) location(id string) (*time.Location, error) {
	if id == "" || id == "UTC" {
		return time.UTC, nil
	}
	s.mu.RLock()
	loc, ok := s.cache[id]
	s.mu.RUnlock()
	if ok {
		return loc, nil
	}
	loc, err := time.LoadLocation(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrUnknownZone, id, err)
	}
	s.mu.Lock()
	s.cache[id] = loc
	s.mu.Unlock()
	return loc, nil
}
