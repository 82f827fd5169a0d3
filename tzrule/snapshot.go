package tzrule

import (
	"sync/atomic"
	"time"
)

// Snapshot holds an immutable Source and supports atomic replacement.
//
// Rule-table refreshes swap the whole source in one step; a concurrent
// reader sees either the old table or the new one, never a partially
// updated state.
type Snapshot struct {
	src atomic.Pointer[sourceBox]
}

// sourceBox keeps the interface value behind a concrete pointer type for
// atomic.Pointer.
type sourceBox struct {
	s Source
}

var _ Source = (*Snapshot)(nil)

func NewSnapshot(s Source) *Snapshot {
	snap := &Snapshot{}
	snap.src.Store(&sourceBox{s: s})
	return snap
}

// Swap atomically replaces the current source and returns the previous one.
func (sn *Snapshot) Swap(s Source) Source {
	old := sn.src.Swap(&sourceBox{s: s})
	return old.s
}

func (sn *Snapshot) Rule(id string, at time.Time) (Rule, error) {
	return sn.src.Load().s.Rule(id, at)
}
