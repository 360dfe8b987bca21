// internal/status/tracker.go
package status

import "time"

// Tracker folds per-cycle outcomes into a Snapshot.
// Time is the scheduled elapsed time of each cycle, so the result does not
// depend on wall clock jitter.
type Tracker struct {
	snap       Snapshot
	errorSince time.Duration
	inError    bool
}

// NewTracker starts in HealthUnknown.
func NewTracker() *Tracker {
	return &Tracker{snap: Snapshot{Health: HealthUnknown}}
}

// Snapshot returns the current state.
func (t *Tracker) Snapshot() Snapshot { return t.snap }

// Observe records one cycle. code is ErrorNone for a decoded sample.
// It reports whether the snapshot changed.
func (t *Tracker) Observe(elapsed time.Duration, code uint16) bool {
	prev := t.snap

	if code == ErrorNone {
		t.inError = false
		t.snap = Snapshot{Health: HealthOK}
		return prev != t.snap
	}

	if !t.inError {
		t.inError = true
		t.errorSince = elapsed
	}

	secs := (elapsed - t.errorSince) / time.Second
	if secs > MaxSecondsInError {
		secs = MaxSecondsInError
	}

	t.snap = Snapshot{
		Health:         HealthError,
		LastErrorCode:  code,
		SecondsInError: uint16(secs),
	}
	return prev != t.snap
}
