package ai

import "sync"

// Tracker assigns a sequence number to each dispatched analysis and
// remembers the latest per kind. A completion whose sequence is no
// longer the latest for its kind is stale and must be discarded, so a
// slow response never overwrites the result of a newer request.
type Tracker struct {
	mu     sync.Mutex
	latest map[Kind]uint64
}

// NewTracker returns an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{latest: make(map[Kind]uint64)}
}

// Begin registers a new request for the kind and returns its sequence
// number. Every prior in-flight request of the same kind becomes
// stale.
func (t *Tracker) Begin(kind Kind) uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.latest[kind]++
	return t.latest[kind]
}

// Current reports whether seq is still the latest request for the
// kind.
func (t *Tracker) Current(kind Kind, seq uint64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.latest[kind] == seq
}
