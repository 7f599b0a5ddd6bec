package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrackerStaleSuppression(t *testing.T) {
	tracker := NewTracker()

	first := tracker.Begin(KindATS)
	assert.True(t, tracker.Current(KindATS, first))

	// A newer request of the same kind makes the first stale.
	second := tracker.Begin(KindATS)
	assert.False(t, tracker.Current(KindATS, first))
	assert.True(t, tracker.Current(KindATS, second))
}

func TestTrackerKindsAreIndependent(t *testing.T) {
	tracker := NewTracker()

	ats := tracker.Begin(KindATS)
	jd := tracker.Begin(KindJDMatch)

	tracker.Begin(KindATS)
	assert.False(t, tracker.Current(KindATS, ats))
	assert.True(t, tracker.Current(KindJDMatch, jd))
}
