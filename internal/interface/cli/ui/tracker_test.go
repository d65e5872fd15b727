package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"payflow/internal/domain/flow"
)

func TestTrackerShowsAllSteps(t *testing.T) {
	state := flow.NewState()
	out := Tracker(state)

	for s := flow.Step(0); s.IsValid(); s++ {
		assert.Contains(t, out, s.Title())
	}
	// The first step carries the active marker.
	assert.Contains(t, out, "→  1. Create organization")
}

func TestTrackerMarksCompletion(t *testing.T) {
	state := flow.NewState()
	state.Complete(flow.StepCreateOrganization)

	out := Tracker(state)

	assert.Contains(t, out, "✓  1. Create organization")
	assert.Contains(t, out, "→  2. Get Terms of Service link")
	assert.NotContains(t, out, "All steps complete.")
}

func TestTrackerDone(t *testing.T) {
	state := flow.NewState()
	for s := flow.Step(0); s.IsValid(); s++ {
		state.Complete(s)
	}

	out := Tracker(state)

	assert.True(t, state.Done())
	assert.Contains(t, out, "All steps complete.")
}

func TestDetailsSkipsEmptyFields(t *testing.T) {
	state := flow.NewState()
	assert.Empty(t, Details(state))

	state.OrgID = "org-1"
	state.AccountAddress = "0xabc"
	out := Details(state)

	assert.Contains(t, out, "org-1")
	assert.Contains(t, out, "0xabc")
	assert.Equal(t, 2, strings.Count(out, "\n"))
}
