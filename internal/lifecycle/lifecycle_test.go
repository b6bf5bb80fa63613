package lifecycle_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flowx/internal/lifecycle"
	"flowx/internal/model"
)

func TestTransition_FromPending(t *testing.T) {
	end := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		ev   lifecycle.Event
		now  time.Time
		want model.Status
	}{
		{"done inside window", lifecycle.MarkDone, end.Add(-time.Minute), model.StatusCompleted},
		{"done before start", lifecycle.MarkDone, end.Add(-3 * time.Hour), model.StatusCompleted},
		{"done exactly at end", lifecycle.MarkDone, end, model.StatusCompletedLate},
		{"done after end", lifecycle.MarkDone, end.Add(2 * time.Hour), model.StatusCompletedLate},
		{"failed inside window", lifecycle.MarkFailed, end.Add(-time.Minute), model.StatusNotCompleted},
		{"failed after end", lifecycle.MarkFailed, end.Add(time.Hour), model.StatusNotCompleted},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := lifecycle.Transition(model.StatusPending, tc.ev, tc.now, end)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestTransition_TerminalStatesReject(t *testing.T) {
	end := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	terminal := []model.Status{model.StatusCompleted, model.StatusCompletedLate, model.StatusNotCompleted}

	for _, from := range terminal {
		for _, ev := range []lifecycle.Event{lifecycle.MarkDone, lifecycle.MarkFailed} {
			got, err := lifecycle.Transition(from, ev, end.Add(-time.Hour), end)
			require.ErrorIs(t, err, lifecycle.ErrAlreadyResolved)
			assert.Equal(t, from, got, "status must not change")
		}
	}
}

func TestTransition_UnknownEvent(t *testing.T) {
	now := time.Now()
	got, err := lifecycle.Transition(model.StatusPending, lifecycle.Event("snooze"), now, now.Add(time.Hour))
	require.ErrorIs(t, err, lifecycle.ErrUnknownEvent)
	assert.Equal(t, model.StatusPending, got)
}

func TestCanTransition(t *testing.T) {
	assert.True(t, lifecycle.CanTransition(model.StatusPending, model.StatusCompleted))
	assert.True(t, lifecycle.CanTransition(model.StatusPending, model.StatusCompletedLate))
	assert.True(t, lifecycle.CanTransition(model.StatusPending, model.StatusNotCompleted))
	assert.False(t, lifecycle.CanTransition(model.StatusPending, model.StatusPending))
	assert.False(t, lifecycle.CanTransition(model.StatusCompleted, model.StatusNotCompleted))
	assert.False(t, lifecycle.CanTransition(model.StatusNotCompleted, model.StatusCompleted))
}
