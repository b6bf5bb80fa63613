// Package lifecycle holds the task status state machine. Pending is the only
// initial state; Completed, Completed Late and Not Completed are terminal.
// Nothing here reacts to the clock on its own: a transition only happens when
// a user event is applied.
package lifecycle

import (
	"errors"
	"fmt"
	"time"

	"flowx/internal/model"
)

var (
	ErrAlreadyResolved = errors.New("task status is already resolved")
	ErrUnknownEvent    = errors.New("unknown status event")
	ErrIllegalStatus   = errors.New("illegal status transition")
)

// Event is a user action applied to a task.
type Event string

const (
	// MarkDone is a completion, either from the status buttons or from a
	// positive voice-reminder confirmation.
	MarkDone Event = "done"
	// MarkFailed is an explicit miss or skip.
	MarkFailed Event = "failed"
)

func (e Event) Valid() bool {
	return e == MarkDone || e == MarkFailed
}

// Transition applies ev to a task currently in status current. end is the
// exclusive end of the task's scheduled window: a completion at or after end
// is recorded as late.
func Transition(current model.Status, ev Event, now, end time.Time) (model.Status, error) {
	if model.IsTerminal(current) {
		return current, fmt.Errorf("%w: %s", ErrAlreadyResolved, current)
	}
	if current != model.StatusPending {
		return current, fmt.Errorf("%w: from %q", ErrIllegalStatus, current)
	}

	switch ev {
	case MarkDone:
		if now.Before(end) {
			return model.StatusCompleted, nil
		}
		return model.StatusCompletedLate, nil
	case MarkFailed:
		return model.StatusNotCompleted, nil
	default:
		return current, fmt.Errorf("%w: %q", ErrUnknownEvent, ev)
	}
}

// CanTransition reports whether a stored status may be overwritten by next.
func CanTransition(from, next model.Status) bool {
	return from == model.StatusPending && model.IsTerminal(next)
}
