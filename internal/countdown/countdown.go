// Package countdown derives the remaining-time label and due flag of a task
// from the wall clock. It only reads tasks; reaching "Elapsed" never changes
// a task's status.
package countdown

import (
	"fmt"
	"time"

	"flowx/internal/model"
)

const LabelElapsed = "Elapsed"

// Phase locates now relative to a task's window.
type Phase string

const (
	PhaseUpcoming   Phase = "upcoming"
	PhaseInProgress Phase = "in_progress"
	PhaseElapsed    Phase = "elapsed"
)

// State is one evaluation of a task's countdown.
type State struct {
	TaskID    string
	Label     string
	Due       bool
	Phase     Phase
	Remaining time.Duration
	At        time.Time
}

// Evaluate computes the countdown state of task at now, interpreting the
// task's date and start time in loc.
func Evaluate(task model.Task, now time.Time, loc *time.Location) (State, error) {
	start, end, err := task.Window(loc)
	if err != nil {
		return State{}, err
	}
	return evaluateWindow(task.ID, start, end, now), nil
}

func evaluateWindow(id string, start, end, now time.Time) State {
	st := State{TaskID: id, At: now}

	switch {
	case now.Before(start):
		st.Phase = PhaseUpcoming
		st.Remaining = start.Sub(now)
		st.Label = upcomingLabel(st.Remaining)
	case now.Before(end):
		st.Phase = PhaseInProgress
		st.Remaining = end.Sub(now)
		st.Label = inProgressLabel(st.Remaining)
	default:
		st.Phase = PhaseElapsed
		st.Label = LabelElapsed
		st.Due = true
	}
	return st
}

func upcomingLabel(d time.Duration) string {
	days := int(d / (24 * time.Hour))
	hours := int(d % (24 * time.Hour) / time.Hour)
	if days > 0 {
		return fmt.Sprintf("%dd %dh", days, hours)
	}
	minutes := int(d % time.Hour / time.Minute)
	seconds := int(d % time.Minute / time.Second)
	return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
}

func inProgressLabel(d time.Duration) string {
	minutes := int(d / time.Minute)
	seconds := int(d % time.Minute / time.Second)
	return fmt.Sprintf("%dm %ds remaining", minutes, seconds)
}
