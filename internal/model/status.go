package model

// Status is the lifecycle state of a Task.
type Status string

const (
	StatusPending       Status = "Pending"
	StatusCompleted     Status = "Completed"
	StatusCompletedLate Status = "Completed Late"
	StatusNotCompleted  Status = "Not Completed"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusCompletedLate, StatusNotCompleted:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition may leave s.
func IsTerminal(s Status) bool {
	switch s {
	case StatusCompleted, StatusCompletedLate, StatusNotCompleted:
		return true
	default:
		return false
	}
}

// IsSuccessful reports whether s counts as a completion, on time or late.
func IsSuccessful(s Status) bool {
	switch s {
	case StatusCompleted, StatusCompletedLate:
		return true
	case StatusPending, StatusNotCompleted:
		return false
	default:
		return false
	}
}
