package task

import (
	"flowx/internal/lifecycle"
	"flowx/internal/model"
	"flowx/internal/scoring"
)

// --- UseCase Inputs ---

type CreateInput struct {
	Name      string
	Date      model.Date
	StartTime model.TimeOfDay
	Duration  int // minutes
	Priority  model.Priority
	Notes     string
	AlertTime model.AlertMode
	// AllowConflict acknowledges that the task starts inside working hours.
	AllowConflict bool
}

// ListInput filters a listing. Zero values match everything. With a date
// set, tasks come back sorted by start time.
type ListInput struct {
	Date   model.Date
	Status model.Status
}

type UpdateStatusInput struct {
	ID    string
	Event lifecycle.Event
}

type ConfirmVoiceReminderInput struct {
	ID        string
	Completed bool
}

// --- UseCase Outputs ---

type CreateOutput struct {
	Task model.Task
	// Conflict is set when the task was accepted inside a working window.
	Conflict     *WorkWindow
	CalendarLink string
}

// WorkWindow is the working window a task start time fell into.
type WorkWindow struct {
	Start model.TimeOfDay
	End   model.TimeOfDay
	Extra bool
}

type DayOutput struct {
	Date      model.Date
	Tasks     []model.Task
	Score     int
	Breakdown scoring.Breakdown
	WorkDay   bool
	// Feedback is empty when the day has no tasks.
	Feedback string
}

type PerformanceOutput struct {
	Records []model.PerformanceRecord
	Summary scoring.Summary
}
