package repository

import "flowx/internal/model"

// CreateTaskOptions holds the parameters for a new task. Status is always
// Pending on creation.
type CreateTaskOptions struct {
	Name      string
	Date      model.Date
	StartTime model.TimeOfDay
	Duration  int
	Priority  model.Priority
	Notes     string
	AlertTime model.AlertMode
}

// ListTasksOptions filters a task listing. Zero values match everything.
type ListTasksOptions struct {
	Date   model.Date
	Status model.Status
}

// UpdateTaskStatusOptions holds a direct status write.
type UpdateTaskStatusOptions struct {
	ID     string
	Status model.Status
}

// Keys names the persisted task collections.
type Keys struct {
	Tasks       string
	Performance string
}

// DefaultKeys matches the storage layout of earlier releases.
func DefaultKeys() Keys {
	return Keys{
		Tasks:       "flow-x_tasks",
		Performance: "flow-x_perf",
	}
}
