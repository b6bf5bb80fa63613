package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrValidation        = errors.New("invalid task")
	ErrNotFound          = errors.New("task not found")
	ErrWorkHoursConflict = errors.New("task starts during working hours")
)
