package repository

import (
	"context"

	"flowx/internal/model"
)

// Repository is the composed interface for the task store. It is the single
// owner of the persisted task list and the performance ledger.
type Repository interface {
	// Load reads persisted state into memory. Malformed data is logged and
	// replaced by an empty collection.
	Load(ctx context.Context) error

	TaskRepository
	PerformanceRepository
}

// TaskRepository defines all data access methods for the Task entity.
type TaskRepository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)
	GetTask(ctx context.Context, id string) (model.Task, error)
	// ListTasks returns tasks in insertion order, filtered by opt.
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, error)
	// ListTasksForDate returns the tasks of date sorted by start time.
	// Tasks with equal start times keep their insertion order.
	ListTasksForDate(ctx context.Context, date model.Date) ([]model.Task, error)
	UpdateTaskStatus(ctx context.Context, opt UpdateTaskStatusOptions) (model.Task, error)
	SetVoiceReminder(ctx context.Context, id, text string) (model.Task, error)
}

// PerformanceRepository defines data access for the per-day ledger.
type PerformanceRepository interface {
	// UpsertPerformanceRecord replaces the record with the same date or appends.
	UpsertPerformanceRecord(ctx context.Context, rec model.PerformanceRecord) error
	// ListPerformanceRecords returns the ledger ascending by date.
	ListPerformanceRecords(ctx context.Context) ([]model.PerformanceRecord, error)
}
