package task

import (
	"context"

	"flowx/internal/countdown"
	"flowx/internal/model"
)

// UseCase owns the daily data flow: profile context and task store in,
// score and performance ledger out.
//
//go:generate mockery --name UseCase
type UseCase interface {
	// Scheduling
	Create(ctx context.Context, input CreateInput) (CreateOutput, error)
	List(ctx context.Context, input ListInput) ([]model.Task, error)
	Get(ctx context.Context, id string) (model.Task, error)
	UpdateStatus(ctx context.Context, input UpdateStatusInput) (model.Task, error)

	// Views
	Day(ctx context.Context, date model.Date) (DayOutput, error)
	Performance(ctx context.Context) (PerformanceOutput, error)
	Countdown(ctx context.Context, id string) (countdown.State, error)
	// WatchCountdown streams countdown states until ctx is cancelled.
	WatchCountdown(ctx context.Context, id string) (<-chan countdown.State, error)

	// Assistant
	VoiceReminder(ctx context.Context, id string) (model.Task, error)
	ConfirmVoiceReminder(ctx context.Context, input ConfirmVoiceReminderInput) (model.Task, error)
	Suggestions(ctx context.Context) ([]string, error)
}
