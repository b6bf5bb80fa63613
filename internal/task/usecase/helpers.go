package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"flowx/internal/model"
	"flowx/internal/task"
	"flowx/internal/task/repository"
)

func validateCreate(input task.CreateInput) (task.CreateInput, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return input, fmt.Errorf("%w: name is required", task.ErrValidation)
	}
	if input.Duration <= 0 {
		return input, fmt.Errorf("%w: duration must be positive", task.ErrValidation)
	}
	if _, err := model.ParseDate(string(input.Date)); err != nil {
		return input, fmt.Errorf("%w: %v", task.ErrValidation, err)
	}
	if _, err := model.ParseTimeOfDay(string(input.StartTime)); err != nil {
		return input, fmt.Errorf("%w: %v", task.ErrValidation, err)
	}
	if input.Priority == "" {
		input.Priority = model.PriorityMedium
	}
	if !input.Priority.Valid() {
		return input, fmt.Errorf("%w: unknown priority %q", task.ErrValidation, input.Priority)
	}
	if input.AlertTime == "" {
		input.AlertTime = model.AlertAtStart
	}
	if !input.AlertTime.Valid() {
		return input, fmt.Errorf("%w: unknown alert time %q", task.ErrValidation, input.AlertTime)
	}
	return input, nil
}

func mapRepoError(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return task.ErrNotFound
	}
	return err
}

// recompute scores date and stores its ledger entry. Days without tasks
// leave the ledger untouched. Callers hold uc.mu.
func (uc *implUseCase) recompute(ctx context.Context, date model.Date) ([]model.Task, int, error) {
	tasks, err := uc.repo.ListTasksForDate(ctx, date)
	if err != nil {
		return nil, 0, err
	}
	rec, ok := uc.engine.Record(date, tasks)
	if !ok {
		return tasks, 0, nil
	}
	if err := uc.repo.UpsertPerformanceRecord(ctx, rec); err != nil {
		return tasks, rec.Score, err
	}
	return tasks, rec.Score, nil
}
