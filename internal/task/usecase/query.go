package usecase

import (
	"context"
	"fmt"

	"flowx/internal/model"
	"flowx/internal/task"
	"flowx/internal/task/repository"
)

func (uc *implUseCase) List(ctx context.Context, input task.ListInput) ([]model.Task, error) {
	if input.Date != "" {
		if _, err := model.ParseDate(string(input.Date)); err != nil {
			return nil, fmt.Errorf("%w: %v", task.ErrValidation, err)
		}
	}
	if input.Status != "" && !input.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", task.ErrValidation, input.Status)
	}

	if input.Date == "" {
		return uc.repo.ListTasks(ctx, repository.ListTasksOptions{Status: input.Status})
	}

	tasks, err := uc.repo.ListTasksForDate(ctx, input.Date)
	if err != nil {
		return nil, err
	}
	if input.Status == "" {
		return tasks, nil
	}
	filtered := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Status == input.Status {
			filtered = append(filtered, t)
		}
	}
	return filtered, nil
}

func (uc *implUseCase) Get(ctx context.Context, id string) (model.Task, error) {
	t, err := uc.repo.GetTask(ctx, id)
	if err != nil {
		return model.Task{}, mapRepoError(err)
	}
	return t, nil
}
