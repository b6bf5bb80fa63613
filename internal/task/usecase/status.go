package usecase

import (
	"context"
	"fmt"

	"flowx/internal/lifecycle"
	"flowx/internal/model"
	"flowx/internal/task"
	"flowx/internal/task/repository"
)

// UpdateStatus applies a user event at the current time and rescores the
// task's day.
func (uc *implUseCase) UpdateStatus(ctx context.Context, input task.UpdateStatusInput) (model.Task, error) {
	if !input.Event.Valid() {
		return model.Task{}, fmt.Errorf("%w: %v %q", task.ErrValidation, lifecycle.ErrUnknownEvent, input.Event)
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	t, err := uc.repo.GetTask(ctx, input.ID)
	if err != nil {
		return model.Task{}, mapRepoError(err)
	}
	_, end, err := t.Window(uc.loc)
	if err != nil {
		return model.Task{}, fmt.Errorf("%w: %v", task.ErrValidation, err)
	}

	next, err := lifecycle.Transition(t.Status, input.Event, uc.now(), end)
	if err != nil {
		return model.Task{}, err
	}

	updated, err := uc.repo.UpdateTaskStatus(ctx, repository.UpdateTaskStatusOptions{ID: t.ID, Status: next})
	if err != nil {
		return model.Task{}, mapRepoError(err)
	}
	uc.l.Infof(ctx, "task.usecase.UpdateStatus: id=%s %s -> %s", t.ID, t.Status, next)

	if _, _, err := uc.recompute(ctx, t.Date); err != nil {
		uc.l.Errorf(ctx, "task.usecase.UpdateStatus: recompute %s: %v", t.Date, err)
	}
	return updated, nil
}

// ConfirmVoiceReminder resolves the reminder's yes/no answer into a status
// event.
func (uc *implUseCase) ConfirmVoiceReminder(ctx context.Context, input task.ConfirmVoiceReminderInput) (model.Task, error) {
	ev := lifecycle.MarkFailed
	if input.Completed {
		ev = lifecycle.MarkDone
	}
	return uc.UpdateStatus(ctx, task.UpdateStatusInput{ID: input.ID, Event: ev})
}
