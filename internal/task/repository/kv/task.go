package kv

import (
	"context"
	"sort"

	"flowx/internal/lifecycle"
	"flowx/internal/model"
	"flowx/internal/task/repository"
)

func (r *implRepository) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.reloadTasks(ctx); err != nil {
		return model.Task{}, err
	}

	alert := opt.AlertTime
	if alert == "" {
		alert = model.AlertAtStart
	}
	t := model.Task{
		ID:        r.newID(),
		Name:      opt.Name,
		Date:      opt.Date,
		StartTime: opt.StartTime,
		Duration:  opt.Duration,
		Priority:  opt.Priority,
		Notes:     opt.Notes,
		Status:    model.StatusPending,
		AlertTime: alert,
	}

	next := append(cloneTasks(r.tasks), t)
	if err := r.writeCollection(ctx, r.keys.Tasks, next); err != nil {
		return model.Task{}, err
	}
	r.tasks = next
	return t, nil
}

func (r *implRepository) GetTask(ctx context.Context, id string) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.reloadTasks(ctx); err != nil {
		return model.Task{}, err
	}

	i := r.indexOf(id)
	if i < 0 {
		return model.Task{}, repository.ErrNotFound
	}
	return r.tasks[i], nil
}

func (r *implRepository) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.reloadTasks(ctx); err != nil {
		return nil, err
	}

	out := make([]model.Task, 0, len(r.tasks))
	for _, t := range r.tasks {
		if opt.Date != "" && t.Date != opt.Date {
			continue
		}
		if opt.Status != "" && t.Status != opt.Status {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (r *implRepository) ListTasksForDate(ctx context.Context, date model.Date) ([]model.Task, error) {
	out, err := r.ListTasks(ctx, repository.ListTasksOptions{Date: date})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartTime < out[j].StartTime
	})
	return out, nil
}

func (r *implRepository) UpdateTaskStatus(ctx context.Context, opt repository.UpdateTaskStatusOptions) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.reloadTasks(ctx); err != nil {
		return model.Task{}, err
	}

	i := r.indexOf(opt.ID)
	if i < 0 {
		return model.Task{}, repository.ErrNotFound
	}
	current := r.tasks[i].Status
	if model.IsTerminal(current) {
		return model.Task{}, lifecycle.ErrAlreadyResolved
	}
	if !lifecycle.CanTransition(current, opt.Status) {
		return model.Task{}, repository.ErrInvalidTransition
	}

	next := cloneTasks(r.tasks)
	next[i].Status = opt.Status
	if err := r.writeCollection(ctx, r.keys.Tasks, next); err != nil {
		return model.Task{}, err
	}
	r.tasks = next
	return next[i], nil
}

func (r *implRepository) SetVoiceReminder(ctx context.Context, id, text string) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.reloadTasks(ctx); err != nil {
		return model.Task{}, err
	}

	i := r.indexOf(id)
	if i < 0 {
		return model.Task{}, repository.ErrNotFound
	}

	next := cloneTasks(r.tasks)
	next[i].VoiceReminder = text
	if err := r.writeCollection(ctx, r.keys.Tasks, next); err != nil {
		return model.Task{}, err
	}
	r.tasks = next
	return next[i], nil
}

func (r *implRepository) indexOf(id string) int {
	for i := range r.tasks {
		if r.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

func cloneTasks(in []model.Task) []model.Task {
	out := make([]model.Task, len(in), len(in)+1)
	copy(out, in)
	return out
}
