package usecase

import (
	"context"
	"fmt"

	"flowx/internal/model"
	"flowx/internal/profile"
	"flowx/internal/scoring"
	"flowx/internal/task"
)

// Day builds the view for a selected date and refreshes its ledger entry.
func (uc *implUseCase) Day(ctx context.Context, date model.Date) (task.DayOutput, error) {
	if _, err := model.ParseDate(string(date)); err != nil {
		return task.DayOutput{}, fmt.Errorf("%w: %v", task.ErrValidation, err)
	}
	p, err := uc.profiles.Current(ctx)
	if err != nil {
		return task.DayOutput{}, err
	}

	uc.mu.Lock()
	tasks, score, err := uc.recompute(ctx, date)
	uc.mu.Unlock()
	if err != nil {
		if tasks == nil {
			return task.DayOutput{}, err
		}
		uc.l.Errorf(ctx, "task.usecase.Day: upsert %s: %v", date, err)
	}

	out := task.DayOutput{
		Date:      date,
		Tasks:     tasks,
		Score:     score,
		Breakdown: scoring.BreakdownOf(tasks),
		WorkDay:   profile.IsWorkDay(p, date),
	}
	if len(tasks) > 0 {
		out.Feedback = uc.assistant.MotivationalFeedback(ctx, score, tasks)
	}
	return out, nil
}

func (uc *implUseCase) Performance(ctx context.Context) (task.PerformanceOutput, error) {
	records, err := uc.repo.ListPerformanceRecords(ctx)
	if err != nil {
		return task.PerformanceOutput{}, err
	}
	return task.PerformanceOutput{
		Records: records,
		Summary: scoring.Summarize(records),
	}, nil
}
