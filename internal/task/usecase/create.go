package usecase

import (
	"context"
	"fmt"
	"strings"

	"flowx/internal/model"
	"flowx/internal/profile"
	"flowx/internal/task"
	"flowx/internal/task/repository"
	"flowx/pkg/gcalendar"
)

// Create validates and stores a new pending task. A start time inside the
// profile's working hours is refused unless the caller acknowledged it.
func (uc *implUseCase) Create(ctx context.Context, input task.CreateInput) (task.CreateOutput, error) {
	input, err := validateCreate(input)
	if err != nil {
		return task.CreateOutput{}, err
	}

	p, err := uc.profiles.Current(ctx)
	if err != nil {
		return task.CreateOutput{}, err
	}

	var out task.CreateOutput
	if w, ok := profile.WorkConflict(p, input.Date, input.StartTime); ok {
		if !input.AllowConflict {
			return task.CreateOutput{}, fmt.Errorf("%w: %s is inside %s-%s", task.ErrWorkHoursConflict, input.StartTime, w.Start, w.End)
		}
		out.Conflict = &task.WorkWindow{Start: w.Start, End: w.End, Extra: w.Extra}
	}

	uc.mu.Lock()
	t, err := uc.repo.CreateTask(ctx, repository.CreateTaskOptions{
		Name:      input.Name,
		Date:      input.Date,
		StartTime: input.StartTime,
		Duration:  input.Duration,
		Priority:  input.Priority,
		Notes:     strings.TrimSpace(input.Notes),
		AlertTime: input.AlertTime,
	})
	if err != nil {
		uc.mu.Unlock()
		uc.l.Errorf(ctx, "task.usecase.Create: %v", err)
		return task.CreateOutput{}, err
	}
	if _, _, err := uc.recompute(ctx, t.Date); err != nil {
		uc.l.Errorf(ctx, "task.usecase.Create: recompute %s: %v", t.Date, err)
	}
	uc.mu.Unlock()

	out.Task = t
	uc.l.Infof(ctx, "task.usecase.Create: id=%s date=%s start=%s", t.ID, t.Date, t.StartTime)

	out.CalendarLink = uc.mirrorToCalendar(ctx, t)
	return out, nil
}

// mirrorToCalendar copies t into the external calendar and returns the event
// link, or an empty string when no calendar is configured or the call fails.
func (uc *implUseCase) mirrorToCalendar(ctx context.Context, t model.Task) string {
	if uc.calendar == nil {
		return ""
	}
	start, end, err := t.Window(uc.loc)
	if err != nil {
		return ""
	}

	description := fmt.Sprintf("Priority: %s", t.Priority)
	if t.Notes != "" {
		description += "\n\n" + t.Notes
	}
	event, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		Summary:     t.Name,
		Description: description,
		StartTime:   start,
		EndTime:     end,
		Timezone:    uc.loc.String(),
	})
	if err != nil {
		uc.l.Warnf(ctx, "task.usecase.Create: calendar mirror failed for %s (non-fatal): %v", t.ID, err)
		return ""
	}
	return event.HtmlLink
}
