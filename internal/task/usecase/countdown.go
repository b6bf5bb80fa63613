package usecase

import (
	"context"
	"fmt"

	"flowx/internal/countdown"
	"flowx/internal/task"
)

func (uc *implUseCase) Countdown(ctx context.Context, id string) (countdown.State, error) {
	t, err := uc.Get(ctx, id)
	if err != nil {
		return countdown.State{}, err
	}
	st, err := countdown.Evaluate(t, uc.now(), uc.loc)
	if err != nil {
		return countdown.State{}, fmt.Errorf("%w: %v", task.ErrValidation, err)
	}
	return st, nil
}

// WatchCountdown snapshots the task once; later status changes do not
// affect the stream, which only tracks the scheduled window.
func (uc *implUseCase) WatchCountdown(ctx context.Context, id string) (<-chan countdown.State, error) {
	t, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	ch, err := countdown.Watch(ctx, t, uc.loc, uc.tick, uc.now)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", task.ErrValidation, err)
	}
	return ch, nil
}
