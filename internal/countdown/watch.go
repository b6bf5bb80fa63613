package countdown

import (
	"context"
	"time"

	"flowx/internal/model"
)

// DefaultInterval is the refresh period of a displayed countdown.
const DefaultInterval = time.Second

// Clock returns the current time.
type Clock func() time.Time

// Watch emits the task's state immediately and then on every tick until ctx
// is done. The ticker is stopped and the channel closed when ctx ends, so a
// watcher never outlives the view that owns it. Slow receivers miss ticks
// rather than queueing them.
func Watch(ctx context.Context, task model.Task, loc *time.Location, interval time.Duration, now Clock) (<-chan State, error) {
	start, end, err := task.Window(loc)
	if err != nil {
		return nil, err
	}
	if interval <= 0 {
		interval = DefaultInterval
	}
	if now == nil {
		now = time.Now
	}

	out := make(chan State, 1)
	go func() {
		defer close(out)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		emit := func() {
			select {
			case out <- evaluateWindow(task.ID, start, end, now()):
			default:
			}
		}

		emit()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				emit()
			}
		}
	}()
	return out, nil
}
