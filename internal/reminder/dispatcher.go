// Package reminder fires a voice reminder for each pending task once, at
// its start or shortly before its end depending on the task's alert time.
package reminder

import (
	"context"
	"sync"
	"time"

	"flowx/internal/model"
	"flowx/internal/task"
	"flowx/pkg/log"
)

const (
	DefaultScanInterval = 30 * time.Second
	DefaultLeadTime     = 5 * time.Minute
)

// TaskSource is the part of the task use case the dispatcher needs.
type TaskSource interface {
	List(ctx context.Context, input task.ListInput) ([]model.Task, error)
	VoiceReminder(ctx context.Context, id string) (model.Task, error)
}

type Options struct {
	Location     *time.Location
	ScanInterval time.Duration
	// LeadTime is how long before the end a before-completion alert fires.
	LeadTime time.Duration
	Now      func() time.Time
}

// Dispatcher scans pending tasks and notifies for alerts that came due
// since the previous scan.
type Dispatcher struct {
	l         log.Logger
	tasks     TaskSource
	notifiers []Notifier
	loc       *time.Location
	interval  time.Duration
	leadTime  time.Duration
	now       func() time.Time
	scheduler *Scheduler

	mu       sync.Mutex
	lastScan time.Time
	sent     map[string]struct{}
}

func NewDispatcher(l log.Logger, tasks TaskSource, notifiers []Notifier, opt Options) *Dispatcher {
	d := &Dispatcher{
		l:         l,
		tasks:     tasks,
		notifiers: notifiers,
		loc:       opt.Location,
		interval:  opt.ScanInterval,
		leadTime:  opt.LeadTime,
		now:       opt.Now,
		sent:      make(map[string]struct{}),
	}
	if d.loc == nil {
		d.loc = time.Local
	}
	if d.interval <= 0 {
		d.interval = DefaultScanInterval
	}
	if d.leadTime <= 0 {
		d.leadTime = DefaultLeadTime
	}
	if d.now == nil {
		d.now = time.Now
	}
	return d
}

// Start schedules Scan on the configured interval.
func (d *Dispatcher) Start() error {
	d.scheduler = NewScheduler(d.loc)
	if _, err := d.scheduler.ScheduleInterval(d.interval, func() {
		ctx, cancel := context.WithTimeout(context.Background(), d.interval)
		defer cancel()
		if n, err := d.Scan(ctx); err != nil {
			d.l.Errorf(ctx, "reminder.Dispatcher.Scan: %v", err)
		} else if n > 0 {
			d.l.Infof(ctx, "reminder.Dispatcher.Scan: sent %d reminder(s)", n)
		}
	}); err != nil {
		return err
	}
	d.scheduler.Start()
	return nil
}

// Stop waits for a running scan to finish.
func (d *Dispatcher) Stop() {
	if d.scheduler != nil {
		d.scheduler.Stop()
	}
}

// Scan notifies every pending task whose alert moment lies in
// (previous scan, now] and returns how many reminders went out. The first
// scan looks back one interval. Scans never change a task's status.
func (d *Dispatcher) Scan(ctx context.Context) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	now := d.now()
	from := d.lastScan
	if from.IsZero() {
		from = now.Add(-d.interval)
	}

	pending, err := d.tasks.List(ctx, task.ListInput{Status: model.StatusPending})
	if err != nil {
		return 0, err
	}
	d.lastScan = now

	sent := 0
	for _, t := range pending {
		if _, done := d.sent[t.ID]; done {
			continue
		}
		at, err := d.alertAt(t)
		if err != nil {
			d.l.Warnf(ctx, "reminder.Dispatcher.Scan: task %s: %v", t.ID, err)
			continue
		}
		if !at.After(from) || at.After(now) {
			continue
		}

		d.sent[t.ID] = struct{}{}
		d.dispatch(ctx, t, at)
		sent++
	}
	return sent, nil
}

func (d *Dispatcher) dispatch(ctx context.Context, t model.Task, at time.Time) {
	updated, err := d.tasks.VoiceReminder(ctx, t.ID)
	if err != nil {
		d.l.Warnf(ctx, "reminder.Dispatcher.dispatch: voice reminder for %s: %v", t.ID, err)
	} else {
		t = updated
	}

	r := Reminder{Task: t, Text: t.VoiceReminder, At: at}
	if r.Text == "" {
		r.Text = "Reminder: " + t.Name
	}
	for _, n := range d.notifiers {
		if err := n.Notify(ctx, r); err != nil {
			d.l.Warnf(ctx, "reminder.Dispatcher.dispatch: notify %s: %v", t.ID, err)
		}
	}
}

// alertAt is the task start, or end minus the lead time for
// before-completion alerts, never earlier than the start.
func (d *Dispatcher) alertAt(t model.Task) (time.Time, error) {
	start, end, err := t.Window(d.loc)
	if err != nil {
		return time.Time{}, err
	}
	if t.AlertTime != model.AlertBeforeCompletion {
		return start, nil
	}
	at := end.Add(-d.leadTime)
	if at.Before(start) {
		return start, nil
	}
	return at, nil
}
