package usecase

import (
	"sync"
	"time"

	"flowx/internal/assistant"
	"flowx/internal/countdown"
	"flowx/internal/profile"
	"flowx/internal/scoring"
	"flowx/internal/task/repository"
	"flowx/pkg/gcalendar"
	pkgLog "flowx/pkg/log"
)

// Options carries the clock and tuning values. Zero values fall back to
// the local time zone, time.Now and a one second countdown tick.
type Options struct {
	Location      *time.Location
	Now           func() time.Time
	CountdownTick time.Duration
}

type implUseCase struct {
	l         pkgLog.Logger
	repo      repository.Repository
	profiles  profile.UseCase
	engine    *scoring.Engine
	assistant assistant.Assistant
	calendar  gcalendar.ICalendar
	loc       *time.Location
	now       func() time.Time
	tick      time.Duration

	// mu serializes each store mutation with the ledger recompute of its day.
	mu sync.Mutex
}

// New creates a new task UseCase instance. calendar may be nil.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	profiles profile.UseCase,
	engine *scoring.Engine,
	asst assistant.Assistant,
	calendar gcalendar.ICalendar,
	opt Options,
) *implUseCase {
	uc := &implUseCase{
		l:         l,
		repo:      repo,
		profiles:  profiles,
		engine:    engine,
		assistant: asst,
		calendar:  calendar,
		loc:       opt.Location,
		now:       opt.Now,
		tick:      opt.CountdownTick,
	}
	if uc.loc == nil {
		uc.loc = time.Local
	}
	if uc.now == nil {
		uc.now = time.Now
	}
	if uc.tick <= 0 {
		uc.tick = countdown.DefaultInterval
	}
	return uc
}
