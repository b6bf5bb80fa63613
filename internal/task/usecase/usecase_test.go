package usecase

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flowx/internal/countdown"
	"flowx/internal/lifecycle"
	"flowx/internal/model"
	"flowx/internal/profile"
	"flowx/internal/scoring"
	"flowx/internal/task"
	"flowx/internal/task/repository"
	"flowx/internal/task/repository/kv"
	"flowx/pkg/gcalendar"
	"flowx/pkg/kvstore"
	"flowx/pkg/log"
)

const monday = model.Date("2026-03-02")

type stubProfiles struct {
	p        *model.UserProfile
	loggedIn bool
}

func (s *stubProfiles) Login(ctx context.Context, in profile.LoginInput) (model.UserProfile, error) {
	p := profile.DefaultProfile(in.Username)
	s.p, s.loggedIn = &p, true
	return p, nil
}
func (s *stubProfiles) Logout(ctx context.Context) error { s.loggedIn = false; return nil }
func (s *stubProfiles) Current(ctx context.Context) (model.UserProfile, error) {
	if !s.loggedIn {
		return model.UserProfile{}, profile.ErrNotLoggedIn
	}
	return *s.p, nil
}
func (s *stubProfiles) Restore(ctx context.Context) (model.UserProfile, bool, error) {
	return model.UserProfile{}, false, nil
}
func (s *stubProfiles) CompleteOnboarding(ctx context.Context, in profile.OnboardingInput) (model.UserProfile, error) {
	return *s.p, nil
}

type stubAssistant struct {
	feedbackCalls int
	lastScore     int
}

func (a *stubAssistant) SuggestTasks(ctx context.Context, p model.UserProfile) []string {
	return []string{"Study for " + string(p.Profession)}
}
func (a *stubAssistant) MotivationalFeedback(ctx context.Context, score int, tasks []model.Task) string {
	a.feedbackCalls++
	a.lastScore = score
	return "nice"
}
func (a *stubAssistant) VoiceReminderText(ctx context.Context, t model.Task) string {
	return "Time to start your task: " + t.Name
}

type stubCalendar struct {
	reqs []gcalendar.CreateEventRequest
	err  error
}

func (c *stubCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	if c.err != nil {
		return nil, c.err
	}
	c.reqs = append(c.reqs, req)
	return &gcalendar.Event{ID: "ev", HtmlLink: "https://calendar/ev"}, nil
}
func (c *stubCalendar) CalendarID() string { return "primary" }

type fixture struct {
	uc       *implUseCase
	repo     repository.Repository
	profiles *stubProfiles
	asst     *stubAssistant
	now      time.Time
}

func newFixture(t *testing.T, cal gcalendar.ICalendar) *fixture {
	t.Helper()
	repo := kv.New(kvstore.NewMemory(), log.NewNop(), repository.DefaultKeys())
	require.NoError(t, repo.Load(context.Background()))

	p := profile.DefaultProfile("alice")
	f := &fixture{
		repo:     repo,
		profiles: &stubProfiles{p: &p, loggedIn: true},
		asst:     &stubAssistant{},
		now:      time.Date(2026, 3, 2, 6, 0, 0, 0, time.UTC),
	}
	f.uc = New(log.NewNop(), repo, f.profiles, scoring.New(scoring.DefaultWeights()), f.asst, cal, Options{
		Location:      time.UTC,
		Now:           func() time.Time { return f.now },
		CountdownTick: 10 * time.Millisecond,
	})
	return f
}

func (f *fixture) create(t *testing.T, name string, start model.TimeOfDay, minutes int, p model.Priority) model.Task {
	t.Helper()
	out, err := f.uc.Create(context.Background(), task.CreateInput{
		Name:      name,
		Date:      monday,
		StartTime: start,
		Duration:  minutes,
		Priority:  p,
	})
	require.NoError(t, err)
	return out.Task
}

func TestCreate_Validation(t *testing.T) {
	f := newFixture(t, nil)
	valid := task.CreateInput{Name: "Run", Date: monday, StartTime: "06:30", Duration: 30}

	tcs := map[string]func(in *task.CreateInput){
		"blank name":       func(in *task.CreateInput) { in.Name = "   " },
		"zero duration":    func(in *task.CreateInput) { in.Duration = 0 },
		"malformed date":   func(in *task.CreateInput) { in.Date = "2026-3-2" },
		"malformed time":   func(in *task.CreateInput) { in.StartTime = "6:30pm" },
		"unknown priority": func(in *task.CreateInput) { in.Priority = "Urgent" },
		"unknown alert":    func(in *task.CreateInput) { in.AlertTime = "never" },
	}
	for name, mutate := range tcs {
		t.Run(name, func(t *testing.T) {
			in := valid
			mutate(&in)
			_, err := f.uc.Create(context.Background(), in)
			assert.ErrorIs(t, err, task.ErrValidation)
		})
	}

	out, err := f.uc.Create(context.Background(), valid)
	require.NoError(t, err)
	assert.Equal(t, model.PriorityMedium, out.Task.Priority)
	assert.Equal(t, model.AlertAtStart, out.Task.AlertTime)
	assert.Equal(t, model.StatusPending, out.Task.Status)
}

func TestCreate_RequiresSession(t *testing.T) {
	f := newFixture(t, nil)
	f.profiles.loggedIn = false

	_, err := f.uc.Create(context.Background(), task.CreateInput{Name: "Run", Date: monday, StartTime: "06:30", Duration: 30})
	assert.ErrorIs(t, err, profile.ErrNotLoggedIn)
}

func TestCreate_WorkHoursConflict(t *testing.T) {
	f := newFixture(t, nil)
	in := task.CreateInput{Name: "Dentist", Date: monday, StartTime: "10:00", Duration: 60}

	_, err := f.uc.Create(context.Background(), in)
	require.ErrorIs(t, err, task.ErrWorkHoursConflict)
	tasks, err := f.uc.List(context.Background(), task.ListInput{})
	require.NoError(t, err)
	assert.Empty(t, tasks)

	in.AllowConflict = true
	out, err := f.uc.Create(context.Background(), in)
	require.NoError(t, err)
	require.NotNil(t, out.Conflict)
	assert.Equal(t, model.TimeOfDay("09:00"), out.Conflict.Start)
	assert.Equal(t, model.TimeOfDay("17:00"), out.Conflict.End)

	// Saturday is not a working day.
	in.AllowConflict = false
	in.Date = "2026-03-07"
	out, err = f.uc.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Nil(t, out.Conflict)
}

func TestCreate_RecordsLedgerEntry(t *testing.T) {
	f := newFixture(t, nil)
	f.create(t, "Run", "06:30", 30, model.PriorityLow)

	perf, err := f.uc.Performance(context.Background())
	require.NoError(t, err)
	require.Len(t, perf.Records, 1)
	assert.Equal(t, model.PerformanceRecord{Date: monday, Score: 0, CompletedTasks: 0, TotalTasks: 1}, perf.Records[0])
}

func TestCreate_CalendarMirror(t *testing.T) {
	cal := &stubCalendar{}
	f := newFixture(t, cal)

	out, err := f.uc.Create(context.Background(), task.CreateInput{
		Name: "Run", Date: monday, StartTime: "06:30", Duration: 45, Priority: model.PriorityHigh, Notes: "park loop",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://calendar/ev", out.CalendarLink)
	require.Len(t, cal.reqs, 1)
	assert.Equal(t, "Run", cal.reqs[0].Summary)
	assert.Equal(t, time.Date(2026, 3, 2, 6, 30, 0, 0, time.UTC), cal.reqs[0].StartTime)
	assert.Equal(t, time.Date(2026, 3, 2, 7, 15, 0, 0, time.UTC), cal.reqs[0].EndTime)
	assert.Contains(t, cal.reqs[0].Description, "park loop")

	cal.err = errors.New("quota")
	out, err = f.uc.Create(context.Background(), task.CreateInput{Name: "Read", Date: monday, StartTime: "07:30", Duration: 15})
	require.NoError(t, err)
	assert.Empty(t, out.CalendarLink)
}

func TestUpdateStatus_ScoresDay(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	high := f.create(t, "Gym", "06:30", 30, model.PriorityHigh)
	low := f.create(t, "Read", "07:00", 30, model.PriorityLow)

	_, err := f.uc.UpdateStatus(ctx, task.UpdateStatusInput{ID: high.ID, Event: lifecycle.MarkDone})
	require.NoError(t, err)
	_, err = f.uc.UpdateStatus(ctx, task.UpdateStatusInput{ID: low.ID, Event: lifecycle.MarkFailed})
	require.NoError(t, err)

	perf, err := f.uc.Performance(ctx)
	require.NoError(t, err)
	require.Len(t, perf.Records, 1)
	assert.Equal(t, 75, perf.Records[0].Score)
	assert.Equal(t, 1, perf.Records[0].CompletedTasks)
	assert.Equal(t, 2, perf.Records[0].TotalTasks)
	assert.Equal(t, scoring.Summary{Peak: 75, Average: 75, Count: 1, TotalTasks: 2, HasData: true}, perf.Summary)
}

// pausingRepo blocks the first armed ListTasksForDate until release closes.
type pausingRepo struct {
	repository.Repository
	armed   atomic.Bool
	listed  chan struct{}
	release chan struct{}
}

func (r *pausingRepo) ListTasksForDate(ctx context.Context, date model.Date) ([]model.Task, error) {
	tasks, err := r.Repository.ListTasksForDate(ctx, date)
	if r.armed.CompareAndSwap(true, false) {
		close(r.listed)
		<-r.release
	}
	return tasks, err
}

func TestUpdateStatus_ConcurrentRecomputeKeepsLatestScore(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	a := f.create(t, "Gym", "06:30", 30, model.PriorityMedium)
	b := f.create(t, "Read", "07:00", 30, model.PriorityMedium)

	repo := &pausingRepo{Repository: f.repo, listed: make(chan struct{}), release: make(chan struct{})}
	f.uc.repo = repo
	repo.armed.Store(true)

	aDone := make(chan error, 1)
	go func() {
		_, err := f.uc.UpdateStatus(ctx, task.UpdateStatusInput{ID: a.ID, Event: lifecycle.MarkDone})
		aDone <- err
	}()
	<-repo.listed

	bDone := make(chan error, 1)
	go func() {
		_, err := f.uc.UpdateStatus(ctx, task.UpdateStatusInput{ID: b.ID, Event: lifecycle.MarkDone})
		bDone <- err
	}()

	select {
	case <-bDone:
		t.Fatal("second update finished while the first recompute was in flight")
	case <-time.After(50 * time.Millisecond):
	}

	close(repo.release)
	require.NoError(t, <-aDone)
	require.NoError(t, <-bDone)

	perf, err := f.uc.Performance(ctx)
	require.NoError(t, err)
	require.Len(t, perf.Records, 1)
	assert.Equal(t, 100, perf.Records[0].Score)
	assert.Equal(t, 2, perf.Records[0].CompletedTasks)
}

func TestUpdateStatus_LateCompletion(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	med := f.create(t, "Write", "06:00", 30, model.PriorityMedium)

	// exactly at the end of the window counts as late
	f.now = time.Date(2026, 3, 2, 6, 30, 0, 0, time.UTC)
	got, err := f.uc.UpdateStatus(ctx, task.UpdateStatusInput{ID: med.ID, Event: lifecycle.MarkDone})
	require.NoError(t, err)
	assert.Equal(t, model.StatusCompletedLate, got.Status)

	day, err := f.uc.Day(ctx, monday)
	require.NoError(t, err)
	assert.Equal(t, 50, day.Score)
}

func TestUpdateStatus_Errors(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	tk := f.create(t, "Gym", "06:30", 30, model.PriorityHigh)

	_, err := f.uc.UpdateStatus(ctx, task.UpdateStatusInput{ID: "missing", Event: lifecycle.MarkDone})
	assert.ErrorIs(t, err, task.ErrNotFound)

	_, err = f.uc.UpdateStatus(ctx, task.UpdateStatusInput{ID: tk.ID, Event: "snooze"})
	assert.ErrorIs(t, err, task.ErrValidation)

	_, err = f.uc.UpdateStatus(ctx, task.UpdateStatusInput{ID: tk.ID, Event: lifecycle.MarkFailed})
	require.NoError(t, err)
	_, err = f.uc.UpdateStatus(ctx, task.UpdateStatusInput{ID: tk.ID, Event: lifecycle.MarkDone})
	assert.ErrorIs(t, err, lifecycle.ErrAlreadyResolved)

	got, err := f.uc.Get(ctx, tk.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusNotCompleted, got.Status)
}

func TestConfirmVoiceReminder(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	yes := f.create(t, "Gym", "06:30", 30, model.PriorityHigh)
	no := f.create(t, "Read", "07:00", 30, model.PriorityLow)

	got, err := f.uc.ConfirmVoiceReminder(ctx, task.ConfirmVoiceReminderInput{ID: yes.ID, Completed: true})
	require.NoError(t, err)
	assert.Equal(t, model.StatusCompleted, got.Status)

	got, err = f.uc.ConfirmVoiceReminder(ctx, task.ConfirmVoiceReminderInput{ID: no.ID, Completed: false})
	require.NoError(t, err)
	assert.Equal(t, model.StatusNotCompleted, got.Status)
}

func TestDay(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	b := f.create(t, "B", "07:00", 30, model.PriorityMedium)
	a := f.create(t, "A", "06:00", 30, model.PriorityMedium)
	_, err := f.uc.UpdateStatus(ctx, task.UpdateStatusInput{ID: a.ID, Event: lifecycle.MarkDone})
	require.NoError(t, err)

	day, err := f.uc.Day(ctx, monday)
	require.NoError(t, err)
	require.Len(t, day.Tasks, 2)
	assert.Equal(t, a.ID, day.Tasks[0].ID)
	assert.Equal(t, b.ID, day.Tasks[1].ID)
	assert.Equal(t, 50, day.Score)
	assert.Equal(t, scoring.Breakdown{Done: 1, Pending: 1}, day.Breakdown)
	assert.True(t, day.WorkDay)
	assert.Equal(t, "nice", day.Feedback)
	assert.Equal(t, 50, f.asst.lastScore)

	empty, err := f.uc.Day(ctx, "2026-03-08")
	require.NoError(t, err)
	assert.Empty(t, empty.Tasks)
	assert.Zero(t, empty.Score)
	assert.False(t, empty.WorkDay)
	assert.Empty(t, empty.Feedback)
	assert.Equal(t, 1, f.asst.feedbackCalls)

	perf, err := f.uc.Performance(ctx)
	require.NoError(t, err)
	assert.Len(t, perf.Records, 1, "an empty day adds no ledger entry")

	_, err = f.uc.Day(ctx, "tomorrow")
	assert.ErrorIs(t, err, task.ErrValidation)
}

func TestList_Filters(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	late := f.create(t, "Late", "08:00", 15, model.PriorityLow)
	early := f.create(t, "Early", "06:00", 15, model.PriorityLow)
	_, err := f.uc.UpdateStatus(ctx, task.UpdateStatusInput{ID: late.ID, Event: lifecycle.MarkFailed})
	require.NoError(t, err)

	all, err := f.uc.List(ctx, task.ListInput{})
	require.NoError(t, err)
	assert.Equal(t, []string{late.ID, early.ID}, ids(all))

	byDate, err := f.uc.List(ctx, task.ListInput{Date: monday})
	require.NoError(t, err)
	assert.Equal(t, []string{early.ID, late.ID}, ids(byDate))

	pending, err := f.uc.List(ctx, task.ListInput{Date: monday, Status: model.StatusPending})
	require.NoError(t, err)
	assert.Equal(t, []string{early.ID}, ids(pending))

	_, err = f.uc.List(ctx, task.ListInput{Status: "Done"})
	assert.ErrorIs(t, err, task.ErrValidation)
}

func TestCountdown(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	tk := f.create(t, "Gym", "06:05", 10, model.PriorityHigh)

	st, err := f.uc.Countdown(ctx, tk.ID)
	require.NoError(t, err)
	assert.Equal(t, "0h 5m 0s", st.Label)
	assert.False(t, st.Due)

	f.now = f.now.Add(16 * time.Minute)
	st, err = f.uc.Countdown(ctx, tk.ID)
	require.NoError(t, err)
	assert.Equal(t, countdown.LabelElapsed, st.Label)
	assert.True(t, st.Due)

	got, err := f.uc.Get(ctx, tk.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusPending, got.Status)

	_, err = f.uc.Countdown(ctx, "missing")
	assert.ErrorIs(t, err, task.ErrNotFound)
}

func TestWatchCountdown(t *testing.T) {
	f := newFixture(t, nil)
	tk := f.create(t, "Gym", "06:05", 10, model.PriorityHigh)

	ctx, cancel := context.WithCancel(context.Background())
	ch, err := f.uc.WatchCountdown(ctx, tk.ID)
	require.NoError(t, err)

	first := <-ch
	assert.Equal(t, "0h 5m 0s", first.Label)

	cancel()
	require.Eventually(t, func() bool {
		select {
		case _, ok := <-ch:
			return !ok
		default:
			return false
		}
	}, time.Second, 5*time.Millisecond)
}

func TestVoiceReminder(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	tk := f.create(t, "Gym", "06:30", 30, model.PriorityHigh)

	got, err := f.uc.VoiceReminder(ctx, tk.ID)
	require.NoError(t, err)
	assert.Equal(t, "Time to start your task: Gym", got.VoiceReminder)
	assert.Equal(t, model.StatusPending, got.Status)

	_, err = f.uc.VoiceReminder(ctx, "missing")
	assert.ErrorIs(t, err, task.ErrNotFound)
}

func TestSuggestions(t *testing.T) {
	f := newFixture(t, nil)

	got, err := f.uc.Suggestions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Study for Student"}, got)

	f.profiles.loggedIn = false
	_, err = f.uc.Suggestions(context.Background())
	assert.ErrorIs(t, err, profile.ErrNotLoggedIn)
}

func ids(tasks []model.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}
