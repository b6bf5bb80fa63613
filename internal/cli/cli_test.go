package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flowx/config"
	"flowx/internal/app"
	"flowx/internal/profile"
	"flowx/pkg/gcalendar"
	"flowx/pkg/log"
)

func fileBuilder(t *testing.T) Builder {
	dir := filepath.Join(t.TempDir(), "data")
	return func(ctx context.Context, cfgFile string, verbose bool) (*app.Container, error) {
		cfg := &config.Config{Timezone: "UTC"}
		cfg.Storage.Driver = "file"
		cfg.Storage.Dir = dir
		return app.NewContainer(ctx, cfg, log.NewNop())
	}
}

func run(t *testing.T, build Builder, args ...string) (string, error) {
	t.Helper()
	cmd, rt := newRootCmd(build)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	require.NoError(t, rt.close())
	return out.String(), err
}

var idPattern = regexp.MustCompile(`Task created: (\S+)`)

func TestLoginOnboardAndWhoami(t *testing.T) {
	build := fileBuilder(t)

	out, err := run(t, build, "login", "ana")
	require.NoError(t, err)
	assert.Contains(t, out, "Logged in as ana")
	assert.Contains(t, out, "flowx onboard")

	out, err = run(t, build, "onboard",
		"--profession", "Other", "--custom", "Nurse",
		"--days", "Monday,Tuesday",
		"--hours", "08:00-16:00",
		"--extra", "Saturday 10:00-12:00")
	require.NoError(t, err)
	assert.Contains(t, out, "Profession:  Nurse")

	out, err = run(t, build, "whoami")
	require.NoError(t, err)
	assert.Contains(t, out, "Work days:   Monday, Tuesday")
	assert.Contains(t, out, "Hours:       08:00-16:00")
	assert.Contains(t, out, "Extra:       Saturday 10:00-12:00")
	assert.NotContains(t, out, "Onboarding:  pending")

	_, err = run(t, build, "onboard", "--profession", "Doctor")
	assert.ErrorIs(t, err, profile.ErrAlreadyOnboarded)
}

func TestOnboard_BadHours(t *testing.T) {
	build := fileBuilder(t)
	_, err := run(t, build, "login", "ana")
	require.NoError(t, err)

	_, err = run(t, build, "onboard", "--hours", "nine-five")
	assert.Error(t, err)
}

func TestTaskCommands_RequireSession(t *testing.T) {
	_, err := run(t, fileBuilder(t), "task", "add", "Gym", "--date", "2030-01-05", "--start", "18:00")
	assert.Error(t, err)
}

func TestTaskLifecycleAndHistory(t *testing.T) {
	build := fileBuilder(t)
	_, err := run(t, build, "login", "ana")
	require.NoError(t, err)

	// 2030-01-05 is a Saturday, outside the default working days.
	out, err := run(t, build, "task", "add", "Gym", "--date", "2030-01-05", "--start", "18:00", "--priority", "High")
	require.NoError(t, err)
	m := idPattern.FindStringSubmatch(out)
	require.Len(t, m, 2)
	id := m[1]

	out, err = run(t, build, "task", "list", "--date", "2030-01-05")
	require.NoError(t, err)
	assert.Contains(t, out, "Gym")
	assert.Contains(t, out, "Pending")

	out, err = run(t, build, "task", "show", id)
	require.NoError(t, err)
	assert.Contains(t, out, "Priority:   High")
	assert.Contains(t, out, "Countdown:")

	out, err = run(t, build, "task", "done", id)
	require.NoError(t, err)
	assert.Contains(t, out, "Completed")

	_, err = run(t, build, "task", "fail", id)
	assert.Error(t, err, "resolved tasks stay resolved")

	out, err = run(t, build, "day", "2030-01-05")
	require.NoError(t, err)
	assert.Contains(t, out, "2030-01-05 (day off)")
	assert.Contains(t, out, "Score: 100%")

	out, err = run(t, build, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "2030-01-05")
	assert.Contains(t, out, "Peak 100%")
}

func TestTaskAdd_WorkHoursConflict(t *testing.T) {
	build := fileBuilder(t)
	_, err := run(t, build, "login", "ana")
	require.NoError(t, err)

	// 2030-01-07 is a Monday; 10:00 is inside the default 09:00-17:00.
	_, err = run(t, build, "task", "add", "Call", "--date", "2030-01-07", "--start", "10:00")
	assert.Error(t, err)

	out, err := run(t, build, "task", "add", "Call", "--date", "2030-01-07", "--start", "10:00", "--allow-conflict")
	require.NoError(t, err)
	assert.Contains(t, out, "Note: starts inside working hours 09:00-17:00")
}

func TestHistory_Empty(t *testing.T) {
	build := fileBuilder(t)
	_, err := run(t, build, "login", "ana")
	require.NoError(t, err)

	out, err := run(t, build, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "No performance data yet")
}

func TestLogout(t *testing.T) {
	build := fileBuilder(t)
	_, err := run(t, build, "login", "ana")
	require.NoError(t, err)

	out, err := run(t, build, "logout")
	require.NoError(t, err)
	assert.Contains(t, out, "Logged out")

	_, err = run(t, build, "whoami")
	assert.Error(t, err)
}

func TestRelativeDates(t *testing.T) {
	build := fileBuilder(t)
	_, err := run(t, build, "login", "ana")
	require.NoError(t, err)

	_, err = run(t, build, "task", "add", "Stretch", "--date", "tomorrow", "--start", "23:00", "--priority", "Low")
	require.NoError(t, err)

	out, err := run(t, build, "task", "list", "--date", "tomorrow")
	require.NoError(t, err)
	assert.Contains(t, out, "Stretch")

	out, err = run(t, build, "task", "list", "--date", "today")
	require.NoError(t, err)
	assert.NotContains(t, out, "Stretch")

	_, err = run(t, build, "day", "someday")
	assert.Error(t, err)
}

func TestCalendarAuth_NeedsCredentials(t *testing.T) {
	_, err := run(t, fileBuilder(t), "calendar", "auth")
	assert.ErrorIs(t, err, gcalendar.ErrMissingCredentials)
}
