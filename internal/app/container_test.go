package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flowx/config"
	"flowx/internal/profile"
	"flowx/internal/task"
	"flowx/pkg/log"
)

func testConfig(driver, dir string) *config.Config {
	cfg := &config.Config{Timezone: "UTC"}
	cfg.HTTPServer.Mode = "test"
	cfg.Storage.Driver = driver
	cfg.Storage.Dir = dir
	cfg.Reminder.Enabled = true
	return cfg
}

func TestNewContainer_Memory(t *testing.T) {
	c, err := NewContainer(context.Background(), testConfig("memory", ""), log.NewNop())
	require.NoError(t, err)
	defer c.Close()

	assert.NotNil(t, c.ProfileUseCase)
	assert.NotNil(t, c.TaskUseCase)
	assert.NotNil(t, c.Dispatcher)
	assert.Equal(t, "UTC", c.Location.String())
	assert.NoError(t, c.Ready(context.Background()))
}

func TestNewContainer_RemindersDisabled(t *testing.T) {
	cfg := testConfig("memory", "")
	cfg.Reminder.Enabled = false

	c, err := NewContainer(context.Background(), cfg, log.NewNop())
	require.NoError(t, err)
	defer c.Close()

	assert.Nil(t, c.Dispatcher)
}

func TestNewContainer_UnknownTimezone(t *testing.T) {
	cfg := testConfig("memory", "")
	cfg.Timezone = "Nowhere/Special"

	_, err := NewContainer(context.Background(), cfg, log.NewNop())
	assert.Error(t, err)
}

func TestNewContainer_ResumesSessionFromFiles(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "data")

	first, err := NewContainer(ctx, testConfig("file", dir), log.NewNop())
	require.NoError(t, err)
	_, err = first.ProfileUseCase.Login(ctx, profile.LoginInput{Username: "ana"})
	require.NoError(t, err)
	created, err := first.TaskUseCase.Create(ctx, task.CreateInput{
		Name:      "Read",
		Date:      "2030-01-05",
		StartTime: "20:00",
		Duration:  30,
	})
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := NewContainer(ctx, testConfig("file", dir), log.NewNop())
	require.NoError(t, err)
	defer second.Close()

	p, err := second.ProfileUseCase.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ana", p.Username)

	got, err := second.TaskUseCase.Get(ctx, created.Task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Read", got.Name)
}

func TestContainer_NewHTTPServer(t *testing.T) {
	c, err := NewContainer(context.Background(), testConfig("memory", ""), log.NewNop())
	require.NoError(t, err)
	defer c.Close()

	srv, err := c.NewHTTPServer()
	require.NoError(t, err)

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/tasks", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
