package httpserver

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flowx/internal/model"
	"flowx/internal/profile"
	"flowx/internal/task"
	"flowx/pkg/log"
)

type loggedOut struct{ profile.UseCase }

func (loggedOut) Current(ctx context.Context) (model.UserProfile, error) {
	return model.UserProfile{}, profile.ErrNotLoggedIn
}

type noTasks struct{ task.UseCase }

func newServer(t *testing.T, ready func(context.Context) error) *HTTPServer {
	t.Helper()
	srv, err := New(log.NewNop(), Config{
		Port:           8080,
		Mode:           gin.TestMode,
		Environment:    "test",
		ProfileUseCase: loggedOut{},
		TaskUseCase:    noTasks{},
		Ready:          ready,
	})
	require.NoError(t, err)
	return srv
}

func get(srv *HTTPServer, path string) int {
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w.Code
}

func TestNew_Validate(t *testing.T) {
	_, err := New(log.NewNop(), Config{Mode: gin.TestMode, ProfileUseCase: loggedOut{}, TaskUseCase: noTasks{}})
	assert.Error(t, err, "port is required")

	_, err = New(log.NewNop(), Config{Port: 1, Mode: gin.TestMode, TaskUseCase: noTasks{}})
	assert.Error(t, err)
}

func TestSystemRoutes(t *testing.T) {
	srv := newServer(t, nil)
	assert.Equal(t, http.StatusOK, get(srv, "/health"))
	assert.Equal(t, http.StatusOK, get(srv, "/live"))
	assert.Equal(t, http.StatusOK, get(srv, "/ready"))

	down := newServer(t, func(context.Context) error { return errors.New("redis down") })
	assert.Equal(t, http.StatusServiceUnavailable, get(down, "/ready"))
}

func TestDomainRoutesNeedSession(t *testing.T) {
	srv := newServer(t, nil)
	assert.Equal(t, http.StatusUnauthorized, get(srv, "/api/v1/tasks"))
	assert.Equal(t, http.StatusUnauthorized, get(srv, "/api/v1/days/2026-03-02"))
	assert.Equal(t, http.StatusUnauthorized, get(srv, "/api/v1/profile"))
	assert.Equal(t, http.StatusNotFound, get(srv, "/api/v1/unknown"))
}

func TestRun_StopsOnCancel(t *testing.T) {
	srv := newServer(t, nil)
	srv.port = 0

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()
	cancel()

	assert.NoError(t, <-done)
}
