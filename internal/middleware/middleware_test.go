package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"flowx/internal/model"
	"flowx/internal/profile"
	"flowx/pkg/log"
)

type fakeProfiles struct {
	profile.UseCase
	err error
}

func (f fakeProfiles) Current(ctx context.Context) (model.UserProfile, error) {
	if f.err != nil {
		return model.UserProfile{}, f.err
	}
	return profile.DefaultProfile("alice"), nil
}

func serve(mw Middleware) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw.Logger())
	r.GET("/x", mw.RequireSession(), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	return w
}

func TestRequireSession(t *testing.T) {
	assert.Equal(t, http.StatusNoContent, serve(New(log.NewNop(), fakeProfiles{})).Code)
	assert.Equal(t, http.StatusUnauthorized, serve(New(log.NewNop(), fakeProfiles{err: profile.ErrNotLoggedIn})).Code)
	assert.Equal(t, http.StatusInternalServerError, serve(New(log.NewNop(), fakeProfiles{err: errors.New("disk")})).Code)
}
