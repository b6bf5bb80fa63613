package gcalendar_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flowx/pkg/gcalendar"
)

type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

const installedCreds = `{
	"installed": {
		"client_id": "test-client-id.apps.googleusercontent.com",
		"client_secret": "test-secret",
		"redirect_uris": ["http://localhost"]
	}
}`

func newTestClient(t *testing.T, handler http.HandlerFunc, calendarID string) gcalendar.ICalendar {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	httpClient := ts.Client()
	httpClient.Transport = &rewriteTransport{
		Transport: httpClient.Transport,
		Host:      strings.TrimPrefix(ts.URL, "http://"),
	}
	c, err := gcalendar.NewFromHTTP(context.Background(), httpClient, calendarID)
	require.NoError(t, err)
	return c
}

func TestNew_Credentials(t *testing.T) {
	ctx := context.Background()

	t.Run("missing path", func(t *testing.T) {
		_, err := gcalendar.New(ctx, gcalendar.Config{})
		assert.ErrorIs(t, err, gcalendar.ErrMissingCredentials)
	})

	t.Run("unreadable file", func(t *testing.T) {
		_, err := gcalendar.New(ctx, gcalendar.Config{CredentialsPath: filepath.Join(t.TempDir(), "nope.json")})
		assert.Error(t, err)
	})

	t.Run("broken json", func(t *testing.T) {
		_, err := gcalendar.NewFromCredentialsJSON(ctx, []byte(`{"broken":true}`), gcalendar.Config{})
		assert.Error(t, err)
	})

	t.Run("installed app with token", func(t *testing.T) {
		tokenPath := filepath.Join(t.TempDir(), "token.json")
		require.NoError(t, os.WriteFile(tokenPath, []byte(`{"access_token":"dummy","token_type":"Bearer","expiry":"2030-01-01T00:00:00Z"}`), 0o600))

		c, err := gcalendar.NewFromCredentialsJSON(ctx, []byte(installedCreds), gcalendar.Config{TokenPath: tokenPath})
		require.NoError(t, err)
		assert.Equal(t, gcalendar.DefaultCalendarID, c.CalendarID())
	})

	t.Run("installed app with bad token", func(t *testing.T) {
		tokenPath := filepath.Join(t.TempDir(), "token.json")
		require.NoError(t, os.WriteFile(tokenPath, []byte(`{"broken": true`), 0o600))

		_, err := gcalendar.NewFromCredentialsJSON(ctx, []byte(installedCreds), gcalendar.Config{TokenPath: tokenPath})
		assert.Error(t, err)
	})
}

func TestCreateEvent(t *testing.T) {
	start := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	var got struct {
		Summary string `json:"summary"`
		Start   struct {
			DateTime string `json:"dateTime"`
			TimeZone string `json:"timeZone"`
		} `json:"start"`
	}
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/calendar/v3/calendars/work/events" || r.Method != http.MethodPost {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &got)
		_, _ = w.Write([]byte(`{"id":"event-123","summary":"Standup","htmlLink":"https://calendar.google.com/event-uri"}`))
	}, "work")

	event, err := c.CreateEvent(context.Background(), gcalendar.CreateEventRequest{
		Summary:   "Standup",
		StartTime: start,
		EndTime:   start.Add(15 * time.Minute),
		Timezone:  "UTC",
	})
	require.NoError(t, err)
	assert.Equal(t, "event-123", event.ID)
	assert.Equal(t, "https://calendar.google.com/event-uri", event.HtmlLink)
	assert.Equal(t, "Standup", got.Summary)
	assert.Equal(t, "2024-05-01T09:00:00Z", got.Start.DateTime)
	assert.Equal(t, "UTC", got.Start.TimeZone)
}

func TestCreateEvent_APIError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}, "")

	_, err := c.CreateEvent(context.Background(), gcalendar.CreateEventRequest{Summary: "x"})
	assert.Error(t, err)
}
