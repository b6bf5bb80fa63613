package gcalendar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

type client struct {
	service    *calendar.Service
	calendarID string
}

// New reads the credentials file named by cfg and returns a calendar client.
func New(ctx context.Context, cfg Config) (ICalendar, error) {
	if cfg.CredentialsPath == "" {
		return nil, ErrMissingCredentials
	}
	data, err := os.ReadFile(cfg.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewFromCredentialsJSON(ctx, data, cfg)
}

// NewFromCredentialsJSON accepts service account JSON, or installed-app OAuth
// JSON together with a token file at cfg.TokenPath.
func NewFromCredentialsJSON(ctx context.Context, credentialsJSON []byte, cfg Config) (ICalendar, error) {
	jwtCfg, err := google.JWTConfigFromJSON(credentialsJSON, calendar.CalendarScope)
	if err == nil {
		svc, svcErr := calendar.NewService(ctx, option.WithTokenSource(jwtCfg.TokenSource(ctx)))
		if svcErr != nil {
			return nil, fmt.Errorf("failed to create calendar service: %w", svcErr)
		}
		return newClient(svc, cfg.CalendarID), nil
	}

	var oauthCreds struct {
		Installed struct {
			ClientID     string `json:"client_id"`
			ClientSecret string `json:"client_secret"`
		} `json:"installed"`
	}
	if jsonErr := json.Unmarshal(credentialsJSON, &oauthCreds); jsonErr != nil || oauthCreds.Installed.ClientID == "" {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}

	oauthConfig := &oauth2.Config{
		ClientID:     oauthCreds.Installed.ClientID,
		ClientSecret: oauthCreds.Installed.ClientSecret,
		Scopes:       []string{calendar.CalendarScope},
		Endpoint:     google.Endpoint,
	}

	tokenPath := cfg.TokenPath
	if tokenPath == "" {
		tokenPath = "token.json"
	}
	tokenData, err := os.ReadFile(tokenPath)
	if err != nil {
		return nil, fmt.Errorf("installed-app credentials need a token at %s: %w", tokenPath, err)
	}
	var tok oauth2.Token
	if err := json.Unmarshal(tokenData, &tok); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", tokenPath, err)
	}

	svc, err := calendar.NewService(ctx, option.WithTokenSource(oauthConfig.TokenSource(ctx, &tok)))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service from OAuth token: %w", err)
	}
	return newClient(svc, cfg.CalendarID), nil
}

// NewFromHTTP builds a client over a pre-configured HTTP client.
func NewFromHTTP(ctx context.Context, httpClient *http.Client, calendarID string) (ICalendar, error) {
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return newClient(svc, calendarID), nil
}

func newClient(svc *calendar.Service, calendarID string) *client {
	if calendarID == "" {
		calendarID = DefaultCalendarID
	}
	return &client{service: svc, calendarID: calendarID}
}

func (c *client) CalendarID() string { return c.calendarID }

func (c *client) CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error) {
	event := &calendar.Event{
		Summary:     req.Summary,
		Description: req.Description,
		Start: &calendar.EventDateTime{
			DateTime: req.StartTime.Format(time.RFC3339),
			TimeZone: req.Timezone,
		},
		End: &calendar.EventDateTime{
			DateTime: req.EndTime.Format(time.RFC3339),
			TimeZone: req.Timezone,
		},
	}

	created, err := c.service.Events.Insert(c.calendarID, event).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar event: %w", err)
	}

	return &Event{
		ID:        created.Id,
		Summary:   created.Summary,
		HtmlLink:  created.HtmlLink,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}, nil
}
