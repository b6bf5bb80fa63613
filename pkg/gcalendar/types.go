package gcalendar

import (
	"errors"
	"time"
)

// DefaultCalendarID is the authenticated account's main calendar.
const DefaultCalendarID = "primary"

var ErrMissingCredentials = errors.New("gcalendar: credentials path is required")

// Config selects the credentials and target calendar.
type Config struct {
	CredentialsPath string
	// TokenPath holds a cached OAuth token for installed-app credentials.
	// Service account credentials ignore it.
	TokenPath  string
	CalendarID string
}

// CreateEventRequest is the input for creating a calendar event.
type CreateEventRequest struct {
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // IANA name, e.g. "Asia/Ho_Chi_Minh"
}

// Event is the subset of a created event the caller needs.
type Event struct {
	ID        string
	Summary   string
	HtmlLink  string
	StartTime time.Time
	EndTime   time.Time
}
