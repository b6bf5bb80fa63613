package gcalendar

import "context"

// ICalendar mirrors scheduled tasks into an external calendar.
type ICalendar interface {
	CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error)
	CalendarID() string
}
