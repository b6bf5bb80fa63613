package model

import (
	"errors"
	"fmt"
	"time"
)

const (
	DateLayout      = "2006-01-02"
	TimeOfDayLayout = "15:04"
)

var (
	ErrInvalidDate      = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidTimeOfDay = errors.New("invalid time of day, expected HH:MM")
	ErrInvalidDayOfWeek = errors.New("invalid day of week")
)

// Date is a calendar date in YYYY-MM-DD form. Well-formed dates compare
// chronologically as plain strings.
type Date string

// ParseDate validates raw and returns it as a Date.
func ParseDate(raw string) (Date, error) {
	if len(raw) != len(DateLayout) {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, raw)
	}
	if _, err := time.Parse(DateLayout, raw); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, raw)
	}
	return Date(raw), nil
}

// DateOf returns the calendar date of t in its own location.
func DateOf(t time.Time) Date {
	return Date(t.Format(DateLayout))
}

// Time returns midnight of d in loc.
func (d Date) Time(loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, string(d), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, string(d))
	}
	return t, nil
}

// Weekday returns the day-of-week name for d.
func (d Date) Weekday() (DayOfWeek, error) {
	t, err := d.Time(time.UTC)
	if err != nil {
		return "", err
	}
	return DayOfWeek(t.Weekday().String()), nil
}

func (d Date) String() string { return string(d) }

// TimeOfDay is a wall-clock time in HH:MM form (minute precision). Well-formed
// values compare chronologically as plain strings.
type TimeOfDay string

// ParseTimeOfDay validates raw and returns it as a TimeOfDay.
func ParseTimeOfDay(raw string) (TimeOfDay, error) {
	if len(raw) != len(TimeOfDayLayout) || raw[2] != ':' {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, raw)
	}
	if _, err := time.Parse(TimeOfDayLayout, raw); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, raw)
	}
	return TimeOfDay(raw), nil
}

// Clock returns the hour and minute of t. It assumes t is well formed.
func (t TimeOfDay) Clock() (hour, minute int) {
	parsed, err := time.Parse(TimeOfDayLayout, string(t))
	if err != nil {
		return 0, 0
	}
	return parsed.Hour(), parsed.Minute()
}

func (t TimeOfDay) String() string { return string(t) }

// DayOfWeek is a full English weekday name.
type DayOfWeek string

const (
	Monday    DayOfWeek = "Monday"
	Tuesday   DayOfWeek = "Tuesday"
	Wednesday DayOfWeek = "Wednesday"
	Thursday  DayOfWeek = "Thursday"
	Friday    DayOfWeek = "Friday"
	Saturday  DayOfWeek = "Saturday"
	Sunday    DayOfWeek = "Sunday"
)

// DaysOfWeek lists the week starting on Monday.
var DaysOfWeek = []DayOfWeek{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// Valid reports whether d is one of the seven weekday names.
func (d DayOfWeek) Valid() bool {
	for _, day := range DaysOfWeek {
		if d == day {
			return true
		}
	}
	return false
}
