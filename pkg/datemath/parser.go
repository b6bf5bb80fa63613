// Package datemath resolves calendar-day expressions such as "tomorrow",
// "in 3 days" or "next friday" against a reference time.
package datemath

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const layout = "2006-01-02"

var (
	ErrUnknownExpression = errors.New("datemath: unknown date expression")

	inPattern = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)

	weekdays = map[string]time.Weekday{
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
		"sunday":    time.Sunday,
	}
)

// Parser resolves expressions in one location.
type Parser struct {
	location *time.Location
}

// NewParser returns a Parser for loc; nil means time.Local.
func NewParser(loc *time.Location) *Parser {
	if loc == nil {
		loc = time.Local
	}
	return &Parser{location: loc}
}

// Parse returns midnight of the day expr names, relative to base. Accepted
// forms are YYYY-MM-DD, today, tomorrow, yesterday, "in N days|weeks|months"
// and "next <weekday>".
func (p *Parser) Parse(expr string, base time.Time) (time.Time, error) {
	expr = strings.ToLower(strings.Join(strings.Fields(expr), " "))

	switch expr {
	case "", "today":
		return p.startOfDay(base), nil
	case "tomorrow":
		return p.startOfDay(base.AddDate(0, 0, 1)), nil
	case "yesterday":
		return p.startOfDay(base.AddDate(0, 0, -1)), nil
	}

	if t, err := time.ParseInLocation(layout, expr, p.location); err == nil {
		return t, nil
	}
	if m := inPattern.FindStringSubmatch(expr); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q", ErrUnknownExpression, expr)
		}
		switch m[2][0] {
		case 'd':
			return p.startOfDay(base.AddDate(0, 0, n)), nil
		case 'w':
			return p.startOfDay(base.AddDate(0, 0, 7*n)), nil
		default:
			return p.startOfDay(base.AddDate(0, n, 0)), nil
		}
	}
	if name, ok := strings.CutPrefix(expr, "next "); ok {
		if wd, ok := weekdays[name]; ok {
			return p.nextWeekday(wd, base), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrUnknownExpression, expr)
}

// Date is Parse formatted as YYYY-MM-DD.
func (p *Parser) Date(expr string, base time.Time) (string, error) {
	t, err := p.Parse(expr, base)
	if err != nil {
		return "", err
	}
	return t.Format(layout), nil
}

// nextWeekday is the first wd strictly after base's day.
func (p *Parser) nextWeekday(wd time.Weekday, base time.Time) time.Time {
	day := p.startOfDay(base)
	delta := int(wd - day.Weekday())
	if delta <= 0 {
		delta += 7
	}
	return day.AddDate(0, 0, delta)
}

func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}
