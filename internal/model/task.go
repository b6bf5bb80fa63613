package model

import (
	"fmt"
	"time"
)

// Priority weights a task's contribution to the daily score.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// Priorities lists every priority from lowest to highest.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// AlertMode selects when a task's reminder fires.
type AlertMode string

const (
	AlertAtStart          AlertMode = "at-start"
	AlertBeforeCompletion AlertMode = "before-completion"
)

func (a AlertMode) Valid() bool {
	return a == AlertAtStart || a == AlertBeforeCompletion
}

// Task is a scheduled unit of work. Field names match the persisted JSON.
type Task struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Date          Date      `json:"date"`
	StartTime     TimeOfDay `json:"startTime"`
	Duration      int       `json:"duration"` // minutes
	Priority      Priority  `json:"priority"`
	Notes         string    `json:"notes,omitempty"`
	Status        Status    `json:"status"`
	VoiceReminder string    `json:"voiceReminder,omitempty"`
	AlertTime     AlertMode `json:"alertTime"`
}

// Window returns the half-open interval [start, end) the task occupies in loc.
func (t Task) Window(loc *time.Location) (start, end time.Time, err error) {
	day, err := t.Date.Time(loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if _, err := ParseTimeOfDay(string(t.StartTime)); err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("task %s: %w", t.ID, err)
	}
	hour, minute := t.StartTime.Clock()
	start = time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, loc)
	end = start.Add(time.Duration(t.Duration) * time.Minute)
	return start, end, nil
}
