package profile

import (
	"fmt"
	"slices"

	"flowx/internal/model"
)

// DefaultProfile is the profile a new username starts with until onboarding
// is completed.
func DefaultProfile(username string) model.UserProfile {
	return model.UserProfile{
		Username:     username,
		Profession:   model.ProfessionStudent,
		WorkingDays:  []model.DayOfWeek{model.Monday, model.Tuesday, model.Wednesday, model.Thursday, model.Friday},
		RegularHours: model.WorkingHours{Start: "09:00", End: "17:00"},
		ExtraHours:   []model.ExtraWorkHour{},
	}
}

// IsWorkDay reports whether date falls on one of the profile's working days.
// A malformed date is never a work day.
func IsWorkDay(p model.UserProfile, date model.Date) bool {
	day, err := date.Weekday()
	if err != nil {
		return false
	}
	return slices.Contains(p.WorkingDays, day)
}

// ConflictsWithWindow reports whether start lies in [windowStart, windowEnd).
func ConflictsWithWindow(start, windowStart, windowEnd model.TimeOfDay) bool {
	return start >= windowStart && start < windowEnd
}

// WorkConflict returns the working window that start falls into on date:
// the regular hours on a working day, or any extra-hours entry for that
// weekday.
func WorkConflict(p model.UserProfile, date model.Date, start model.TimeOfDay) (Window, bool) {
	day, err := date.Weekday()
	if err != nil {
		return Window{}, false
	}

	if slices.Contains(p.WorkingDays, day) &&
		ConflictsWithWindow(start, p.RegularHours.Start, p.RegularHours.End) {
		return Window{Start: p.RegularHours.Start, End: p.RegularHours.End}, true
	}
	for _, extra := range p.ExtraHours {
		if extra.Day == day && ConflictsWithWindow(start, extra.Start, extra.End) {
			return Window{Start: extra.Start, End: extra.End, Extra: true}, true
		}
	}
	return Window{}, false
}

// Validate checks the invariants a persisted profile must hold.
func Validate(p model.UserProfile) error {
	if p.Username == "" {
		return ErrInvalidUsername
	}
	if !p.Profession.Valid() {
		return fmt.Errorf("%w: unknown profession %q", ErrInvalidProfile, p.Profession)
	}
	for _, d := range p.WorkingDays {
		if !d.Valid() {
			return fmt.Errorf("%w: %v", ErrInvalidProfile, model.ErrInvalidDayOfWeek)
		}
	}
	if err := validateWindow(p.RegularHours.Start, p.RegularHours.End); err != nil {
		return fmt.Errorf("%w: regular hours: %v", ErrInvalidProfile, err)
	}
	for _, extra := range p.ExtraHours {
		if !extra.Day.Valid() {
			return fmt.Errorf("%w: extra hours: %v", ErrInvalidProfile, model.ErrInvalidDayOfWeek)
		}
		if err := validateWindow(extra.Start, extra.End); err != nil {
			return fmt.Errorf("%w: extra hours: %v", ErrInvalidProfile, err)
		}
	}
	return nil
}

func validateWindow(start, end model.TimeOfDay) error {
	if _, err := model.ParseTimeOfDay(string(start)); err != nil {
		return err
	}
	if _, err := model.ParseTimeOfDay(string(end)); err != nil {
		return err
	}
	if start >= end {
		return fmt.Errorf("start %s must be before end %s", start, end)
	}
	return nil
}
