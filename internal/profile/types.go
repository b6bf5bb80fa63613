package profile

import "flowx/internal/model"

// --- UseCase Inputs ---

type LoginInput struct {
	Username string
}

// OnboardingInput carries the questionnaire answers. Zero-valued fields keep
// the value already on the profile.
type OnboardingInput struct {
	Profession       model.Profession
	CustomProfession string
	WorkingDays      []model.DayOfWeek
	RegularHours     model.WorkingHours
	ExtraHours       []ExtraHourInput
}

type ExtraHourInput struct {
	Day   model.DayOfWeek
	Start model.TimeOfDay
	End   model.TimeOfDay
}

// Window is a working window that a task start time fell into.
type Window struct {
	Start model.TimeOfDay
	End   model.TimeOfDay
	// Extra is set when the window comes from an extra-hours entry.
	Extra bool
}
