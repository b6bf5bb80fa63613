package http

import (
	"flowx/internal/model"
	"flowx/internal/profile"
)

// --- Request DTOs ---

type loginReq struct {
	Username string `json:"username" binding:"required,max=64"`
}

func (r loginReq) validate() error { return nil }

func (r loginReq) toInput() profile.LoginInput {
	return profile.LoginInput{Username: r.Username}
}

type hoursReq struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type extraHourReq struct {
	Day   string `json:"day"   binding:"required"`
	Start string `json:"start" binding:"required"`
	End   string `json:"end"   binding:"required"`
}

type onboardingReq struct {
	Profession       string         `json:"profession"`
	CustomProfession string         `json:"customProfession" binding:"max=100"`
	WorkingDays      []string       `json:"workingDays"`
	RegularHours     hoursReq       `json:"regularHours"`
	ExtraHours       []extraHourReq `json:"extraHours" binding:"dive"`
}

func (r onboardingReq) validate() error { return nil }

func (r onboardingReq) toInput() profile.OnboardingInput {
	in := profile.OnboardingInput{
		Profession:       model.Profession(r.Profession),
		CustomProfession: r.CustomProfession,
		RegularHours: model.WorkingHours{
			Start: model.TimeOfDay(r.RegularHours.Start),
			End:   model.TimeOfDay(r.RegularHours.End),
		},
	}
	if r.WorkingDays != nil {
		in.WorkingDays = make([]model.DayOfWeek, len(r.WorkingDays))
		for i, d := range r.WorkingDays {
			in.WorkingDays[i] = model.DayOfWeek(d)
		}
	}
	if r.ExtraHours != nil {
		in.ExtraHours = make([]profile.ExtraHourInput, len(r.ExtraHours))
		for i, e := range r.ExtraHours {
			in.ExtraHours[i] = profile.ExtraHourInput{
				Day:   model.DayOfWeek(e.Day),
				Start: model.TimeOfDay(e.Start),
				End:   model.TimeOfDay(e.End),
			}
		}
	}
	return in
}

// --- Response DTOs ---

type extraHourResp struct {
	ID    string `json:"id"`
	Day   string `json:"day"`
	Start string `json:"start"`
	End   string `json:"end"`
}

type profileResp struct {
	Username           string          `json:"username"`
	Profession         string          `json:"profession"`
	CustomProfession   string          `json:"customProfession,omitempty"`
	DisplayProfession  string          `json:"displayProfession"`
	WorkingDays        []string        `json:"workingDays"`
	RegularHours       hoursReq        `json:"regularHours"`
	ExtraHours         []extraHourResp `json:"extraHours"`
	OnboardingComplete bool            `json:"onboardingComplete"`
}

func (h *handler) newProfileResp(p model.UserProfile) profileResp {
	resp := profileResp{
		Username:           p.Username,
		Profession:         string(p.Profession),
		CustomProfession:   p.CustomProfession,
		DisplayProfession:  p.DisplayProfession(),
		WorkingDays:        make([]string, len(p.WorkingDays)),
		RegularHours:       hoursReq{Start: p.RegularHours.Start.String(), End: p.RegularHours.End.String()},
		ExtraHours:         make([]extraHourResp, len(p.ExtraHours)),
		OnboardingComplete: p.OnboardingComplete,
	}
	for i, d := range p.WorkingDays {
		resp.WorkingDays[i] = string(d)
	}
	for i, e := range p.ExtraHours {
		resp.ExtraHours[i] = extraHourResp{ID: e.ID, Day: string(e.Day), Start: e.Start.String(), End: e.End.String()}
	}
	return resp
}

type suggestionsResp struct {
	Suggestions []string `json:"suggestions"`
}
