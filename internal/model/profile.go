package model

// Profession is the user's declared occupation.
type Profession string

const (
	ProfessionStudent       Profession = "Student"
	ProfessionEmployee      Profession = "Employee"
	ProfessionDoctor        Profession = "Doctor"
	ProfessionWorker        Profession = "Worker"
	ProfessionFreelancer    Profession = "Freelancer"
	ProfessionBusinessOwner Profession = "Business Owner"
	ProfessionOther         Profession = "Other"
)

var Professions = []Profession{
	ProfessionStudent, ProfessionEmployee, ProfessionDoctor, ProfessionWorker,
	ProfessionFreelancer, ProfessionBusinessOwner, ProfessionOther,
}

func (p Profession) Valid() bool {
	for _, known := range Professions {
		if p == known {
			return true
		}
	}
	return false
}

// WorkingHours is a same-day window; Start must precede End.
type WorkingHours struct {
	Start TimeOfDay `json:"start"`
	End   TimeOfDay `json:"end"`
}

// ExtraWorkHour is a supplementary working window on a specific weekday.
type ExtraWorkHour struct {
	ID    string    `json:"id"`
	Day   DayOfWeek `json:"day"`
	Start TimeOfDay `json:"start"`
	End   TimeOfDay `json:"end"`
}

// UserProfile is the scheduling context of the single local user.
type UserProfile struct {
	Username           string          `json:"username"`
	Profession         Profession      `json:"profession"`
	CustomProfession   string          `json:"customProfession,omitempty"`
	WorkingDays        []DayOfWeek     `json:"workingDays"`
	RegularHours       WorkingHours    `json:"regularHours"`
	ExtraHours         []ExtraWorkHour `json:"extraHours"`
	OnboardingComplete bool            `json:"onboardingComplete"`
}

// DisplayProfession returns the custom profession when Other was chosen.
func (p UserProfile) DisplayProfession() string {
	if p.Profession == ProfessionOther && p.CustomProfession != "" {
		return p.CustomProfession
	}
	return string(p.Profession)
}
