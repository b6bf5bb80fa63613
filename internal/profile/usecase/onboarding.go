package usecase

import (
	"context"

	"flowx/internal/model"
	"flowx/internal/profile"
)

// CompleteOnboarding merges the answers into the current profile, marks it
// onboarded and persists it. Onboarding runs once per profile.
func (uc *implUseCase) CompleteOnboarding(ctx context.Context, input profile.OnboardingInput) (model.UserProfile, error) {
	p, err := uc.Current(ctx)
	if err != nil {
		return model.UserProfile{}, err
	}
	if p.OnboardingComplete {
		return model.UserProfile{}, profile.ErrAlreadyOnboarded
	}

	if input.Profession != "" {
		p.Profession = input.Profession
		p.CustomProfession = ""
	}
	if p.Profession == model.ProfessionOther && input.CustomProfession != "" {
		p.CustomProfession = input.CustomProfession
	}
	if input.WorkingDays != nil {
		p.WorkingDays = append([]model.DayOfWeek(nil), input.WorkingDays...)
	}
	if input.RegularHours.Start != "" {
		p.RegularHours.Start = input.RegularHours.Start
	}
	if input.RegularHours.End != "" {
		p.RegularHours.End = input.RegularHours.End
	}
	if input.ExtraHours != nil {
		p.ExtraHours = make([]model.ExtraWorkHour, 0, len(input.ExtraHours))
		for _, e := range input.ExtraHours {
			p.ExtraHours = append(p.ExtraHours, model.ExtraWorkHour{
				ID:    uc.newID(),
				Day:   e.Day,
				Start: e.Start,
				End:   e.End,
			})
		}
	}
	p.OnboardingComplete = true

	if err := profile.Validate(p); err != nil {
		return model.UserProfile{}, err
	}
	if err := uc.repo.SaveProfile(ctx, p); err != nil {
		uc.l.Errorf(ctx, "uc.CompleteOnboarding SaveProfile: %v", err)
		return model.UserProfile{}, err
	}

	uc.setCurrent(&p)
	return p, nil
}
