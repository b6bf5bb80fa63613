package usecase

import (
	"context"
	"errors"
	"strings"

	"flowx/internal/model"
	"flowx/internal/profile"
	"flowx/internal/profile/repository"
)

// Login starts a session for input.Username. The stored profile is reused
// when it belongs to the same username; otherwise the user starts from the
// default profile, which is not persisted until onboarding completes.
func (uc *implUseCase) Login(ctx context.Context, input profile.LoginInput) (model.UserProfile, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return model.UserProfile{}, profile.ErrInvalidUsername
	}

	p, err := uc.profileFor(ctx, username)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Login GetProfile: %v", err)
		return model.UserProfile{}, err
	}

	uc.setCurrent(&p)
	if err := uc.repo.SaveSession(ctx, username); err != nil {
		uc.l.Warnf(ctx, "uc.Login SaveSession: %v", err)
	}
	uc.l.Infof(ctx, "uc.Login: username=%s onboarded=%t", p.Username, p.OnboardingComplete)
	return p, nil
}

func (uc *implUseCase) Logout(ctx context.Context) error {
	uc.setCurrent(nil)
	if err := uc.repo.SaveSession(ctx, ""); err != nil {
		uc.l.Errorf(ctx, "uc.Logout SaveSession: %v", err)
		return err
	}
	return nil
}

func (uc *implUseCase) Current(ctx context.Context) (model.UserProfile, error) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	if uc.current == nil {
		return model.UserProfile{}, profile.ErrNotLoggedIn
	}
	return clone(*uc.current), nil
}

// Restore resumes the recorded session. Without a session record the
// persisted profile, if any, is resumed; after a logout nothing is.
func (uc *implUseCase) Restore(ctx context.Context) (model.UserProfile, bool, error) {
	username, err := uc.repo.GetSession(ctx)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		stored, err := uc.repo.GetProfile(ctx)
		if errors.Is(err, repository.ErrNotFound) {
			return model.UserProfile{}, false, nil
		}
		if err != nil {
			uc.l.Errorf(ctx, "uc.Restore GetProfile: %v", err)
			return model.UserProfile{}, false, err
		}
		uc.setCurrent(&stored)
		return stored, true, nil
	case err != nil:
		uc.l.Errorf(ctx, "uc.Restore GetSession: %v", err)
		return model.UserProfile{}, false, err
	case username == "":
		return model.UserProfile{}, false, nil
	}

	p, err := uc.profileFor(ctx, username)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Restore GetProfile: %v", err)
		return model.UserProfile{}, false, err
	}
	uc.setCurrent(&p)
	return p, true, nil
}

// profileFor returns the stored profile when it belongs to username, else
// the default profile.
func (uc *implUseCase) profileFor(ctx context.Context, username string) (model.UserProfile, error) {
	stored, err := uc.repo.GetProfile(ctx)
	switch {
	case err == nil && stored.Username == username:
		return stored, nil
	case err != nil && !errors.Is(err, repository.ErrNotFound):
		return model.UserProfile{}, err
	}
	return profile.DefaultProfile(username), nil
}

func (uc *implUseCase) setCurrent(p *model.UserProfile) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if p == nil {
		uc.current = nil
		return
	}
	c := clone(*p)
	uc.current = &c
}

func clone(p model.UserProfile) model.UserProfile {
	p.WorkingDays = append([]model.DayOfWeek(nil), p.WorkingDays...)
	p.ExtraHours = append([]model.ExtraWorkHour{}, p.ExtraHours...)
	return p
}
