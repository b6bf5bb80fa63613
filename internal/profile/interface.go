package profile

import (
	"context"

	"flowx/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Session
	Login(ctx context.Context, input LoginInput) (model.UserProfile, error)
	Logout(ctx context.Context) error
	Current(ctx context.Context) (model.UserProfile, error)
	// Restore resumes the session recorded by the last Login, if any.
	Restore(ctx context.Context) (model.UserProfile, bool, error)

	// Onboarding
	CompleteOnboarding(ctx context.Context, input OnboardingInput) (model.UserProfile, error)
}
