package profile

import "errors"

var (
	ErrNotLoggedIn      = errors.New("no user is logged in")
	ErrInvalidUsername  = errors.New("username is required")
	ErrInvalidProfile   = errors.New("invalid profile")
	ErrAlreadyOnboarded = errors.New("onboarding already completed")
)
