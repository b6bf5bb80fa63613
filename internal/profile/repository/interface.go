package repository

import (
	"context"

	"flowx/internal/model"
)

// Repository stores the single local user profile.
type Repository interface {
	// GetProfile returns ErrNotFound when nothing usable is stored.
	GetProfile(ctx context.Context) (model.UserProfile, error)
	SaveProfile(ctx context.Context, p model.UserProfile) error

	// GetSession returns the username of the recorded session, "" after a
	// logout, or ErrNotFound when no session was ever recorded.
	GetSession(ctx context.Context) (string, error)
	SaveSession(ctx context.Context, username string) error
}
