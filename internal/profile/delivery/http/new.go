package http

import (
	"context"

	"flowx/internal/profile"
	"flowx/pkg/log"
)

// Suggester lists task ideas for the current profile.
type Suggester interface {
	Suggestions(ctx context.Context) ([]string, error)
}

type handler struct {
	l         log.Logger
	uc        profile.UseCase
	suggester Suggester
}

// New creates a new HTTP handler for sessions and the profile.
func New(l log.Logger, uc profile.UseCase, suggester Suggester) *handler {
	return &handler{
		l:         l,
		uc:        uc,
		suggester: suggester,
	}
}
