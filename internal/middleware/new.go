package middleware

import (
	"flowx/internal/profile"
	"flowx/pkg/log"
)

type Middleware struct {
	l        log.Logger
	profiles profile.UseCase
}

func New(l log.Logger, profiles profile.UseCase) Middleware {
	return Middleware{
		l:        l,
		profiles: profiles,
	}
}
