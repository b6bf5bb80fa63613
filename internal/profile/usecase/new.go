package usecase

import (
	"sync"

	"github.com/google/uuid"

	"flowx/internal/model"
	"flowx/internal/profile/repository"
	"flowx/pkg/log"
)

// implUseCase is the private implementation of profile.UseCase. It holds the
// session of the one local user; the username is a label, not a credential.
type implUseCase struct {
	repo  repository.Repository
	l     log.Logger
	newID func() string

	mu      sync.RWMutex
	current *model.UserProfile
}

// New creates a new profile UseCase implementation with no active session.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:  repo,
		l:     l,
		newID: uuid.NewString,
	}
}
