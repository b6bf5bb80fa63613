package repository

import "errors"

var (
	ErrNotFound          = errors.New("task not found")
	ErrInvalidTransition = errors.New("status transition not allowed")
	ErrFailedToLoad      = errors.New("failed to load store")
	ErrFailedToPersist   = errors.New("failed to persist store")
)
