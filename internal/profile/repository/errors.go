package repository

import "errors"

var (
	ErrNotFound       = errors.New("profile not found")
	ErrFailedToGet    = errors.New("failed to get profile")
	ErrFailedToUpdate = errors.New("failed to save profile")
)
