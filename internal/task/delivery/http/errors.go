package http

import (
	"errors"
	"net/http"

	"flowx/internal/lifecycle"
	"flowx/internal/profile"
	"flowx/internal/task"
	"flowx/internal/task/repository"
	pkgErrors "flowx/pkg/errors"
)

var errMissingID = pkgErrors.NewHTTPError(http.StatusBadRequest, "id is required")

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrValidation):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, task.ErrNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "task not found")
	case errors.Is(err, task.ErrWorkHoursConflict):
		return pkgErrors.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, lifecycle.ErrAlreadyResolved),
		errors.Is(err, repository.ErrInvalidTransition):
		return pkgErrors.NewHTTPError(http.StatusConflict, "task status is already resolved")
	case errors.Is(err, profile.ErrNotLoggedIn):
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, "login required")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
