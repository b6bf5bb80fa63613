package http

import (
	"errors"
	"net/http"

	"flowx/internal/profile"
	pkgErrors "flowx/pkg/errors"
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, profile.ErrInvalidUsername):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "username is required")
	case errors.Is(err, profile.ErrInvalidProfile):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, profile.ErrAlreadyOnboarded):
		return pkgErrors.NewHTTPError(http.StatusConflict, "onboarding already completed")
	case errors.Is(err, profile.ErrNotLoggedIn):
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, "login required")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
