package errors

import (
	"fmt"
	"net/http"
)

// HTTPError is an error that carries the status code a handler should
// answer with.
type HTTPError struct {
	StatusCode int
	Code       int
	Message    string
}

// NewHTTPError builds an HTTPError whose application code equals the status.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Code: statusCode, Message: message}
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
}

var (
	ErrBadRequest          = NewHTTPError(http.StatusBadRequest, "Bad request")
	ErrUnauthorized        = NewHTTPError(http.StatusUnauthorized, "Unauthorized")
	ErrNotFound            = NewHTTPError(http.StatusNotFound, "Not found")
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "Something went wrong")
)
