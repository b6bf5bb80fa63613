package deepseek

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrMissingAPIKey = errors.New("deepseek: API key is required")
	ErrNoMessages    = errors.New("deepseek: request has no messages")
	ErrEmptyResponse = errors.New("deepseek: response has no content")
	// ErrTruncated means a json_object answer hit max_tokens and is not valid JSON.
	ErrTruncated = errors.New("deepseek: response truncated by max_tokens")
)

// APIError is a non-200 answer from the chat completions endpoint.
type APIError struct {
	StatusCode int
	Type       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Type != "" {
		return fmt.Sprintf("deepseek: API error %d (%s): %s", e.StatusCode, e.Type, e.Message)
	}
	return fmt.Sprintf("deepseek: API error %d: %s", e.StatusCode, e.Message)
}

// Temporary reports whether the same request may succeed later.
func (e *APIError) Temporary() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= http.StatusInternalServerError
}
