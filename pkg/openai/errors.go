package openai

import (
	"errors"
	"fmt"
)

var (
	// ErrRateLimited indicates the API rejected the request with 429.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrAuthFailed indicates the API key or endpoint is not authorized.
	ErrAuthFailed = errors.New("authentication failed")

	// ErrServerError indicates a transient upstream 5xx failure.
	ErrServerError = errors.New("upstream server error")

	// ErrEmptyCompletion indicates the API returned no choices.
	ErrEmptyCompletion = errors.New("empty completion response")
)

// APIError carries the HTTP status and message of a failed API call.
// errors.Is matches it against ErrRateLimited, ErrAuthFailed, and
// ErrServerError depending on the status code.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("openai API error %d: %s", e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error {
	switch {
	case e.StatusCode == 429:
		return ErrRateLimited
	case e.StatusCode == 401 || e.StatusCode == 403:
		return ErrAuthFailed
	case e.StatusCode >= 500:
		return ErrServerError
	}
	return nil
}
