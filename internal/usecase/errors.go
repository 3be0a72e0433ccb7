package usecase

import (
	"errors"
	"net/http"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrDuplicateKey          = errors.New("duplicate key")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)

// RelayError is a failed hand-off to chat or to the bot process. Message is
// safe to show to the submitter; Cause is for logs only.
type RelayError struct {
	StatusCode int
	Message    string
	Cause      error
}

func NewRelayError(statusCode int, message string, cause error) *RelayError {
	if statusCode == 0 {
		statusCode = http.StatusServiceUnavailable
	}
	return &RelayError{StatusCode: statusCode, Message: message, Cause: cause}
}

func (e *RelayError) Error() string {
	if e.Cause == nil {
		return e.Message
	}
	return e.Message + ": " + e.Cause.Error()
}

func (e *RelayError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrDependencyUnavailable}
	}
	return []error{ErrDependencyUnavailable, e.Cause}
}
