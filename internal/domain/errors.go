package domain

import (
	"errors"
	"net/http"
)

// Error is a failure with an HTTP status attached. Handlers convert every
// error that crosses the API boundary into one of these; anything else is
// reported as a 500.
type Error struct {
	Status  int               `json:"-"`
	Message string            `json:"error"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func (e *Error) Error() string {
	return e.Message
}

// ValidationError reports a 400 with per-field messages.
func ValidationError(fields map[string]string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: "validation failed", Fields: fields}
}

// BadRequestError reports a caller error that is not field-shaped.
func BadRequestError(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: message}
}

// AuthError reports a missing or invalid session.
func AuthError(message string) *Error {
	return &Error{Status: http.StatusUnauthorized, Message: message}
}

// NotFoundError reports a missing workspace or resource.
func NotFoundError(message string) *Error {
	return &Error{Status: http.StatusNotFound, Message: message}
}

// UpstreamError mirrors a third-party failure. A zero or 1xx/2xx status
// collapses to 500 so an upstream success code never labels a failure.
func UpstreamError(status int, message string) *Error {
	if status < 400 {
		status = http.StatusInternalServerError
	}
	if message == "" {
		message = "upstream request failed"
	}
	return &Error{Status: status, Message: message}
}

// ConfigurationError reports missing required external configuration.
func ConfigurationError(message string) *Error {
	return &Error{Status: http.StatusServiceUnavailable, Message: message}
}

// AsError extracts a *Error from err, or wraps err as a 500.
func AsError(err error) *Error {
	var de *Error
	if errors.As(err, &de) {
		return de
	}
	return &Error{Status: http.StatusInternalServerError, Message: err.Error()}
}
