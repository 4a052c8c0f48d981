// Package response provides consistent JSON envelope helpers
package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/buzzdeck/buzzdeck/internal/domain"
	"github.com/rs/zerolog/log"
)

// ErrorBody is the envelope for failed requests
type ErrorBody struct {
	Success bool              `json:"success"`
	Error   string            `json:"error"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// JSON writes a JSON response with the given status code
func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

// Error writes an error envelope with the given status code
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, ErrorBody{Success: false, Error: message})
}

// ValidationError writes a 400 envelope carrying per-field messages
func ValidationError(w http.ResponseWriter, message string, fields map[string]string) {
	JSON(w, http.StatusBadRequest, ErrorBody{Success: false, Error: message, Fields: fields})
}

// FromError maps a domain error to its status and message; anything else
// is logged and reported as a generic 500.
func FromError(w http.ResponseWriter, err error) {
	var derr *domain.Error
	if errors.As(err, &derr) {
		JSON(w, derr.Status, ErrorBody{Success: false, Error: derr.Message, Fields: derr.Fields})
		return
	}
	log.Error().Err(err).Msg("unhandled error")
	Error(w, http.StatusInternalServerError, "Internal server error")
}

// BadRequest writes a 400 error response
func BadRequest(w http.ResponseWriter, message string) {
	Error(w, http.StatusBadRequest, message)
}

// Unauthorized writes a 401 error response
func Unauthorized(w http.ResponseWriter, message string) {
	Error(w, http.StatusUnauthorized, message)
}

// NotFound writes a 404 error response
func NotFound(w http.ResponseWriter, message string) {
	Error(w, http.StatusNotFound, message)
}

// Gone writes a 410 error response
func Gone(w http.ResponseWriter, message string) {
	Error(w, http.StatusGone, message)
}

// InternalError writes a 500 error response
func InternalError(w http.ResponseWriter, message string) {
	Error(w, http.StatusInternalServerError, message)
}
