// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to appropriate HTTP responses

package handlers

import (
	"encoding/json"
	"net/http"

	"readstash-api/api/dto/responses"
	coreerrors "readstash-api/core/errors"
)

// statusForError maps domain errors to HTTP status codes
func statusForError(err error) int {
	switch {
	case coreerrors.IsNotFound(err):
		return http.StatusNotFound
	case coreerrors.IsValidation(err):
		return http.StatusBadRequest
	case coreerrors.IsStorage(err):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// writeError writes a JSON error response for a domain error
func writeError(w http.ResponseWriter, err error) {
	status := statusForError(err)

	msg := err.Error()
	if status == http.StatusInternalServerError {
		// Don't leak internals to clients
		msg = "internal server error"
	}

	writeJSON(w, status, responses.ErrorResponse{Error: msg})
}

// writeValidationError writes a 400 response with the given message
func writeValidationError(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, responses.ErrorResponse{Error: msg})
}

// writeJSON writes a JSON response with the given status code
func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
