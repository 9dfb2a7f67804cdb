// Package handlers exposes the HTTP API: thin JSON handlers over the service
// layer, registered on a net/http ServeMux.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sundial-labs/sundial-engine/pkg/apperrors"
)

// ApiResponse is the uniform envelope for JSON responses.
type ApiResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

// ErrorResponse writes a JSON error response and returns any encoding error.
func ErrorResponse(w http.ResponseWriter, statusCode int, errorCode, message string) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(ApiResponse{
		Success: false,
		Error:   errorCode,
		Message: message,
	})
}

// WriteJSON writes a JSON response and returns any encoding error.
func WriteJSON(w http.ResponseWriter, statusCode int, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	if statusCode != http.StatusOK {
		w.WriteHeader(statusCode)
	}
	return json.NewEncoder(w).Encode(data)
}

// statusFor maps service errors to HTTP status codes. Unknown errors are
// internal; sentinel input errors surface as client errors.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, apperrors.ErrUnknownProduct), errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, apperrors.ErrEmptyStack):
		return http.StatusBadRequest, "empty_stack"
	case errors.Is(err, apperrors.ErrInvalidClock):
		return http.StatusBadRequest, "invalid_clock"
	case errors.Is(err, apperrors.ErrInvalidProduct):
		return http.StatusBadRequest, "invalid_product"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}
