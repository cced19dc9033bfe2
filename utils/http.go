package utils

import (
	"encoding/json"
	"net/http"
	"strconv"
)

// ErrorResponse is the body of every failed request. Code is the numeric
// HTTP status as a string and Status its reason phrase.
type ErrorResponse struct {
	Message string            `json:"message"`
	Code    string            `json:"code"`
	Status  string            `json:"status"`
	Details map[string]string `json:"details,omitempty"`
}

// NewErrorResponse builds the error body for status
func NewErrorResponse(status int, message string, details map[string]string) ErrorResponse {
	return ErrorResponse{
		Message: message,
		Code:    strconv.Itoa(status),
		Status:  http.StatusText(status),
		Details: details,
	}
}

// WriteJSON writes a JSON response with the given status code
func WriteJSON(w http.ResponseWriter, status int, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if data == nil {
		return nil
	}

	return json.NewEncoder(w).Encode(data)
}

// WriteOK writes a 200 OK response
func WriteOK(w http.ResponseWriter, data interface{}) error {
	return WriteJSON(w, http.StatusOK, data)
}

// WriteCreated writes a 201 Created response
func WriteCreated(w http.ResponseWriter, data interface{}) error {
	return WriteJSON(w, http.StatusCreated, data)
}

// WriteNoContent writes a 204 No Content response
func WriteNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// WriteError writes an error body for status
func WriteError(w http.ResponseWriter, status int, message string, details map[string]string) error {
	if message == "" {
		message = http.StatusText(status)
	}
	return WriteJSON(w, status, NewErrorResponse(status, message, details))
}

// WriteBadRequest writes a 400 Bad Request response with field details
func WriteBadRequest(w http.ResponseWriter, message string, details map[string]string) error {
	return WriteError(w, http.StatusBadRequest, message, details)
}

// WriteUnauthorized writes a 401 Unauthorized response
func WriteUnauthorized(w http.ResponseWriter, message string) error {
	if message == "" {
		message = "Authentication required"
	}
	return WriteError(w, http.StatusUnauthorized, message, nil)
}

// WriteForbidden writes a 403 Forbidden response
func WriteForbidden(w http.ResponseWriter, message string) error {
	if message == "" {
		message = "Access denied"
	}
	return WriteError(w, http.StatusForbidden, message, nil)
}

// WriteNotFound writes a 404 Not Found response
func WriteNotFound(w http.ResponseWriter, message string) error {
	if message == "" {
		message = "Resource not found"
	}
	return WriteError(w, http.StatusNotFound, message, nil)
}

// WriteConflict writes a 409 Conflict response
func WriteConflict(w http.ResponseWriter, message string) error {
	return WriteError(w, http.StatusConflict, message, nil)
}

// WriteInternalServerError writes a 500 Internal Server Error response
func WriteInternalServerError(w http.ResponseWriter, message string) error {
	if message == "" {
		message = "An unexpected error occurred"
	}
	return WriteError(w, http.StatusInternalServerError, message, nil)
}
