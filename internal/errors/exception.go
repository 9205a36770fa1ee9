package errors

import (
	"errors"
	"net/http"
)

type Exception struct {
	Message    string
	StatusCode int
}

func (e *Exception) Error() string {
	return e.Message
}

func StatusCode(err error) int {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}

// Validation builds a 400 for a missing or malformed field.
func Validation(message string) *Exception {
	return &Exception{Message: message, StatusCode: http.StatusBadRequest}
}

// Conflict builds a 409 for an operation that would duplicate existing state.
func Conflict(message string) *Exception {
	return &Exception{Message: message, StatusCode: http.StatusConflict}
}
