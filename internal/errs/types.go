package errs

import (
	"net/http"
	"strings"
)

// CodeNoUpdatableFields is returned when a PATCH/POST body carries none of
// the columns the endpoint can write.
const CodeNoUpdatableFields = "NO_UPDATABLE_FIELDS"

// NewBadRequestError creates a 400 error with optional per-field errors.
func NewBadRequestError(message string, override bool, code *string, errors []FieldError) *HTTPError {
	err := New(http.StatusBadRequest, message, override, code)
	err.Errors = errors
	return err
}

func NewNotFoundError(message string, override bool, code *string) *HTTPError {
	return New(http.StatusNotFound, message, override, code)
}

func NewConflictError(message string, override bool, code *string) *HTTPError {
	return New(http.StatusConflict, message, override, code)
}

// NewTooManyRequestsError is returned by the rate limiter.
func NewTooManyRequestsError(message string) *HTTPError {
	return New(http.StatusTooManyRequests, message, true, nil)
}

// NewInternalServerError creates a generic 500. The real cause is logged,
// never returned.
func NewInternalServerError() *HTTPError {
	return New(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError), false, nil)
}

// NoUpdatableFields is the 400 returned when a write request carries none of
// the endpoint's columns. Each accepted column is listed as a field error.
func NoUpdatableFields(fields ...string) *HTTPError {
	code := CodeNoUpdatableFields
	message := "Request body contains no updatable fields"
	if len(fields) > 0 {
		message += " (expected one of: " + strings.Join(fields, ", ") + ")"
	}

	var fieldErrors []FieldError
	for _, f := range fields {
		fieldErrors = append(fieldErrors, FieldError{Field: f, Error: "not provided"})
	}
	return NewBadRequestError(message, true, &code, fieldErrors)
}
