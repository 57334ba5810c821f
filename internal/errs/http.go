// Package errs defines the error shapes the API returns to clients.
//
// Every failure that leaves the service is rendered as an HTTPError carrying
// a stable machine-readable Code (e.g. "DEVELOPER_NOT_FOUND"), a Message, the
// HTTP Status and, for request validation, per-field errors.
package errs

import (
	"net/http"
	"strings"
)

// FieldError is a validation failure attached to one request field.
//
//	{ "field": "rating", "error": "must be at least 1" }
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// HTTPError is the error type handlers return and the global error handler
// serialises. Override marks messages that are safe to show to end users
// verbatim.
type HTTPError struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Status   int    `json:"status"`
	Override bool   `json:"override"`

	Errors []FieldError `json:"errors"`
}

func (e *HTTPError) Error() string {
	return e.Message
}

// New builds an HTTPError for status. A nil code falls back to the status
// text, upper-cased ("Not Found" -> "NOT_FOUND").
func New(status int, message string, override bool, code *string) *HTTPError {
	return &HTTPError{
		Code:     codeFor(status, code),
		Message:  message,
		Status:   status,
		Override: override,
	}
}

func codeFor(status int, code *string) string {
	if code != nil {
		return *code
	}
	return MakeUpperCaseWithUnderscores(http.StatusText(status))
}

// MakeUpperCaseWithUnderscores turns "Not Found" into "NOT_FOUND".
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
