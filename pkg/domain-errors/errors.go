// Package domainerrors defines coded errors shared between services and the
// HTTP layer. Handlers translate codes to status lines in one place instead of
// matching error strings.
package domainerrors

import "net/http"

// Code identifies an error category.
type Code string

const (
	CodeBadRequest  Code = "bad_request"
	CodeValidation  Code = "validation_error"
	CodeNotFound    Code = "not_found"
	CodeUnavailable Code = "unavailable"
	CodeInternal    Code = "internal_error"
)

// Error is a coded domain error. The message is safe to show to API clients
// except for internal errors, where handlers omit it.
type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string {
	return string(e.Code) + ": " + e.Message
}

// New constructs a coded error.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// ToHTTPStatus maps an error code to its HTTP status.
func ToHTTPStatus(code Code) int {
	switch code {
	case CodeBadRequest, CodeValidation:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
