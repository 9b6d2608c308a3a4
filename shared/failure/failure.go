package failure

import (
	"errors"
	"net/http"
)

const (
	LocationBody  = "body"
	LocationQuery = "query"
)

const (
	TypeMissing          = "missing"
	TypeParsing          = "parsing"
	TypeGreaterThan      = "greater_than"
	TypeGreaterThanEqual = "greater_than_equal"
	TypeLessThanEqual    = "less_than_equal"
	TypeInvalid          = "value_error"
)

// FieldError describes a single rejected input field.
type FieldError struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int          `json:"code"`
	Message string       `json:"message"`
	Details []FieldError `json:"details,omitempty"`
}

// Error returns the error code and message in a formatted string.
func (e *Failure) Error() string {
	return e.Message
}

// UnprocessableEntity returns a new Failure for input that failed validation.
// The message is taken from the first field error.
func UnprocessableEntity(details ...FieldError) error {
	msg := "request validation failed"
	if len(details) > 0 {
		msg = details[0].Msg
	}

	return &Failure{
		Code:    http.StatusUnprocessableEntity,
		Message: msg,
		Details: details,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		}
	}

	return nil
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(message string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: message,
	}
}

// MethodNotAllowed returns a new Failure for a route that exists under another method.
func MethodNotAllowed(message string) error {
	return &Failure{
		Code:    http.StatusMethodNotAllowed,
		Message: message,
	}
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: message,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// GetDetails returns the field errors carried by err, if any.
func GetDetails(err error) []FieldError {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Details
	}

	return nil
}
