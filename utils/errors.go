package utils

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ValidationError reports missing or malformed input.
type ValidationError struct {
	Message string
	Fields  []string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Message, strings.Join(e.Fields, ", "))
}

// NotFoundError is also returned when a record exists but belongs to
// someone else, so callers cannot probe for other users' data.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

// AuthorizationError means the caller is authenticated but not permitted.
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

func NewValidationError(message string, fields ...string) error {
	return &ValidationError{Message: message, Fields: fields}
}

func NewNotFoundError(resource string) error {
	return &NotFoundError{Resource: resource}
}

func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// InternalErrorMessage is the only text a 500 response ever carries.
const InternalErrorMessage = "Internal server error"

// ErrorStatus maps err onto an HTTP status and a client-safe message.
// Anything outside the taxonomy is internal.
func ErrorStatus(err error) (int, string) {
	var ve *ValidationError
	var nf *NotFoundError
	var ae *AuthorizationError
	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest, ve.Error()
	case errors.As(err, &nf):
		return http.StatusNotFound, nf.Error()
	case errors.As(err, &ae):
		return http.StatusForbidden, ae.Error()
	}
	return http.StatusInternalServerError, InternalErrorMessage
}
