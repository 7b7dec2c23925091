package users

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUserNotFound is returned when a user lookup finds no matching record
	ErrUserNotFound = errors.New("user not found")

	// ErrUsernameTaken is returned when the username unique constraint fires
	ErrUsernameTaken = errors.New("username already taken")

	// ErrEmailTaken is returned when the email unique constraint fires
	ErrEmailTaken = errors.New("email already taken")

	// ErrTokenNotFound is returned when a reset token is unknown or expired
	ErrTokenNotFound = errors.New("token not found or expired")
)

// FieldError ties a validation failure to a single input field. The API
// layer reports these as a structured response rather than a hard failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries one or more field-level failures.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = fmt.Sprintf("%s: %s", f.Field, f.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// NewFieldError builds a ValidationError for a single field.
func NewFieldError(field, message string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Message: message}}}
}

// AsValidationError unwraps err into a *ValidationError if it is one.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
