package domain

import "errors"

// ErrValidation is wrapped by every ValidationError
var ErrValidation = errors.New("validation failed")

// ValidationError is a user-facing message tied to a form field
type ValidationError struct {
	Field   string
	Message string
}

// NewValidationError creates a field error
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// AsValidationError extracts a ValidationError from err
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
