package domain

import "errors"

// ErrNotFound indicates that a referenced entity (event, user, attendance row)
// does not exist for an operation that requires it.
var ErrNotFound = errors.New("not found")

// ErrInvalidCredentials indicates a failed login attempt. It deliberately does
// not distinguish unknown email from wrong password.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ValidationError indicates that caller-supplied input failed a business rule
// (bad enum value, empty required field, slug collision). The operation has no
// side effect and the message is safe to surface to the caller.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError returns a ValidationError with the given message.
func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}

// IsValidationError reports whether err is (or wraps) a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
