package domain

import "errors"

// Error kinds shared by services and handlers. Handlers classify with errors.Is
// and translate to status codes; everything unmatched is an internal error.
var (
	ErrValidation      = errors.New("validation failed")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("already exists")
)

// Token failures. Both are unauthenticated at the boundary but are logged apart.
var (
	ErrTokenInvalid = &tokenError{msg: "invalid token"}
	ErrTokenExpired = &tokenError{msg: "token expired"}
)

type tokenError struct {
	msg string
}

func (e *tokenError) Error() string { return e.msg }

// Is lets errors.Is(err, ErrUnauthenticated) match either token failure.
func (e *tokenError) Is(target error) bool {
	return target == ErrUnauthenticated
}

// ValidationError carries a caller-facing message for bad input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NewValidationError returns a validation failure with the given message.
func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}
