package domain

import "errors"

// ErrNotFound is returned by repositories when no record exists for the
// given identifier.
var ErrNotFound = errors.New("registro não encontrado")

// ErrInvalidCredentials is returned on login when the email is unknown or
// the password does not match.
var ErrInvalidCredentials = errors.New("credenciais inválidas")

// ValidationError signals malformed or out-of-range input. Raised by entity
// constructors and mutators, mapped to 400 by the HTTP layer.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}

// ConflictError signals a storage-level uniqueness violation, mapped to 409
// by the HTTP layer. Repositories translate driver errors into this type so
// the core never inspects driver error strings.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}
