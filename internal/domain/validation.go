package domain

import "errors"

type ValidationKind string

const (
	ValidationEmptyField   ValidationKind = "empty_field"
	ValidationWeakPassword ValidationKind = "weak_password"
	ValidationInvalidName  ValidationKind = "invalid_name"
	ValidationInvalidEmail ValidationKind = "invalid_email"
)

var (
	ErrEmptyField   = errors.New("required field is empty")
	ErrWeakPassword = errors.New("password is too short")
	ErrInvalidName  = errors.New("name is too short")
	ErrInvalidEmail = errors.New("email is malformed")
)

// ValidationError is returned by login and register. Message is already
// localized for the locale active when the error was produced.
type ValidationError struct {
	Kind    ValidationKind
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}

	return e.Kind.sentinel().Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Kind.sentinel()
}

func (k ValidationKind) sentinel() error {
	switch k {
	case ValidationEmptyField:
		return ErrEmptyField
	case ValidationWeakPassword:
		return ErrWeakPassword
	case ValidationInvalidName:
		return ErrInvalidName
	case ValidationInvalidEmail:
		return ErrInvalidEmail
	default:
		return errors.New(string(k))
	}
}
