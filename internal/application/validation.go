package application

import (
	"errors"
	"reflect"
	"strings"

	"github.com/bnema/gamelan-harmony/internal/domain"
	"github.com/bnema/gamelan-harmony/internal/i18n"
	"github.com/go-playground/validator/v10"
)

type loginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

type registerInput struct {
	Name     string `json:"name" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,contains=@"`
	Password string `json:"password" validate:"required,min=6"`
}

// kindPrecedence orders failures when several fields are invalid at once.
var kindPrecedence = []domain.ValidationKind{
	domain.ValidationEmptyField,
	domain.ValidationInvalidName,
	domain.ValidationInvalidEmail,
	domain.ValidationWeakPassword,
}

type credentialValidator struct {
	validate *validator.Validate
}

func newCredentialValidator() *credentialValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &credentialValidator{validate: validate}
}

// check validates input and returns the highest-precedence failure, with its
// message resolved through messages. emptyKey names the message used when a
// required field is blank, which differs between login and register.
func (v *credentialValidator) check(input any, messages Messages, emptyKey i18n.MessageKey) error {
	err := v.validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	var worst *domain.ValidationError
	for _, fieldErr := range fieldErrs {
		candidate := &domain.ValidationError{Kind: kindFor(fieldErr), Field: fieldErr.Field()}
		if worst == nil || rank(candidate.Kind) < rank(worst.Kind) {
			worst = candidate
		}
	}

	worst.Message = messages.Text(messageKeyFor(worst.Kind, emptyKey))
	return worst
}

func kindFor(fieldErr validator.FieldError) domain.ValidationKind {
	switch fieldErr.Tag() {
	case "required":
		return domain.ValidationEmptyField
	case "contains":
		return domain.ValidationInvalidEmail
	case "min":
		if fieldErr.Field() == "name" {
			return domain.ValidationInvalidName
		}
		return domain.ValidationWeakPassword
	default:
		return domain.ValidationEmptyField
	}
}

func rank(kind domain.ValidationKind) int {
	for i, candidate := range kindPrecedence {
		if candidate == kind {
			return i
		}
	}
	return len(kindPrecedence)
}

func messageKeyFor(kind domain.ValidationKind, emptyKey i18n.MessageKey) i18n.MessageKey {
	switch kind {
	case domain.ValidationInvalidName:
		return i18n.ErrNameTooShort
	case domain.ValidationInvalidEmail:
		return i18n.ErrInvalidEmail
	case domain.ValidationWeakPassword:
		return i18n.ErrWeakPassword
	default:
		return emptyKey
	}
}
