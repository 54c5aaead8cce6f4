// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	validatorlib "github.com/go-playground/validator/v10"

	domainerrors "sentimenta/internal/domain/errors"
)

// CustomValidator wraps a validator instance for echo.
type CustomValidator struct {
	validate *validatorlib.Validate
}

// New creates the validator used by the HTTP server.
func New() *CustomValidator {
	return &CustomValidator{
		validate: validatorlib.New(validatorlib.WithRequiredStructEnabled()),
	}
}

// Validate checks struct tags and maps failures to the validation domain error.
func (v *CustomValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
