// Package validator adapts go-playground/validator to Echo's Validator hook.
package validator

import (
	domainerrors "gatehouse/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// echoValidator wraps a validator instance so Echo can call it for bound request bodies.
type echoValidator struct {
	validate *validator.Validate
}

// New creates the Echo request validator.
func New() *echoValidator {
	return &echoValidator{validate: validator.New()}
}

// Validate checks struct tags and reports failures as the domain validation error.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
