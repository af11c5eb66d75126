// Package validator wires go-playground validation into echo, including the
// South African identity tags the protection profile payloads rely on.
package validator

import (
	playgroundValidator "github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"simsure/internal/domain/identity"
)

// CustomValidator adapts go-playground/validator to echo.Validator.
type CustomValidator struct {
	validate *playgroundValidator.Validate
}

// New builds the validator with the custom tags registered:
//
//	said     valid South African ID number (Luhn check digit included)
//	zamobile valid South African mobile number (0XXXXXXXXX or +27XXXXXXXXX)
func New() *CustomValidator {
	validate := playgroundValidator.New()

	// Registration cannot fail for non-empty tags on plain funcs.
	_ = validate.RegisterValidation("said", func(fl playgroundValidator.FieldLevel) bool {
		return identity.ValidateIDNumber(fl.Field().String()) == nil
	})
	_ = validate.RegisterValidation("zamobile", func(fl playgroundValidator.FieldLevel) bool {
		return identity.ValidMobileNumber(fl.Field().String())
	})

	return &CustomValidator{validate: validate}
}

// Validate implements echo.Validator.
func (v *CustomValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
