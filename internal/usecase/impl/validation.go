package impl

import (
	"zakaz/internal/domain/entity"
	domainerrors "zakaz/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

var inputValidator = newInputValidator()

func newInputValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Registration only fails on an empty tag name.
	_ = v.RegisterValidation("uzphone", func(fl validator.FieldLevel) bool {
		return entity.IsValidPhone(fl.Field().String())
	})

	return v
}

// validateInput checks the struct tags of a use case input and reports failures
// as a validation error carrying the offending fields.
func validateInput(input any) error {
	if err := inputValidator.Struct(input); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
