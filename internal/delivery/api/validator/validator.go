// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	"reflect"
	"strings"

	"zakaz/internal/domain/entity"
	domainerrors "zakaz/internal/domain/errors"
	"zakaz/internal/errors"

	"github.com/go-playground/validator/v10"
)

// PhoneTag validates an Uzbek mobile number with entity.IsValidPhone.
const PhoneTag = "uzphone"

// RequestValidator validates bound request bodies.
type RequestValidator struct {
	validate *validator.Validate
}

// New builds a RequestValidator with the custom tags registered. Field names in
// errors are taken from the json tag so they match what the client sent.
func New() *RequestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation(PhoneTag, func(fl validator.FieldLevel) bool {
		return entity.IsValidPhone(fl.Field().String())
	})
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return &RequestValidator{validate: v}
}

// Validate implements echo.Validator. Failures are reported as a validation error
// whose details list each offending field and rule.
func (rv *RequestValidator) Validate(i any) error {
	err := rv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		problem := fe.Field() + ": " + fe.Tag()
		if fe.Param() != "" {
			problem += "=" + fe.Param()
		}
		problems = append(problems, problem)
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(problems, "; "))
}
