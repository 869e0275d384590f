package services

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validateStruct runs validator tags over the input and translates the
// outcome into a ValidationError listing every violated field.
func validateStruct(input any) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	fieldErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	violations := make([]FieldViolation, 0, len(fieldErrors))
	for _, fieldError := range fieldErrors {
		violations = append(violations, FieldViolation{
			Field:   fieldError.Field(),
			Message: violationMessage(fieldError),
		})
	}
	return &ValidationError{Violations: violations}
}

func violationMessage(fieldError validator.FieldError) string {
	switch fieldError.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", fieldError.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fieldError.Param())
	case "gte":
		return fmt.Sprintf("must be %s or more", fieldError.Param())
	case "lte":
		return fmt.Sprintf("must be %s or less", fieldError.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fieldError.Param())
	default:
		return fmt.Sprintf("failed %s validation", fieldError.Tag())
	}
}
