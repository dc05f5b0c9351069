package utils

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct runs field-level checks on an input struct (`validate` tags)
// before any core mechanism touches the store.
func ValidateStruct(input any) error {
	if err := validate.Struct(input); err != nil {
		return &ValidationError{Fields: ProcessValidationErrors(err)}
	}
	return nil
}

func ProcessValidationErrors(err error) map[string]string {

	validationErrors := err.(validator.ValidationErrors)

	errorResponse := make(map[string]string)

	for _, ve := range validationErrors {
		errorResponse[ve.Field()] = ve.Tag()
	}

	return errorResponse
}
