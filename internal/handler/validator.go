package handler

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Violation describes one failed field constraint
type Violation struct {
	Property string `json:"property"`
	Message  string `json:"message"`
}

// RequestValidator adapts go-playground/validator to echo's Validator
// interface. Field names in violations come from the json tags.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator creates the validator used for request payloads
func NewRequestValidator() *RequestValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &RequestValidator{validate: v}
}

// Validate implements echo.Validator
func (rv *RequestValidator) Validate(i interface{}) error {
	return rv.validate.Struct(i)
}

// Violations converts a validation error into the serialized violation list
// returned on 400 responses. Returns nil when err carries no field errors.
func Violations(err error) []Violation {
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return nil
	}

	violations := make([]Violation, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		message := "This value is not valid."
		switch fe.Tag() {
		case "required":
			message = "This value should not be blank."
		case "max":
			message = "This value is too long. It should have " + fe.Param() + " characters or less."
		case "email":
			message = "This value is not a valid email address."
		case "gte", "min":
			message = "This value should be " + fe.Param() + " or more."
		}
		violations = append(violations, Violation{Property: fe.Field(), Message: message})
	}
	return violations
}
