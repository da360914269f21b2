// Package validator provides a thin wrapper around the go-playground/validator library,
// enabling declarative struct validation with standardized error formatting.
//
// Field errors name the full path of the field (e.g. Config.Store.DSN) and the
// rule that failed. Values are never copied into the messages since validated
// structs may hold credentials.
package validator

import (
	"errors"
	"fmt"

	gvalidator "github.com/go-playground/validator/v10"
)

// ErrValidationFailed is returned as the first error in a multi-error chain when validation fails.
var ErrValidationFailed = errors.New("struct validation failed")

// validator is a singleton instance of the go-playground validator,
// initialized automatically on package load.
var validator = gvalidator.New(gvalidator.WithRequiredStructEnabled())

// fieldError describes a single failed rule.
func fieldError(fe gvalidator.FieldError) error {
	if param := fe.Param(); param != "" {
		return fmt.Errorf("'%s': does not meet the requirements for the '%s=%s' validation", fe.Namespace(), fe.Tag(), param)
	}

	return fmt.Errorf("'%s': does not meet the requirements for the '%s' validation", fe.Namespace(), fe.Tag())
}

// formatError transforms a raw validator error into a multi-error chain rooted at
// ErrValidationFailed with one entry per failed field. Other errors are returned unchanged.
func formatError(err error) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := []error{ErrValidationFailed}
	for _, fe := range validationErrors {
		errs = append(errs, fieldError(fe))
	}

	return errors.Join(errs...)
}

// Validate checks if the given struct satisfies its validation tags.
//
// It returns nil if all fields pass validation. Otherwise, it returns a combined error that includes
// ErrValidationFailed and one formatted message for each field that failed validation.
func Validate(v any) error {
	if err := validator.Struct(v); err != nil {
		return formatError(err)
	}

	return nil
}
