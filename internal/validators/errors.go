package validators

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrRequired            = errors.New("is required")
	ErrPasswordTooShort    = errors.New("should be at least 6 characters")
	ErrPasswordsDoNotMatch = errors.New("passwords do not match")
	ErrUnknownCategory     = errors.New("is not a known category")
	ErrDescriptionTooShort = errors.New("should be at least 12 characters")
	ErrFileRequired        = errors.New("please choose an image")
	ErrFileTooBig          = errors.New("file is too big")
)

// ValidationError reports which field failed and why.
type ValidationError struct {
	Field string
	Err   error
}

// NewValidationError returns a *ValidationError for field.
func NewValidationError(field string, err error) error {
	return &ValidationError{Field: field, Err: err}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
