package service

import "errors"

// ErrValidation matches any malformed-input failure via errors.Is. Handlers
// map it to 400 with the concrete message.
var ErrValidation = errors.New("invalid request")

type validationError struct {
	msg string
}

func (e *validationError) Error() string { return e.msg }

func (e *validationError) Is(target error) bool { return target == ErrValidation }

// newValidationError builds a 400-mapped error with a caller-facing message.
// Multi-field checks report the first missing or invalid field.
func newValidationError(msg string) error {
	return &validationError{msg: msg}
}
