package apperr

import (
	"errors"
	"fmt"
)

// Sentinel categories for action failures. Controllers map these to HTTP
// statuses in one place instead of string-matching error text.
var (
	ErrValidation   = errors.New("validation failed")
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrMalformed    = errors.New("malformed input")
)

func Validationf(format string, args ...any) error {
	return wrapf(ErrValidation, format, args...)
}

func NotFoundf(format string, args ...any) error {
	return wrapf(ErrNotFound, format, args...)
}

func Malformedf(format string, args ...any) error {
	return wrapf(ErrMalformed, format, args...)
}

func wrapf(sentinel error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...))
}
