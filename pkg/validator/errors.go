package validator

import "errors"

// Sentinel errors returned by the Check* functions. Range failures wrap
// ErrOutOfRange with the concrete bounds, so use errors.Is to classify.
var (
	// ErrRequired is returned when a required field is absent or blank.
	ErrRequired = errors.New("field is required")

	// ErrInvalidNumber is returned when a value cannot be parsed as a
	// finite floating-point number.
	ErrInvalidNumber = errors.New("invalid number")

	// ErrOutOfRange is returned when a parsed number falls outside the
	// requested bounds.
	ErrOutOfRange = errors.New("value out of range")
)
