package metricparse

import "errors"

var (
	// ErrEmpty is returned when Parse is given an empty or all-whitespace
	// string.
	ErrEmpty = errors.New("metricparse: empty value")

	// ErrMalformed is returned when the numeric portion of the string
	// cannot be parsed as a decimal.
	ErrMalformed = errors.New("metricparse: malformed numeric value")

	// ErrUnknownUnit is returned when the trailing letters do not match
	// any recognized SI prefix or electronics shorthand.
	ErrUnknownUnit = errors.New("metricparse: unknown unit suffix")
)
