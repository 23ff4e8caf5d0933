package eseries

import "errors"

// Sentinel errors for catalogue generation.
var (
	// ErrInvalidRange indicates minValue > maxValue.
	ErrInvalidRange = errors.New("eseries: invalid range: min > max")

	// ErrUnknownSeries indicates a series name outside {E3,E6,E12,E24,E48,E96,E192}.
	ErrUnknownSeries = errors.New("eseries: unknown series name")

	// ErrEmptyMantissa indicates a caller-supplied mantissa list was empty.
	ErrEmptyMantissa = errors.New("eseries: mantissa list must be non-empty")
)
