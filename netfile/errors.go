package netfile

import "errors"

var (
	// ErrEmptyCatalogue is returned when a catalogue CSV contains no
	// data rows.
	ErrEmptyCatalogue = errors.New("netfile: catalogue file has no values")

	// ErrMalformedRow is returned when a data row cannot be parsed as
	// the expected column set.
	ErrMalformedRow = errors.New("netfile: malformed row")
)
