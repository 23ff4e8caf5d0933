package synth

import "errors"

var (
	// ErrInvalidTarget is returned when target is zero, negative, or
	// non-finite.
	ErrInvalidTarget = errors.New("synth: target must be a finite, strictly positive value")

	// ErrInvalidRange is returned when the supplied catalogue is empty.
	ErrInvalidRange = errors.New("synth: catalogue must not be empty")

	// ErrInvalidConfiguration is returned when Options fails validation:
	// a negative tolerance, a non-positive component budget, or an
	// unrecognized topology.
	ErrInvalidConfiguration = errors.New("synth: invalid configuration")

	// ErrNoSolution is returned when max_components is exhausted without
	// meeting tolerance. Synthesize still returns its best-effort
	// expression alongside this error — callers may treat it as a warning
	// rather than a hard failure.
	ErrNoSolution = errors.New("synth: tolerance not met within max components")

	// ErrInternalInvariantViolation indicates a bug: the memo or
	// expression invariants were violated during search. It is always
	// fatal and should never surface from correct inputs.
	ErrInternalInvariantViolation = errors.New("synth: internal invariant violation")
)
