package filtermargin

import (
	"errors"
	"math"
)

var (
	// ErrNonPositive is returned when a frequency argument is zero or
	// negative.
	ErrNonPositive = errors.New("filtermargin: frequency must be strictly positive")

	// ErrInvalidEdges is returned when the stopband edge is not above the
	// passband edge for a lowpass transition.
	ErrInvalidEdges = errors.New("filtermargin: stopband frequency must exceed passband frequency")

	// ErrInvalidSpec is returned when the requested stopband attenuation
	// does not exceed the passband ripple — no finite order can satisfy
	// an inverted or degenerate specification.
	ErrInvalidSpec = errors.New("filtermargin: stopband attenuation must exceed passband ripple")
)

// TransitionRatio returns fs/fp, the frequency ratio of a lowpass
// transition band.
func TransitionRatio(passbandHz, stopbandHz float64) (float64, error) {
	if passbandHz <= 0 || stopbandHz <= 0 {
		return 0, ErrNonPositive
	}
	if stopbandHz <= passbandHz {
		return 0, ErrInvalidEdges
	}

	return stopbandHz / passbandHz, nil
}

// MarginOctaves returns the width of the transition band in octaves:
// log2(fs/fp).
func MarginOctaves(passbandHz, stopbandHz float64) (float64, error) {
	ratio, err := TransitionRatio(passbandHz, stopbandHz)
	if err != nil {
		return 0, err
	}

	return math.Log2(ratio), nil
}

// selectivityFactor computes the common (10^(Amin/10)-1)/(10^(Amax/10)-1)
// term shared by both order formulas below.
func selectivityFactor(passbandRippleDB, stopbandAttenDB float64) (float64, error) {
	if stopbandAttenDB <= passbandRippleDB {
		return 0, ErrInvalidSpec
	}
	num := math.Pow(10, stopbandAttenDB/10) - 1
	den := math.Pow(10, passbandRippleDB/10) - 1
	if den <= 0 {
		return 0, ErrInvalidSpec
	}

	return num / den, nil
}

// ButterworthOrder returns the minimum integer order a Butterworth
// lowpass filter needs to hold passbandRippleDB of ripple at passbandHz
// and reach at least stopbandAttenDB of attenuation at stopbandHz.
func ButterworthOrder(passbandHz, stopbandHz, passbandRippleDB, stopbandAttenDB float64) (int, error) {
	ratio, err := TransitionRatio(passbandHz, stopbandHz)
	if err != nil {
		return 0, err
	}
	factor, err := selectivityFactor(passbandRippleDB, stopbandAttenDB)
	if err != nil {
		return 0, err
	}

	n := math.Log10(factor) / (2 * math.Log10(ratio))

	return int(math.Ceil(n)), nil
}

// ChebyshevOrder returns the minimum integer order a Chebyshev Type I
// lowpass filter needs to hold passbandRippleDB of ripple at passbandHz
// and reach at least stopbandAttenDB of attenuation at stopbandHz. A
// Chebyshev filter reaches a given stopband attenuation in fewer orders
// than a Butterworth filter across the same transition band, at the cost
// of passband ripple instead of passband flatness.
func ChebyshevOrder(passbandHz, stopbandHz, passbandRippleDB, stopbandAttenDB float64) (int, error) {
	ratio, err := TransitionRatio(passbandHz, stopbandHz)
	if err != nil {
		return 0, err
	}
	factor, err := selectivityFactor(passbandRippleDB, stopbandAttenDB)
	if err != nil {
		return 0, err
	}

	n := math.Acosh(math.Sqrt(factor)) / math.Acosh(ratio)

	return int(math.Ceil(n)), nil
}
