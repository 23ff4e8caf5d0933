package bode

import (
	"errors"
	"math"
	"math/cmplx"
)

var (
	// ErrEmptyPolynomial is returned when a transfer function's
	// numerator or denominator has no coefficients.
	ErrEmptyPolynomial = errors.New("bode: numerator and denominator must have at least one coefficient")

	// ErrNonPositive is returned when a sweep frequency bound or point
	// count is zero or negative.
	ErrNonPositive = errors.New("bode: sweep bounds and point count must be strictly positive")

	// ErrInvalidRange is returned when a sweep's start frequency is not
	// below its end frequency.
	ErrInvalidRange = errors.New("bode: start frequency must be below end frequency")
)

// TransferFunction is a rational function of s, H(s) = N(s)/D(s), with
// coefficients ordered from the highest power of s to the constant term.
type TransferFunction struct {
	Numerator   []float64
	Denominator []float64
}

// Sample is the response of a TransferFunction at one frequency.
type Sample struct {
	FreqHz      float64
	MagnitudeDB float64
	PhaseDeg    float64
}

// evalPolynomial evaluates a polynomial (coefficients highest-order
// first) at the complex point x via Horner's method.
func evalPolynomial(coeffs []float64, x complex128) complex128 {
	result := complex(0, 0)
	for _, c := range coeffs {
		result = result*x + complex(c, 0)
	}
	return result
}

// Evaluate returns H(jω) for the given angular frequency.
func (tf TransferFunction) Evaluate(omega float64) (complex128, error) {
	if len(tf.Numerator) == 0 || len(tf.Denominator) == 0 {
		return 0, ErrEmptyPolynomial
	}

	s := complex(0, omega)
	den := evalPolynomial(tf.Denominator, s)
	if den == 0 {
		return cmplx.Inf(), nil
	}

	return evalPolynomial(tf.Numerator, s) / den, nil
}

// SampleAt returns the magnitude (in dB) and phase (in degrees) of the
// transfer function's response at freqHz.
func (tf TransferFunction) SampleAt(freqHz float64) (Sample, error) {
	if freqHz <= 0 {
		return Sample{}, ErrNonPositive
	}

	omega := 2 * math.Pi * freqHz
	h, err := tf.Evaluate(omega)
	if err != nil {
		return Sample{}, err
	}

	return Sample{
		FreqHz:      freqHz,
		MagnitudeDB: 20 * math.Log10(cmplx.Abs(h)),
		PhaseDeg:    cmplx.Phase(h) * 180 / math.Pi,
	}, nil
}

// Sweep samples the transfer function's response at pointsPerDecade
// logarithmically spaced frequencies per decade, from startHz to endHz
// inclusive.
func (tf TransferFunction) Sweep(startHz, endHz float64, pointsPerDecade int) ([]Sample, error) {
	if startHz <= 0 || endHz <= 0 || pointsPerDecade <= 0 {
		return nil, ErrNonPositive
	}
	if endHz <= startHz {
		return nil, ErrInvalidRange
	}

	decades := math.Log10(endHz / startHz)
	totalPoints := int(math.Ceil(decades*float64(pointsPerDecade))) + 1
	step := decades / float64(totalPoints-1)

	samples := make([]Sample, 0, totalPoints)
	logStart := math.Log10(startHz)
	for i := 0; i < totalPoints; i++ {
		freq := endHz
		if i < totalPoints-1 {
			freq = math.Pow(10, logStart+float64(i)*step)
		}
		sample, err := tf.SampleAt(freq)
		if err != nil {
			return nil, err
		}
		samples = append(samples, sample)
	}

	return samples, nil
}
