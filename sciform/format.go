package sciform

import (
	"fmt"
	"math"
	"strings"
)

// Style selects how Format renders the exponent part of a number.
type Style int

const (
	// Metric prints one of the prefix letters (k, M, µ, ...); falls back
	// to Engineering automatically when the exponent is out of range.
	Metric Style = iota

	// Engineering restricts the exponent to a multiple of three, printed
	// numerically (e±NN).
	Engineering

	// Scientific allows any exponent, printed numerically (e±NN).
	Scientific
)

// metricPrefixes maps an engineering exponent (a multiple of 3 in
// [-24, 24]) to its IEC/SI prefix letter. Zero has no prefix.
var metricPrefixes = map[int]string{
	-24: "y", -21: "z", -18: "a", -15: "f", -12: "p", -9: "n", -6: "µ", -3: "m",
	0: "", 3: "k", 6: "M", 9: "G", 12: "T", 15: "P", 18: "E", 21: "Z", 24: "Y",
}

// Format renders value with sigFigs significant figures in the requested
// style. Rounding is half-up at the requested significance. sigFigs <= 0
// is treated as 3.
func Format(value float64, sigFigs int, style Style) string {
	if sigFigs <= 0 {
		sigFigs = 3
	}
	if value == 0 {
		return "0"
	}

	sign := ""
	v := value
	if v < 0 {
		sign = "-"
		v = -v
	}
	if math.IsNaN(v) {
		return sign + "NaN"
	}
	if math.IsInf(v, 0) {
		return sign + "Inf"
	}

	if style == Scientific {
		mantissa, exp := splitExponent(v, 1)
		mantissa, exp = roundAndRegroup(mantissa, exp, sigFigs, 1)

		return sign + formatMantissa(mantissa, sigFigs, 1) + "e" + formatExp(exp)
	}

	// Metric and Engineering both group by powers of a thousand.
	mantissa, groupExp := splitExponent(v, 3)
	mantissa, groupExp = roundAndRegroup(mantissa, groupExp, sigFigs, 3)

	if style == Metric {
		if prefix, ok := metricPrefixes[groupExp]; ok {
			return sign + formatMantissa(mantissa, sigFigs, 3) + prefix
		}
		// Out of metric-prefix range: fall back to Engineering automatically.
	}

	return sign + formatMantissa(mantissa, sigFigs, 3) + "e" + formatExp(groupExp)
}

// splitExponent decomposes v into mantissa * 10^exp, where exp is the
// largest multiple of groupSize such that mantissa lies in
// [1, 10^groupSize).
func splitExponent(v float64, groupSize int) (mantissa float64, exp int) {
	rawExp := int(math.Floor(math.Log10(v)))
	exp = floorToMultiple(rawExp, groupSize)
	mantissa = v / math.Pow(10, float64(exp))

	// Floating-point drift can push mantissa just outside the intended
	// band; nudge the exponent and recompute rather than printing a
	// mantissa like 0.9999999999994 or 10.00000000001.
	upper := math.Pow(10, float64(groupSize))
	for mantissa >= upper {
		exp += groupSize
		mantissa = v / math.Pow(10, float64(exp))
	}
	for mantissa < 1 {
		exp -= groupSize
		mantissa = v / math.Pow(10, float64(exp))
	}

	return mantissa, exp
}

// roundAndRegroup rounds mantissa to sigFigs significant figures
// (half-up) and, if that rounding carries the mantissa up to the next
// decade group (e.g. 999.6 -> 1000 at 3 sig figs), shifts it back into
// [1, 10^groupSize) and bumps exp accordingly.
func roundAndRegroup(mantissa float64, exp, sigFigs, groupSize int) (float64, int) {
	decimals := decimalPlaces(mantissa, sigFigs, groupSize)
	mantissa = roundHalfUp(mantissa, decimals)

	upper := math.Pow(10, float64(groupSize))
	if mantissa >= upper {
		mantissa /= math.Pow(10, float64(groupSize))
		exp += groupSize
		decimals = decimalPlaces(mantissa, sigFigs, groupSize)
		mantissa = roundHalfUp(mantissa, decimals)
	}

	return mantissa, exp
}

// decimalPlaces returns how many digits after the decimal point are
// needed so that mantissa (with its current integer-digit count) shows
// sigFigs significant figures in total.
func decimalPlaces(mantissa float64, sigFigs, groupSize int) int {
	intDigits := 1
	if groupSize == 3 {
		intDigits = integerDigits(mantissa)
	}
	d := sigFigs - intDigits
	if d < 0 {
		d = 0
	}

	return d
}

// integerDigits returns the number of digits before the decimal point
// for a mantissa known to lie in [1, 1000).
func integerDigits(mantissa float64) int {
	switch {
	case mantissa >= 100:
		return 3
	case mantissa >= 10:
		return 2
	default:
		return 1
	}
}

// roundHalfUp rounds x to the given number of decimal places, rounding
// .5 away from zero (x is always non-negative here).
func roundHalfUp(x float64, decimals int) float64 {
	factor := math.Pow(10, float64(decimals))

	return math.Floor(x*factor+0.5) / factor
}

// floorToMultiple rounds exp down to the nearest multiple of k (toward
// negative infinity), matching how engineering notation groups decades.
func floorToMultiple(exp, k int) int {
	if exp >= 0 {
		return (exp / k) * k
	}

	return -(((-exp) + k - 1) / k) * k
}

// formatMantissa prints mantissa with exactly the decimal places implied
// by sigFigs and the mantissa's current integer-digit count, keeping
// trailing zeros that are significant. With zero decimal places no
// decimal point is printed.
func formatMantissa(mantissa float64, sigFigs, groupSize int) string {
	decimals := decimalPlaces(mantissa, sigFigs, groupSize)
	s := strconvFixed(mantissa, decimals)

	return s
}

func strconvFixed(v float64, decimals int) string {
	s := fmt.Sprintf("%.*f", decimals, v)

	return s
}

// formatExp prints a signed, zero-padded two-digit (minimum) exponent:
// e+01, e-09, e+24.
func formatExp(exp int) string {
	sign := "+"
	n := exp
	if n < 0 {
		sign = "-"
		n = -n
	}
	digits := fmt.Sprintf("%d", n)
	if len(digits) < 2 {
		digits = strings.Repeat("0", 2-len(digits)) + digits
	}

	return sign + digits
}
