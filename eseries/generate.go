package eseries

import "sort"

// Generate produces the ordered, strictly ascending list of catalogue
// values for seriesName across [minValue, maxValue].
//
// seriesName must be one of "E3", "E6", "E12", "E24", "E48", "E96", "E192".
// Use GenerateFromMantissa to supply an explicit mantissa list instead.
//
// Errors:
//   - ErrInvalidRange if minValue > maxValue.
//   - ErrUnknownSeries if seriesName is not recognized.
//
// An empty (but validly ordered) band yields an empty, non-nil list;
// callers treat that as NoSolution, not as an error.
func Generate(seriesName string, minValue, maxValue float64) ([]float64, error) {
	mantissa, err := baseMantissa(seriesName)
	if err != nil {
		return nil, err
	}

	return GenerateFromMantissa(mantissa, minValue, maxValue)
}

// GenerateFromMantissa expands an explicit mantissa list (values for a
// single decade) across as many decades as needed to cover
// [minValue, maxValue], then filters to that band.
//
// Errors:
//   - ErrInvalidRange if minValue > maxValue.
//   - ErrEmptyMantissa if mantissa has no entries.
func GenerateFromMantissa(mantissa []float64, minValue, maxValue float64) ([]float64, error) {
	if minValue > maxValue {
		return nil, ErrInvalidRange
	}
	if len(mantissa) == 0 {
		return nil, ErrEmptyMantissa
	}

	base := append([]float64(nil), mantissa...)
	sort.Float64s(base)

	all := make([]float64, 0, len(base)*8)
	all = append(all, base...)

	// Expand upward: multiply by successive powers of ten until the
	// largest materialized value exceeds maxValue.
	multiplier := 10.0
	for all[len(all)-1] <= maxValue {
		for _, m := range base {
			all = append(all, m*multiplier)
		}
		multiplier *= 10
	}

	// Expand downward: divide by successive powers of ten until the
	// smallest materialized value falls below minValue. A non-positive
	// minValue is already satisfied by every materialized value, since
	// the catalogue only ever produces strictly positive numbers.
	divider := 10.0
	for minValue > 0 && all[0] >= minValue {
		next := make([]float64, len(base))
		for i, m := range base {
			next[i] = m / divider
		}
		all = append(next, all...)
		divider *= 10
	}

	sort.Float64s(all)

	out := make([]float64, 0, len(all))
	for _, v := range all {
		if v < minValue || v > maxValue {
			continue
		}
		if len(out) > 0 && out[len(out)-1] == v {
			continue // drop duplicates, e.g. from a repeated custom mantissa
		}
		out = append(out, v)
	}

	return out, nil
}
