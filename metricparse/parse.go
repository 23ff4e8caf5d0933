package metricparse

import (
	"fmt"
	"strconv"
	"strings"
)

// multipliers maps a recognized unit token to the power of ten it scales
// its mantissa by. "R"/"r" is the electronics decimal-point marker and
// scales by 1; "Meg"/"meg" is the ambiguity-avoiding spelling of mega
// used when a bare "M" could be misread as milli.
var multipliers = map[string]float64{
	"y": 1e-24, "z": 1e-21, "a": 1e-18, "f": 1e-15, "p": 1e-12,
	"n": 1e-9, "u": 1e-6, "µ": 1e-6, "m": 1e-3,
	"R": 1, "r": 1, "": 1,
	"k": 1e3, "K": 1e3,
	"Meg": 1e6, "meg": 1e6, "M": 1e6,
	"G": 1e9, "T": 1e12, "P": 1e15, "E": 1e18, "Z": 1e21, "Y": 1e24,
}

// Parse reads a metric-prefixed resistance value such as "4.7k", "2.2Meg",
// "100R", or "4k7" (the electronics convention of embedding the unit
// letter where the decimal point would go) and returns its value in base
// units (ohms).
func Parse(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrEmpty
	}

	start, end := unitSpan(s)
	if start == len(s) {
		// no letters at all: plain decimal
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrMalformed, s)
		}

		return v, nil
	}

	unit := s[start:end]
	before, after := s[:start], s[end:]
	var mantissaStr string
	if after != "" {
		// embedded-unit form, e.g. "4k7" -> "4.7"
		if strings.Contains(before, ".") {
			return 0, fmt.Errorf("%w: %q", ErrMalformed, s)
		}
		mantissaStr = before + "." + after
	} else {
		mantissaStr = before
	}

	mantissa, err := strconv.ParseFloat(mantissaStr, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformed, s)
	}

	mult, ok := multipliers[unit]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, unit)
	}

	return mantissa * mult, nil
}

// unitSpan returns the [start, end) byte range of the first contiguous
// run of non-digit, non-'.', non-sign characters in s. If no such run
// exists, start == len(s).
func unitSpan(s string) (start, end int) {
	start = len(s)
	end = len(s)
	inUnit := false
	for i, r := range s {
		isNumeric := (r >= '0' && r <= '9') || r == '.' || r == '+' || r == '-'
		if !isNumeric {
			if !inUnit {
				start = i
				inUnit = true
			}
			end = i + len(string(r))
		} else if inUnit {
			break
		}
	}
	if !inUnit {
		return len(s), len(s)
	}

	return start, end
}
