// Package sciform renders positive real numbers as a mantissa of
// configurable significant figures followed by a metric-prefix letter or
// an explicit exponent, in one of three styles:
//
//   - Metric: one of the prefix letters y z a f p n µ m k M G T P E Z Y.
//   - Engineering: exponent is restricted to a multiple of three.
//   - Scientific: any exponent, printed as e±NN.
//
// Values whose exponent would fall outside the metric prefix range
// (|exponent| > 24) automatically fall back to engineering style.
// Rounding is half-up at the requested number of significant figures.
package sciform
