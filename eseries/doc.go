// Package eseries generates IEC 60063 preferred-number (E-series) resistor
// value catalogues.
//
// The package knows two base mantissa tables, E24 and E192, each covering
// a single decade starting at ten. Every other standard series (E3, E6,
// E12, E48, E96) is derived from one of the two bases by regular
// decimation: keep every len(base)/k-th mantissa starting at index zero.
// Callers may also supply an explicit mantissa list in place of a series
// name (see GenerateFromMantissa).
//
// Generate expands a base or custom mantissa list across as many decades
// as are needed to cover [minValue, maxValue], then filters the result to
// that band. Output is always strictly ascending with no duplicates.
package eseries
