// Package dbconv converts between linear ratios and decibels for both
// power and amplitude (voltage/current) quantities, and between absolute
// power levels and dBm/dBW.
package dbconv
