// Package metricparse tokenizes resistor values written with an SI metric
// prefix, the way they appear on the command line and in schematics: "4.7k",
// "2.2Meg", "100R", "1u". It is the inverse of sciform.Format — sciform
// renders a float64 as a prefixed string, metricparse reads one back.
package metricparse
