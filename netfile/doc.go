// Package netfile reads resistor catalogues from CSV and writes
// synthesis results to CSV, so catalogues and batch results can round
// trip through spreadsheets and other tooling without a custom format.
package netfile
