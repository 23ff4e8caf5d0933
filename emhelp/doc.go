// Package emhelp provides small electromagnetic helper calculations used
// alongside resistor synthesis when a design also needs to reason about
// the wire or trace carrying the current: skin depth at a given
// frequency, free-space wavelength, and round-wire DC/AC resistance.
package emhelp
