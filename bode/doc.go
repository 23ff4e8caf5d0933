// Package bode samples the magnitude and phase response of a rational
// transfer function across a logarithmic frequency sweep. It produces
// the sampled data a Bode plot would be drawn from; rendering the plot
// itself is left to the caller.
package bode
