// Package filtermargin computes the transition-band margin between a
// filter's passband and stopband edges, and the minimum filter order a
// Butterworth or Chebyshev Type I lowpass response needs to meet a given
// passband ripple and stopband attenuation across that margin.
package filtermargin
