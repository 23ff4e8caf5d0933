// Package twoport represents linear two-port networks by their
// impedance (Z), admittance (Y), hybrid (H), and chain/ABCD parameters,
// converts between them, and cascades chain-parameter networks in
// series of signal flow.
package twoport
