// Package eppp synthesizes resistor networks from a preferred-value
// catalogue: given a target resistance and a tolerance, it searches
// series/parallel compositions of catalogue values for the cheapest
// network (fewest components) that approximates the target.
//
// The module is organized as a small core plus independent collaborator
// packages:
//
//	expr/        — resistor-network expression trees and their
//	               reverse-polish serialization
//	polish/      — reverse-polish stack-machine reduction
//	memo/        — multi-level memo store of cheapest known expressions
//	synth/       — the branch-and-bound synthesis engine
//	eseries/     — IEC 60063 preferred-value catalogue generation
//	sciform/     — significant-figure scientific/engineering notation
//	synthlog/    — leveled logging sink used across the engine
//
// plus cmd/make-resistance (the CLI, which drives synth), and a set of
// collaborator packages that consume nothing from the core beyond scalar
// arithmetic: metricparse, dbconv, emhelp, filtermargin, bode, twoport,
// and netfile.
//
// See cmd/make-resistance for the command-line entrypoint, and
// synth.Synthesize for the library entrypoint.
package eppp
