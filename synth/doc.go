// Package synth implements the network synthesis engine: a recursive
// branch-and-bound search over series/parallel resistor compositions,
// accelerated by a memo.Store so that small sub-networks discovered once
// are reused instead of re-explored.
//
// Synthesize is the single public entry point. It owns no state beyond the
// call stack and a memo.Store scoped to the call — nothing persists between
// invocations. The search proceeds by increasing component budget: for each
// budget n it asks the recursive helper for the best network reachable in
// at most n components, stops as soon as one meets tolerance, and otherwise
// logs progress and tries n+1.
//
// The recursive helper itself always optimizes toward the sub_target it was
// given, not the original target — at the outermost call sub_target equals
// target, and every series/parallel extension step computes the residual
// sub_target the remaining budget must still satisfy. Branch-and-bound
// pruning, the memo probe, and the trivial exact-match short-circuit all
// operate relative to that local sub_target, which composes correctly: the
// value returned by the outermost call is, by construction, the answer to
// the original problem.
package synth
