// Package memo implements the synthesis engine's memoization table: a
// multi-level ordered map from a realized resistance value to the
// cheapest known reverse-polish expression that reaches it, layered by
// component count (level).
//
// A Store is seeded at construction with every catalogue entry at level
// 1 and is scoped to a single synthesis call — insertion is append-only
// for the store's lifetime, and callers should discard it when the call
// returns. Keys are IEEE-754 doubles compared for exact equality:
// numerically coincident but algebraically distinct sub-expressions
// collapse to whichever reaches the value with fewer components (Insert's
// idempotency rule).
package memo
