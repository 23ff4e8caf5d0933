// Package expr defines the resistor-network expression tree: a tagged
// recursive data type over the two binary operators Series (+) and
// Parallel (∥), plus the reverse-polish sequence used to build it and the
// canonical simplification and display rules that make two algebraically
// equivalent networks print identically.
//
// Lifecycle: a tree is built once from a reverse-polish sequence
// (FromReversePolish), simplified once (Simplify, idempotent), and then
// treated as immutable for the rest of its life — Evaluate and String
// never mutate the receiver.
package expr
