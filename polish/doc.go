// Package polish implements the stack-machine reduction of a reverse-polish
// resistor-network sequence (expr.ReversePolish): scanned right to left, a
// value token pushes onto a stack and an operator token pops two operands
// and pushes their series or parallel combination.
//
// Eval is the strict variant: it handles the transient zero and infinity
// values that can arise mid-search (0 shorts a parallel branch, ∞ is the
// parallel identity and the series absorbing element in reverse) and must
// be used whenever the catalogue can contain those values, or whenever the
// sequence can carry operators other than series/parallel.
//
// EvalFast is the non-strict variant used in the synthesis engine's hot
// loop: it specializes to series-add and the non-degenerate parallel
// formula ab/(a+b), trusting the caller to guarantee every operand is
// strictly positive and finite. Division by zero inside EvalFast's
// parallel step is a precondition violation, not a value this package
// guards against.
package polish
