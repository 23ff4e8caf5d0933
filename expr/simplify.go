package expr

import "sort"

// Simplify canonicalizes e in place and returns e for chaining. It
// recursively simplifies children, flattens any child whose operator
// equals the parent's (the flattening invariant), then sorts the
// resulting children by subtree size ascending (the canonical order for
// printability and equality). Simplify is idempotent: simplifying an
// already-simplified tree is a no-op.
func (e *Expression) Simplify() *Expression {
	if e.IsLeaf() {
		return e
	}

	flattened := make([]*Expression, 0, len(e.children))
	for _, child := range e.children {
		child.Simplify()
		if !child.IsLeaf() && child.operator == e.operator {
			// Absorb the child's operands directly: (a+(b+c)) -> (a+b+c).
			flattened = append(flattened, child.children...)
		} else {
			flattened = append(flattened, child)
		}
	}

	// Sort by subtree size first (the canonical key from the invariants),
	// then by evaluated value so that two expressions built from the same
	// multiset of leaves always converge on the same child order — size
	// alone does not distinguish same-size subtrees with different values.
	sort.SliceStable(flattened, func(i, j int) bool {
		si, sj := flattened[i].Size(), flattened[j].Size()
		if si != sj {
			return si < sj
		}

		return flattened[i].Evaluate() < flattened[j].Evaluate()
	})

	e.children = flattened

	return e
}
