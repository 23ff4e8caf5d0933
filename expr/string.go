package expr

import "github.com/jnystrom/eppp-go/sciform"

// LeafFormat configures how String renders leaf values. The zero value
// selects 3 significant figures in metric style, matching the CLI's
// default formatting of resistor values.
type LeafFormat struct {
	SigFigs int
	Style   sciform.Style
}

func (f LeafFormat) resolve() LeafFormat {
	if f.SigFigs <= 0 {
		f.SigFigs = 3
	}

	return f
}

// String renders e using the default LeafFormat (3 significant figures,
// metric prefixes). Two expressions with the same multiset of leaves
// under a commutative-associative operator produce byte-identical output
// once both have been Simplified.
func (e *Expression) String() string {
	return e.Format(LeafFormat{})
}

// Format renders e with an explicit leaf format. Leaves print using the
// scientific/metric formatter; internal nodes print their children joined
// by " + " or " ∥ ", wrapped in parentheses.
func (e *Expression) Format(f LeafFormat) string {
	f = f.resolve()
	if e.IsLeaf() {
		return sciform.Format(e.value, f.SigFigs, f.Style)
	}

	sep := " + "
	if e.operator == Parallel {
		sep = " ∥ "
	}

	out := "("
	for i, c := range e.children {
		if i > 0 {
			out += sep
		}
		out += c.Format(f)
	}
	out += ")"

	return out
}
