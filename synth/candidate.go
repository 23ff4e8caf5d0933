package synth

import "github.com/jnystrom/eppp-go/expr"

// candidate is the best network found so far while approximating a given
// sub-target: its realized value, the reverse-polish sequence that builds
// it, and its component count. The zero value (ok == false) represents
// "nothing found yet".
type candidate struct {
	value      float64
	rp         expr.ReversePolish
	components int
	ok         bool
}

// absError returns candidate's absolute distance from target. Calling
// absError on a candidate with ok == false is a programming error.
func (c candidate) absError(target float64) float64 {
	d := c.value - target
	if d < 0 {
		return -d
	}

	return d
}

// betterThan reports whether c should replace other as the best known
// approximation of target. A candidate with no prior (other.ok == false)
// always loses. Strict improvement only — ties keep whichever was found
// first, which is what makes the search deterministic.
func (c candidate) betterThan(other candidate, target float64) bool {
	if !c.ok {
		return false
	}
	if !other.ok {
		return true
	}

	return c.absError(target) < other.absError(target)
}
