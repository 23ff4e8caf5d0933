package synth

import (
	"fmt"
	"math"
	"sort"

	"github.com/jnystrom/eppp-go/expr"
	"github.com/jnystrom/eppp-go/memo"
	"github.com/jnystrom/eppp-go/polish"
	"github.com/jnystrom/eppp-go/synthlog"
)

// engine holds the data shared, read-only or monotonically growing, across
// a single Synthesize call: the catalogue, the absolute tolerance budget,
// the memo store, the sink, and the topology restriction.
type engine struct {
	catalogue []float64
	absTol    float64
	memo      *memo.Store
	sink      synthlog.Sink
	topology  Topology
}

// Synthesize searches for a series/parallel composition of catalogue
// values whose equivalent resistance approximates target.
//
// On success the returned error is nil and the expression satisfies
// |evaluate(result) - target| <= opts.Tolerance*target. If no such network
// is found within opts.MaxComponents leaves, Synthesize still returns its
// best-effort expression — never nil — alongside ErrNoSolution; callers
// that only care about strict success should check the error, not
// nil-ness of the expression.
func Synthesize(target float64, catalogue []float64, opts Options) (*expr.Expression, error) {
	if math.IsNaN(target) || math.IsInf(target, 0) || target <= 0 {
		return nil, ErrInvalidTarget
	}
	if len(catalogue) == 0 {
		return nil, ErrInvalidRange
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	sink := opts.Sink
	if sink == nil {
		sink = synthlog.Discard
	}

	e := &engine{
		catalogue: catalogue,
		absTol:    opts.Tolerance * target,
		memo:      memo.NewStore(catalogue),
		sink:      sink,
		topology:  opts.Topology,
	}

	var best candidate
	for n := 1; n <= opts.MaxComponents; n++ {
		if opts.Ctx != nil && opts.Ctx.Err() != nil {
			break
		}
		sink.Log(1, "starting search with %d components", n)

		found := e.search(target, n)
		if found.betterThan(best, target) {
			best = found
		}
		if best.ok && best.absError(target) <= e.absTol {
			return materialize(best.rp), nil
		}

		sink.Log(2, "best error so far: %s", signedErrorString(best, target))
		sink.Log(3, "best network so far: %s", materialize(best.rp).String())
	}

	if !best.ok {
		// Ctx was done before the first budget ran: fall back to the
		// nearest single catalogue value.
		best = e.probeMemo(target, 1)
	}

	return materialize(best.rp), ErrNoSolution
}

func materialize(rp expr.ReversePolish) *expr.Expression {
	return expr.FromReversePolish(rp).Simplify()
}

func signedErrorString(c candidate, target float64) string {
	if !c.ok {
		return "none"
	}

	return fmt.Sprintf("%+.6g", c.value-target)
}

// search returns the best network reachable within remainingBudget
// components that approximates subTarget, per the memo probe / extension
// step contract.
func (e *engine) search(subTarget float64, remainingBudget int) candidate {
	best := e.probeMemo(subTarget, remainingBudget)
	if remainingBudget <= 1 || (best.ok && best.absError(subTarget) <= e.absTol) {
		return best
	}

	for _, v := range e.catalogue {
		switch {
		case v == subTarget:
			return candidate{value: v, rp: expr.ReversePolish{expr.Val(v)}, components: 1, ok: true}

		case v < subTarget && e.topology != ParallelOnly:
			needed := subTarget - v
			sub := e.search(needed, remainingBudget-1)
			if !sub.ok {
				continue
			}
			rp := seriesRP(v, sub.rp)
			cand := candidate{
				value:      polish.EvalFast(rp),
				rp:         rp,
				components: sub.components + 1,
				ok:         true,
			}
			e.memo.Insert(cand.components, cand.value, cand.rp)
			if cand.betterThan(best, subTarget) {
				best = cand
			}

		case v > subTarget && e.topology != SeriesOnly:
			needed := v * subTarget / (v - subTarget)
			sub := e.search(needed, remainingBudget-1)
			if !sub.ok {
				continue
			}
			rp := parallelRP(v, sub.rp)
			cand := candidate{
				value:      polish.EvalFast(rp),
				rp:         rp,
				components: sub.components + 1,
				ok:         true,
			}
			e.memo.Insert(cand.components, cand.value, cand.rp)
			if cand.betterThan(best, subTarget) {
				best = cand
			}
		}
	}

	return best
}

// probeMemo brackets subTarget across every level from 1 up to
// remainingBudget and returns the closer of the two candidates found,
// ties broken by lower component count.
func (e *engine) probeMemo(subTarget float64, remainingBudget int) candidate {
	var best candidate
	for level := 1; level <= remainingBudget; level++ {
		keys := e.memo.LevelKeys(level)
		if len(keys) == 0 {
			continue
		}
		idx := sort.SearchFloat64s(keys, subTarget)
		if idx < len(keys) {
			if c, ok := e.lookup(keys[idx]); ok && c.betterThan(best, subTarget) {
				best = c
			}
		}
		if idx > 0 {
			if c, ok := e.lookup(keys[idx-1]); ok && c.betterThan(best, subTarget) {
				best = c
			}
		}
	}

	return best
}

func (e *engine) lookup(value float64) (candidate, bool) {
	rp, level, ok := e.memo.Lookup(value)
	if !ok {
		return candidate{}, false
	}

	return candidate{value: value, rp: rp, components: level, ok: true}, true
}

func seriesRP(v float64, sub expr.ReversePolish) expr.ReversePolish {
	rp := make(expr.ReversePolish, 0, len(sub)+2)
	rp = append(rp, expr.Op(expr.Series), expr.Val(v))
	rp = append(rp, sub...)

	return rp
}

func parallelRP(v float64, sub expr.ReversePolish) expr.ReversePolish {
	rp := make(expr.ReversePolish, 0, len(sub)+2)
	rp = append(rp, expr.Op(expr.Parallel), expr.Val(v))
	rp = append(rp, sub...)

	return rp
}
