package expr_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jnystrom/eppp-go/expr"
)

func TestLeaf_Evaluate(t *testing.T) {
	e := expr.Leaf(47)
	assert.True(t, e.IsLeaf())
	assert.Equal(t, 47.0, e.Evaluate())
	assert.Equal(t, 1, e.Size())
}

func TestSeries_Evaluate(t *testing.T) {
	e := expr.Node(expr.Series, expr.Leaf(10), expr.Leaf(15))
	assert.Equal(t, 25.0, e.Evaluate())
}

func TestParallel_Evaluate(t *testing.T) {
	e := expr.Node(expr.Parallel, expr.Leaf(10), expr.Leaf(10))
	assert.InDelta(t, 5.0, e.Evaluate(), 1e-12)
}

func TestParallel_Commutative(t *testing.T) {
	a := expr.Node(expr.Parallel, expr.Leaf(10), expr.Leaf(22)).Evaluate()
	b := expr.Node(expr.Parallel, expr.Leaf(22), expr.Leaf(10)).Evaluate()
	assert.InDelta(t, a, b, 1e-12)
}

func TestParallel_Associative(t *testing.T) {
	left := expr.Node(expr.Parallel, expr.Leaf(10), expr.Node(expr.Parallel, expr.Leaf(22), expr.Leaf(47))).Evaluate()
	right := expr.Node(expr.Parallel, expr.Node(expr.Parallel, expr.Leaf(10), expr.Leaf(22)), expr.Leaf(47)).Evaluate()
	assert.InDelta(t, left, right, 1e-9)
}

func TestParallel_WithZeroAndInfinity(t *testing.T) {
	assert.Equal(t, 0.0, expr.Node(expr.Parallel, expr.Leaf(10), expr.Leaf(0)).Evaluate())
	assert.Equal(t, 10.0, expr.Node(expr.Parallel, expr.Leaf(10), expr.Leaf(math.Inf(1))).Evaluate())
}

func TestSimplify_Flattens(t *testing.T) {
	inner := expr.Node(expr.Series, expr.Leaf(10), expr.Leaf(15))
	outer := expr.Node(expr.Series, inner, expr.Leaf(22))
	outer.Simplify()

	require.False(t, outer.IsLeaf())
	assert.Len(t, outer.Children(), 3)
	for _, c := range outer.Children() {
		assert.True(t, c.IsLeaf())
	}
}

func TestSimplify_SortsBySize(t *testing.T) {
	big := expr.Node(expr.Series, expr.Leaf(1), expr.Leaf(2), expr.Leaf(3))
	e := expr.Node(expr.Parallel, big, expr.Leaf(10))
	e.Simplify()

	sizes := make([]int, len(e.Children()))
	for i, c := range e.Children() {
		sizes[i] = c.Size()
	}
	for i := 1; i < len(sizes); i++ {
		assert.LessOrEqual(t, sizes[i-1], sizes[i])
	}
}

func TestSimplify_Idempotent(t *testing.T) {
	inner := expr.Node(expr.Series, expr.Leaf(10), expr.Leaf(15))
	outer := expr.Node(expr.Series, inner, expr.Leaf(22))
	outer.Simplify()
	before := outer.String()
	outer.Simplify()
	assert.Equal(t, before, outer.String())
}

func TestEvaluate_StableUnderSimplify(t *testing.T) {
	inner := expr.Node(expr.Parallel, expr.Leaf(10), expr.Leaf(22))
	outer := expr.Node(expr.Series, inner, expr.Leaf(47))
	before := outer.Evaluate()
	outer.Simplify()
	after := outer.Evaluate()
	assert.InEpsilon(t, before, after, 1e-12)
}

func TestFromReversePolish(t *testing.T) {
	// (10 + 15) encoded in reverse-polish: [Op(Series), Val(10), Val(15)]
	rp := expr.ReversePolish{expr.Op(expr.Series), expr.Val(10), expr.Val(15)}
	e := expr.FromReversePolish(rp)
	assert.InDelta(t, 25.0, e.Evaluate(), 1e-12)
}

func TestFromReversePolish_SingleLeaf(t *testing.T) {
	rp := expr.ReversePolish{expr.Val(47)}
	e := expr.FromReversePolish(rp)
	assert.True(t, e.IsLeaf())
	assert.Equal(t, 47.0, e.Evaluate())
}

func TestString_DeterministicForEqualMultiset(t *testing.T) {
	a := expr.Node(expr.Series, expr.Leaf(10), expr.Leaf(15)).Simplify().String()
	b := expr.Node(expr.Series, expr.Leaf(15), expr.Leaf(10)).Simplify().String()
	assert.Equal(t, a, b)
}

func TestNode_PanicsOnTooFewChildren(t *testing.T) {
	assert.Panics(t, func() { expr.Node(expr.Series, expr.Leaf(1)) })
}
