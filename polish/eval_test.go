package polish_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jnystrom/eppp-go/expr"
	"github.com/jnystrom/eppp-go/polish"
)

func TestEval_Series(t *testing.T) {
	rp := expr.ReversePolish{expr.Op(expr.Series), expr.Val(10), expr.Val(15)}
	assert.InDelta(t, 25.0, polish.Eval(rp), 1e-12)
}

func TestEval_Parallel(t *testing.T) {
	rp := expr.ReversePolish{expr.Op(expr.Parallel), expr.Val(10), expr.Val(10)}
	assert.InDelta(t, 5.0, polish.Eval(rp), 1e-12)
}

func TestEval_ParallelWithZero(t *testing.T) {
	rp := expr.ReversePolish{expr.Op(expr.Parallel), expr.Val(10), expr.Val(0)}
	assert.Equal(t, 0.0, polish.Eval(rp))
}

func TestEval_ParallelWithInfinity(t *testing.T) {
	rp := expr.ReversePolish{expr.Op(expr.Parallel), expr.Val(10), expr.Val(math.Inf(1))}
	assert.Equal(t, 10.0, polish.Eval(rp))
}

func TestEval_SingleValue(t *testing.T) {
	rp := expr.ReversePolish{expr.Val(47)}
	assert.Equal(t, 47.0, polish.Eval(rp))
}

func TestEval_Nested(t *testing.T) {
	// series(47, parallel(10, 22))
	rp := expr.ReversePolish{
		expr.Op(expr.Series), expr.Val(47), expr.Op(expr.Parallel), expr.Val(10), expr.Val(22),
	}
	want := 47 + (10.0*22.0)/(10.0+22.0)
	assert.InDelta(t, want, polish.Eval(rp), 1e-9)
}

func TestEvalFast_MatchesEvalOnPositiveFiniteInputs(t *testing.T) {
	rp := expr.ReversePolish{
		expr.Op(expr.Series), expr.Val(47), expr.Op(expr.Parallel), expr.Val(10), expr.Val(22),
	}
	assert.InDelta(t, polish.Eval(rp), polish.EvalFast(rp), 1e-9)
}

func TestEval_MalformedPanics(t *testing.T) {
	assert.Panics(t, func() {
		polish.Eval(expr.ReversePolish{expr.Op(expr.Series), expr.Val(10)})
	})
}
