package polish_test

import (
	"testing"

	"github.com/jnystrom/eppp-go/expr"
	"github.com/jnystrom/eppp-go/polish"
)

func BenchmarkEvalFast(b *testing.B) {
	rp := expr.ReversePolish{
		expr.Op(expr.Parallel), expr.Val(220000),
		expr.Op(expr.Series), expr.Val(47000), expr.Val(100000),
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = polish.EvalFast(rp)
	}
}

func BenchmarkEval(b *testing.B) {
	rp := expr.ReversePolish{
		expr.Op(expr.Parallel), expr.Val(220000),
		expr.Op(expr.Series), expr.Val(47000), expr.Val(100000),
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = polish.Eval(rp)
	}
}
