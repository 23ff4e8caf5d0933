package polish

import (
	"math"

	"github.com/jnystrom/eppp-go/expr"
)

// Eval reduces rp to a single resistance value using the strict
// combination rules: zero shorts a parallel branch, infinity is the
// parallel identity and the series absorbing element.
//
// Eval panics if rp is malformed (operator count must equal value count
// minus one, in valid reverse order) — well-formedness is a caller
// contract, not a runtime check this package performs on the hot path.
func Eval(rp expr.ReversePolish) float64 {
	stack := make([]float64, 0, len(rp))
	for i := len(rp) - 1; i >= 0; i-- {
		tok := rp[i]
		if !tok.IsOperator() {
			stack = append(stack, tok.Value())
			continue
		}
		if len(stack) < 2 {
			panic("polish: malformed reverse-polish sequence")
		}
		b := stack[len(stack)-1]
		a := stack[len(stack)-2]
		stack = stack[:len(stack)-2]
		stack = append(stack, combineStrict(tok.Operator(), a, b))
	}
	if len(stack) != 1 {
		panic("polish: malformed reverse-polish sequence")
	}

	return stack[0]
}

func combineStrict(op expr.Operator, a, b float64) float64 {
	switch op {
	case expr.Series:
		return a + b
	case expr.Parallel:
		if a == 0 || b == 0 {
			return 0
		}
		if math.IsInf(a, 1) {
			return b
		}
		if math.IsInf(b, 1) {
			return a
		}

		return a * b / (a + b)
	default:
		panic("polish: unknown operator")
	}
}

// EvalFast reduces rp the same way as Eval but skips the zero/infinity
// branches in the parallel case. The engine guarantees every leaf value
// in rp is strictly positive and finite, so this path is measurably
// cheaper in the branch-and-bound hot loop. Callers that cannot make that
// guarantee must use Eval instead.
func EvalFast(rp expr.ReversePolish) float64 {
	stack := make([]float64, 0, len(rp))
	for i := len(rp) - 1; i >= 0; i-- {
		tok := rp[i]
		if !tok.IsOperator() {
			stack = append(stack, tok.Value())
			continue
		}
		b := stack[len(stack)-1]
		a := stack[len(stack)-2]
		stack = stack[:len(stack)-2]
		if tok.Operator() == expr.Series {
			stack = append(stack, a+b)
		} else {
			stack = append(stack, a*b/(a+b))
		}
	}

	return stack[0]
}
