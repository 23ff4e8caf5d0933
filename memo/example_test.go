package memo_test

import (
	"fmt"

	"github.com/jnystrom/eppp-go/expr"
	"github.com/jnystrom/eppp-go/memo"
)

func ExampleStore_Nearest() {
	s := memo.NewStore([]float64{10, 22, 47, 100})
	s.Insert(2, 32, expr.ReversePolish{expr.Op(expr.Series), expr.Val(10), expr.Val(22)})

	value, rp, ok := s.Nearest(35)
	fmt.Println(value, ok, len(rp))
	// Output: 32 true 3
}
