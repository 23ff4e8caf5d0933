package sciform_test

import (
	"fmt"

	"github.com/jnystrom/eppp-go/sciform"
)

func ExampleFormat() {
	fmt.Println(sciform.Format(4700, 3, sciform.Metric))
	fmt.Println(sciform.Format(4700, 3, sciform.Scientific))
	// Output:
	// 4.70k
	// 4.70e+03
}
