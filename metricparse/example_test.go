package metricparse_test

import (
	"fmt"

	"github.com/jnystrom/eppp-go/metricparse"
)

func ExampleParse() {
	v, err := metricparse.Parse("4.7k")
	if err != nil {
		panic(err)
	}
	fmt.Println(v)
	// Output: 4700
}
