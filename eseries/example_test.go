package eseries_test

import (
	"fmt"

	"github.com/jnystrom/eppp-go/eseries"
)

// ExampleGenerate builds the default E6 catalogue used by the CLI
// (10Ω .. 10MΩ) and prints the first few values.
func ExampleGenerate() {
	vals, err := eseries.Generate("E6", 10, 1e7)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(vals[:6])
	// Output: [10 15 22 33 47 68]
}
