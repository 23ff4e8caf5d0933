package bode_test

import (
	"fmt"
	"math"

	"github.com/jnystrom/eppp-go/bode"
)

func ExampleTransferFunction_SampleAt() {
	wc := 2 * math.Pi * 1000.0
	tf := bode.TransferFunction{
		Numerator:   []float64{1},
		Denominator: []float64{1 / wc, 1},
	}

	sample, err := tf.SampleAt(1000)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%.1f\n", sample.MagnitudeDB)
	// Output: -3.0
}
