package term_test

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-analog/analog/term"
)

// A first-order lowpass with cutoff frequency fc attenuates the cutoff
// frequency itself by 3 dB.
func Example() {
	fc := 1000.0
	k := 1 / (2 * math.Pi * fc)
	lowpass := term.Invert(term.Polynomial{Coefficients: []complex128{complex(k, 0), 1}})

	fmt.Printf("%.6f\n", cmplx.Abs(term.EvaluateAt(lowpass, fc)))
	// Output: 0.707107
}

func ExampleSerialize() {
	record := term.Serialize(term.Constant{Value: 2})
	fmt.Println(record["type"], record["value"])
	// Output: Constant 2
}
